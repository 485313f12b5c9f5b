/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/voicemsg/internal/config"
	"github.com/valpere/voicemsg/internal/llm"
	"github.com/valpere/voicemsg/internal/log"
)

var version = "0.1.0"

var (
	cfgFile string
	envFile string

	v = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "voicemsg",
	Short: "Voice message transcription polisher",
	Long: `Turns raw speech-to-text transcriptions into polished text messages
in a target language using an LLM chat completion endpoint.

Providers: any OpenAI-compatible API (Open WebUI, OpenRouter, OpenAI) or Ollama.

Use "voicemsg serve" to run the HTTP service and
"voicemsg polish --help" to polish a single transcription.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// initConfig layers .env, config file and environment into v, then sets up logging.
func initConfig() error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	config.SetDefaults(v)
	if err := config.BindEnv(v); err != nil {
		return fmt.Errorf("failed to bind environment: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("voicemsg")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "voicemsg"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	lc := config.LoadLog(v)
	log.Setup(lc.Level, lc.Format)

	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("file", used).Msg("config loaded")
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ./voicemsg.yaml or ~/.config/voicemsg/voicemsg.yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")

	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: console or json (default depends on server.env)")

	flags.String("provider", llm.ProviderOpenAI, "LLM provider: openai or ollama")
	flags.String("base-url", "", "LLM base URL (env OPENWEBUI_BASE_URL)")
	flags.String("model", llm.DefaultModel, "Model name sent with every completion")
	flags.Duration("timeout", llm.DefaultTimeout, "Timeout for one completion call")
	flags.Bool("validate-language", false, "Warn when the polished text is not in the requested language")

	v.BindPFlag("log.level", flags.Lookup("log-level"))
	v.BindPFlag("log.format", flags.Lookup("log-format"))
	v.BindPFlag("llm.provider", flags.Lookup("provider"))
	v.BindPFlag("llm.base_url", flags.Lookup("base-url"))
	v.BindPFlag("llm.model", flags.Lookup("model"))
	v.BindPFlag("llm.timeout", flags.Lookup("timeout"))
	v.BindPFlag("validate_language", flags.Lookup("validate-language"))
}
