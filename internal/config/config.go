// Package config loads service settings from flags, a config file, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/voicemsg/internal/llm"
)

const (
	EnvPrefix     = "VOICEMSG"
	EnvProduction = "production"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Gzip            bool          `mapstructure:"gzip"`
	Env             string        `mapstructure:"env"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server           ServerConfig     `mapstructure:"server"`
	LLM              llm.ClientConfig `mapstructure:"llm"`
	ValidateLanguage bool             `mapstructure:"validate_language"`
}

// SetDefaults registers every key so that environment variables are picked
// up by Unmarshal even when no config file mentions them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0:8000")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.gzip", true)
	v.SetDefault("server.env", "development")

	v.SetDefault("llm.provider", llm.ProviderOpenAI)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", llm.DefaultModel)
	v.SetDefault("llm.timeout", llm.DefaultTimeout)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "")

	v.SetDefault("validate_language", false)
}

// BindEnv wires VOICEMSG_* variables plus the Open WebUI names used by
// earlier deployments. The first name found wins.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("llm.base_url", EnvPrefix+"_LLM_BASE_URL", "OPENWEBUI_BASE_URL"); err != nil {
		return err
	}
	return v.BindEnv("llm.api_key", EnvPrefix+"_LLM_API_KEY", "OPENWEBUI_API_KEY")
}

// LoadDotEnv loads the given .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLog returns the logging settings on their own. It does not run
// Validate, so commands that never reach the model can log without an API key.
// An empty format means console output, or JSON when server.env is production.
func LoadLog(v *viper.Viper) LogConfig {
	lc := LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	if lc.Format == "" {
		lc.Format = "console"
		if v.GetString("server.env") == EnvProduction {
			lc.Format = "json"
		}
	}
	return lc
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case llm.ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %q (set %s_LLM_API_KEY or OPENWEBUI_API_KEY)", c.LLM.Provider, EnvPrefix)
		}
	case llm.ProviderOllama:
	default:
		return fmt.Errorf("unknown llm.provider %q (want %q or %q)", c.LLM.Provider, llm.ProviderOpenAI, llm.ProviderOllama)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
