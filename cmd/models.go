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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/voicemsg/internal/config"
	"github.com/valpere/voicemsg/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models offered by the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		completer, err := llm.New(cfg.LLM)
		if err != nil {
			return err
		}
		lister, ok := completer.(llm.ModelLister)
		if !ok {
			return fmt.Errorf("provider %s cannot list models", completer.Name())
		}

		models, err := lister.ListModels(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, m := range models {
			marker := " "
			if m == cfg.LLM.Model {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
