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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/voicemsg/internal/prompt"
)

var (
	promptText     string
	promptInput    string
	promptLanguage string
	promptJSON     bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the messages that would be sent to the model",
	Long: `Render the system and user messages for a transcription without
calling the LLM. Useful when tuning a model against the instruction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transcription, err := readTranscription(promptText, promptInput, cmd.InOrStdin())
		if err != nil {
			return err
		}

		ex, err := prompt.Build(transcription, promptLanguage, v.GetString("llm.model"))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if promptJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(ex)
		}

		fmt.Fprintf(out, "--- model: %s\n--- system\n%s\n--- user\n%s\n", ex.Model, ex.System, ex.User)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().StringVarP(&promptText, "text", "t", "", "Transcription text")
	promptCmd.Flags().StringVarP(&promptInput, "input", "i", "", `File with the transcription ("-" for stdin)`)
	promptCmd.Flags().StringVarP(&promptLanguage, "language", "l", "", "Language of the polished message (required)")
	promptCmd.Flags().BoolVar(&promptJSON, "json", false, "Print the exchange as JSON")

	promptCmd.MarkFlagRequired("language")
}
