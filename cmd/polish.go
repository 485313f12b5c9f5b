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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/voicemsg/internal"
	"github.com/valpere/voicemsg/internal/config"
	"github.com/valpere/voicemsg/internal/postprocess"
)

var (
	polishText     string
	polishInput    string
	polishOutput   string
	polishLanguage string
	polishRaw      bool
)

var polishCmd = &cobra.Command{
	Use:   "polish",
	Short: "Polish a single transcription",
	Long: `Send one transcription through the same pipeline as the HTTP service
and print the polished message.

Input:
  --text "uh hey call me back"   inline transcription
  --input notes.txt              read from a file ("-" for stdin)

The output is trimmed and stripped of stray reasoning tags, preambles and
wrapping quotes. Use --raw to print the extracted text exactly as returned.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transcription, err := readTranscription(polishText, polishInput, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		p, err := buildPolisher(cfg)
		if err != nil {
			return err
		}

		msg, err := p.Polish(cmd.Context(), internal.TranscriptionRequest{
			Transcription: transcription,
			Language:      polishLanguage,
		})
		if err != nil {
			return err
		}

		out := msg.Message
		if !polishRaw {
			out = postprocess.Clean(out) + "\n"
		}

		if polishOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		}

		if err := os.MkdirAll(filepath.Dir(polishOutput), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(polishOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Polished message written to %s\n", polishOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(polishCmd)

	polishCmd.Flags().StringVarP(&polishText, "text", "t", "", "Transcription text")
	polishCmd.Flags().StringVarP(&polishInput, "input", "i", "", `File with the transcription ("-" for stdin)`)
	polishCmd.Flags().StringVarP(&polishOutput, "output", "o", "", "Write the polished message to this file instead of stdout")
	polishCmd.Flags().StringVarP(&polishLanguage, "language", "l", "", "Language of the polished message, e.g. English (required)")
	polishCmd.Flags().BoolVar(&polishRaw, "raw", false, "Print the extracted text verbatim")

	polishCmd.MarkFlagRequired("language")
}
