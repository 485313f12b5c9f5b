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
	"io"
	"os"
	"strings"

	"github.com/valpere/voicemsg/internal/config"
	"github.com/valpere/voicemsg/internal/llm"
	"github.com/valpere/voicemsg/internal/log"
	"github.com/valpere/voicemsg/internal/polisher"
	"github.com/valpere/voicemsg/internal/validator"
)

// buildPolisher constructs the completion client and polisher from cfg.
// The language detector is only built when validation is enabled because
// loading its models takes a while.
func buildPolisher(cfg *config.Config) (*polisher.Polisher, error) {
	completer, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, err
	}

	var opts []polisher.Option
	if cfg.ValidateLanguage {
		log.Info().Msg("loading language detector")
		opts = append(opts, polisher.WithLanguageCheck(validator.New()))
	}

	log.Info().
		Str("provider", completer.Name()).
		Str("baseURL", cfg.LLM.BaseURL).
		Str("model", cfg.LLM.Model).
		Dur("timeout", cfg.LLM.Timeout).
		Msg("LLM client initialized")

	return polisher.New(completer, cfg.LLM.Model, opts...), nil
}

// readTranscription returns text when set, otherwise the contents of
// inputFile ("-" reads stdin).
func readTranscription(text, inputFile string, stdin io.Reader) (string, error) {
	if text != "" && inputFile != "" {
		return "", fmt.Errorf("use either --text or --input, not both")
	}
	if text != "" {
		return text, nil
	}

	var data []byte
	var err error
	switch inputFile {
	case "":
		return "", fmt.Errorf("a transcription is required (--text or --input)")
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(inputFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read transcription: %w", err)
	}

	// Editors and shells append a newline that is not part of the recording.
	return strings.TrimRight(string(data), "\r\n"), nil
}
