// Package prompt renders the two messages sent to the model for one
// transcription: the fixed system instruction and the wrapped user message.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

// PolishedTextTag is the tag the system instruction asks the model to wrap
// its final answer in.
const PolishedTextTag = "polished-text"

//go:embed system_prompt.tmpl
var systemPromptText string

var systemPrompt = template.Must(template.New("system").Parse(systemPromptText))

// Exchange is one outbound system/user message pair. It is built per call
// and never stored.
type Exchange struct {
	System string `json:"system"`
	User   string `json:"user"`
	Model  string `json:"model"`
}

// SystemMessage renders the instruction with language inserted verbatim.
// language is free text; it is not checked against any list.
func SystemMessage(language string) (string, error) {
	var sb strings.Builder
	if err := systemPrompt.Execute(&sb, struct{ Language string }{language}); err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}
	return sb.String(), nil
}

// UserMessage wraps the transcription in <transcription> delimiters. The
// trailing "!" is part of the message the model has been tuned against.
func UserMessage(transcription string) string {
	return "<transcription>\n" + transcription + "\n</transcription>!"
}

// Build renders the full exchange for one transcription.
func Build(transcription, language, model string) (*Exchange, error) {
	system, err := SystemMessage(language)
	if err != nil {
		return nil, err
	}
	return &Exchange{
		System: system,
		User:   UserMessage(transcription),
		Model:  model,
	}, nil
}
