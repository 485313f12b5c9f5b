// Package validator checks that a polished message is in the requested language.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/voicemsg/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// Validator checks that a polished message is written in the requested language.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when text appears to be written in targetLang.
//
// targetLang may be a language name or a code (see detector.Resolve). Values
// that cannot be resolved, short texts and texts whose language cannot be
// determined all pass. When the detected language differs from targetLang
// the returned error names both languages.
func (v *Validator) IsValid(text, targetLang string) (bool, error) {
	if targetLang == "" {
		return true, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("polished text is empty")
	}

	want, ok := detector.Resolve(targetLang)
	if !ok {
		return true, nil
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}

	if !strings.EqualFold(detected, want) {
		return false, fmt.Errorf("expected %s but detected %s", detector.DisplayName(want), detector.DisplayName(detected))
	}

	return true, nil
}
