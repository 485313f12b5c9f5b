// Package detector identifies the language of polished messages and maps the
// free-text language names callers send to ISO 639-1 codes.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector for every language lingua knows. Building it is
// expensive; create one per process.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Resolve maps a requested output language to a lowercase ISO 639-1 code.
// It accepts English language names ("English", "ukrainian") as well as
// BCP 47 or ISO 639 codes ("de", "pt-BR", "en_US", "ukr"). ok is false when
// the value cannot be mapped, e.g. "Deutsch" or "casual English".
func Resolve(name string) (code string, ok bool) {
	s := strings.TrimSpace(name)
	if s == "" {
		return "", false
	}

	for _, l := range lingua.AllLanguages() {
		if strings.EqualFold(l.String(), s) {
			return strings.ToLower(l.IsoCode639_1().String()), true
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}

// DisplayName returns the English name for an ISO code, or the code itself.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
