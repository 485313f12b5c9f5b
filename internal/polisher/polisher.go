// Package polisher turns a raw transcription into a polished text message.
//
// One call renders the prompt, makes exactly one completion request and
// extracts the <polished-text> section from the reply. Nothing is retried,
// cached or stored.
package polisher

import (
	"context"
	"errors"

	"github.com/valpere/voicemsg/internal"
	"github.com/valpere/voicemsg/internal/extract"
	"github.com/valpere/voicemsg/internal/llm"
	"github.com/valpere/voicemsg/internal/log"
	"github.com/valpere/voicemsg/internal/prompt"
)

// LanguageChecker reports whether text is written in the given language.
type LanguageChecker interface {
	IsValid(text, language string) (bool, error)
}

type Polisher struct {
	completer llm.Completer
	model     string
	checker   LanguageChecker
}

type Option func(*Polisher)

// WithLanguageCheck logs a warning whenever the polished message does not
// look like the requested language. The message is returned either way.
func WithLanguageCheck(c LanguageChecker) Option {
	return func(p *Polisher) { p.checker = c }
}

// New creates a Polisher. An empty model falls back to llm.DefaultModel.
func New(completer llm.Completer, model string, opts ...Option) *Polisher {
	if model == "" {
		model = llm.DefaultModel
	}
	p := &Polisher{completer: completer, model: model}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Polisher) Model() string {
	return p.model
}

// BuildAndSend sends the rendered system and user messages to the model and
// returns its reply unmodified. Completer failures come back as
// *llm.UpstreamCallError.
func (p *Polisher) BuildAndSend(ctx context.Context, transcription, language string) (string, error) {
	ex, err := prompt.Build(transcription, language, p.model)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("provider", p.completer.Name()).
		Str("model", ex.Model).
		Str("system", ex.System).
		Str("user", ex.User).
		Msg("sending exchange")

	reply, err := p.completer.Complete(ctx, ex.System, ex.User, ex.Model)
	if err != nil {
		var upstream *llm.UpstreamCallError
		if !errors.As(err, &upstream) {
			err = &llm.UpstreamCallError{Provider: p.completer.Name(), Err: err}
		}
		return "", err
	}

	log.Debug().Str("reply", reply).Msg("received reply")
	return reply, nil
}

// Polish runs the whole pipeline for one request. The extracted text keeps
// its surrounding whitespace. A reply without a <polished-text> section
// yields *extract.TagNotFoundError.
func (p *Polisher) Polish(ctx context.Context, req internal.TranscriptionRequest) (*internal.PolishedMessage, error) {
	reply, err := p.BuildAndSend(ctx, req.Transcription, req.Language)
	if err != nil {
		return nil, err
	}

	text, err := extract.Extract(prompt.PolishedTextTag, reply)
	if err != nil {
		log.Warn().Err(err).Int("replyLength", len(reply)).Msg("model reply has no polished text")
		return nil, err
	}

	if p.checker != nil {
		if ok, checkErr := p.checker.IsValid(text, req.Language); !ok {
			log.Warn().Err(checkErr).Str("language", req.Language).Msg("polished text language mismatch")
		}
	}

	return &internal.PolishedMessage{Message: text}, nil
}
