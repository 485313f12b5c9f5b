package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valpere/voicemsg/internal"
	"github.com/valpere/voicemsg/internal/extract"
	"github.com/valpere/voicemsg/internal/llm"
)

// Polisher is the pipeline the voice message endpoint delegates to.
type Polisher interface {
	Polish(ctx context.Context, req internal.TranscriptionRequest) (*internal.PolishedMessage, error)
}

type Handlers struct {
	polisher Polisher
}

func NewHandlers(p Polisher) *Handlers {
	return &Handlers{polisher: p}
}

// Root is the greeting route.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, internal.PolishedMessage{Message: "Hello world!"})
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProcessedVoiceMessage handles GET /processed_voice_message. Only absent
// parameters are rejected; empty values go to the model unchanged.
func (h *Handlers) ProcessedVoiceMessage(c *gin.Context) {
	transcription, hasTranscription := c.GetQuery("transcription")
	language, hasLanguage := c.GetQuery("language")

	var missing []string
	if !hasTranscription {
		missing = append(missing, "transcription")
	}
	if !hasLanguage {
		missing = append(missing, "language")
	}
	if len(missing) > 0 {
		respondMissingParams(c, missing)
		return
	}

	req := internal.TranscriptionRequest{Transcription: transcription, Language: language}

	msg, err := h.polisher.Polish(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		var upstream *llm.UpstreamCallError
		switch {
		case errors.As(err, &upstream):
			respondError(c, http.StatusBadGateway, ErrCodeUpstream, upstream.Error(), nil)
		case errors.Is(err, extract.ErrTagNotFound):
			respondError(c, http.StatusInternalServerError, ErrCodeNoPolished, err.Error(), nil)
		default:
			respondError(c, http.StatusInternalServerError, ErrCodeInternal, err.Error(), nil)
		}
		return
	}

	c.JSON(http.StatusOK, msg)
}
