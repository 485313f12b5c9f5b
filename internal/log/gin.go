package log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-ID"

	ContextKeyRequestID = "request_id"
)

// RequestID returns a Gin middleware that reuses an incoming X-Request-ID or
// assigns a fresh one, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GinLogger returns a Gin middleware that logs requests using zerolog
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		event := Info()
		if status >= 500 {
			event = Error()
		} else if status >= 400 {
			event = Warn()
		}

		// The query string carries the transcription, so only its size is logged.
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("queryBytes", len(c.Request.URL.RawQuery)).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("requestId", c.GetString(ContextKeyRequestID))

		if errorMessage != "" {
			event.Str("error", errorMessage)
		}

		event.Msg("request")
	}
}
