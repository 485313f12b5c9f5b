package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode defines standard error codes for programmatic handling
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"      // 422 - missing or malformed parameters
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"             // 404
	ErrCodeNoPolished ErrorCode = "POLISHED_TEXT_MISSING" // 500 - model reply had no <polished-text>
	ErrCodeUpstream   ErrorCode = "UPSTREAM_ERROR"        // 502 - completion provider failed
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"        // 500
)

// ErrorDetail names one offending request parameter
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the error body for every non-2xx response.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode     `json:"code"`
		Message string        `json:"message"`
		Details []ErrorDetail `json:"details,omitempty"`
	} `json:"error"`
}

func respondError(c *gin.Context, status int, code ErrorCode, message string, details []ErrorDetail) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	c.AbortWithStatusJSON(status, resp)
}

// respondMissingParams reports absent query parameters with one detail each.
func respondMissingParams(c *gin.Context, params []string) {
	details := make([]ErrorDetail, 0, len(params))
	for _, p := range params {
		details = append(details, ErrorDetail{
			Field:   p,
			Message: p + " is required",
		})
	}
	respondError(c, http.StatusUnprocessableEntity, ErrCodeValidation, "invalid request parameters", details)
}
