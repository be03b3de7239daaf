package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, cause error, expose bool) {
	resp := ErrorResponse{
		Success:   false,
		Message:   message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	}
	if expose && cause != nil {
		if inner := errors.Unwrap(cause); inner != nil {
			resp.Error = inner.Error()
		} else {
			resp.Error = cause.Error()
		}
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. fallback is the message for
// store and unexpected failures; their cause is only echoed when expose is set.
func RespondDomainError(c *gin.Context, err error, fallback string, expose bool) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil, false)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil, false)
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil, false)
	case domain.IsNotFound(err), domain.IsEmptyResult(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil, false)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil, false)
	case domain.IsTimeout(err):
		respondError(c, http.StatusGatewayTimeout, "timeout", "Request timed out. Please try again.", err, expose)
	case domain.IsInternal(err) && !domain.IsDataAccess(err):
		var ie domain.InternalError
		errors.As(err, &ie)
		respondError(c, http.StatusInternalServerError, "internal_error", ie.Error(), err, expose)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", fallback, err, expose)
	}
}
