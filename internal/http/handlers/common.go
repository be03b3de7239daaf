package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/middleware"
)

// respond writes the standard {success, message, data?} envelope. data is omitted when nil.
func respond(c *gin.Context, status int, success bool, message string, data any) {
	payload := gin.H{
		"success": success,
		"message": message,
	}
	if data != nil {
		payload["data"] = data
	}
	c.JSON(status, payload)
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"success":    false,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// bindJSON decodes an optional JSON body into dst. An empty body leaves dst untouched.
func bindJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// requireJSON is bindJSON for endpoints that need a body.
func requireJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "Request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// positiveParam parses a path parameter as an integer > 0.
func positiveParam(c *gin.Context, name string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// currentIdentity returns the authenticated caller or answers 401.
func currentIdentity(c *gin.Context) (domain.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Access token required. Please login first.", nil)
		return domain.Identity{}, false
	}
	return id, true
}
