package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/auth"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
)

const identityKey = "identity"

// TokenVerifier is implemented by *auth.TokenManager.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

// Auth requires "Authorization: Bearer <token>" and attaches the decoded identity.
func Auth(tv TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			abort(c, http.StatusUnauthorized, "Access token required. Please login first.")
			return
		}

		claims, err := tv.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abort(c, http.StatusUnauthorized, "Token expired. Please login again.")
				return
			}
			abort(c, http.StatusForbidden, "Invalid token. Please login again.")
			return
		}

		id := claims.Identity()
		c.Set(identityKey, id)
		c.Set("userRole", id.UserType)
		c.Next()
	}
}

// GetIdentity returns the identity attached by Auth.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"message":    message,
		"request_id": GetRequestID(c),
	})
}
