package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
)

// RequireRoles allows only callers whose user type is in allowedRoles.
// Auth must run first.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Access token required. Please login first.")
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(id.UserType))]; !ok {
			abort(c, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireRoles for administrators.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(domain.UserTypeAdmin)
}
