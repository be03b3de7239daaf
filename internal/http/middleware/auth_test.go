package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/auth"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
)

func init() { gin.SetMode(gin.TestMode) }

func protected(tm *auth.TokenManager, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	handlers := append([]gin.HandlerFunc{Auth(tm)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID, "role": c.GetString("userRole")})
	})
	r.GET("/p", handlers...)
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthStatuses(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	good, err := tm.Issue(domain.Identity{UserID: 3, UserType: domain.UserTypeMedicalStaff})
	require.NoError(t, err)

	expiredTM := auth.NewTokenManager("secret", time.Nanosecond)
	expired, err := expiredTM.Issue(domain.Identity{UserID: 3})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	r := protected(tm)
	cases := []struct {
		name   string
		header string
		status int
		msg    string
	}{
		{"missing", "", http.StatusUnauthorized, "Access token required. Please login first."},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Access token required. Please login first."},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token expired. Please login again."},
		{"invalid", "Bearer nope", http.StatusForbidden, "Invalid token. Please login again."},
		{"valid", "Bearer " + good, http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, tc.header)
			assert.Equal(t, tc.status, w.Code)
			if tc.msg != "" {
				assert.Contains(t, w.Body.String(), tc.msg)
				assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			} else {
				assert.JSONEq(t, `{"userId":3,"role":"ms"}`, w.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	staff, _ := tm.Issue(domain.Identity{UserID: 1, UserType: domain.UserTypeMedicalStaff})
	admin, _ := tm.Issue(domain.Identity{UserID: 2, UserType: domain.UserTypeAdmin})

	r := protected(tm, RequireAdmin())

	w := get(r, "Bearer "+staff)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied. Admin privileges required.")

	w = get(r, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
