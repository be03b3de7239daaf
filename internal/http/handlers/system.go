package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// GET /health
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "SNM Medical Staging Backend is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": a.Environment,
	})
}

// GET /api/health/db
func (a *API) DBHealth(c *gin.Context) {
	if a.Ping == nil {
		RespondError(c, http.StatusServiceUnavailable, "Database not connected", nil)
		return
	}
	if err := a.Ping(c.Request.Context()); err != nil {
		var cause error
		if a.ExposeErrors {
			cause = err
		}
		RespondError(c, http.StatusServiceUnavailable, "Database connection failed", cause)
		return
	}
	respond(c, http.StatusOK, true, "Database connection OK", nil)
}

// GET /api
func (a *API) Overview(c *gin.Context) {
	respond(c, http.StatusOK, true, "SNM Medical Staging API", gin.H{
		"endpoints": gin.H{
			"auth":         "/api/auth",
			"registration": "/api/registration",
			"dashboard":    "/api/dashboard",
			"search":       "/api/search",
			"user":         "/api/user",
			"health":       "/health",
			"metrics":      "/metrics",
		},
	})
}

// GET /api/routes
func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		RespondError(c, http.StatusServiceUnavailable, "Router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Route " + c.Request.Method + " " + c.Request.URL.Path + " not found",
	})
}
