package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/auth"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/middleware"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/services"
)

// API holds the stores and settings handlers build their per-request services from.
type API struct {
	Search       services.SearchStore
	Auth         services.AuthStore
	Registration services.RegistrationStore
	Dashboard    services.DashboardStore
	Users        services.RoleStore
	Files        services.FileStore
	Tokens       *auth.TokenManager

	// Ping checks the database for /api/health/db.
	Ping func(ctx context.Context) error

	Environment    string
	QueryTimeout   time.Duration
	ExportPageSize int64
	// ExposeErrors echoes store error text to clients (development only).
	ExposeErrors bool
}

func (a *API) searchService(c *gin.Context) services.SearchService {
	return services.SearchService{
		Repo:           a.Search,
		RequestID:      middleware.GetRequestID(c),
		Timeout:        a.QueryTimeout,
		ExportPageSize: a.ExportPageSize,
	}
}

func (a *API) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Repo:      a.Auth,
		Tokens:    a.Tokens,
		RequestID: middleware.GetRequestID(c),
		Timeout:   a.QueryTimeout,
	}
}

func (a *API) registrationService(c *gin.Context) services.RegistrationService {
	return services.RegistrationService{
		Repo:      a.Registration,
		Files:     a.Files,
		RequestID: middleware.GetRequestID(c),
		Timeout:   a.QueryTimeout,
	}
}

func (a *API) dashboardService(c *gin.Context) services.DashboardService {
	return services.DashboardService{
		Repo:      a.Dashboard,
		RequestID: middleware.GetRequestID(c),
		Timeout:   a.QueryTimeout,
	}
}

func (a *API) userService(c *gin.Context) services.UserService {
	return services.UserService{
		Repo:      a.Users,
		RequestID: middleware.GetRequestID(c),
		Timeout:   a.QueryTimeout,
	}
}

func (a *API) fail(c *gin.Context, err error, fallback string) {
	RespondDomainError(c, err, fallback, a.ExposeErrors)
}
