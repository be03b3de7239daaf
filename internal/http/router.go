package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	intconfig "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/config"
	h "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/handlers"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/middleware"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/storage"
)

// NewRouter wires the middleware chain and every route onto a fresh gin engine.
func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.Metrics(),
		middleware.CORS(env.FrontendURLs),
		middleware.SecurityHeaders(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		zap.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
	r.NoRoute(h.NotFound)

	r.Static(storage.PublicPrefix, env.UploadDir)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", a.Health)

	authn := middleware.Auth(a.Tokens)
	admin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		api.GET("", a.Overview)
		api.GET("/health/db", a.DBHealth)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", a.Login)
		auth.POST("/forgot-password-validate", a.ValidateForgotPassword)
		auth.POST("/reset-password", a.ResetPassword)

		registration := api.Group("/registration")
		registration.GET("/dropdown-data", a.DropdownData)
		registration.GET("/cities/:stateId", a.Cities)
		registration.POST("/check-email", a.CheckEmail)
		registration.POST("/register", a.Register)
		registration.POST("/upload-profile", a.UploadProfile)
		registration.POST("/upload-certificate", a.UploadCertificate)

		dashboard := api.Group("/dashboard", authn)
		dashboard.GET("/stats", a.DashboardStats)
		dashboard.GET("/profile", a.Profile)
		dashboard.GET("/profile/card", a.ProfileCard)
		dashboard.PUT("/profile", a.UpdateProfile)
		dashboard.PUT("/users/:userId/presence", admin, a.UpdatePresence)
		dashboard.GET("/summary", admin, a.AdminSummary)

		search := api.Group("/search", authn)
		search.POST("/master", a.MasterSearch)
		search.POST("/export", a.ExportSearch)
		search.POST("/approve/:regId", a.ApproveUser)
		search.PUT("/update", a.UpdateSelected)
		search.GET("/sewa-locations", a.SewaLocations)

		user := api.Group("/user", authn)
		user.PUT("/update-role", admin, a.UpdateUserRole)
	}

	h.SetRouter(r)
	return r
}
