package router

import (
	"github.com/gin-gonic/gin"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/handler"
	"sentrydesk/internal/middleware"
	"sentrydesk/internal/service"
)

// Handlers bundles the handler set wired into the router.
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Week    *handler.WeekHandler
	Suggest *handler.SuggestHandler
	Theme   *handler.ThemeHandler
	Media   *handler.MediaHandler
	Export  *handler.ExportHandler
	Stats   *handler.StatsHandler
	User    *handler.UserHandler
	Tenant  *handler.TenantHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.TenantGuard())

	protected.GET("/auth/me", h.Auth.Me)

	// Report weeks and daily reports
	weeks := protected.Group("/weeks")
	weeks.POST("", h.Week.CreateWeek)
	weeks.GET("", h.Week.ListWeeks)
	weeks.GET("/:id", h.Week.GetWeek)
	weeks.PUT("/:id", h.Week.UpdateWeek)
	weeks.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Week.DeleteWeek)
	weeks.GET("/:id/reports", h.Week.ListReports)
	weeks.PUT("/:id/reports/:day", h.Week.UpsertReport)
	weeks.POST("/:id/reports/:day/submit", h.Week.SubmitReport)
	weeks.POST("/:id/bulk/preview", h.Week.PreviewBulkImport)
	weeks.POST("/:id/bulk/apply", h.Week.ApplyBulkImport)
	weeks.GET("/:id/export", h.Export.ExportWeek)
	weeks.POST("/:id/media", h.Media.Upload)
	weeks.GET("/:id/media", h.Media.ListByWeek)

	// Writing suggestions
	suggestions := protected.Group("/suggestions")
	suggestions.POST("/analyze", h.Suggest.Analyze)

	// Theme presets
	themes := protected.Group("/themes")
	themes.POST("", h.Theme.Create)
	themes.GET("", h.Theme.List)
	themes.GET("/:id", h.Theme.Get)
	themes.PUT("/:id", h.Theme.Update)
	themes.POST("/:id/default", middleware.RequireRole(domain.RoleAdmin), h.Theme.SetDefault)
	themes.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Theme.Delete)

	// Media attachments
	media := protected.Group("/media")
	media.GET("/:id/url", h.Media.GetDownloadURL)
	media.DELETE("/:id", h.Media.Delete)

	// Analytics hub
	stats := protected.Group("/stats")
	stats.GET("/overview", h.Stats.Overview)
	stats.GET("/activity", h.Stats.ActivityTrend)
	stats.GET("/weekdays", h.Stats.WeekdayBreakdown)
	stats.GET("/contributors", h.Stats.TopContributors)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.Get)
	users.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.Get)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
