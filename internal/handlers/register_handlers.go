package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/cmd/docs"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/middleware"
	"github.com/leavehq/leave_management_app/internal/platform/config"
	"github.com/leavehq/leave_management_app/internal/platform/events"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *events.Hub,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, hub)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *events.Hub,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerLeaveRoutes(v1, services)
	registerEventRoutes(v1, hub)

	// Admin surface: role gate applies to the whole group
	admin := v1.Group("/admin",
		middleware.LoadCurrentUser(services.User),
		middleware.RequireRoles(domain.RoleAdmin),
	)
	registerAdminUserRoutes(admin, services.User)
	registerHolidayRoutes(admin, services.Holiday)
	registerDepartmentRoutes(admin, services.Department)
	registerAdminStatsRoutes(admin, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
