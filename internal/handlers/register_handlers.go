package handlers

import (
	portssvc "github.com/currexo/currency_catalog_app/internal/core/ports/services"
	"github.com/currexo/currency_catalog_app/internal/middleware"
	"github.com/currexo/currency_catalog_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, apiLimiter)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	// Public, rate-limited read surface
	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter))
	registerCurrencyUnitRoutes(v1, services.Catalog)
	registerConvertRoutes(v1, services.Conversion)

	// Admin surface behind the bearer-JWT guard
	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret))
	registerAdminCurrencyUnitRoutes(admin, services.Catalog)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
