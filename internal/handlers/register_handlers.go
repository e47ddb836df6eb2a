package handlers

import (
	portssvc "github.com/caisse-pos/caisse_backend/internal/core/ports/services"
	"github.com/caisse-pos/caisse_backend/internal/middleware"
	"github.com/caisse-pos/caisse_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerOperatorRoutes(v1, services.Auth)
	registerSaleRoutes(v1, services.Sale)
	registerProductRoutes(v1, services.Product)
	registerClientRoutes(v1, services.Client, services.Voucher)
	registerVoucherRoutes(v1, services.Voucher)
	registerCashMovementRoutes(v1, services.CashMovement)
	registerDepositRoutes(v1, services.Deposit)
	registerClosureRoutes(v1, services.Closure)
	registerAuditRoutes(v1, services.Audit)
}
