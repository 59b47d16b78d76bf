package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revlo/revlo_ledger/cmd/docs"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/middleware"
	"github.com/revlo/revlo_ledger/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// repairQueue may be nil, in which case repair scans always run inline.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	repairQueue ProjectRepairEnqueuer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, repairQueue)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	repairQueue ProjectRepairEnqueuer,
) {
	// API tokens are tried first; anything else must carry a bearer JWT.
	v1 := r.Group("/api/v1",
		middleware.APITokenAuth(services.APIToken),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)

	RegisterAPITokenRoutes(v1, services.APIToken)

	company := registerCompanyRoutes(v1, services.Company)
	registerAccountRoutes(company, services.Account, services.Ledger)
	registerLedgerRoutes(company, services.Ledger)
	registerProjectRoutes(company, services.Project, services.Company, repairQueue)
	registerCounterpartyRoutes(company, services.Counterparty)
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
