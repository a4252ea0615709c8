package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kjm/ledger-lite/cmd/docs"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/platform/config"
)

// RegisterRoutes sets up all application routes, receiving every service
// dependency explicitly.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	accountService portssvc.AccountSvcFacade,
	journalService portssvc.JournalSvcFacade,
	reportingService portssvc.ReportingSvcFacade,
) {
	r.GET("/health", getHealth)

	api := r.Group("/api")
	registerAccountRoutes(api, accountService)
	registerJournalRoutes(api, journalService)
	registerReportingRoutes(api, reportingService)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
