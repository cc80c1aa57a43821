package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/dropme/rvm-backend/internal/domain/port/core"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/handler"
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	depositHandler *handler.DepositHandler,
	catalogHandler *handler.CatalogHandler,
	reportingHandler *handler.ReportingHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
	logger coreport.Logger,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		authed := api.Group("")
		authed.Use(middleware.Identity(logger))
		{
			authed.GET("/materials", catalogHandler.ListMaterials)
			authed.GET("/machines", catalogHandler.ListMachines)
			authed.POST("/deposits", depositHandler.RecordDeposit)
			authed.GET("/deposits/history", reportingHandler.GetHistory)
			authed.GET("/user/summary", reportingHandler.GetSummary)

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireStaff(logger))
			{
				admin.GET("/stats", adminHandler.GetSystemStats)
			}
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
