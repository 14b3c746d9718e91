package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/interfaces/http/handlers"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/middleware"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Permissions      *middleware.PermissionMiddleware
}

func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(config.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/stats",
			config.Permissions.Require("dashboard", "read"),
			config.DashboardHandler.GetStats)
	}
}
