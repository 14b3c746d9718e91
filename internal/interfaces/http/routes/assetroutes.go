package routes

import (
	"github.com/gin-gonic/gin"

	assethandlers "github.com/assetdesk/assetdesk/internal/interfaces/http/handlers/asset"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/middleware"
)

type AssetRouteConfig struct {
	AssetHandler   *assethandlers.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permissions    *middleware.PermissionMiddleware
}

func SetupAssetRoutes(engine *gin.Engine, config *AssetRouteConfig) {
	perms := config.Permissions

	assets := engine.Group("/assets")
	assets.Use(config.AuthMiddleware.RequireAuth())
	{
		assets.GET("",
			perms.Require("asset", "list"),
			config.AssetHandler.ListAssets)
		assets.POST("/:id/assign",
			perms.Require("asset", "assign"),
			config.AssetHandler.AssignAsset)
		assets.POST("/:id/unassign",
			perms.Require("asset", "unassign"),
			config.AssetHandler.UnassignAsset)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/:id/assets",
			perms.Require("asset", "read"),
			config.AssetHandler.GetUserAssets)
	}
}
