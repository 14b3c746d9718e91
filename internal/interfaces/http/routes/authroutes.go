package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/assetdesk/assetdesk/internal/interfaces/http/handlers"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permissions    *middleware.PermissionMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	perms := config.Permissions

	auth := engine.Group("/auth")
	{
		auth.POST("/login",
			config.AuthHandler.Login)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific route must come before parameterized route.
		users.GET("/online",
			perms.Require("device_login", "read_any"),
			config.AuthHandler.ListOnlineUsers)

		users.GET("/:id/device-logins",
			perms.Require("device_login", "read"),
			config.AuthHandler.ListDeviceLogins)
	}
}
