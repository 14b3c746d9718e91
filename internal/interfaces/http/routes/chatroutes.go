package routes

import (
	"github.com/gin-gonic/gin"

	chathandlers "github.com/assetdesk/assetdesk/internal/interfaces/http/handlers/chat"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/middleware"
)

type ChatRouteConfig struct {
	ChatHandler    *chathandlers.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permissions    *middleware.PermissionMiddleware
}

func SetupChatRoutes(engine *gin.Engine, config *ChatRouteConfig) {
	perms := config.Permissions

	chat := engine.Group("/chat")
	chat.Use(config.AuthMiddleware.RequireAuth())
	{
		chat.POST("/messages",
			perms.Require("message", "send"),
			config.ChatHandler.SendMessage)
		chat.GET("/conversations",
			perms.Require("message", "read"),
			config.ChatHandler.ListConversations)
		chat.GET("/conversations/:id/messages",
			perms.Require("message", "read"),
			config.ChatHandler.ListMessages)
		chat.GET("/unread",
			perms.Require("message", "read"),
			config.ChatHandler.UnreadCount)
		chat.POST("/heartbeat",
			config.ChatHandler.Heartbeat)
	}
}
