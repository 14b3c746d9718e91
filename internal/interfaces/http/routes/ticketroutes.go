package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/assetdesk/assetdesk/internal/interfaces/http/handlers/ticket"
	"github.com/assetdesk/assetdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permissions    *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perms := config.Permissions

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		tickets.POST("",
			perms.Require("ticket", "create"),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			perms.Require("ticket", "read"),
			config.TicketHandler.ListTickets)

		tickets.PATCH("/:id/status",
			perms.Require("ticket", "update_status"),
			config.TicketHandler.UpdateTicketStatus)
		tickets.POST("/:id/approve",
			perms.Require("ticket", "approve"),
			config.TicketHandler.ApproveTicket)
		tickets.POST("/:id/reject",
			perms.Require("ticket", "reject"),
			config.TicketHandler.RejectTicket)

		tickets.GET("/:id",
			perms.Require("ticket", "read"),
			config.TicketHandler.GetTicket)
	}
}
