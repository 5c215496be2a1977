package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "fixdesk/internal/interfaces/http/handlers/ticket"
	"fixdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *tickethandler.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket and history routes. Every ticket
// endpoint requires an authenticated user.
func SetupTicketRoutes(group *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := group.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", cfg.TicketHandler.ListTickets)
		tickets.POST("", cfg.TicketHandler.CreateTicket)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.TicketHandler.DeleteTicket)
		tickets.PATCH("/:id/status", cfg.TicketHandler.ToggleStatus)

		tickets.POST("/:id/history", cfg.TicketHandler.AddHistoryEntry)
		tickets.PUT("/:id/history/:entryId", cfg.TicketHandler.UpdateHistoryEntry)
		tickets.DELETE("/:id/history/:entryId", cfg.TicketHandler.DeleteHistoryEntry)
	}
}
