package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/garagehq/shopapi/internal/interfaces/http/handlers/ticket"
	"github.com/garagehq/shopapi/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *ticketHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("/", cfg.TicketHandler.CreateTicket)
		tickets.GET("/", cfg.TicketHandler.ListTickets)

		// Relationship endpoints
		tickets.PUT("/:id/edit", cfg.TicketHandler.EditMechanics)
		tickets.POST("/:id/add-part/:part_id", cfg.TicketHandler.AddPart)
		tickets.DELETE("/:id/parts/:part_id", cfg.TicketHandler.RemovePart)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.TicketHandler.DeleteTicket)
	}
}
