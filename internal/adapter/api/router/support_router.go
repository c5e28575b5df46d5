package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
	"arfurnish/internal/domain/entity"
)

func SetupSupportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	ticketHandler := handler.GetTicketHandler()

	tickets := e.Group("/api/support/tickets")
	tickets.Use(authMiddleware.Authenticate)
	tickets.Use(roleMiddleware.Require(entity.RoleClient, entity.RoleCompany, entity.RoleAdmin))
	tickets.POST("", ticketHandler.CreateTicket)
	tickets.GET("", ticketHandler.ListMyTickets)
	tickets.GET("/:ticketId", ticketHandler.GetTicket)
	tickets.POST("/:ticketId/responses", ticketHandler.Respond)
}
