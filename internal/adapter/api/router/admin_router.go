package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
	"arfurnish/internal/domain/entity"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()
	orderHandler := handler.GetOrderHandler()
	ticketHandler := handler.GetTicketHandler()
	categoryHandler := handler.GetCategoryHandler()

	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.Require(entity.RoleAdmin))

	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:userId/role", adminHandler.ChangeRole)
	admin.DELETE("/users/:userId", adminHandler.DeleteUser)

	admin.GET("/products/pending", adminHandler.ListPendingProducts)
	admin.PUT("/products/:productId/approve", adminHandler.ModerateProduct)

	admin.GET("/orders", orderHandler.ListOrders)

	admin.GET("/tickets", ticketHandler.ListAllTickets)
	admin.PUT("/tickets/:ticketId/status", ticketHandler.UpdateTicket)

	admin.POST("/categories", categoryHandler.CreateCategory)
	admin.PUT("/categories/:categoryId", categoryHandler.UpdateCategory)
	admin.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)
}
