package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
	"arfurnish/internal/domain/entity"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()

	checkout := e.Group("/api/orders")
	checkout.Use(authMiddleware.Authenticate)
	checkout.Use(roleMiddleware.Require(entity.RoleClient))
	checkout.POST("", orderHandler.CreateOrder)
	checkout.GET("", orderHandler.ListMyOrders)
	checkout.PUT("/:orderId/cancel", orderHandler.CancelOrder)

	orders := e.Group("/api/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.Use(roleMiddleware.Require(entity.RoleClient, entity.RoleCompany, entity.RoleAdmin))
	orders.GET("/:orderId", orderHandler.GetOrder)

	fulfillment := e.Group("/api/orders")
	fulfillment.Use(authMiddleware.Authenticate)
	fulfillment.Use(roleMiddleware.Require(entity.RoleCompany, entity.RoleAdmin))
	fulfillment.PUT("/:orderId/status", orderHandler.UpdateStatus)
	fulfillment.PUT("/:orderId/payment", orderHandler.UpdatePaymentStatus)
}
