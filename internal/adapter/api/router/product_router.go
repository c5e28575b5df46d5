package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
	"arfurnish/internal/domain/entity"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public catalog. Optional auth lets clients browse before logging in.
	products := e.Group("/api/products")
	products.Use(authMiddleware.OptionalAuthenticate)
	products.GET("", productHandler.ListProducts)
	products.GET("/:productId", productHandler.GetProduct)
	products.POST("/:productId/engagement", productHandler.TrackEngagement)

	// Catalog management for company accounts.
	manage := e.Group("/api/products")
	manage.Use(authMiddleware.Authenticate)
	manage.Use(roleMiddleware.Require(entity.RoleCompany, entity.RoleAdmin))
	manage.POST("", productHandler.CreateProduct)
	manage.PUT("/:productId", productHandler.UpdateProduct)
	manage.DELETE("/:productId", productHandler.DeleteProduct)

	myProducts := e.Group("/api/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.Use(roleMiddleware.Require(entity.RoleCompany, entity.RoleAdmin))
	myProducts.GET("", productHandler.ListMyProducts)
}
