package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
	"arfurnish/internal/domain/entity"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	userHandler := handler.GetUserHandler()
	wishlistHandler := handler.GetWishlistHandler()

	me := e.Group("/api/users/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", userHandler.GetProfile)
	me.PUT("", userHandler.UpdateProfile)
	me.PUT("/password", userHandler.UpdatePassword)
	me.DELETE("", userHandler.DeleteAccount)

	wishlist := e.Group("/api/users/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.Use(roleMiddleware.Require(entity.RoleClient))
	wishlist.GET("", wishlistHandler.GetWishlist)
	wishlist.POST("", wishlistHandler.AddToWishlist)
	wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
}
