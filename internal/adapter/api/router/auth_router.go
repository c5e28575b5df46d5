package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authLimiter *middleware.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
}
