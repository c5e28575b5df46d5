package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/middleware"
)

// Setup wires every route group. authLimiter guards the credential
// endpoints with a tighter window than the general apiLimiter.
func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	authLimiter *middleware.RateLimiter,
	apiLimiter *middleware.RateLimiter,
) {
	e.Use(apiLimiter.Middleware())

	SetupHealthRouter(e)
	SetupAuthRouter(e, authLimiter)
	SetupUserRouter(e, authMiddleware, roleMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupSceneRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupSupportRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
}
