package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
	"arfurnish/internal/adapter/api/middleware"
)

func SetupSceneRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	sceneHandler := handler.GetSceneHandler()

	scenes := e.Group("/api/scenes")
	scenes.Use(authMiddleware.Authenticate)
	scenes.POST("", sceneHandler.SaveScene)
	scenes.GET("", sceneHandler.ListMyScenes)
	scenes.GET("/:sceneId", sceneHandler.GetScene)
	scenes.PUT("/:sceneId", sceneHandler.UpdateScene)
	scenes.DELETE("/:sceneId", sceneHandler.DeleteScene)
}
