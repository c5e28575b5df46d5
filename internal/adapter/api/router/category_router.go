package router

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/api/categories", categoryHandler.ListCategories)
}
