package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url" validate:"omitempty,url"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request().Context(), c.Param("categoryId"), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.categoryUseCase.DeleteCategory(c.Request().Context(), c.Param("categoryId")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Category deleted successfully")
}
