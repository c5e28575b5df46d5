package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
	"arfurnish/pkg/utils"
)

type AdminHandler struct {
	adminUseCase   *usecase.AdminUseCase
	productUseCase *usecase.ProductUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, productUseCase *usecase.ProductUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		productUseCase: productUseCase,
	}
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req struct {
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		DisplayName string `json:"display_name" validate:"required,min=2"`
		Role        string `json:"role" validate:"required,oneof=client company admin"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.adminUseCase.CreateUser(c.Request().Context(), usecase.AdminCreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), entity.Role(c.QueryParam("role")), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, params.Limit, params.Offset)
}

func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req struct {
		Role string `json:"role" validate:"required,oneof=client company admin"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.adminUseCase.ChangeRole(c.Request().Context(), c.Param("userId"), entity.Role(req.Role))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminUseCase.DeleteUser(c.Request().Context(), c.Param("userId")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "User deleted successfully")
}

// ListPendingProducts exposes the moderation queue, oldest first.
func (h *AdminHandler) ListPendingProducts(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListPending(c.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Limit, params.Offset)
}

func (h *AdminHandler) ModerateProduct(c echo.Context) error {
	var req struct {
		Action string `json:"action" validate:"required,oneof=approve reject delete"`
		Reason string `json:"reason"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Moderate(c.Request().Context(), currentUID(c), c.Param("productId"), req.Action, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	if req.Action == "delete" {
		return response.SuccessMessage(c, "Product deleted successfully")
	}

	return response.Success(c, product)
}
