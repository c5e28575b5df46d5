package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), currentUID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req struct {
		DisplayName string                  `json:"display_name" validate:"omitempty,min=2"`
		Phone       string                  `json:"phone" validate:"omitempty,e164"`
		CompanyName string                  `json:"company_name"`
		PhotoURL    string                  `json:"photo_url" validate:"omitempty,url"`
		Preferences *entity.UserPreferences `json:"preferences"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), currentUID(c), usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		PhotoURL:    req.PhotoURL,
		Preferences: req.Preferences,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var req struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.userUseCase.UpdatePassword(c.Request().Context(), currentUID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Password updated successfully")
}

func (h *UserHandler) DeleteAccount(c echo.Context) error {
	if err := h.userUseCase.DeleteAccount(c.Request().Context(), currentUID(c)); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Account deleted successfully")
}
