package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	wishlist, err := h.wishlistUseCase.GetWishlist(c.Request().Context(), currentUID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wishlist)
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	var req struct {
		ProductID string `json:"product_id" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wishlist, err := h.wishlistUseCase.AddToWishlist(c.Request().Context(), currentUID(c), req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, wishlist)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	wishlist, err := h.wishlistUseCase.RemoveFromWishlist(c.Request().Context(), currentUID(c), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wishlist)
}
