package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	productHandler  *ProductHandler
	orderHandler    *OrderHandler
	wishlistHandler *WishlistHandler
	ticketHandler   *TicketHandler
	sceneHandler    *SceneHandler
	categoryHandler *CategoryHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	ticketUseCase *usecase.TicketUseCase,
	sceneUseCase *usecase.SceneUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	adminUseCase *usecase.AdminUseCase,
	uploader usecase.FileUploader,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase, uploader)
	orderHandler = NewOrderHandler(orderUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	ticketHandler = NewTicketHandler(ticketUseCase)
	sceneHandler = NewSceneHandler(sceneUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	adminHandler = NewAdminHandler(adminUseCase, productUseCase)
}

func GetAuthHandler() *AuthHandler         { return authHandler }
func GetUserHandler() *UserHandler         { return userHandler }
func GetProductHandler() *ProductHandler   { return productHandler }
func GetOrderHandler() *OrderHandler       { return orderHandler }
func GetWishlistHandler() *WishlistHandler { return wishlistHandler }
func GetTicketHandler() *TicketHandler     { return ticketHandler }
func GetSceneHandler() *SceneHandler       { return sceneHandler }
func GetCategoryHandler() *CategoryHandler { return categoryHandler }
func GetAdminHandler() *AdminHandler       { return adminHandler }

// currentUID returns the authenticated user id set by the auth middleware,
// or an empty string on optional-auth routes with no principal.
func currentUID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

// currentRole returns the role loaded by the role middleware.
func currentRole(c echo.Context) entity.Role {
	if role, ok := c.Get("role").(entity.Role); ok {
		return role
	}
	return ""
}
