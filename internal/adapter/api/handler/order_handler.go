package handler

import (
	"github.com/labstack/echo/v4"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/usecase"
	"arfurnish/pkg/response"
	"arfurnish/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), currentUID(c), usecase.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrderByID(c.Request().Context(), c.Param("orderId"), currentUID(c), currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMyOrders(c.Request().Context(), currentUID(c), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Limit, params.Offset)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), c.QueryParam("status"), params.Limit, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Limit, params.Offset)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("orderId"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	var req struct {
		PaymentStatus string `json:"payment_status" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdatePaymentStatus(c.Request().Context(), c.Param("orderId"), req.PaymentStatus)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	order, err := h.orderUseCase.CancelOrder(c.Request().Context(), c.Param("orderId"), currentUID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
