package usecase

import (
	"context"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository

	// asyncCounters is disabled in tests so counter effects are observable.
	asyncCounters bool
}

func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		asyncCounters: true,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress entity.ShippingAddress
	PaymentMethod   string
}

// CreateOrder validates every line item before anything is written: the
// product must exist and be approved for sale. On any failure nothing is
// persisted. Unit prices are snapshotted from the product at this moment
// and never recomputed.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	var total float64

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, errors.BadRequest("Item quantity must be positive", nil)
		}

		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		if !product.IsApproved {
			return nil, errors.BadRequest("Product is not available for purchase: "+product.Name, nil)
		}

		lineTotal := product.Price * float64(line.Quantity)
		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
		total += lineTotal
	}

	now := time.Now()
	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		TotalPrice:      total,
		OrderStatus:     entity.OrderStatusProcessing,
		PaymentStatus:   entity.PaymentStatusPending,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Purchase counters are best-effort; a failure here never rolls the
	// order back.
	bump := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, item := range order.Items {
			if err := uc.productRepo.IncrementCounter(ctx, item.ProductID, "purchases", item.Quantity); err != nil {
				logger.Warn("Failed to increment purchases for product %s: %v", item.ProductID, err)
			}
		}
	}
	if uc.asyncCounters {
		go bump()
	} else {
		bump()
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrderByID(ctx context.Context, orderID, actorID string, actorRole entity.Role) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != actorID && !actorRole.In(entity.RoleCompany, entity.RoleAdmin) {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, 0, errors.BadRequest("Invalid order status filter", nil)
	}
	return uc.orderRepo.ListAll(ctx, status, limit, offset)
}

// UpdateStatus moves an order along processing → shipped → delivered.
// Cancelled and delivered orders are final.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, newStatus string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(newStatus) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.OrderStatus == entity.OrderStatusCancelled || order.OrderStatus == entity.OrderStatusDelivered {
		return nil, errors.BadRequest("Order is already "+order.OrderStatus, nil)
	}

	order.OrderStatus = newStatus
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) UpdatePaymentStatus(ctx context.Context, orderID, newStatus string) (*entity.Order, error) {
	if !entity.ValidPaymentStatus(newStatus) {
		return nil, errors.BadRequest("Invalid payment status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = newStatus
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// CancelOrder is available to the owning client only while the order is
// still processing.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, orderID, userID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to cancel this order", nil)
	}

	if order.OrderStatus != entity.OrderStatusProcessing {
		return nil, errors.BadRequest("Only processing orders can be cancelled", nil)
	}

	order.OrderStatus = entity.OrderStatusCancelled
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
