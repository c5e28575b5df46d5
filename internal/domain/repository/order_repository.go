package repository

import (
	"context"

	"arfurnish/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	ListAll(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
}
