package repository

import (
	"context"

	"arfurnish/internal/domain/entity"
)

// ProductFilter narrows the public listing. Category, CompanyID and
// CustomColor translate to store-side equality filters; Tags and the price
// range are applied in memory after retrieval, so the reported total
// reflects the post-filtered page rather than the true matching count.
type ProductFilter struct {
	Category    string
	CompanyID   string
	CustomColor bool
	Tags        []string
	MinPrice    float64
	MaxPrice    float64
	Status      string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, sortBy, sortOrder string, limit, offset int) ([]*entity.Product, int64, error)
	ListByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	IncrementCounter(ctx context.Context, id, field string, delta int) error
}
