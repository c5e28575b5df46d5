package repository

import (
	"context"

	"arfurnish/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.User, int64, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
