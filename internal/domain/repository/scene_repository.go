package repository

import (
	"context"

	"arfurnish/internal/domain/entity"
)

type SceneRepository interface {
	Create(ctx context.Context, scene *entity.Scene) error
	GetByID(ctx context.Context, id string) (*entity.Scene, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Scene, int64, error)
	Update(ctx context.Context, scene *entity.Scene) error
	Delete(ctx context.Context, id string) error
}
