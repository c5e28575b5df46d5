package repository

import (
	"context"

	"arfurnish/internal/domain/entity"
)

type WishlistRepository interface {
	// Get returns the user's wishlist, or an empty one if none exists yet.
	Get(ctx context.Context, userID string) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
	Delete(ctx context.Context, userID string) error
}
