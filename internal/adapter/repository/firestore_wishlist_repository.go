package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// Get returns the wishlist document keyed by user ID. A missing document is
// not an error; the wishlist is created lazily on first add.
func (r *firestoreWishlistRepository) Get(ctx context.Context, userID string) (*entity.Wishlist, error) {
	doc, err := r.client.Collection("wishlists").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.Wishlist{UserID: userID, Items: []entity.WishlistItem{}}, nil
		}
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	var wishlist entity.Wishlist
	if err := doc.DataTo(&wishlist); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}

	return &wishlist, nil
}

func (r *firestoreWishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlist.UpdatedAt = time.Now()

	_, err := r.client.Collection("wishlists").Doc(wishlist.UserID).Set(ctx, wishlist)
	if err != nil {
		return errors.Internal("Failed to save wishlist", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Collection("wishlists").Doc(userID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete wishlist", err)
	}

	return nil
}
