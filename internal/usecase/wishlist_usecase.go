package usecase

import (
	"context"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// AddToWishlist appends a flattened product snapshot to the user's
// wishlist. A product may appear at most once; the duplicate add fails and
// leaves the wishlist untouched.
func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, userID, productID string) (*entity.Wishlist, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	wishlist, err := uc.wishlistRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wishlist.Contains(productID) {
		return nil, errors.Conflict("Product already in wishlist")
	}

	wishlist.Items = append(wishlist.Items, entity.WishlistItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.ThumbnailURL,
		Price:        product.Price,
		AddedAt:      time.Now(),
	})

	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, err
	}

	if err := uc.productRepo.IncrementCounter(ctx, productID, "wishlistCount", 1); err != nil {
		logger.Warn("Failed to increment wishlist count for product %s: %v", productID, err)
	}

	return wishlist, nil
}

// RemoveFromWishlist drops the entry and decrements the product's
// wishlist counter, clamped at zero.
func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, userID, productID string) (*entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !wishlist.Contains(productID) {
		return nil, errors.NotFound("Wishlist item", nil)
	}

	items := make([]entity.WishlistItem, 0, len(wishlist.Items)-1)
	for _, item := range wishlist.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	wishlist.Items = items

	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, err
	}

	// Read-then-write so the counter never goes below zero; concurrent
	// removals may lose an update, which is accepted here.
	if product, err := uc.productRepo.GetByID(ctx, productID); err == nil {
		if product.WishlistCount > 0 {
			if err := uc.productRepo.IncrementCounter(ctx, productID, "wishlistCount", -1); err != nil {
				logger.Warn("Failed to decrement wishlist count for product %s: %v", productID, err)
			}
		}
	}

	return wishlist, nil
}

func (uc *WishlistUseCase) GetWishlist(ctx context.Context, userID string) (*entity.Wishlist, error) {
	return uc.wishlistRepo.Get(ctx, userID)
}

// DeleteWishlist removes the whole document; used when the account is deleted.
func (uc *WishlistUseCase) DeleteWishlist(ctx context.Context, userID string) error {
	return uc.wishlistRepo.Delete(ctx, userID)
}
