package entity

import (
	"time"
)

// WishlistItem is a flattened snapshot of the product at the time it was
// saved, kept inline on the per-user wishlist document.
type WishlistItem struct {
	ProductID    string    `json:"product_id" firestore:"productId"`
	ProductName  string    `json:"product_name" firestore:"productName"`
	ProductImage string    `json:"product_image" firestore:"productImage"`
	Price        float64   `json:"price" firestore:"price"`
	AddedAt      time.Time `json:"added_at" firestore:"addedAt"`
}

// Wishlist is one document per user, created lazily on first add.
// At most one entry per product.
type Wishlist struct {
	UserID    string         `json:"user_id" firestore:"userId"`
	Items     []WishlistItem `json:"items" firestore:"items"`
	UpdatedAt time.Time      `json:"updated_at" firestore:"updatedAt"`
}

func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
