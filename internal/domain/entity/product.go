package entity

import (
	"time"
)

// Product approval lifecycle. A product is only purchasable while approved;
// any content edit by the owning company sends it back to pending review.
const (
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

type Dimensions struct {
	Width  float64 `json:"width" firestore:"width"`
	Height float64 `json:"height" firestore:"height"`
	Depth  float64 `json:"depth" firestore:"depth"`
	Unit   string  `json:"unit" firestore:"unit"`
}

type Customizable struct {
	Color    bool `json:"color" firestore:"color"`
	Material bool `json:"material" firestore:"material"`
	Size     bool `json:"size" firestore:"size"`
}

type Product struct {
	ID           string       `json:"id" firestore:"id"`
	CompanyID    string       `json:"company_id" firestore:"companyId"`
	Name         string       `json:"name" firestore:"name"`
	Description  string       `json:"description" firestore:"description"`
	Category     string       `json:"category" firestore:"category"`
	Price        float64      `json:"price" firestore:"price"`
	Dimensions   Dimensions   `json:"dimensions" firestore:"dimensions"`
	ModelURL     string       `json:"model_url" firestore:"modelUrl"`
	ThumbnailURL string       `json:"thumbnail_url" firestore:"thumbnailUrl"`
	Tags         []string     `json:"tags" firestore:"tags"`
	Customizable Customizable `json:"customizable" firestore:"customizable"`

	Status     string `json:"status" firestore:"status"`
	IsApproved bool   `json:"is_approved" firestore:"isApproved"`

	ApprovedAt      *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty" firestore:"approvedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty" firestore:"rejectedAt,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty" firestore:"rejectedBy,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`

	// Denormalized counters, updated by side effect on engagement events.
	Views         int `json:"views" firestore:"views"`
	Placements    int `json:"placements" firestore:"placements"`
	WishlistCount int `json:"wishlist_count" firestore:"wishlistCount"`
	Purchases     int `json:"purchases" firestore:"purchases"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Engagement counter kinds accepted by the tracking endpoint.
const (
	EngagementViews         = "views"
	EngagementPlacements    = "placements"
	EngagementWishlistCount = "wishlist_count"
)
