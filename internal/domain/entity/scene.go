package entity

import (
	"time"
)

type Vector3 struct {
	X float64 `json:"x" firestore:"x"`
	Y float64 `json:"y" firestore:"y"`
	Z float64 `json:"z" firestore:"z"`
}

// ScenePlacement pins a product model into a saved AR scene.
type ScenePlacement struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Position  Vector3 `json:"position" firestore:"position"`
	Rotation  Vector3 `json:"rotation" firestore:"rotation"`
	Scale     float64 `json:"scale" firestore:"scale"`
}

// Scene is a user-saved AR room arrangement.
type Scene struct {
	ID           string           `json:"id" firestore:"id"`
	UserID       string           `json:"user_id" firestore:"userId"`
	Name         string           `json:"name" firestore:"name"`
	RoomImageURL string           `json:"room_image_url,omitempty" firestore:"roomImageUrl,omitempty"`
	Placements   []ScenePlacement `json:"placements" firestore:"placements"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
