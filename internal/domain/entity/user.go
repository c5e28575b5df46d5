package entity

import (
	"time"
)

type UserPreferences struct {
	Currency      string `json:"currency,omitempty" firestore:"currency,omitempty"`
	MeasureUnit   string `json:"measure_unit,omitempty" firestore:"measureUnit,omitempty"`
	Notifications bool   `json:"notifications" firestore:"notifications"`
}

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Role        Role   `json:"role" firestore:"role"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`

	CompanyName string `json:"company_name,omitempty" firestore:"companyName,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	Preferences UserPreferences `json:"preferences" firestore:"preferences"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
