package entity

import (
	"time"
)

const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// OrderItem carries a snapshot of the product price at checkout time;
// later price edits never touch an existing order.
type OrderItem struct {
	ProductID   string  `json:"product_id" firestore:"productId"`
	ProductName string  `json:"product_name" firestore:"productName"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	UnitPrice   float64 `json:"unit_price" firestore:"unitPrice"`
	TotalPrice  float64 `json:"total_price" firestore:"totalPrice"`
}

type ShippingAddress struct {
	Street     string `json:"street" firestore:"street"`
	City       string `json:"city" firestore:"city"`
	State      string `json:"state,omitempty" firestore:"state,omitempty"`
	PostalCode string `json:"postal_code" firestore:"postalCode"`
	Country    string `json:"country" firestore:"country"`
}

type Order struct {
	ID              string          `json:"id" firestore:"id"`
	UserID          string          `json:"user_id" firestore:"userId"`
	Items           []OrderItem     `json:"items" firestore:"items"`
	TotalPrice      float64         `json:"total_price" firestore:"totalPrice"`
	OrderStatus     string          `json:"order_status" firestore:"orderStatus"`
	PaymentStatus   string          `json:"payment_status" firestore:"paymentStatus"`
	PaymentMethod   string          `json:"payment_method" firestore:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shipping_address" firestore:"shippingAddress"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}
