package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusFailed   = "failed"
	OrderStatusCanceled = "canceled"
)

// Order is a checkout attempt. Created as "pending" by order creation and
// moved to "paid" by the Stripe webhook; it never transitions back.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	StripeSessionID string          `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItem     `json:"items"`
}

// OrderItem snapshots a product's title and unit price at order time, so
// later catalog edits never change what the customer agreed to pay.
// Quantity is clamped to the product's stock at creation time.
type OrderItem struct {
	ID        int64           `json:"-"`
	OrderID   uuid.UUID       `json:"-"`
	ProductID int64           `json:"-"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}
