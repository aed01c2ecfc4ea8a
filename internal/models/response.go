package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

type ArtworkListResponse struct {
	Artworks []Artwork `json:"artworks"`
	Count    int       `json:"count"`
}

type OrderItemResponse struct {
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Status    string              `json:"status"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Total     decimal.Decimal     `json:"total"`
	Currency  string              `json:"currency"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderItemResponse `json:"items"`
}

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
