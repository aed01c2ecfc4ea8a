package models

import "github.com/shopspring/decimal"

type OrderItemInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Email string           `json:"email" binding:"required,email"`
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type CreateCheckoutSessionRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid"`
}

type CreateProductRequest struct {
	Title        string           `json:"title" binding:"required,max=150"`
	Slug         string           `json:"slug" binding:"max=160"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price" binding:"required"`
	Stock        int              `json:"stock" binding:"min=0"`
	PrimaryImage string           `json:"primary_image"`
	Technique    string           `json:"technique" binding:"max=120"`
	WidthCM      *decimal.Decimal `json:"width_cm"`
	HeightCM     *decimal.Decimal `json:"height_cm"`
	IsActive     *bool            `json:"is_active"`
}

type CreateArtworkRequest struct {
	Title       string          `json:"title" binding:"required,max=150"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       string          `json:"image"`
}
