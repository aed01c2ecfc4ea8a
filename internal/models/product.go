package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Slug is derived from the title when
// not set explicitly and is unique across the catalog.
type Product struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description"`
	Price        decimal.Decimal     `json:"price"`
	Stock        int                 `json:"stock"`
	PrimaryImage string              `json:"primary_image"`
	Technique    string              `json:"technique"`
	WidthCM      decimal.NullDecimal `json:"width_cm"`
	HeightCM     decimal.NullDecimal `json:"height_cm"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
}
