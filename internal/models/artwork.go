package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Artwork is the legacy gallery entity. It predates Product and is kept as
// its own table; nothing links the two.
type Artwork struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
}
