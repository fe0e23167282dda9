package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a completed checkout. Favorites reference
// orders by ID.
type Order struct {
	ID      string          `json:"id"`
	Date    time.Time       `json:"date"`
	Items   []CartItem      `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Address Address         `json:"address"`
}
