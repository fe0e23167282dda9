package model

import "github.com/shopspring/decimal"

// CartItem is one line of the shopping cart. A cart holds at most one line per
// dish name; repeated adds bump the quantity instead of appending.
type CartItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
