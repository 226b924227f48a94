package models

import "github.com/shopspring/decimal"

// CartItem represents a line in the cart. Catalog fields are copied in at add-time.
type CartItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	IsSpicy     bool            `json:"is_spicy,omitempty"`
}

// Subtotal returns price times quantity for the line
func (c CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
