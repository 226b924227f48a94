package models

import "github.com/shopspring/decimal"

// MenuItem represents an orderable catalog entry
type MenuItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Image           string          `json:"image"`
	Category        string          `json:"category"`
	Restaurant      string          `json:"restaurant"`
	Rating          float64         `json:"rating"`           // 0 to 5
	PreparationTime int             `json:"preparation_time"` // minutes
	IsSpicy         bool            `json:"is_spicy,omitempty"`
	IsVegetarian    bool            `json:"is_vegetarian,omitempty"`
	IsBestSeller    bool            `json:"is_best_seller,omitempty"`
}
