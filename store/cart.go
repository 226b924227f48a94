package store

import (
	"fmt"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/shopspring/decimal"
)

// CartState holds the cart lines, unique by id, and their derived total.
type CartState struct {
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// AddItem increments the quantity of an existing line or appends a new one.
// A quantity below 1 counts as 1.
func (c *CartState) AddItem(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if i := c.indexOf(item.ID); i >= 0 {
		c.Items[i].Quantity += item.Quantity
	} else {
		c.Items = append(c.Items, item)
	}
	c.recalculate()
}

// RemoveItem deletes the line with the given id.
func (c *CartState) RemoveItem(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrItemNotFound)
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.recalculate()
	return nil
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (c *CartState) UpdateQuantity(id string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update %q: %w", id, ErrItemNotFound)
	}
	c.Items[i].Quantity = quantity
	c.recalculate()
	return nil
}

// Clear empties the cart.
func (c *CartState) Clear() {
	c.Items = []models.CartItem{}
	c.recalculate()
}

// ItemCount returns the number of units across all lines.
func (c CartState) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c CartState) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *CartState) indexOf(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *CartState) recalculate() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	c.Total = total
}

func (c CartState) clone() CartState {
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
