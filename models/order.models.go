package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// position along the forward progression; cancelled sits outside it
var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusConfirmed:      1,
	StatusPreparing:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

// IsTerminal reports whether no further transition is allowed from s
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// step. Steps may be skipped. Cancelled is reachable from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// Progress returns the tracking percentage shown for s
func (s OrderStatus) Progress() int {
	switch s {
	case StatusConfirmed:
		return 25
	case StatusPreparing:
		return 50
	case StatusOutForDelivery:
		return 75
	case StatusDelivered:
		return 100
	default:
		return 0
	}
}

// OrderItem is a snapshot of a cart line taken when the order is placed
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// NewOrderItem copies the fields of a cart line into an order line
func NewOrderItem(c CartItem) OrderItem {
	return OrderItem{
		ID:       c.ID,
		Name:     c.Name,
		Quantity: c.Quantity,
		Price:    c.Price,
	}
}

// Order represents a placed order
type Order struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"user_id"`
	Items                 []OrderItem     `json:"items"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	Total                 decimal.Decimal `json:"total"` // includes the delivery fee
	Status                OrderStatus     `json:"status"`
	DeliveryAddress       string          `json:"delivery_address"`
	Instructions          string          `json:"instructions,omitempty"`
	PaymentMethod         string          `json:"payment_method"`
	TrackingNumber        string          `json:"tracking_number"`
	EstimatedDeliveryTime time.Time       `json:"estimated_delivery_time"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// Clone returns a copy of o that shares no slices with it
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
