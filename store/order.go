package store

import (
	"fmt"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
)

// OrderState holds the order history and the order being tracked.
// The current order is kept by id so it always reads the same entry as Orders.
type OrderState struct {
	Orders         []models.Order `json:"orders"`
	CurrentOrderID string         `json:"current_order_id,omitempty"`
	Loading        bool           `json:"loading"`
	Error          string         `json:"error,omitempty"`
}

func (o *OrderState) CreateStart() {
	o.Loading = true
	o.Error = ""
}

// CreateSuccess appends order and makes it current.
func (o *OrderState) CreateSuccess(order models.Order) error {
	if o.indexOf(order.ID) >= 0 {
		return fmt.Errorf("create order %q: %w", order.ID, ErrDuplicateOrder)
	}
	if !order.Status.Valid() {
		return fmt.Errorf("create order %q with status %q: %w", order.ID, order.Status, ErrUnknownStatus)
	}
	o.Loading = false
	o.Orders = append(o.Orders, order.Clone())
	o.CurrentOrderID = order.ID
	return nil
}

func (o *OrderState) CreateFailure(message string) {
	o.Loading = false
	o.Error = message
}

// UpdateStatus moves an order to status and advances its UpdatedAt past
// the previous value. Only forward moves and cancellation of a live order are allowed.
func (o *OrderState) UpdateStatus(orderID string, status models.OrderStatus, now time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("update order %q to %q: %w", orderID, status, ErrUnknownStatus)
	}
	i := o.indexOf(orderID)
	if i < 0 {
		return fmt.Errorf("update order %q: %w", orderID, ErrOrderNotFound)
	}
	order := &o.Orders[i]
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("update order %q from %q to %q: %w", orderID, order.Status, status, ErrInvalidTransition)
	}
	if !now.After(order.UpdatedAt) {
		now = order.UpdatedAt.Add(time.Nanosecond)
	}
	order.Status = status
	order.UpdatedAt = now
	return nil
}

// SetCurrent tracks the order with the given id. An unknown id clears the
// current order and reports ErrOrderNotFound.
func (o *OrderState) SetCurrent(orderID string) error {
	if o.indexOf(orderID) < 0 {
		o.CurrentOrderID = ""
		return fmt.Errorf("set current order %q: %w", orderID, ErrOrderNotFound)
	}
	o.CurrentOrderID = orderID
	return nil
}

func (o *OrderState) ClearCurrent() {
	o.CurrentOrderID = ""
}

// FetchSuccess replaces the order history. The current order is kept only
// if it is still present.
func (o *OrderState) FetchSuccess(orders []models.Order) {
	o.Loading = false
	o.Orders = make([]models.Order, 0, len(orders))
	for _, ord := range orders {
		o.Orders = append(o.Orders, ord.Clone())
	}
	if o.indexOf(o.CurrentOrderID) < 0 {
		o.CurrentOrderID = ""
	}
}

// CurrentOrder returns the order being tracked.
func (o OrderState) CurrentOrder() (models.Order, bool) {
	if o.CurrentOrderID == "" {
		return models.Order{}, false
	}
	return o.Order(o.CurrentOrderID)
}

// Order looks up an order by id.
func (o OrderState) Order(id string) (models.Order, bool) {
	if i := o.indexOf(id); i >= 0 {
		return o.Orders[i].Clone(), true
	}
	return models.Order{}, false
}

// ForUser returns the orders placed by userID, oldest first.
func (o OrderState) ForUser(userID string) []models.Order {
	out := []models.Order{}
	for _, ord := range o.Orders {
		if ord.UserID == userID {
			out = append(out, ord.Clone())
		}
	}
	return out
}

func (o *OrderState) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range o.Orders {
		if o.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (o OrderState) clone() OrderState {
	orders := make([]models.Order, len(o.Orders))
	for i, ord := range o.Orders {
		orders[i] = ord.Clone()
	}
	o.Orders = orders
	return o
}
