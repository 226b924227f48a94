package store

import "errors"

var (
	ErrItemNotFound         = errors.New("cart item not found")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrder       = errors.New("order already exists")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrEmptyCart            = errors.New("cart is empty")
)
