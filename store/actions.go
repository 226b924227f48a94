package store

import (
	"fmt"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
)

// Action is a state transition accepted by Store.Dispatch.
type Action interface {
	// Type names the action, e.g. "cart/addItem".
	Type() string
	apply(s *State, now time.Time) error
}

// Cart

type AddItem struct{ Item models.CartItem }
type RemoveItem struct{ ID string }
type UpdateQuantity struct {
	ID       string
	Quantity int
}
type ClearCart struct{}

func (AddItem) Type() string        { return "cart/addItem" }
func (RemoveItem) Type() string     { return "cart/removeItem" }
func (UpdateQuantity) Type() string { return "cart/updateQuantity" }
func (ClearCart) Type() string      { return "cart/clearCart" }

func (a AddItem) apply(s *State, _ time.Time) error {
	s.Cart.AddItem(a.Item)
	return nil
}

func (a RemoveItem) apply(s *State, _ time.Time) error {
	return s.Cart.RemoveItem(a.ID)
}

func (a UpdateQuantity) apply(s *State, _ time.Time) error {
	return s.Cart.UpdateQuantity(a.ID, a.Quantity)
}

func (ClearCart) apply(s *State, _ time.Time) error {
	s.Cart.Clear()
	return nil
}

// Menu

type FetchMenuStart struct{}
type FetchMenuSuccess struct{ Items []models.MenuItem }
type FetchMenuFailure struct{ Message string }
type FilterByCategory struct{ Category string }
type SearchItems struct{ Term string }
type SortByPrice struct{ Direction SortDirection }
type SortByRating struct{}
type SortByPreparationTime struct{}

func (FetchMenuStart) Type() string        { return "menu/fetchMenuStart" }
func (FetchMenuSuccess) Type() string      { return "menu/fetchMenuSuccess" }
func (FetchMenuFailure) Type() string      { return "menu/fetchMenuFailure" }
func (FilterByCategory) Type() string      { return "menu/filterByCategory" }
func (SearchItems) Type() string           { return "menu/searchItems" }
func (SortByPrice) Type() string           { return "menu/sortByPrice" }
func (SortByRating) Type() string          { return "menu/sortByRating" }
func (SortByPreparationTime) Type() string { return "menu/sortByPreparationTime" }

func (FetchMenuStart) apply(s *State, _ time.Time) error {
	s.Menu.FetchStart()
	return nil
}

func (a FetchMenuSuccess) apply(s *State, _ time.Time) error {
	s.Menu.FetchSuccess(a.Items)
	return nil
}

func (a FetchMenuFailure) apply(s *State, _ time.Time) error {
	s.Menu.FetchFailure(a.Message)
	return nil
}

func (a FilterByCategory) apply(s *State, _ time.Time) error {
	s.Menu.FilterByCategory(a.Category)
	return nil
}

func (a SearchItems) apply(s *State, _ time.Time) error {
	s.Menu.SearchItems(a.Term)
	return nil
}

func (a SortByPrice) apply(s *State, _ time.Time) error {
	return s.Menu.SortByPrice(a.Direction)
}

func (SortByRating) apply(s *State, _ time.Time) error {
	s.Menu.SortByRating()
	return nil
}

func (SortByPreparationTime) apply(s *State, _ time.Time) error {
	s.Menu.SortByPreparationTime()
	return nil
}

// Auth

type LoginStart struct{}
type LoginSuccess struct{ User models.AuthUser }
type LoginFailure struct{ Message string }
type UpdateProfile struct{ Update ProfileUpdate }
type Logout struct{}

func (LoginStart) Type() string    { return "auth/loginStart" }
func (LoginSuccess) Type() string  { return "auth/loginSuccess" }
func (LoginFailure) Type() string  { return "auth/loginFailure" }
func (UpdateProfile) Type() string { return "auth/updateProfile" }
func (Logout) Type() string        { return "auth/logout" }

func (LoginStart) apply(s *State, _ time.Time) error {
	s.Auth.LoginStart()
	return nil
}

func (a LoginSuccess) apply(s *State, _ time.Time) error {
	s.Auth.LoginSuccess(a.User)
	return nil
}

func (a LoginFailure) apply(s *State, _ time.Time) error {
	s.Auth.LoginFailure(a.Message)
	return nil
}

func (a UpdateProfile) apply(s *State, _ time.Time) error {
	return s.Auth.UpdateProfile(a.Update)
}

func (Logout) apply(s *State, _ time.Time) error {
	s.Auth.Logout()
	return nil
}

// Order

type CreateOrderStart struct{}
type CreateOrderSuccess struct{ Order models.Order }
type CreateOrderFailure struct{ Message string }
type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}
type SetCurrentOrder struct{ OrderID string }
type ClearCurrentOrder struct{}
type FetchOrdersSuccess struct{ Orders []models.Order }

// PlaceOrder turns the cart of the signed-in user UserID into an order in a
// single step. Build gets the user and a copy of the cart; its order is
// appended as the current order and the cart is emptied.
type PlaceOrder struct {
	UserID string
	Build  func(user models.AuthUser, cart CartState) models.Order
}

func (CreateOrderStart) Type() string   { return "order/createOrderStart" }
func (CreateOrderSuccess) Type() string { return "order/createOrderSuccess" }
func (CreateOrderFailure) Type() string { return "order/createOrderFailure" }
func (UpdateOrderStatus) Type() string  { return "order/updateOrderStatus" }
func (SetCurrentOrder) Type() string    { return "order/setCurrentOrder" }
func (ClearCurrentOrder) Type() string  { return "order/clearCurrentOrder" }
func (FetchOrdersSuccess) Type() string { return "order/fetchOrdersSuccess" }
func (PlaceOrder) Type() string         { return "order/placeOrder" }

func (CreateOrderStart) apply(s *State, _ time.Time) error {
	s.Order.CreateStart()
	return nil
}

func (a CreateOrderSuccess) apply(s *State, _ time.Time) error {
	return s.Order.CreateSuccess(a.Order)
}

func (a CreateOrderFailure) apply(s *State, _ time.Time) error {
	s.Order.CreateFailure(a.Message)
	return nil
}

func (a UpdateOrderStatus) apply(s *State, now time.Time) error {
	return s.Order.UpdateStatus(a.OrderID, a.Status, now)
}

func (a SetCurrentOrder) apply(s *State, _ time.Time) error {
	return s.Order.SetCurrent(a.OrderID)
}

func (ClearCurrentOrder) apply(s *State, _ time.Time) error {
	s.Order.ClearCurrent()
	return nil
}

func (a FetchOrdersSuccess) apply(s *State, _ time.Time) error {
	s.Order.FetchSuccess(a.Orders)
	return nil
}

func (a PlaceOrder) apply(s *State, _ time.Time) error {
	if s.Auth.User == nil || s.Auth.User.ID != a.UserID {
		return fmt.Errorf("place order: %w", ErrNotAuthenticated)
	}
	if s.Cart.IsEmpty() {
		return fmt.Errorf("place order: %w", ErrEmptyCart)
	}
	if err := s.Order.CreateSuccess(a.Build(*s.Auth.User, s.Cart.clone())); err != nil {
		return err
	}
	s.Cart.Clear()
	return nil
}
