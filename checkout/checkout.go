package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when there is nothing to order
var ErrEmptyCart = store.ErrEmptyCart

const (
	DefaultDelay      = 1500 * time.Millisecond
	deliveryEstimate  = 45 * time.Minute
	trackingNumberLen = 8
)

var DefaultDeliveryFee = decimal.NewFromInt(5)

// Details are the delivery details entered at checkout
type Details struct {
	Address       string
	Instructions  string
	PaymentMethod string
}

// Service turns the session cart into an order
type Service struct {
	store       *store.Store
	deliveryFee decimal.Decimal
	delay       time.Duration
	now         func() time.Time
	newID       func() string
	after       func(time.Duration) <-chan time.Time
}

type Option func(*Service)

func WithDeliveryFee(fee decimal.Decimal) Option {
	return func(s *Service) { s.deliveryFee = fee }
}

// WithDelay sets how long payment processing takes
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:       st,
		deliveryFee: DefaultDeliveryFee,
		delay:       DefaultDelay,
		now:         time.Now,
		newID:       uuid.NewString,
		after:       time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder checks out the current cart. On success the order is in the
// store as the current order and the cart is empty. If ctx is cancelled
// while payment is processing, nothing further is dispatched.
func (s *Service) PlaceOrder(ctx context.Context, d Details) (models.Order, error) {
	auth := s.store.Auth()
	if !auth.IsAuthenticated() {
		return models.Order{}, store.ErrNotAuthenticated
	}
	if s.store.Cart().IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	if err := s.store.Dispatch(store.CreateOrderStart{}); err != nil {
		return models.Order{}, err
	}

	select {
	case <-ctx.Done():
		return models.Order{}, ctx.Err()
	case <-s.after(s.delay):
	}

	// the session may have changed while payment was processing, so the
	// user and cart are checked again as the order is placed
	var order models.Order
	err := s.store.Dispatch(store.PlaceOrder{
		UserID: auth.User.ID,
		Build: func(user models.AuthUser, cart store.CartState) models.Order {
			order = s.buildOrder(user.ID, cart, d)
			return order
		},
	})
	if err != nil {
		s.fail(err)
		return models.Order{}, err
	}
	return order, nil
}

func (s *Service) buildOrder(userID string, cart store.CartState, d Details) models.Order {
	now := s.now().UTC()
	items := make([]models.OrderItem, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = models.NewOrderItem(it)
	}
	return models.Order{
		ID:                    s.newID(),
		UserID:                userID,
		Items:                 items,
		DeliveryFee:           s.deliveryFee,
		Total:                 cart.Total.Add(s.deliveryFee),
		Status:                models.StatusConfirmed,
		DeliveryAddress:       d.Address,
		Instructions:          d.Instructions,
		PaymentMethod:         d.PaymentMethod,
		TrackingNumber:        trackingNumber(),
		EstimatedDeliveryTime: now.Add(deliveryEstimate),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func (s *Service) fail(err error) {
	_ = s.store.Dispatch(store.CreateOrderFailure{Message: err.Error()})
}

func trackingNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:trackingNumberLen])
}
