package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func signedInStore(t *testing.T, items ...models.CartItem) *store.Store {
	t.Helper()
	st := store.New(store.WithClock(func() time.Time { return t0 }))
	require.NoError(t, st.Dispatch(store.LoginSuccess{User: models.AuthUser{ID: "u1", Email: "ana@example.com", Name: "Ana"}}))
	for _, it := range items {
		require.NoError(t, st.Dispatch(store.AddItem{Item: it}))
	}
	return st
}

func newTestService(st *store.Store, opts ...Option) *Service {
	opts = append([]Option{
		WithDelay(0),
		WithClock(func() time.Time { return t0 }),
		WithIDGenerator(func() string { return "order-1" }),
	}, opts...)
	return NewService(st, opts...)
}

func pizza(qty int) models.CartItem {
	return models.CartItem{ID: "1", Name: "Margherita Pizza", Price: decimal.RequireFromString("12.99"), Quantity: qty}
}

func TestPlaceOrder(t *testing.T) {
	st := signedInStore(t, pizza(2))
	svc := newTestService(st)

	order, err := svc.PlaceOrder(context.Background(), Details{Address: "456 Park Ave", PaymentMethod: models.PaymentCard})
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.Equal(t, "30.98", order.Total.String())
	assert.Equal(t, "5", order.DeliveryFee.String())
	assert.Equal(t, "456 Park Ave", order.DeliveryAddress)
	assert.Regexp(t, `^[0-9A-F]{8}$`, order.TrackingNumber)
	assert.Equal(t, t0.Add(45*time.Minute), order.EstimatedDeliveryTime)
	assert.Equal(t, t0, order.CreatedAt)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	state := st.State()
	assert.True(t, state.Cart.IsEmpty())
	assert.True(t, state.Cart.Total.IsZero())
	assert.False(t, state.Order.Loading)
	current, ok := state.Order.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, order, current)
}

func TestPlaceOrderCustomFee(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st, WithDeliveryFee(decimal.RequireFromString("2.50")))

	order, err := svc.PlaceOrder(context.Background(), Details{PaymentMethod: models.PaymentCash})
	require.NoError(t, err)
	assert.Equal(t, "15.49", order.Total.String())
}

func TestPlaceOrderRequiresUser(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Dispatch(store.AddItem{Item: pizza(1)}))

	_, err := newTestService(st).PlaceOrder(context.Background(), Details{})
	assert.ErrorIs(t, err, store.ErrNotAuthenticated)
	assert.Empty(t, st.Orders().Orders)
}

func TestPlaceOrderRequiresItems(t *testing.T) {
	st := signedInStore(t)

	_, err := newTestService(st).PlaceOrder(context.Background(), Details{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, st.Orders().Loading)
}

func TestPlaceOrderCancelled(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st, WithDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.PlaceOrder(ctx, Details{})
	assert.ErrorIs(t, err, context.Canceled)

	state := st.State()
	assert.Empty(t, state.Order.Orders)
	assert.Empty(t, state.Order.Error)
	assert.False(t, state.Cart.IsEmpty(), "an abandoned checkout keeps the cart")
}

func TestPlaceOrderDuplicateIDFails(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st)

	_, err := svc.PlaceOrder(context.Background(), Details{})
	require.NoError(t, err)

	require.NoError(t, st.Dispatch(store.AddItem{Item: pizza(1)}))
	_, err = svc.PlaceOrder(context.Background(), Details{})
	assert.ErrorIs(t, err, store.ErrDuplicateOrder)

	state := st.State()
	assert.Len(t, state.Order.Orders, 1)
	assert.NotEmpty(t, state.Order.Error)
	assert.False(t, state.Cart.IsEmpty(), "a failed checkout keeps the cart")
}

// duringPayment runs f while the service waits for payment to clear.
func duringPayment(svc *Service, f func()) {
	svc.after = func(time.Duration) <-chan time.Time {
		f()
		ch := make(chan time.Time, 1)
		ch <- t0
		return ch
	}
}

func TestPlaceOrderCartEmptiedDuringPayment(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st)
	duringPayment(svc, func() {
		require.NoError(t, st.Dispatch(store.ClearCart{}))
	})

	_, err := svc.PlaceOrder(context.Background(), Details{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders := st.Orders()
	assert.Empty(t, orders.Orders)
	assert.NotEmpty(t, orders.Error)
	assert.False(t, orders.Loading)
}

func TestPlaceOrderSignedOutDuringPayment(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st)
	duringPayment(svc, func() {
		require.NoError(t, st.Dispatch(store.Logout{}))
	})

	_, err := svc.PlaceOrder(context.Background(), Details{})
	assert.ErrorIs(t, err, store.ErrNotAuthenticated)

	state := st.State()
	assert.Empty(t, state.Order.Orders)
	assert.NotEmpty(t, state.Order.Error)
	assert.False(t, state.Order.Loading)
	assert.False(t, state.Cart.IsEmpty())
}

func TestPlaceOrderUserSwitchedDuringPayment(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st)
	duringPayment(svc, func() {
		require.NoError(t, st.Dispatch(store.LoginSuccess{User: models.AuthUser{ID: "u2", Email: "bo@example.com"}}))
	})

	_, err := svc.PlaceOrder(context.Background(), Details{})
	assert.ErrorIs(t, err, store.ErrNotAuthenticated)
	assert.Empty(t, st.Orders().Orders)
}

func TestPlaceOrderItemsAddedDuringPaymentAreOrdered(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st)
	duringPayment(svc, func() {
		require.NoError(t, st.Dispatch(store.AddItem{Item: pizza(2)}))
	})

	order, err := svc.PlaceOrder(context.Background(), Details{})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.True(t, st.Cart().IsEmpty())
}

func TestPlaceOrderConcurrentAddsAreNotLost(t *testing.T) {
	st := signedInStore(t, pizza(1))
	svc := newTestService(st)

	const adds = 100
	var wg sync.WaitGroup
	wg.Add(adds)
	for i := 0; i < adds; i++ {
		go func() {
			defer wg.Done()
			_ = st.Dispatch(store.AddItem{Item: pizza(1)})
		}()
	}
	order, err := svc.PlaceOrder(context.Background(), Details{})
	wg.Wait()
	require.NoError(t, err)

	// every unit is either in the order or still in the cart
	ordered := 0
	for _, it := range order.Items {
		ordered += it.Quantity
	}
	assert.Equal(t, adds+1, ordered+st.Cart().ItemCount())
}
