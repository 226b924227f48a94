package store

import (
	"sync"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
)

// State is the whole client state tree.
type State struct {
	Cart  CartState  `json:"cart"`
	Auth  AuthState  `json:"auth"`
	Menu  MenuState  `json:"menu"`
	Order OrderState `json:"order"`
}

// NewState returns the state of a fresh session.
func NewState() State {
	return State{
		Cart:  CartState{Items: []models.CartItem{}},
		Menu:  NewMenuState(),
		Order: OrderState{Orders: []models.Order{}},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Cart:  s.Cart.clone(),
		Auth:  s.Auth.clone(),
		Menu:  s.Menu.clone(),
		Order: s.Order.clone(),
	}
}

// Event is delivered to listeners after every dispatch. State is the
// snapshot after the action ran; Err is what Dispatch returned.
type Event struct {
	Action Action
	State  State
	Err    error
}

// CreatedOrder returns the order the event's action created, if any.
func (ev Event) CreatedOrder() (models.Order, bool) {
	if ev.Err != nil {
		return models.Order{}, false
	}
	switch a := ev.Action.(type) {
	case CreateOrderSuccess:
		return a.Order.Clone(), true
	case PlaceOrder:
		return ev.State.Order.CurrentOrder()
	}
	return models.Order{}, false
}

// Listener receives store events. Listeners run on the dispatch path and
// must not call Dispatch themselves.
type Listener func(Event)

type Option func(*Store)

// WithClock sets the time source used for order timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithState seeds the store.
func WithState(st State) Option {
	return func(s *Store) {
		s.state = st.Clone()
	}
}

// Store owns the state tree and is its only point of mutation.
// Dispatches are serialized and each runs to completion before the next
// one starts or any reader sees the new state.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	order     []int
	nextID    int
	now       func() time.Time
}

func New(opts ...Option) *Store {
	s := &Store{
		state:     NewState(),
		listeners: make(map[int]Listener),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a to the state and notifies listeners.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := a.apply(&s.state, s.now().UTC())
	if len(s.order) > 0 {
		ev := Event{Action: a, State: s.state.Clone(), Err: err}
		for _, id := range s.order {
			s.listeners[id](ev)
		}
	}
	return err
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// State returns a snapshot of the whole tree.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Cart() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cart.clone()
}

func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Auth.clone()
}

func (s *Store) Menu() MenuState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Menu.clone()
}

func (s *Store) Orders() OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Order.clone()
}
