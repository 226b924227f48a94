package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
)

const (
	SubjectOrderCreated = "orders.created"
	SubjectOrderStatus  = "orders.status"
)

// OrderEvent is the payload published for order changes
type OrderEvent struct {
	EventID    string             `json:"event_id"`
	Subject    string             `json:"subject"`
	OrderID    string             `json:"order_id"`
	UserID     string             `json:"user_id"`
	Status     models.OrderStatus `json:"status"`
	Total      decimal.Decimal    `json:"total"`
	OccurredAt time.Time          `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, topic string, msg []byte) error
	Close() error
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("food-delivery-app"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// Publish sends msg on topic unless ctx is already done.
func (p *NATSPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.conn.Publish(topic, msg)
}

func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// Listener returns a store listener that publishes order creations and
// accepted status changes to pub. Failed actions publish nothing.
func Listener(pub Publisher) store.Listener {
	return func(ev store.Event) {
		if ev.Err != nil {
			return
		}

		var (
			subject string
			order   models.Order
			ok      bool
		)
		switch a := ev.Action.(type) {
		case store.CreateOrderSuccess, store.PlaceOrder:
			subject = SubjectOrderCreated
			order, ok = ev.CreatedOrder()
		case store.UpdateOrderStatus:
			subject = SubjectOrderStatus
			order, ok = ev.State.Order.Order(a.OrderID)
		}
		if !ok {
			return
		}

		body, err := json.Marshal(OrderEvent{
			EventID:    uuid.NewString(),
			Subject:    subject,
			OrderID:    order.ID,
			UserID:     order.UserID,
			Status:     order.Status,
			Total:      order.Total,
			OccurredAt: order.UpdatedAt,
		})
		if err != nil {
			log.Printf("Failed to encode %s event for order %s: %v", subject, order.ID, err)
			return
		}
		if err := pub.Publish(context.Background(), subject, body); err != nil {
			log.Printf("Failed to publish %s event for order %s: %v", subject, order.ID, err)
		}
	}
}
