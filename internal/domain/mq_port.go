package domain

import (
	"context"
	"time"
)

type OrderEventType string

const (
	EventOrderCreated      OrderEventType = "created"
	EventOrderViewed       OrderEventType = "viewed"
	EventOrderPriceChanged OrderEventType = "price_changed"
	EventOrderStatus       OrderEventType = "status_changed"
	EventOrderDeleted      OrderEventType = "deleted"
)

type OrderEvent struct {
	Type           OrderEventType `json:"type"`
	OrderID        string         `json:"order_id"`
	OwnerID        int64          `json:"owner_id"`
	StorefrontCode string         `json:"storefront_code"`
	Price          float64        `json:"price"`
	Currency       string         `json:"currency"`
	Status         OrderStatus    `json:"status"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}

// Notifier delivers a text to an operator's private chat and returns the sent message id.
type Notifier interface {
	Send(ctx context.Context, msg OutboundMessage) (int, error)
}

type OutboundMessage struct {
	ChatID  int64
	Text    string
	ReplyTo int
	Silent  bool
}
