package domain

import (
	"context"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

type Order struct {
	ID              string
	OwnerID         int64
	StorefrontCode  string
	Title           string
	PhotoURL        string
	Price           float64
	Currency        string
	Status          OrderStatus
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	PickupPoint     string
	// Telegram message the order card was last sent as.
	MessageID int
	ChatOpen  bool
	Online    bool
	CreatedAt time.Time
}

// FormattedPrice renders the price with exactly two decimals.
func (o *Order) FormattedPrice() string {
	return fmt.Sprintf("%.2f", o.Price)
}

type OrderStats struct {
	Count int64
	Sum   float64
}

type UpdateOrderParams struct {
	Price       *float64
	Status      *OrderStatus
	ChatOpen    *bool
	Online      *bool
	PickupPoint *string
	MessageID   *int
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrdersByOwner(ctx context.Context, ownerID int64) ([]*Order, error)
	UpdateOrder(ctx context.Context, orderID string, params UpdateOrderParams) error
	DeleteOrder(ctx context.Context, orderID string) error
	DeleteOrdersByOwner(ctx context.Context, ownerID int64) (int64, error)
	Stats(ctx context.Context, ownerID int64, since time.Time) (*OrderStats, error)
}
