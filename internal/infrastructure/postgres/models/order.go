package models

import (
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
)

type OrderModel struct {
	ID              string             `gorm:"primaryKey;size:8"`
	OwnerID         int64              `gorm:"index:idx_owner_created"`
	StorefrontCode  string             `gorm:"size:64"`
	Title           string
	PhotoURL        string
	Price           float64            `gorm:"type:numeric(12,2)"`
	Currency        string             `gorm:"size:8"`
	Status          domain.OrderStatus `gorm:"size:32"`
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
	PickupPoint     string
	MessageID       int
	ChatOpen        bool
	Online          bool
	CreatedAt       time.Time `gorm:"index:idx_owner_created"`
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string { return "orders" }
