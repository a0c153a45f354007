package models

import (
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
)

type SupportLogModel struct {
	ID        string             `gorm:"primaryKey;type:uuid"`
	OrderID   string             `gorm:"size:8;index"`
	Role      domain.SupportRole `gorm:"size:16"`
	Message   string
	CreatedAt time.Time
}

func (SupportLogModel) TableName() string { return "support_logs" }
