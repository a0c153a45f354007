package domain

import (
	"context"
	"time"
)

// Operator is the shop employee driving the bot. ID is the Telegram user id.
type Operator struct {
	ID                   int64
	Tag                  string
	NotificationsEnabled bool
	SiteEnabled          bool
	SavedName            string
	SavedAddress         string
	IsAdmin              bool
	CreatedAt            time.Time
}

type UpdateOperatorParams struct {
	NotificationsEnabled *bool
	SiteEnabled          *bool
	SavedName            *string
	SavedAddress         *string
}

type OperatorRepository interface {
	CreateOperator(ctx context.Context, operator *Operator) error
	GetOperatorByID(ctx context.Context, operatorID int64) (*Operator, error)
	UpdateOperator(ctx context.Context, operatorID int64, params UpdateOperatorParams) error
}
