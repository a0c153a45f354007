package domain

import (
	"context"
	"time"
)

type SupportRole string

const (
	RoleCustomer SupportRole = "customer"
	RoleOperator SupportRole = "operator"
)

type SupportLog struct {
	ID        string
	OrderID   string
	Role      SupportRole
	Message   string
	CreatedAt time.Time
}

type SupportLogRepository interface {
	CreateLog(ctx context.Context, log *SupportLog) error
	GetLogsByOrder(ctx context.Context, orderID string) ([]*SupportLog, error)
}
