package domain

import "context"

const SettingsID = 1

// Settings is the global singleton row.
type Settings struct {
	ID         int
	Work       bool
	ChatURL    string
	PickupFlow bool
}

type SettingsRepository interface {
	// GetSettings returns the id=1 row, creating it with defaults when absent.
	GetSettings(ctx context.Context) (*Settings, error)
	SetWork(ctx context.Context, work bool) error
}
