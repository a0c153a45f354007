package models

import "time"

type OperatorModel struct {
	ID                   int64 `gorm:"primaryKey;autoIncrement:false"`
	Tag                  string
	NotificationsEnabled bool
	SiteEnabled          bool
	SavedName            string
	SavedAddress         string
	IsAdmin              bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (OperatorModel) TableName() string { return "operators" }
