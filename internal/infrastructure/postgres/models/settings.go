package models

type SettingsModel struct {
	ID         int `gorm:"primaryKey;autoIncrement:false"`
	Work       bool
	ChatURL    string
	PickupFlow bool
}

func (SettingsModel) TableName() string { return "settings" }
