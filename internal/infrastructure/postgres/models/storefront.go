package models

import (
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"gorm.io/datatypes"
)

type StorefrontModel struct {
	Code        string `gorm:"primaryKey;size:64"`
	Title       string
	Currency    string             `gorm:"size:8"`
	Domain      string
	Status      domain.OrderStatus `gorm:"size:32"`
	CountryCode string             `gorm:"size:8"`
	Enabled     bool
}

func (StorefrontModel) TableName() string { return "storefronts" }

type CountryModel struct {
	Code         string `gorm:"primaryKey;size:8"`
	Title        string
	Enabled      bool
	PickupFlow   bool
	PickupPoints datatypes.JSONSlice[string]
}

func (CountryModel) TableName() string { return "countries" }
