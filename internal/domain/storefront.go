package domain

import "context"

// Storefront is a catalog entry for one of the shop's own sites.
type Storefront struct {
	Code        string
	Title       string
	Currency    string
	Domain      string
	Status      OrderStatus
	CountryCode string
	Enabled     bool
}

type Country struct {
	Code         string
	Title        string
	Enabled      bool
	PickupFlow   bool
	PickupPoints []string
}

func (c *Country) HasPickupPoint(point string) bool {
	for _, p := range c.PickupPoints {
		if p == point {
			return true
		}
	}
	return false
}

type StorefrontRepository interface {
	GetStorefrontByCode(ctx context.Context, code string) (*Storefront, error)
	ListStorefronts(ctx context.Context, onlyEnabled bool) ([]*Storefront, error)
}

type CountryRepository interface {
	GetCountryByCode(ctx context.Context, code string) (*Country, error)
}
