package orderdto

import "github.com/LavaJover/shvark-storefront-bot/internal/domain"

type CreateOrderOutput struct {
	Order *domain.Order
	URL   string
}

// ResolvedOrder is the full lookup chain behind one order.
type ResolvedOrder struct {
	Order      *domain.Order
	Storefront *domain.Storefront
	Country    *domain.Country
	Operator   *domain.Operator
}

type OwnerStats struct {
	Day     domain.OrderStats
	Week    domain.OrderStats
	AllTime domain.OrderStats
}
