package order

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	orderdto "github.com/LavaJover/shvark-storefront-bot/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) ListForOwner(ctx context.Context, ownerID int64) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByOwner(ctx, ownerID)
}

func (uc *DefaultOrderUsecase) Stats(ctx context.Context, ownerID int64) (*orderdto.OwnerStats, error) {
	now := uc.now()
	out := &orderdto.OwnerStats{}

	windows := map[*domain.OrderStats]time.Time{
		&out.Day:     now.Add(-24 * time.Hour),
		&out.Week:    now.Add(-7 * 24 * time.Hour),
		&out.AllTime: {},
	}
	for dst, since := range windows {
		st, err := uc.OrderRepo.Stats(ctx, ownerID, since)
		if err != nil {
			return nil, fmt.Errorf("stats for %d: %w", ownerID, err)
		}
		*dst = *st
	}
	return out, nil
}
