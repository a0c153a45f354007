package order

import (
	"context"
	"fmt"
	"math"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
)

func (uc *DefaultOrderUsecase) SetPrice(ctx context.Context, orderID string, price float64) (*domain.Order, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}
	price = RoundPrice(price)
	if err := uc.OrderRepo.UpdateOrder(ctx, orderID, domain.UpdateOrderParams{Price: &price}); err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}
	uc.publish(ctx, domain.EventOrderPriceChanged, order)
	return order, nil
}

func (uc *DefaultOrderUsecase) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	if err := uc.OrderRepo.UpdateOrder(ctx, orderID, domain.UpdateOrderParams{Status: &status}); err != nil {
		return fmt.Errorf("order %s: %w", orderID, err)
	}
	if order, err := uc.OrderRepo.GetOrderByID(ctx, orderID); err == nil {
		uc.publish(ctx, domain.EventOrderStatus, order)
	}
	return nil
}

func (uc *DefaultOrderUsecase) SetChatOpen(ctx context.Context, orderID string, open bool) error {
	if err := uc.OrderRepo.UpdateOrder(ctx, orderID, domain.UpdateOrderParams{ChatOpen: &open}); err != nil {
		return fmt.Errorf("order %s: %w", orderID, err)
	}
	return nil
}

func (uc *DefaultOrderUsecase) SetMessageID(ctx context.Context, orderID string, messageID int) error {
	if err := uc.OrderRepo.UpdateOrder(ctx, orderID, domain.UpdateOrderParams{MessageID: &messageID}); err != nil {
		return fmt.Errorf("order %s: %w", orderID, err)
	}
	return nil
}

func (uc *DefaultOrderUsecase) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("order %s: %w", orderID, err)
	}
	if err := uc.OrderRepo.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("order %s: %w", orderID, err)
	}
	uc.Metrics.OrdersDeletedTotal.Inc()
	uc.publish(ctx, domain.EventOrderDeleted, order)
	return nil
}

func (uc *DefaultOrderUsecase) DeleteAllForOwner(ctx context.Context, ownerID int64) (int64, error) {
	n, err := uc.OrderRepo.DeleteOrdersByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete orders of %d: %w", ownerID, err)
	}
	uc.Metrics.OrdersDeletedTotal.Add(float64(n))
	return n, nil
}
