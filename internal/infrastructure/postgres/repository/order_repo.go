package repository

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{
		DB: db,
	}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMOrder(order)).Error
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.DB.WithContext(ctx).Where("id = ?", orderID).First(&model).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) GetOrdersByOwner(ctx context.Context, ownerID int64) ([]*domain.Order, error) {
	var orderModels []*models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = mappers.ToDomainOrder(model)
	}
	return orders, nil
}

func (r *DefaultOrderRepository) UpdateOrder(ctx context.Context, orderID string, params domain.UpdateOrderParams) error {
	updates := map[string]interface{}{}
	if params.Price != nil {
		updates["price"] = *params.Price
	}
	if params.Status != nil {
		updates["status"] = *params.Status
	}
	if params.ChatOpen != nil {
		updates["chat_open"] = *params.ChatOpen
	}
	if params.Online != nil {
		updates["online"] = *params.Online
	}
	if params.PickupPoint != nil {
		updates["pickup_point"] = *params.PickupPoint
	}
	if params.MessageID != nil {
		updates["message_id"] = *params.MessageID
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.DB.WithContext(ctx).Model(&models.OrderModel{}).Where("id = ?", orderID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", orderID).Delete(&models.OrderModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) DeleteOrdersByOwner(ctx context.Context, ownerID int64) (int64, error) {
	res := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&models.OrderModel{})
	return res.RowsAffected, res.Error
}

func (r *DefaultOrderRepository) Stats(ctx context.Context, ownerID int64, since time.Time) (*domain.OrderStats, error) {
	var row struct {
		Count int64
		Sum   float64
	}
	err := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(price), 0) AS sum").
		Where("owner_id = ? AND created_at >= ?", ownerID, since).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &domain.OrderStats{Count: row.Count, Sum: row.Sum}, nil
}
