package repository

import (
	"context"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSupportLogRepository struct {
	DB *gorm.DB
}

func NewDefaultSupportLogRepository(db *gorm.DB) *DefaultSupportLogRepository {
	return &DefaultSupportLogRepository{
		DB: db,
	}
}

func (r *DefaultSupportLogRepository) CreateLog(ctx context.Context, log *domain.SupportLog) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMSupportLog(log)).Error
}

func (r *DefaultSupportLogRepository) GetLogsByOrder(ctx context.Context, orderID string) ([]*domain.SupportLog, error) {
	var logModels []*models.SupportLogModel
	if err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]*domain.SupportLog, len(logModels))
	for i, model := range logModels {
		logs[i] = mappers.ToDomainSupportLog(model)
	}
	return logs, nil
}
