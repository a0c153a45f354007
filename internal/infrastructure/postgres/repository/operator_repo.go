package repository

import (
	"context"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOperatorRepository struct {
	DB *gorm.DB
}

func NewDefaultOperatorRepository(db *gorm.DB) *DefaultOperatorRepository {
	return &DefaultOperatorRepository{
		DB: db,
	}
}

func (r *DefaultOperatorRepository) CreateOperator(ctx context.Context, operator *domain.Operator) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMOperator(operator)).Error
}

func (r *DefaultOperatorRepository) GetOperatorByID(ctx context.Context, operatorID int64) (*domain.Operator, error) {
	var model models.OperatorModel
	if err := r.DB.WithContext(ctx).Where("id = ?", operatorID).First(&model).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return mappers.ToDomainOperator(&model), nil
}

func (r *DefaultOperatorRepository) UpdateOperator(ctx context.Context, operatorID int64, params domain.UpdateOperatorParams) error {
	updates := map[string]interface{}{}
	if params.NotificationsEnabled != nil {
		updates["notifications_enabled"] = *params.NotificationsEnabled
	}
	if params.SiteEnabled != nil {
		updates["site_enabled"] = *params.SiteEnabled
	}
	if params.SavedName != nil {
		updates["saved_name"] = *params.SavedName
	}
	if params.SavedAddress != nil {
		updates["saved_address"] = *params.SavedAddress
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.DB.WithContext(ctx).Model(&models.OperatorModel{}).Where("id = ?", operatorID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
