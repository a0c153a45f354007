package repository

import (
	"context"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{
		DB: db,
	}
}

func (r *DefaultSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	model := models.SettingsModel{ID: domain.SettingsID}
	err := r.DB.WithContext(ctx).
		Where(models.SettingsModel{ID: domain.SettingsID}).
		Attrs(models.SettingsModel{Work: true}).
		FirstOrCreate(&model).Error
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainSettings(&model), nil
}

func (r *DefaultSettingsRepository) SetWork(ctx context.Context, work bool) error {
	if _, err := r.GetSettings(ctx); err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Model(&models.SettingsModel{}).
		Where("id = ?", domain.SettingsID).
		Update("work", work).Error
}
