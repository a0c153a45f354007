package repository

import (
	"context"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{
		DB: db,
	}
}

func (r *DefaultCatalogRepository) GetStorefrontByCode(ctx context.Context, code string) (*domain.Storefront, error) {
	var model models.StorefrontModel
	if err := r.DB.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return mappers.ToDomainStorefront(&model), nil
}

func (r *DefaultCatalogRepository) ListStorefronts(ctx context.Context, onlyEnabled bool) ([]*domain.Storefront, error) {
	query := r.DB.WithContext(ctx).Model(&models.StorefrontModel{})
	if onlyEnabled {
		query = query.Where("enabled = ?", true)
	}

	var storefrontModels []*models.StorefrontModel
	if err := query.Order("code").Find(&storefrontModels).Error; err != nil {
		return nil, err
	}

	storefronts := make([]*domain.Storefront, len(storefrontModels))
	for i, model := range storefrontModels {
		storefronts[i] = mappers.ToDomainStorefront(model)
	}
	return storefronts, nil
}

func (r *DefaultCatalogRepository) GetCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	var model models.CountryModel
	if err := r.DB.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return mappers.ToDomainCountry(&model), nil
}
