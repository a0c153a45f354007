package mappers

import (
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
)

func ToDomainStorefront(model *models.StorefrontModel) *domain.Storefront {
	return &domain.Storefront{
		Code:        model.Code,
		Title:       model.Title,
		Currency:    model.Currency,
		Domain:      model.Domain,
		Status:      model.Status,
		CountryCode: model.CountryCode,
		Enabled:     model.Enabled,
	}
}

func ToDomainCountry(model *models.CountryModel) *domain.Country {
	points := make([]string, len(model.PickupPoints))
	copy(points, model.PickupPoints)
	return &domain.Country{
		Code:         model.Code,
		Title:        model.Title,
		Enabled:      model.Enabled,
		PickupFlow:   model.PickupFlow,
		PickupPoints: points,
	}
}

func ToDomainSettings(model *models.SettingsModel) *domain.Settings {
	return &domain.Settings{
		ID:         model.ID,
		Work:       model.Work,
		ChatURL:    model.ChatURL,
		PickupFlow: model.PickupFlow,
	}
}
