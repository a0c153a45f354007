package mappers

import (
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
)

func ToGORMOperator(operator *domain.Operator) *models.OperatorModel {
	return &models.OperatorModel{
		ID:                   operator.ID,
		Tag:                  operator.Tag,
		NotificationsEnabled: operator.NotificationsEnabled,
		SiteEnabled:          operator.SiteEnabled,
		SavedName:            operator.SavedName,
		SavedAddress:         operator.SavedAddress,
		IsAdmin:              operator.IsAdmin,
		CreatedAt:            operator.CreatedAt,
	}
}

func ToDomainOperator(model *models.OperatorModel) *domain.Operator {
	return &domain.Operator{
		ID:                   model.ID,
		Tag:                  model.Tag,
		NotificationsEnabled: model.NotificationsEnabled,
		SiteEnabled:          model.SiteEnabled,
		SavedName:            model.SavedName,
		SavedAddress:         model.SavedAddress,
		IsAdmin:              model.IsAdmin,
		CreatedAt:            model.CreatedAt,
	}
}
