package mappers

import (
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
)

func ToGORMSupportLog(log *domain.SupportLog) *models.SupportLogModel {
	return &models.SupportLogModel{
		ID:        log.ID,
		OrderID:   log.OrderID,
		Role:      log.Role,
		Message:   log.Message,
		CreatedAt: log.CreatedAt,
	}
}

func ToDomainSupportLog(model *models.SupportLogModel) *domain.SupportLog {
	return &domain.SupportLog{
		ID:        model.ID,
		OrderID:   model.OrderID,
		Role:      model.Role,
		Message:   model.Message,
		CreatedAt: model.CreatedAt,
	}
}
