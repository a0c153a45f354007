package mappers

import (
	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	"github.com/LavaJover/shvark-storefront-bot/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		StorefrontCode:  order.StorefrontCode,
		Title:           order.Title,
		PhotoURL:        order.PhotoURL,
		Price:           order.Price,
		Currency:        order.Currency,
		Status:          order.Status,
		ReceiverName:    order.ReceiverName,
		ReceiverPhone:   order.ReceiverPhone,
		ReceiverAddress: order.ReceiverAddress,
		PickupPoint:     order.PickupPoint,
		MessageID:       order.MessageID,
		ChatOpen:        order.ChatOpen,
		Online:          order.Online,
		CreatedAt:       order.CreatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:              model.ID,
		OwnerID:         model.OwnerID,
		StorefrontCode:  model.StorefrontCode,
		Title:           model.Title,
		PhotoURL:        model.PhotoURL,
		Price:           model.Price,
		Currency:        model.Currency,
		Status:          model.Status,
		ReceiverName:    model.ReceiverName,
		ReceiverPhone:   model.ReceiverPhone,
		ReceiverAddress: model.ReceiverAddress,
		PickupPoint:     model.PickupPoint,
		MessageID:       model.MessageID,
		ChatOpen:        model.ChatOpen,
		Online:          model.Online,
		CreatedAt:       model.CreatedAt,
	}
}
