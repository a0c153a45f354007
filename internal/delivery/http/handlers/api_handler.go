package handlers

import (
	"fmt"
	"net/http"

	"github.com/LavaJover/shvark-storefront-bot/internal/domain"
	orderResponse "github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/dto/order/response"
	supportRequest "github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/dto/support/request"
	supportResponse "github.com/LavaJover/shvark-storefront-bot/internal/delivery/http/dto/support/response"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/page"
	"github.com/LavaJover/shvark-storefront-bot/internal/usecase/support"
	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	orders         page.OrderResolver
	supportUsecase support.SupportUsecase
}

func NewAPIHandler(orders page.OrderResolver, supportUsecase support.SupportUsecase) *APIHandler {
	return &APIHandler{orders: orders, supportUsecase: supportUsecase}
}

// GetItem returns the public part of an order. Receiver details stay private.
func (h *APIHandler) GetItem(c *gin.Context) {
	resolved, err := h.orders.ResolveOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		abortJSON(c, err)
		return
	}
	order := resolved.Order
	c.JSON(http.StatusOK, orderResponse.ItemResponse{
		ID:           order.ID,
		Title:        order.Title,
		PhotoURL:     order.PhotoURL,
		Price:        order.FormattedPrice(),
		Currency:     order.Currency,
		Status:       string(order.Status),
		Storefront:   resolved.Storefront.Title,
		Country:      resolved.Country.Code,
		PickupPoint:  order.PickupPoint,
		PickupPoints: resolved.Country.PickupPoints,
		ChatOpen:     order.ChatOpen,
	})
}

func (h *APIHandler) PostMessage(c *gin.Context) {
	var req supportRequest.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortJSON(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()))
		return
	}
	if err := h.supportUsecase.CustomerMessage(c.Request.Context(), req.OrderID, req.OwnerID, req.Message); err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, supportResponse.MessageResponse{Success: true})
}

func (h *APIHandler) GetThread(c *gin.Context) {
	orderID := c.Param("orderId")
	logs, err := h.supportUsecase.Thread(c.Request.Context(), orderID)
	if err != nil {
		abortJSON(c, err)
		return
	}
	resp := supportResponse.ThreadResponse{OrderID: orderID, Messages: make([]supportResponse.LogEntry, 0, len(logs))}
	for _, entry := range logs {
		resp.Messages = append(resp.Messages, supportResponse.LogEntry{
			ID:        entry.ID,
			Role:      string(entry.Role),
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
