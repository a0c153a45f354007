package request

type MessageRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	OwnerID int64  `json:"ownerId"`
	Message string `json:"message" binding:"required"`
}
