package response

import "time"

type LogEntry struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ThreadResponse struct {
	OrderID  string     `json:"orderId"`
	Messages []LogEntry `json:"messages"`
}

type MessageResponse struct {
	Success bool `json:"success"`
}
