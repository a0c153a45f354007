package response

type ItemResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	PhotoURL     string   `json:"photoUrl,omitempty"`
	Price        string   `json:"price"`
	Currency     string   `json:"currency"`
	Status       string   `json:"status"`
	Storefront   string   `json:"storefront"`
	Country      string   `json:"country"`
	PickupPoint  string   `json:"pickupPoint,omitempty"`
	PickupPoints []string `json:"pickupPoints,omitempty"`
	ChatOpen     bool     `json:"chatOpen"`
}
