package orderdto

type CreateOrderInput struct {
	StorefrontCode  string
	OwnerID         int64
	Title           string
	Price           float64
	PhotoURL        string
	ReceiverName    string
	ReceiverPhone   string
	ReceiverAddress string
}
