package orderdto

type CreateOrderInput struct {
	ListingID string
	BuyerID   string
}
