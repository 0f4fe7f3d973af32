package listingdto

type CreateListingInput struct {
	Title        string
	Category     string
	Price        float64
	Currency     string
	SellerID     string
	SellerName   string
	AutoDelivery bool
}
