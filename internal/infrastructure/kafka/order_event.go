package kafka

type OrderEvent struct {
	OrderID      string  `json:"order_id"`
	BuyerID      string  `json:"buyer_id"`
	SellerID     string  `json:"seller_id"`
	Status       string  `json:"status"`
	ProductTitle string  `json:"product_title"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
