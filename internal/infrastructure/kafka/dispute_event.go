package kafka

type DisputeEvent struct {
	DisputeID string `json:"dispute_id"`
	OrderID   string `json:"order_id"`
	BuyerID   string `json:"buyer_id"`
	SellerID  string `json:"seller_id"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	Verdict   string `json:"verdict,omitempty"`
}
