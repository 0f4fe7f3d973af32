package request

type ReleaseRequest struct {
	OrderID     string `json:"order_id"`
	RecipientID string `json:"recipient_id"`
}
