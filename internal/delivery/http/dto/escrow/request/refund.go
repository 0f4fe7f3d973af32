package request

type RefundRequest struct {
	OrderID string `json:"order_id"`
}
