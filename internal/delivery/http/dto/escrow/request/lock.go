package request

type LockRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}
