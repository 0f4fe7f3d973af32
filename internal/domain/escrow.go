package domain

// EscrowProvider holds and moves the buyer's funds. The order usecases call it
// before committing a transition; a provider failure leaves the order in its
// prior state so the caller can retry.
type EscrowProvider interface {
	SubmitPayment(orderID string, amount float64) error
	ReleaseFunds(orderID, recipientID string) error
	Refund(orderID string) error
}
