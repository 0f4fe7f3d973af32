package domain

import "time"

type DisputeStatus string

const (
	DisputeUnderReview    DisputeStatus = "UNDER_REVIEW"
	DisputeResolvedBuyer  DisputeStatus = "RESOLVED_BUYER"
	DisputeResolvedSeller DisputeStatus = "RESOLVED_SELLER"
)

type Verdict string

const (
	VerdictBuyer  Verdict = "BUYER"
	VerdictSeller Verdict = "SELLER"
)

type Dispute struct {
	ID         string
	OrderID    string
	Reason     string
	Evidence   []string
	Status     DisputeStatus
	OpenedAt   time.Time
	ResolvedAt *time.Time
	ResolvedBy string
}

type DisputeRepository interface {
	// CreateDisputeForOrder persists the dispute and flips the order to
	// DISPUTED in one transaction. The order status check is a compare-and-swap
	// against expected; a lost race returns ErrStaleState.
	CreateDisputeForOrder(dispute *Dispute, expected OrderStatus, update OrderUpdate) error
	// ResolveDisputeForOrder stamps the dispute verdict and moves the order to
	// its terminal resolved status in one transaction.
	ResolveDisputeForOrder(disputeID string, status DisputeStatus, resolvedBy string, resolvedAt time.Time, expected OrderStatus, update OrderUpdate) error
	GetDisputeByID(disputeID string) (*Dispute, error)
	GetDisputeByOrderID(orderID string) (*Dispute, error)
	FindStaleDisputes(openedBefore time.Time) ([]*Dispute, error)
}
