package disputedto

import "github.com/nexabay/escrow-order-service/internal/domain"

type OpenDisputeInput struct {
	OrderID  string
	Reason   string
	Evidence []string
	OpenedBy string
}

type ResolveDisputeInput struct {
	OrderID    string
	Verdict    domain.Verdict
	ResolvedBy string
}
