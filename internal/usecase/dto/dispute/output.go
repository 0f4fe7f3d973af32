package disputedto

import (
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

type DisputeOutput struct {
	ID         string
	OrderID    string
	Reason     string
	Evidence   []string
	Status     domain.DisputeStatus
	OpenedAt   time.Time
	ResolvedAt *time.Time
	ResolvedBy string
}
