package orderdto

import (
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

type TimelineStep struct {
	Label     string
	At        time.Time
	Completed bool
}

type OrderOutput struct {
	ID             string
	ListingID      string
	ProductTitle   string
	Amount         float64
	Currency       string
	SellerName     string
	Status         domain.OrderStatus
	EscrowDeadline *time.Time
	PayloadRef     string
	CreatedAt      time.Time
	ClosedAt       *time.Time
	Timeline       []TimelineStep
	// NextStatuses lists the legal transitions from the current status so
	// views can render available actions without duplicating the machine.
	NextStatuses []domain.OrderStatus
}
