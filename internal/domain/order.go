package domain

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusCreated        OrderStatus = "CREATED"
	StatusEscrowLocked   OrderStatus = "ESCROW_LOCKED"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCompleted      OrderStatus = "COMPLETED"
	StatusDisputed       OrderStatus = "DISPUTED"
	StatusCancelled      OrderStatus = "CANCELLED"
	StatusResolvedBuyer  OrderStatus = "RESOLVED_BUYER"
	StatusResolvedSeller OrderStatus = "RESOLVED_SELLER"
)

// transitions is the authoritative edge set of the order lifecycle.
// Every status change in the service goes through CanTransitionTo.
var transitions = map[OrderStatus][]OrderStatus{
	StatusCreated:      {StatusEscrowLocked, StatusCancelled},
	StatusEscrowLocked: {StatusDelivered, StatusCancelled},
	StatusDelivered:    {StatusCompleted, StatusDisputed},
	StatusDisputed:     {StatusResolvedBuyer, StatusResolvedSeller},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) NextStatuses() []OrderStatus {
	return transitions[s]
}

func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

type Order struct {
	ID             string
	ListingID      string
	ProductTitle   string
	Amount         float64
	Currency       string
	BuyerID        string
	SellerID       string
	SellerName     string
	Status         OrderStatus
	EscrowDeadline *time.Time
	PayloadRef     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ClosedAt       *time.Time
}

type DateWindow string

const (
	WindowAll    DateWindow = ""
	Window7Days  DateWindow = "7d"
	Window30Days DateWindow = "30d"
	Window90Days DateWindow = "90d"
)

func (w DateWindow) Duration() (time.Duration, bool) {
	switch w {
	case Window7Days:
		return 7 * 24 * time.Hour, true
	case Window30Days:
		return 30 * 24 * time.Hour, true
	case Window90Days:
		return 90 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// OrderFilter combines with logical AND across all active fields.
// An explicit DateFrom/DateTo pair takes precedence over Window.
type OrderFilter struct {
	Status   OrderStatus
	Search   string
	Window   DateWindow
	DateFrom time.Time
	DateTo   time.Time
}

func (f OrderFilter) Matches(o *Order, now time.Time) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(o.ID), q) &&
			!strings.Contains(strings.ToLower(o.ProductTitle), q) &&
			!strings.Contains(strings.ToLower(o.SellerName), q) {
			return false
		}
	}
	if !f.DateFrom.IsZero() && o.CreatedAt.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && o.CreatedAt.After(f.DateTo) {
		return false
	}
	if f.DateFrom.IsZero() && f.DateTo.IsZero() {
		if d, ok := f.Window.Duration(); ok && o.CreatedAt.Before(now.Add(-d)) {
			return false
		}
	}
	return true
}
