package domain

import "time"

// OrderUpdate is the delta applied alongside a status transition. The status
// change and timeline appends are committed atomically or not at all.
type OrderUpdate struct {
	Status         OrderStatus
	EscrowDeadline *time.Time
	PayloadRef     string
	ClosedAt       *time.Time
	Timeline       []TimelineEntry
}

type OrderRepository interface {
	CreateOrder(order *Order, timeline []TimelineEntry) error
	GetOrderByID(orderID string) (*Order, error)
	GetTimeline(orderID string) ([]TimelineEntry, error)
	// ListOrders returns the buyer's orders newest first, filtered with
	// logical AND across the active filter fields.
	ListOrders(buyerID string, filter OrderFilter, now time.Time) ([]*Order, error)
	FindExpiredOrders(now time.Time) ([]*Order, error)
	// UpdateOrderStatus is a compare-and-swap: the update applies only while
	// the stored status still equals expected. Returns ErrStaleState when the
	// order moved on since the caller read it, ErrNotFound for unknown IDs.
	UpdateOrderStatus(orderID string, expected OrderStatus, update OrderUpdate) error
}
