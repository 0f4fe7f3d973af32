package domain

import "time"

// Timeline labels as surfaced to buyers. Append-only per order.
const (
	TimelineOrderCreated     = "Order Created"
	TimelinePaymentConfirmed = "Payment Confirmed"
	TimelineInEscrow         = "In Escrow"
	TimelineDelivered        = "Delivered"
	TimelineCompleted        = "Completed"
	TimelineDisputeOpened    = "Dispute Opened"
	TimelineDisputeResolved  = "Dispute Resolved"
	TimelineCancelled        = "Cancelled"
)

type TimelineEntry struct {
	OrderID   string
	Label     string
	At        time.Time
	Completed bool
}
