package domain

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNotFound          = errors.New("order not found")
	ErrStaleState        = errors.New("order changed by a concurrent transition")
	ErrUnauthorized      = errors.New("caller lacks permission for this operation")
	ErrPayloadRequired   = errors.New("delivery payload is required")
	ErrReasonRequired    = errors.New("dispute reason is required")

	ErrPaymentFailed = errors.New("payment submission failed")
	ErrReleaseFailed = errors.New("funds release failed")
	ErrRefundFailed  = errors.New("refund failed")

	ErrListingNotFound = errors.New("listing not found")
	ErrListingInactive = errors.New("listing is not active")
	ErrDisputeNotFound = errors.New("dispute not found")
)
