package usecase

import (
	"fmt"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

type EventType string

const (
	EventLockEscrow     EventType = "lock_escrow"
	EventMarkDelivered  EventType = "mark_delivered"
	EventConfirmReceipt EventType = "confirm_receipt"
	EventCancel         EventType = "cancel"
	EventExpireEscrow   EventType = "expire_escrow"
)

// Event is a transition request from a view or another writer. ObservedStatus
// carries the status the issuer last read; if the stored status has moved on
// since, Apply fails with ErrStaleState and the issuer must re-fetch.
type Event struct {
	Type           EventType
	OrderID        string
	ObservedStatus domain.OrderStatus
	PayloadRef     string
}

func (uc *DefaultOrderUsecase) Apply(event Event) error {
	if event.ObservedStatus != "" {
		order, err := uc.OrderRepo.GetOrderByID(event.OrderID)
		if err != nil {
			return err
		}
		if order.Status != event.ObservedStatus {
			return domain.ErrStaleState
		}
	}

	switch event.Type {
	case EventLockEscrow:
		return uc.LockEscrow(event.OrderID)
	case EventMarkDelivered:
		return uc.MarkDelivered(event.OrderID, event.PayloadRef)
	case EventConfirmReceipt:
		return uc.ConfirmReceipt(event.OrderID)
	case EventCancel:
		return uc.CancelOrder(event.OrderID)
	case EventExpireEscrow:
		_, err := uc.ExpireEscrow(event.OrderID)
		return err
	default:
		return fmt.Errorf("unknown order event type: %s", event.Type)
	}
}
