package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

type deliveryTask struct {
	OrderID   string
	ListingID string
}

// ScheduleDelivery queues an asynchronous auto-delivery for an escrow-locked
// order. The worker fetches the payload from the delivery provider and marks
// the order delivered when it lands.
func (uc *DefaultOrderUsecase) ScheduleDelivery(orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusEscrowLocked {
		return domain.ErrInvalidTransition
	}

	select {
	case uc.deliveryQueue <- deliveryTask{OrderID: order.ID, ListingID: order.ListingID}:
		return nil
	default:
		return errors.New("delivery queue is full")
	}
}

func (uc *DefaultOrderUsecase) StartDeliveryWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-uc.deliveryQueue:
			if err := uc.processDelivery(ctx, task); err != nil {
				slog.Error("auto delivery failed", "order_id", task.OrderID, "error", err.Error())
			}
		}
	}
}

func (uc *DefaultOrderUsecase) processDelivery(ctx context.Context, task deliveryTask) error {
	payload, err := uc.Delivery.FetchPayload(ctx, task.ListingID)
	if err != nil {
		return err
	}
	if err := uc.MarkDelivered(task.OrderID, payload); err != nil {
		// The order may have been cancelled or expired while queued;
		// losing that race is not a delivery failure.
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrStaleState) {
			return nil
		}
		return err
	}
	return nil
}
