package usecase

import (
	"fmt"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

// CancelOrder aborts an order before delivery. Orders with locked funds are
// refunded; delivered orders cannot be cancelled, only disputed.
func (uc *DefaultOrderUsecase) CancelOrder(orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusCreated && order.Status != domain.StatusEscrowLocked {
		return domain.ErrInvalidTransition
	}

	if order.Status == domain.StatusEscrowLocked {
		if err := uc.Escrow.Refund(order.ID); err != nil {
			uc.Metrics.RecordProviderError("refund")
			return fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
		}
	}

	now := uc.now()
	closed := now
	update := domain.OrderUpdate{
		Status:   domain.StatusCancelled,
		ClosedAt: &closed,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelineCancelled, At: now, Completed: true},
		},
	}
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, order.Status, update); err != nil {
		return err
	}

	if order.Status == domain.StatusEscrowLocked {
		uc.Metrics.RecordEscrowReleased(order.Currency)
	}
	uc.Metrics.RecordOrderCancelled("user", now.Sub(order.CreatedAt).Seconds())

	order.Status = domain.StatusCancelled
	uc.publishStatus(order)

	return nil
}
