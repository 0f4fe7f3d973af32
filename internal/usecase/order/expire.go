package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

// ExpireEscrow cancels and refunds an order whose escrow deadline has passed
// without delivery. Calling it on a terminal order is a no-op returning the
// current status; delivered orders are never force-transitioned.
func (uc *DefaultOrderUsecase) ExpireEscrow(orderID string) (domain.OrderStatus, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return "", err
	}
	if order.Status.Terminal() {
		return order.Status, nil
	}
	if order.Status != domain.StatusEscrowLocked {
		return order.Status, domain.ErrInvalidTransition
	}

	now := uc.now()
	if order.EscrowDeadline == nil || !now.After(*order.EscrowDeadline) {
		return order.Status, nil
	}

	if err := uc.Escrow.Refund(order.ID); err != nil {
		uc.Metrics.RecordProviderError("refund")
		return order.Status, fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
	}

	closed := now
	update := domain.OrderUpdate{
		Status:   domain.StatusCancelled,
		ClosedAt: &closed,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelineCancelled, At: now, Completed: true},
		},
	}
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusEscrowLocked, update); err != nil {
		return order.Status, err
	}

	uc.Metrics.RecordEscrowReleased(order.Currency)
	uc.Metrics.RecordOrderCancelled("escrow_expired", now.Sub(order.CreatedAt).Seconds())

	order.Status = domain.StatusCancelled
	uc.publishStatus(order)

	return domain.StatusCancelled, nil
}

// CancelExpiredOrders sweeps every escrow-locked order past its deadline.
// A sweep lost to a concurrent delivery is not an error.
func (uc *DefaultOrderUsecase) CancelExpiredOrders(ctx context.Context) error {
	orders, err := uc.OrderRepo.FindExpiredOrders(uc.now())
	if err != nil {
		return err
	}

	var lastErr error
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := uc.ExpireEscrow(order.ID); err != nil {
			if errors.Is(err, domain.ErrStaleState) || errors.Is(err, domain.ErrInvalidTransition) {
				continue
			}
			slog.Error("escrow expiry failed", "order_id", order.ID, "error", err.Error())
			lastErr = err
		}
	}
	return lastErr
}
