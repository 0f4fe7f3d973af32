package usecase

import (
	"fmt"
	"log/slog"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

// ConfirmReceipt is the buyer accepting the delivery. Held funds go to the
// seller and the order reaches its COMPLETED terminal state.
func (uc *DefaultOrderUsecase) ConfirmReceipt(orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusDelivered {
		return domain.ErrInvalidTransition
	}

	if err := uc.Escrow.ReleaseFunds(order.ID, order.SellerID); err != nil {
		uc.Metrics.RecordProviderError("release_funds")
		return fmt.Errorf("%w: %v", domain.ErrReleaseFailed, err)
	}

	now := uc.now()
	closed := now
	update := domain.OrderUpdate{
		Status:   domain.StatusCompleted,
		ClosedAt: &closed,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelineCompleted, At: now, Completed: true},
		},
	}
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusDelivered, update); err != nil {
		return err
	}

	uc.Metrics.RecordEscrowReleased(order.Currency)
	uc.Metrics.RecordOrderCompleted(order.Currency, now.Sub(order.CreatedAt).Seconds())

	if err := uc.ListingRepo.IncrementSales(order.ListingID); err != nil {
		slog.Error("failed to bump listing sales", "listing_id", order.ListingID, "error", err.Error())
	}

	order.Status = domain.StatusCompleted
	uc.publishStatus(order)

	return nil
}
