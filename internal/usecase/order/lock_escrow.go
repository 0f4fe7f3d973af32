package usecase

import (
	"fmt"
	"log/slog"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

// LockEscrow charges the buyer and moves the order into escrow. The payment
// must succeed before the transition commits; a provider failure leaves the
// order in CREATED so the buyer can retry.
func (uc *DefaultOrderUsecase) LockEscrow(orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusCreated {
		return domain.ErrInvalidTransition
	}

	if err := uc.Escrow.SubmitPayment(order.ID, order.Amount); err != nil {
		uc.Metrics.RecordProviderError("submit_payment")
		return fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	now := uc.now()
	deadline := now.Add(uc.GracePeriod)
	update := domain.OrderUpdate{
		Status:         domain.StatusEscrowLocked,
		EscrowDeadline: &deadline,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelinePaymentConfirmed, At: now, Completed: true},
			{OrderID: order.ID, Label: domain.TimelineInEscrow, At: now, Completed: true},
		},
	}
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusCreated, update); err != nil {
		return err
	}

	uc.Metrics.RecordEscrowLocked(order.Currency)
	order.Status = domain.StatusEscrowLocked
	uc.publishStatus(order)

	// Instant-delivery listings ship as soon as funds are locked.
	listing, err := uc.ListingRepo.GetListingByID(order.ListingID)
	if err == nil && listing.AutoDelivery {
		if err := uc.ScheduleDelivery(order.ID); err != nil {
			slog.Error("failed to schedule auto delivery", "order_id", order.ID, "error", err.Error())
		}
	}

	return nil
}
