package usecase

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/kafka"
	disputedto "github.com/nexabay/escrow-order-service/internal/usecase/dto/dispute"
)

// ResolveDispute closes a dispute with an admin verdict. A buyer verdict
// refunds the held amount, a seller verdict releases it; exactly one of the
// two provider calls is made.
func (disputeUc *DefaultDisputeUsecase) ResolveDispute(input *disputedto.ResolveDisputeInput) error {
	if !disputeUc.isResolver(input.ResolvedBy) {
		return domain.ErrUnauthorized
	}

	order, err := disputeUc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusDisputed {
		return domain.ErrInvalidTransition
	}

	dispute, err := disputeUc.disputeRepo.GetDisputeByOrderID(input.OrderID)
	if err != nil {
		return err
	}

	var (
		disputeStatus domain.DisputeStatus
		orderStatus   domain.OrderStatus
	)
	switch input.Verdict {
	case domain.VerdictBuyer:
		if err := disputeUc.escrow.Refund(order.ID); err != nil {
			disputeUc.metrics.RecordProviderError("refund")
			return fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
		}
		disputeStatus = domain.DisputeResolvedBuyer
		orderStatus = domain.StatusResolvedBuyer
	case domain.VerdictSeller:
		if err := disputeUc.escrow.ReleaseFunds(order.ID, order.SellerID); err != nil {
			disputeUc.metrics.RecordProviderError("release_funds")
			return fmt.Errorf("%w: %v", domain.ErrReleaseFailed, err)
		}
		disputeStatus = domain.DisputeResolvedSeller
		orderStatus = domain.StatusResolvedSeller
	default:
		return fmt.Errorf("unknown dispute verdict: %s", input.Verdict)
	}

	now := disputeUc.now()
	closed := now
	update := domain.OrderUpdate{
		Status:   orderStatus,
		ClosedAt: &closed,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelineDisputeResolved, At: now, Completed: true},
		},
	}
	if err := disputeUc.disputeRepo.ResolveDisputeForOrder(
		dispute.ID, disputeStatus, input.ResolvedBy, now, domain.StatusDisputed, update); err != nil {
		return err
	}

	disputeUc.metrics.RecordEscrowReleased(order.Currency)
	disputeUc.metrics.RecordDisputeResolved(string(input.Verdict))

	go func(event kafka.DisputeEvent) {
		if err := disputeUc.publisher.PublishDispute(event); err != nil {
			slog.Error("failed to publish dispute event", "dispute_id", event.DisputeID, "error", err.Error())
		}
	}(kafka.DisputeEvent{
		DisputeID: dispute.ID,
		OrderID:   order.ID,
		BuyerID:   order.BuyerID,
		SellerID:  order.SellerID,
		Reason:    dispute.Reason,
		Status:    string(disputeStatus),
		Verdict:   string(input.Verdict),
	})

	return nil
}

// ResolveStaleDisputes auto-resolves disputes stuck under review past the
// configured TTL in favour of the buyer.
func (disputeUc *DefaultDisputeUsecase) ResolveStaleDisputes() error {
	disputes, err := disputeUc.disputeRepo.FindStaleDisputes(disputeUc.now().Add(-disputeUc.disputeTTL))
	if err != nil {
		return err
	}

	var lastErr error
	for _, dispute := range disputes {
		err := disputeUc.ResolveDispute(&disputedto.ResolveDisputeInput{
			OrderID:    dispute.OrderID,
			Verdict:    domain.VerdictBuyer,
			ResolvedBy: SystemActor,
		})
		if err != nil {
			log.Printf("failed to auto-resolve dispute %s: %v\n", dispute.ID, err)
			lastErr = err
		}
	}
	return lastErr
}
