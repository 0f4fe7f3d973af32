package usecase

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/kafka"
	disputedto "github.com/nexabay/escrow-order-service/internal/usecase/dto/dispute"
)

// OpenDispute freezes a delivered order for admin review. Disputes are only
// accepted post-delivery; a pre-delivery problem goes through escrow expiry.
func (disputeUc *DefaultDisputeUsecase) OpenDispute(input *disputedto.OpenDisputeInput) (*disputedto.DisputeOutput, error) {
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	order, err := disputeUc.orderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusDelivered {
		return nil, domain.ErrInvalidTransition
	}

	now := disputeUc.now()
	dispute := &domain.Dispute{
		ID:       uuid.NewString(),
		OrderID:  order.ID,
		Reason:   input.Reason,
		Evidence: input.Evidence,
		Status:   domain.DisputeUnderReview,
		OpenedAt: now,
	}
	update := domain.OrderUpdate{
		Status: domain.StatusDisputed,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelineDisputeOpened, At: now, Completed: true},
		},
	}

	if err := disputeUc.disputeRepo.CreateDisputeForOrder(dispute, domain.StatusDelivered, update); err != nil {
		return nil, err
	}

	disputeUc.metrics.RecordDisputeOpened(order.Currency)
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
		Status:    string(domain.DisputeUnderReview),
	})

	return toOutput(dispute), nil
}
