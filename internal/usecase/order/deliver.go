package usecase

import (
	"github.com/nexabay/escrow-order-service/internal/domain"
)

// MarkDelivered records the delivered payload reference. Valid only while
// funds are locked in escrow; the payload must be non-empty.
func (uc *DefaultOrderUsecase) MarkDelivered(orderID, payloadRef string) error {
	if payloadRef == "" {
		return domain.ErrPayloadRequired
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusEscrowLocked {
		return domain.ErrInvalidTransition
	}

	now := uc.now()
	update := domain.OrderUpdate{
		Status:     domain.StatusDelivered,
		PayloadRef: payloadRef,
		Timeline: []domain.TimelineEntry{
			{OrderID: order.ID, Label: domain.TimelineDelivered, At: now, Completed: true},
		},
	}
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, domain.StatusEscrowLocked, update); err != nil {
		return err
	}

	order.Status = domain.StatusDelivered
	order.PayloadRef = payloadRef
	uc.publishStatus(order)

	return nil
}
