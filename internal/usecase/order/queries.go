package usecase

import (
	"github.com/nexabay/escrow-order-service/internal/domain"
	orderdto "github.com/nexabay/escrow-order-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	timeline, err := uc.OrderRepo.GetTimeline(orderID)
	if err != nil {
		return nil, err
	}
	return uc.toOutput(order, timeline), nil
}

func (uc *DefaultOrderUsecase) ListOrders(buyerID string, filter domain.OrderFilter) ([]*orderdto.OrderOutput, error) {
	orders, err := uc.OrderRepo.ListOrders(buyerID, filter, uc.now())
	if err != nil {
		return nil, err
	}

	outputs := make([]*orderdto.OrderOutput, len(orders))
	for i, order := range orders {
		outputs[i] = uc.toOutput(order, nil)
	}
	return outputs, nil
}

func (uc *DefaultOrderUsecase) toOutput(order *domain.Order, timeline []domain.TimelineEntry) *orderdto.OrderOutput {
	steps := make([]orderdto.TimelineStep, len(timeline))
	for i, entry := range timeline {
		steps[i] = orderdto.TimelineStep{
			Label:     entry.Label,
			At:        entry.At,
			Completed: entry.Completed,
		}
	}

	return &orderdto.OrderOutput{
		ID:             order.ID,
		ListingID:      order.ListingID,
		ProductTitle:   order.ProductTitle,
		Amount:         order.Amount,
		Currency:       order.Currency,
		SellerName:     order.SellerName,
		Status:         order.Status,
		EscrowDeadline: order.EscrowDeadline,
		PayloadRef:     order.PayloadRef,
		CreatedAt:      order.CreatedAt,
		ClosedAt:       order.ClosedAt,
		Timeline:       steps,
		NextStatuses:   order.Status.NextStatuses(),
	}
}
