package usecase

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
	"github.com/nexabay/escrow-order-service/internal/domain"
	orderdto "github.com/nexabay/escrow-order-service/internal/usecase/dto/order"
)

// newOrderID builds IDs of the form ORD-8317-QK shown to buyers.
func newOrderID() (string, error) {
	digits, err := nanoid.CustomASCII("0123456789", 4)
	if err != nil {
		return "", err
	}
	letters, err := nanoid.CustomASCII("ABCDEFGHIJKLMNOPQRSTUVWXYZ", 2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%s", digits(), letters()), nil
}

func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	listing, err := uc.ListingRepo.GetListingByID(input.ListingID)
	if err != nil {
		return nil, err
	}
	if !listing.Active {
		return nil, domain.ErrListingInactive
	}

	orderID, err := newOrderID()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	order := &domain.Order{
		ID:           orderID,
		ListingID:    listing.ID,
		ProductTitle: listing.Title,
		Amount:       listing.Price,
		Currency:     listing.Currency,
		BuyerID:      input.BuyerID,
		SellerID:     listing.SellerID,
		SellerName:   listing.SellerName,
		Status:       domain.StatusCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	timeline := []domain.TimelineEntry{
		{OrderID: orderID, Label: domain.TimelineOrderCreated, At: now, Completed: true},
	}

	if err := uc.OrderRepo.CreateOrder(order, timeline); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.Metrics.RecordOrderCreated(order.Currency)
	uc.publishStatus(order)

	return uc.toOutput(order, timeline), nil
}
