package mappers

import (
	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:             model.ID,
		ListingID:      model.ListingID,
		ProductTitle:   model.ProductTitle,
		Amount:         model.Amount,
		Currency:       model.Currency,
		BuyerID:        model.BuyerID,
		SellerID:       model.SellerID,
		SellerName:     model.SellerName,
		Status:         model.Status,
		EscrowDeadline: model.EscrowDeadline,
		PayloadRef:     model.PayloadRef,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
		ClosedAt:       model.ClosedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:             order.ID,
		ListingID:      order.ListingID,
		ProductTitle:   order.ProductTitle,
		Amount:         order.Amount,
		Currency:       order.Currency,
		BuyerID:        order.BuyerID,
		SellerID:       order.SellerID,
		SellerName:     order.SellerName,
		Status:         order.Status,
		EscrowDeadline: order.EscrowDeadline,
		PayloadRef:     order.PayloadRef,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		ClosedAt:       order.ClosedAt,
	}
}

func ToDomainTimelineEntry(model *models.TimelineEntryModel) domain.TimelineEntry {
	return domain.TimelineEntry{
		OrderID:   model.OrderID,
		Label:     model.Label,
		At:        model.At,
		Completed: model.Completed,
	}
}

func ToGORMTimelineEntry(entry *domain.TimelineEntry) *models.TimelineEntryModel {
	return &models.TimelineEntryModel{
		OrderID:   entry.OrderID,
		Label:     entry.Label,
		At:        entry.At,
		Completed: entry.Completed,
	}
}
