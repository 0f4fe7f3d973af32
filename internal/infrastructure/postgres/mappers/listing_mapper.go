package mappers

import (
	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
)

func ToDomainListing(model *models.ListingModel) *domain.Listing {
	return &domain.Listing{
		ID:           model.ID,
		Title:        model.Title,
		Category:     model.Category,
		Price:        model.Price,
		Currency:     model.Currency,
		SellerID:     model.SellerID,
		SellerName:   model.SellerName,
		AutoDelivery: model.AutoDelivery,
		Rating:       model.Rating,
		Sales:        model.Sales,
		Active:       model.Active,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMListing(listing *domain.Listing) *models.ListingModel {
	return &models.ListingModel{
		ID:           listing.ID,
		Title:        listing.Title,
		Category:     listing.Category,
		Price:        listing.Price,
		Currency:     listing.Currency,
		SellerID:     listing.SellerID,
		SellerName:   listing.SellerName,
		AutoDelivery: listing.AutoDelivery,
		Rating:       listing.Rating,
		Sales:        listing.Sales,
		Active:       listing.Active,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
}
