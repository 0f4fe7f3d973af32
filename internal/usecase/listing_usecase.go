package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexabay/escrow-order-service/internal/domain"
	listingdto "github.com/nexabay/escrow-order-service/internal/usecase/dto/listing"
)

type ListingUsecase interface {
	CreateListing(input *listingdto.CreateListingInput) (*domain.Listing, error)
	GetListingByID(listingID string) (*domain.Listing, error)
	BrowseListings(filter domain.ListingFilter) ([]*domain.Listing, error)
}

type DefaultListingUsecase struct {
	ListingRepo domain.ListingRepository
}

func NewDefaultListingUsecase(listingRepo domain.ListingRepository) *DefaultListingUsecase {
	return &DefaultListingUsecase{ListingRepo: listingRepo}
}

func (uc *DefaultListingUsecase) CreateListing(input *listingdto.CreateListingInput) (*domain.Listing, error) {
	now := time.Now()
	listing := &domain.Listing{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(input.Title),
		Category:     input.Category,
		Price:        input.Price,
		Currency:     input.Currency,
		SellerID:     input.SellerID,
		SellerName:   input.SellerName,
		AutoDelivery: input.AutoDelivery,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.ListingRepo.CreateListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *DefaultListingUsecase) GetListingByID(listingID string) (*domain.Listing, error) {
	return uc.ListingRepo.GetListingByID(listingID)
}

func (uc *DefaultListingUsecase) BrowseListings(filter domain.ListingFilter) ([]*domain.Listing, error) {
	return uc.ListingRepo.ListListings(filter)
}
