package repository

import (
	"errors"
	"strings"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/mappers"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultListingRepository struct {
	DB *gorm.DB
}

func NewDefaultListingRepository(db *gorm.DB) *DefaultListingRepository {
	return &DefaultListingRepository{DB: db}
}

func (r *DefaultListingRepository) CreateListing(listing *domain.Listing) error {
	return r.DB.Create(mappers.ToGORMListing(listing)).Error
}

func (r *DefaultListingRepository) GetListingByID(listingID string) (*domain.Listing, error) {
	var listingModel models.ListingModel
	if err := r.DB.First(&listingModel, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return mappers.ToDomainListing(&listingModel), nil
}

func (r *DefaultListingRepository) ListListings(filter domain.ListingFilter) ([]*domain.Listing, error) {
	query := r.DB.Model(&models.ListingModel{}).Where("active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+q+"%")
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	switch filter.SortBy {
	case "price":
		query = query.Order("price ASC")
	case "rating":
		query = query.Order("rating DESC")
	case "sales":
		query = query.Order("sales DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var listingModels []models.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]*domain.Listing, len(listingModels))
	for i := range listingModels {
		listings[i] = mappers.ToDomainListing(&listingModels[i])
	}
	return listings, nil
}

func (r *DefaultListingRepository) IncrementSales(listingID string) error {
	return r.DB.Model(&models.ListingModel{}).
		Where("id = ?", listingID).
		UpdateColumn("sales", gorm.Expr("sales + 1")).Error
}
