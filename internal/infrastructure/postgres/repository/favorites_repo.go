package repository

import (
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultFavoritesRepository struct {
	DB *gorm.DB
}

func NewDefaultFavoritesRepository(db *gorm.DB) *DefaultFavoritesRepository {
	return &DefaultFavoritesRepository{DB: db}
}

func (r *DefaultFavoritesRepository) Snapshot(buyerID string) ([]string, error) {
	var listingIDs []string
	if err := r.DB.Model(&models.FavoriteModel{}).
		Where("buyer_id = ?", buyerID).
		Order("created_at ASC").
		Pluck("listing_id", &listingIDs).Error; err != nil {
		return nil, err
	}
	return listingIDs, nil
}

func (r *DefaultFavoritesRepository) AddFavorite(buyerID, listingID string) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.FavoriteModel{BuyerID: buyerID, ListingID: listingID}).Error
}

func (r *DefaultFavoritesRepository) RemoveFavorite(buyerID, listingID string) error {
	return r.DB.
		Where("buyer_id = ? AND listing_id = ?", buyerID, listingID).
		Delete(&models.FavoriteModel{}).Error
}
