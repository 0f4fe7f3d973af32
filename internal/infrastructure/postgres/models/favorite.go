package models

import "time"

type FavoriteModel struct {
	ID        uint   `gorm:"primaryKey"`
	BuyerID   string `gorm:"type:uuid;uniqueIndex:idx_buyer_listing"`
	ListingID string `gorm:"type:uuid;uniqueIndex:idx_buyer_listing"`
	CreatedAt time.Time
}
