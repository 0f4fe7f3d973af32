package models

import "time"

type ListingModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Title        string
	Category     string `gorm:"index"`
	Price        float64
	Currency     string
	SellerID     string `gorm:"type:uuid;index"`
	SellerName   string
	AutoDelivery bool
	Rating       float64
	Sales        int64
	Active       bool `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
