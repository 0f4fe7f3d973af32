package models

import (
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

type OrderModel struct {
	ID             string `gorm:"primaryKey"`
	ListingID      string `gorm:"type:uuid;index"`
	ProductTitle   string
	Amount         float64
	Currency       string
	BuyerID        string `gorm:"type:uuid;index"`
	SellerID       string `gorm:"type:uuid"`
	SellerName     string
	Status         domain.OrderStatus `gorm:"index:idx_status_deadline"`
	EscrowDeadline *time.Time         `gorm:"index:idx_status_deadline"`
	PayloadRef     string
	CreatedAt      time.Time `gorm:"index:idx_created_at"`
	UpdatedAt      time.Time
	ClosedAt       *time.Time
}
