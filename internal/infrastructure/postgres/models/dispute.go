package models

import "time"

type DisputeModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	OrderID    string `gorm:"uniqueIndex"`
	Reason     string
	Evidence   string `gorm:"type:jsonb"`
	Status     string `gorm:"index"`
	OpenedAt   time.Time
	ResolvedAt *time.Time
	ResolvedBy string
	Order      OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
