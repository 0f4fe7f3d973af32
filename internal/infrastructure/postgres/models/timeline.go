package models

import "time"

// TimelineEntryModel rows are append-only; ordering follows the serial ID.
type TimelineEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   string `gorm:"index;not null"`
	Label     string `gorm:"not null"`
	At        time.Time
	Completed bool
}
