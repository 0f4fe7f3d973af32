package domain

import "time"

type Listing struct {
	ID           string
	Title        string
	Category     string
	Price        float64
	Currency     string
	SellerID     string
	SellerName   string
	AutoDelivery bool
	Rating       float64
	Sales        int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ListingFilter struct {
	Category string
	Search   string
	MaxPrice float64
	SortBy   string // "price", "rating", "sales", default newest first
}

type ListingRepository interface {
	CreateListing(listing *Listing) error
	GetListingByID(listingID string) (*Listing, error)
	ListListings(filter ListingFilter) ([]*Listing, error)
	IncrementSales(listingID string) error
}
