package domain

type FavoritesRepository interface {
	// Snapshot returns the buyer's persisted favorite listing IDs.
	Snapshot(buyerID string) ([]string, error)
	AddFavorite(buyerID, listingID string) error
	RemoveFavorite(buyerID, listingID string) error
}
