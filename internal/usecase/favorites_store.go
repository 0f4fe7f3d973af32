package usecase

import (
	"sync"

	"github.com/nexabay/escrow-order-service/internal/domain"
)

// FavoritesStore keeps each buyer's favorite listings behind explicit methods:
// the set is loaded from the persisted snapshot on first access and every
// mutation is flushed through the repository before it is visible.
type FavoritesStore struct {
	repo domain.FavoritesRepository

	mu   sync.Mutex
	sets map[string]map[string]struct{}
}

func NewFavoritesStore(repo domain.FavoritesRepository) *FavoritesStore {
	return &FavoritesStore{
		repo: repo,
		sets: make(map[string]map[string]struct{}),
	}
}

// load must be called with the mutex held.
func (s *FavoritesStore) load(buyerID string) (map[string]struct{}, error) {
	if set, ok := s.sets[buyerID]; ok {
		return set, nil
	}
	snapshot, err := s.repo.Snapshot(buyerID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(snapshot))
	for _, listingID := range snapshot {
		set[listingID] = struct{}{}
	}
	s.sets[buyerID] = set
	return set, nil
}

func (s *FavoritesStore) Add(buyerID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(buyerID)
	if err != nil {
		return err
	}
	if _, ok := set[listingID]; ok {
		return nil
	}
	if err := s.repo.AddFavorite(buyerID, listingID); err != nil {
		return err
	}
	set[listingID] = struct{}{}
	return nil
}

func (s *FavoritesStore) Remove(buyerID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(buyerID)
	if err != nil {
		return err
	}
	if _, ok := set[listingID]; !ok {
		return nil
	}
	if err := s.repo.RemoveFavorite(buyerID, listingID); err != nil {
		return err
	}
	delete(set, listingID)
	return nil
}

// Toggle flips the favorite flag and reports the new state.
func (s *FavoritesStore) Toggle(buyerID, listingID string) (bool, error) {
	s.mu.Lock()
	set, err := s.load(buyerID)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	_, favored := set[listingID]
	s.mu.Unlock()

	if favored {
		return false, s.Remove(buyerID, listingID)
	}
	return true, s.Add(buyerID, listingID)
}

func (s *FavoritesStore) IsFavorite(buyerID, listingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(buyerID)
	if err != nil {
		return false, err
	}
	_, ok := set[listingID]
	return ok, nil
}

func (s *FavoritesStore) List(buyerID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(buyerID)
	if err != nil {
		return nil, err
	}
	listingIDs := make([]string, 0, len(set))
	for listingID := range set {
		listingIDs = append(listingIDs, listingID)
	}
	return listingIDs, nil
}
