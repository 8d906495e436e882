package repository

import (
	"fmt"
	"sync"

	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
)

// LostFoundDB defines the storage interface for reports, matches and user contacts
type LostFoundDB interface {
	SaveUser(user model.User) error
	GetUserContact(userID string) (model.User, error)
	SaveLostItem(item model.LostItem) error
	SaveFoundItem(item model.FoundItem) error
	GetFoundItem(itemID string) (model.FoundItem, error)
	ListLostItems(filter model.ItemFilter) ([]model.LostItem, error)
	ListFoundItems(filter model.ItemFilter) ([]model.FoundItem, error)
	ListMatches() ([]model.Match, error)
	CreateMatch(m model.Match) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of LostFoundDB
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[string]model.User      // key: userID
	lostItems  map[string]model.LostItem  // key: itemID
	foundItems map[string]model.FoundItem // key: itemID
	matches    []model.Match              // insertion order preserved
	matchPairs map[string]bool            // key: lostItemID+"|"+foundItemID
	lostOrder  []string                   // lost item ids in insertion order
	foundOrder []string                   // found item ids in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[string]model.User),
		lostItems:  make(map[string]model.LostItem),
		foundItems: make(map[string]model.FoundItem),
		matchPairs: make(map[string]bool),
	}
}

func pairKey(lostItemID, foundItemID string) string {
	return lostItemID + "|" + foundItemID
}

// SaveUser inserts or replaces a user record
func (r *MemoryRepo) SaveUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.UserID] = user
	return nil
}

// GetUserContact returns the contact record for a user
func (r *MemoryRepo) GetUserContact(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get contact for user %s: %w", userID, lferrors.ErrUserNotFound)
	}
	return user, nil
}

// SaveLostItem inserts or replaces a lost item report
func (r *MemoryRepo) SaveLostItem(item model.LostItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lostItems[item.ItemID]; !exists {
		r.lostOrder = append(r.lostOrder, item.ItemID)
	}
	r.lostItems[item.ItemID] = item
	return nil
}

// SaveFoundItem inserts or replaces a found item report
func (r *MemoryRepo) SaveFoundItem(item model.FoundItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.foundItems[item.ItemID]; !exists {
		r.foundOrder = append(r.foundOrder, item.ItemID)
	}
	r.foundItems[item.ItemID] = item
	return nil
}

// GetFoundItem returns a found item by id
func (r *MemoryRepo) GetFoundItem(itemID string) (model.FoundItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.foundItems[itemID]
	if !ok {
		return model.FoundItem{}, fmt.Errorf("get found item %s: %w", itemID, lferrors.ErrItemNotFound)
	}
	return item, nil
}

// ListLostItems returns lost items matching the filter, in insertion order
func (r *MemoryRepo) ListLostItems(filter model.ItemFilter) ([]model.LostItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.LostItem, 0)
	for _, id := range r.lostOrder {
		item := r.lostItems[id]
		if filter.UserID != "" && item.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.DistrictID != "" && item.DistrictID != filter.DistrictID {
			continue
		}
		if filter.VenueID != "" && item.VenueID != filter.VenueID {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListFoundItems returns found items matching the filter, in insertion order
func (r *MemoryRepo) ListFoundItems(filter model.ItemFilter) ([]model.FoundItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.FoundItem, 0)
	for _, id := range r.foundOrder {
		item := r.foundItems[id]
		if filter.UserID != "" && item.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.DistrictID != "" && item.DistrictID != filter.DistrictID {
			continue
		}
		if filter.VenueID != "" && item.VenueID != filter.VenueID {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListMatches returns all stored matches in insertion order
func (r *MemoryRepo) ListMatches() ([]model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Match(nil), r.matches...), nil
}

// CreateMatch appends a match. The pair check and the insert happen under
// one lock, so the (lostItemID, foundItemID) uniqueness invariant holds even
// across concurrent discovery runs.
func (r *MemoryRepo) CreateMatch(m model.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(m.LostItemID, m.FoundItemID)
	if r.matchPairs[key] {
		return fmt.Errorf("create match for pair (%s, %s): %w", m.LostItemID, m.FoundItemID, lferrors.ErrMatchExists)
	}
	r.matchPairs[key] = true
	r.matches = append(r.matches, m)
	return nil
}
