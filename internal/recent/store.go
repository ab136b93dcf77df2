package recent

import (
	"sync"

	"github.com/bestiary/creaturedex/services"
)

// MemoryStore is a services.RecentSearchStore holding the list in memory.
// The demo server uses it in place of real persistence.
type MemoryStore struct {
	mu      sync.Mutex
	entries []string
}

var _ services.RecentSearchStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetRecentSearches returns a copy of the stored list.
func (s *MemoryStore) GetRecentSearches() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// SetRecentSearches replaces the stored list.
func (s *MemoryStore) SetRecentSearches(queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]string, len(queries))
	copy(s.entries, queries)
	return nil
}
