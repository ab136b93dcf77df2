// Package recent maintains the bounded recent-searches history and mirrors
// it through the persistence collaborator.
package recent

import (
	"log"
	"strings"
	"sync"

	"github.com/bestiary/creaturedex/internal/errors"
	"github.com/bestiary/creaturedex/services"
)

// List is a bounded, most-recent-first, case-insensitively de-duplicated
// list of raw query strings. Every mutation is written through to the store;
// persistence failures are logged and never block search.
type List struct {
	mu      sync.Mutex
	store   services.RecentSearchStore
	limit   int
	loaded  bool
	entries []string
}

// NewList creates a List holding at most limit entries. store may be nil,
// in which case the list is memory-only.
func NewList(store services.RecentSearchStore, limit int) *List {
	if limit < 1 {
		limit = 1
	}
	return &List{store: store, limit: limit}
}

// Get returns a copy of the list, most recent first.
func (l *List) Get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadLocked()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Add prepends a query, dropping any existing case-insensitive duplicate and
// truncating to the limit. Empty and whitespace-only queries are ignored.
func (l *List) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadLocked()

	lowered := strings.ToLower(query)
	kept := make([]string, 0, len(l.entries)+1)
	kept = append(kept, query)
	for _, entry := range l.entries {
		if strings.ToLower(entry) == lowered {
			continue
		}
		kept = append(kept, entry)
	}
	if len(kept) > l.limit {
		kept = kept[:l.limit]
	}
	l.entries = kept

	l.saveLocked()
}

// Clear empties the list.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loaded = true
	l.entries = nil
	l.saveLocked()
}

func (l *List) loadLocked() {
	if l.loaded {
		return
	}
	l.loaded = true
	if l.store == nil {
		return
	}
	entries, err := l.store.GetRecentSearches()
	if err != nil {
		log.Printf("recent: %v", errors.NewPersistenceError("load", err))
		return
	}
	if len(entries) > l.limit {
		entries = entries[:l.limit]
	}
	l.entries = entries
}

func (l *List) saveLocked() {
	if l.store == nil {
		return
	}
	if err := l.store.SetRecentSearches(l.entries); err != nil {
		log.Printf("recent: %v", errors.NewPersistenceError("save", err))
	}
}
