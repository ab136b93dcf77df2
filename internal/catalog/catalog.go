// Package catalog provides an in-memory implementation of the repository
// collaborator, used by the demo server and by tests. Real deployments are
// expected to supply their own services.Repository over whatever transport
// they use.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bestiary/creaturedex/internal/errors"
	"github.com/bestiary/creaturedex/model"
	"github.com/bestiary/creaturedex/services"
)

// generationRanges maps a generation number to its contiguous id range.
var generationRanges = map[int][2]int{
	1: {1, 151},
	2: {152, 251},
	3: {252, 386},
	4: {387, 493},
	5: {494, 649},
	6: {650, 721},
	7: {722, 809},
	8: {810, 905},
	9: {906, 1025},
}

// regionGenerations maps a region name to its generation number. Hisui shares
// generation 8 with Galar.
var regionGenerations = map[string]int{
	"kanto":  1,
	"johto":  2,
	"hoenn":  3,
	"sinnoh": 4,
	"unova":  5,
	"kalos":  6,
	"alola":  7,
	"galar":  8,
	"hisui":  8,
	"paldea": 9,
}

// Store is an in-memory services.Repository backed by a creature map. Test
// hooks allow injecting per-id fetch latency and failures so concurrency
// behavior can be exercised deterministically.
type Store struct {
	mu        sync.RWMutex
	creatures map[int]model.Creature
	names     []model.NamedRef // ascending id

	fetchDelay     map[int]time.Duration
	failFetch      map[int]bool
	failListNames  bool
	failListByType bool
	listNamesCalls int
}

var _ services.Repository = (*Store)(nil)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		creatures:  make(map[int]model.Creature),
		fetchDelay: make(map[int]time.Duration),
		failFetch:  make(map[int]bool),
	}
}

// Seed adds creatures to the store, replacing existing entries with the same
// id, and rebuilds the ordered name listing.
func (s *Store) Seed(creatures []model.Creature) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range creatures {
		s.creatures[c.ID] = c
	}

	s.names = s.names[:0]
	for _, c := range s.creatures {
		s.names = append(s.names, c.Ref())
	}
	sort.Slice(s.names, func(i, j int) bool { return s.names[i].ID < s.names[j].ID })
}

// Len returns the number of seeded creatures.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.creatures)
}

// ListNames returns one page of the ordered name listing.
func (s *Store) ListNames(ctx context.Context, limit, offset int) ([]model.NamedRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.listNamesCalls++
	fail := s.failListNames
	s.mu.Unlock()
	if fail {
		return nil, fmt.Errorf("listing names: injected failure")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 || offset >= len(s.names) {
		return []model.NamedRef{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(s.names) {
		end = len(s.names)
	}

	page := make([]model.NamedRef, end-offset)
	copy(page, s.names[offset:end])
	return page, nil
}

// FetchByID retrieves one record, honoring any injected latency or failure
// for that id. It returns a NotFoundError for unknown ids.
func (s *Store) FetchByID(ctx context.Context, id int) (model.Creature, error) {
	s.mu.RLock()
	delay := s.fetchDelay[id]
	fail := s.failFetch[id]
	creature, exists := s.creatures[id]
	s.mu.RUnlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return model.Creature{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	if fail {
		return model.Creature{}, fmt.Errorf("fetching creature %d: injected failure", id)
	}
	if !exists {
		return model.Creature{}, errors.NewNotFoundError(id)
	}
	return creature, nil
}

// ListByType returns the listing references of all creatures with the given
// type, ordered by ascending id.
func (s *Store) ListByType(ctx context.Context, typeID string) ([]model.NamedRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failListByType {
		return nil, fmt.Errorf("listing type %q: injected failure", typeID)
	}

	refs := make([]model.NamedRef, 0)
	for _, c := range s.creatures {
		if c.HasType(typeID) {
			refs = append(refs, c.Ref())
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs, nil
}

// GenerationRange returns the fixed id range for a generation number.
func (s *Store) GenerationRange(n int) (first, last int, ok bool) {
	r, ok := generationRanges[n]
	if !ok {
		return 0, 0, false
	}
	return r[0], r[1], true
}

// RegionGeneration returns the fixed generation number for a region name.
func (s *Store) RegionGeneration(region string) (int, bool) {
	n, ok := regionGenerations[region]
	return n, ok
}

// SetFetchDelay injects a latency for one id's FetchByID.
func (s *Store) SetFetchDelay(id int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchDelay[id] = d
}

// FailFetch makes FetchByID fail for one id.
func (s *Store) FailFetch(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failFetch[id] = true
}

// FailListNames makes ListNames fail until called with false.
func (s *Store) FailListNames(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failListNames = fail
}

// FailListByType makes ListByType fail until called with false.
func (s *Store) FailListByType(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failListByType = fail
}

// ListNamesCalls reports how many times ListNames has been called, for
// asserting that the name pool is fetched once and cached.
func (s *Store) ListNamesCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listNamesCalls
}
