// Package testing provides shared fixtures for exercising the search core:
// a seeded catalog, a state-collecting observer, and a call-counting
// repository wrapper.
package testing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bestiary/creaturedex/internal/catalog"
	"github.com/bestiary/creaturedex/model"
	"github.com/bestiary/creaturedex/services"
)

// SeededCatalog returns a catalog store seeded with the sample creatures.
func SeededCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()
	store.Seed(catalog.SampleCreatures())
	require.Greater(t, store.Len(), 0, "sample catalog must not be empty")
	return store
}

// CollectingObserver records every published search state and signals each
// completed publish (a state that is not IsSearching) on a channel.
type CollectingObserver struct {
	mu        sync.Mutex
	states    []services.SearchState
	completed chan services.SearchState
}

// NewCollectingObserver creates a CollectingObserver.
func NewCollectingObserver() *CollectingObserver {
	return &CollectingObserver{completed: make(chan services.SearchState, 32)}
}

// SearchStateChanged implements services.SearchObserver.
func (o *CollectingObserver) SearchStateChanged(state services.SearchState) {
	o.mu.Lock()
	o.states = append(o.states, state)
	o.mu.Unlock()

	if !state.IsSearching {
		select {
		case o.completed <- state:
		default:
		}
	}
}

// States returns a copy of every state observed so far.
func (o *CollectingObserver) States() []services.SearchState {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]services.SearchState, len(o.states))
	copy(out, o.states)
	return out
}

// SearchingCount returns how many IsSearching transitions were observed.
func (o *CollectingObserver) SearchingCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, s := range o.states {
		if s.IsSearching {
			n++
		}
	}
	return n
}

// WaitForCompletion blocks until a non-searching state is published or the
// timeout elapses, failing the test on timeout.
func (o *CollectingObserver) WaitForCompletion(t *testing.T, timeout time.Duration) services.SearchState {
	t.Helper()
	select {
	case state := <-o.completed:
		return state
	case <-time.After(timeout):
		t.Fatalf("no search completion observed within %v", timeout)
		return services.SearchState{}
	}
}

// CountingRepo wraps a repository and counts ListNames calls, for asserting
// that the name pool is fetched once and cached.
type CountingRepo struct {
	services.Repository

	mu            sync.Mutex
	listNameCalls int
}

// NewCountingRepo wraps repo.
func NewCountingRepo(repo services.Repository) *CountingRepo {
	return &CountingRepo{Repository: repo}
}

// ListNames counts the call and delegates.
func (r *CountingRepo) ListNames(ctx context.Context, limit, offset int) ([]model.NamedRef, error) {
	r.mu.Lock()
	r.listNameCalls++
	r.mu.Unlock()
	return r.Repository.ListNames(ctx, limit, offset)
}

// ListNamesCalls returns the number of ListNames calls seen.
func (r *CountingRepo) ListNamesCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listNameCalls
}
