// Package services defines the collaborator contracts consumed and produced
// by the search core: the data repository, the recent-searches persistence
// store, and the observer the presentation layer subscribes to.
package services

import (
	"context"

	"github.com/bestiary/creaturedex/model"
)

// Repository is the data-retrieval collaborator. The core treats the
// transport behind it as opaque; implementations may be an HTTP client, a
// local database, or an in-memory catalog.
type Repository interface {
	// ListNames returns a page of the full catalog listing, ordered by
	// ascending id. Used to populate and refresh the ranker's name pool.
	ListNames(ctx context.Context, limit, offset int) ([]model.NamedRef, error)

	// FetchByID retrieves one fully populated record.
	FetchByID(ctx context.Context, id int) (model.Creature, error)

	// ListByType returns the listing references for all creatures of the
	// given type.
	ListByType(ctx context.Context, typeID string) ([]model.NamedRef, error)

	// GenerationRange returns the contiguous id range for a generation
	// number, from a fixed lookup table. ok is false for unknown generations.
	GenerationRange(n int) (first, last int, ok bool)

	// RegionGeneration maps a region name to its generation number, from a
	// fixed lookup table. ok is false for unknown regions.
	RegionGeneration(region string) (int, bool)
}

// RecentSearchStore is the persistence collaborator for the recent-searches
// list: an opaque get/set of an ordered string list.
type RecentSearchStore interface {
	GetRecentSearches() ([]string, error)
	SetRecentSearches(queries []string) error
}

// SearchState is the observable state published to the presentation layer.
// Results is order-significant; Err is non-nil only for recoverable search
// errors (candidate lookup failures).
type SearchState struct {
	IsSearching bool
	Results     []model.Creature
	Err         error
}

// SearchObserver consumes state changes published by the session controller.
// Callbacks run on the controller's internal goroutines and must not call
// back into the controller.
type SearchObserver interface {
	SearchStateChanged(state SearchState)
}

// SearchObserverFunc adapts a plain function to the SearchObserver interface.
type SearchObserverFunc func(SearchState)

// SearchStateChanged calls f(state).
func (f SearchObserverFunc) SearchStateChanged(state SearchState) { f(state) }
