package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/internal/catalog"
	internalErrors "github.com/bestiary/creaturedex/internal/errors"
	"github.com/bestiary/creaturedex/internal/recent"
	testutil "github.com/bestiary/creaturedex/internal/testing"
	"github.com/bestiary/creaturedex/model"
)

// testSettings shortens the debounce window so tests stay fast while leaving
// the rest of the defaults intact.
func testSettings() config.SearchSettings {
	settings := config.DefaultSettings()
	settings.DebounceWindow = 30 * time.Millisecond
	return settings
}

func newTestController(t *testing.T, store *catalog.Store, observer *testutil.CollectingObserver) *Controller {
	t.Helper()
	controller, err := NewController(store, recent.NewMemoryStore(), observer, testSettings())
	require.NoError(t, err)
	t.Cleanup(controller.Close)
	return controller
}

func resultNames(records []model.Creature) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

func TestSearchPublishesRankedResults(t *testing.T) {
	store := testutil.SeededCatalog(t)
	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("pikachu")

	state := observer.WaitForCompletion(t, 2*time.Second)
	require.NoError(t, state.Err)
	require.NotEmpty(t, state.Results)
	assert.Equal(t, "pikachu", state.Results[0].Name)

	// raichu is at edit distance 3, beyond the threshold for this query.
	assert.NotContains(t, resultNames(state.Results), "raichu")

	result := controller.LastResult()
	require.NotNil(t, result)
	assert.Equal(t, model.IntentName, result.Intent)
	assert.Equal(t, "pikachu", result.Query)
	assert.NotEmpty(t, result.QueryID)
}

func TestDebounceAdmitsOnlyFinalQuery(t *testing.T) {
	store := testutil.SeededCatalog(t)
	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	// Rapid keystrokes inside the quiet period restart the timer.
	controller.SetQuery("p")
	time.Sleep(5 * time.Millisecond)
	controller.SetQuery("pi")
	time.Sleep(5 * time.Millisecond)
	controller.SetQuery("pik")

	state := observer.WaitForCompletion(t, 2*time.Second)
	require.NoError(t, state.Err)
	assert.Contains(t, resultNames(state.Results), "pikachu")

	// Allow any stray work to settle, then confirm one search ran.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, observer.SearchingCount(), "only the final keystroke should be admitted")
}

func TestStaleResultNeverPublished(t *testing.T) {
	store := testutil.SeededCatalog(t)
	store.SetFetchDelay(25, 400*time.Millisecond) // pikachu resolves slowly

	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("pikachu")
	time.Sleep(60 * time.Millisecond) // debounce expired, pikachu fetch in flight
	controller.SetQuery("gengar")

	state := observer.WaitForCompletion(t, 2*time.Second)
	require.NoError(t, state.Err)
	assert.Contains(t, resultNames(state.Results), "gengar")

	// Wait past the slow fetch, then verify the superseded operation's
	// result never surfaced.
	time.Sleep(500 * time.Millisecond)
	for _, s := range observer.States() {
		if !s.IsSearching {
			assert.NotContains(t, resultNames(s.Results), "pikachu", "stale result must be discarded")
		}
	}
	assert.Contains(t, resultNames(controller.Results()), "gengar")
}

func TestCandidateLookupFailureSurfaced(t *testing.T) {
	store := testutil.SeededCatalog(t)
	store.FailListByType(true)

	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("electric")

	state := observer.WaitForCompletion(t, 2*time.Second)
	require.Error(t, state.Err)
	assert.True(t, errors.Is(state.Err, internalErrors.ErrCandidateLookup))
	assert.Empty(t, state.Results, "previous results are not retained on lookup failure")
	assert.Nil(t, controller.LastResult())
}

func TestItemFetchFailureIsNotSurfaced(t *testing.T) {
	store := testutil.SeededCatalog(t)
	store.FailFetch(26) // raichu fetch fails

	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("electric")

	state := observer.WaitForCompletion(t, 2*time.Second)
	require.NoError(t, state.Err, "per-item failures degrade, never surface")

	names := resultNames(state.Results)
	assert.Contains(t, names, "pikachu")
	assert.NotContains(t, names, "raichu")
}

func TestRecentSearchAppendedOnPublish(t *testing.T) {
	store := testutil.SeededCatalog(t)
	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("pikachu")
	observer.WaitForCompletion(t, 2*time.Second)

	// The append runs right after publish on the same goroutine.
	assert.Contains(t, controller.RecentSearches(), "pikachu")
}

func TestRecentSearchNotAppendedOnFailure(t *testing.T) {
	store := testutil.SeededCatalog(t)
	store.FailListByType(true)

	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("electric")
	observer.WaitForCompletion(t, 2*time.Second)

	assert.NotContains(t, controller.RecentSearches(), "electric")
}

func TestEmptyQueryReturnsToIdle(t *testing.T) {
	store := testutil.SeededCatalog(t)
	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("pikachu")
	observer.WaitForCompletion(t, 2*time.Second)

	controller.SetQuery("")
	state := observer.WaitForCompletion(t, 2*time.Second)
	assert.False(t, state.IsSearching)
	assert.Empty(t, state.Results)
	assert.Empty(t, controller.Results())
}

func TestResetInvalidatesInFlightWork(t *testing.T) {
	store := testutil.SeededCatalog(t)
	store.SetFetchDelay(25, 300*time.Millisecond)

	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("pikachu")
	time.Sleep(60 * time.Millisecond) // operation in flight
	controller.Reset()

	time.Sleep(400 * time.Millisecond)
	assert.Empty(t, controller.Results())
	assert.Nil(t, controller.LastResult())
	for _, s := range observer.States() {
		if !s.IsSearching {
			assert.NotContains(t, resultNames(s.Results), "pikachu")
		}
	}
}

func TestNamePoolFetchedOncePerSession(t *testing.T) {
	store := testutil.SeededCatalog(t)
	repo := testutil.NewCountingRepo(store)

	observer := testutil.NewCollectingObserver()
	controller, err := NewController(repo, recent.NewMemoryStore(), observer, testSettings())
	require.NoError(t, err)
	t.Cleanup(controller.Close)

	controller.SetQuery("pikachu")
	observer.WaitForCompletion(t, 2*time.Second)
	callsAfterFirst := repo.ListNamesCalls()
	require.Greater(t, callsAfterFirst, 0)

	controller.SetQuery("gengar")
	observer.WaitForCompletion(t, 2*time.Second)
	assert.Equal(t, callsAfterFirst, repo.ListNamesCalls(), "the name pool is cached across searches")
}

func TestRegionQueryEndToEnd(t *testing.T) {
	store := testutil.SeededCatalog(t)
	observer := testutil.NewCollectingObserver()
	controller := newTestController(t, store, observer)

	controller.SetQuery("kanto")

	state := observer.WaitForCompletion(t, 2*time.Second)
	require.NoError(t, state.Err)
	require.NotEmpty(t, state.Results)
	for _, r := range state.Results {
		assert.Equal(t, 1, r.Generation)
	}
}

func TestInvalidSettingsRejected(t *testing.T) {
	store := testutil.SeededCatalog(t)
	settings := testSettings()
	settings.CandidateLimit = 0

	_, err := NewController(store, nil, nil, settings)
	require.Error(t, err)
}
