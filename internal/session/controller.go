// Package session owns the live query stream for one search UI instance:
// debouncing rapid input, issuing generation tokens, running the classify,
// rank, and fetch pipeline, and publishing results while discarding stale
// work.
package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/internal/classify"
	"github.com/bestiary/creaturedex/internal/fetch"
	"github.com/bestiary/creaturedex/internal/fuzzy"
	"github.com/bestiary/creaturedex/internal/recent"
	"github.com/bestiary/creaturedex/model"
	"github.com/bestiary/creaturedex/services"
)

// Controller drives one search session. Each accepted query gets a
// monotonically increasing generation token; an operation's result is only
// published when its token still equals the current one, so the last query
// always wins even if an older operation's fetches finish later.
//
// Session state (token, query text, published results) is mutated only under
// the controller's mutex, which serializes the debounce timer goroutines
// standing in for the UI's single logical thread of control.
type Controller struct {
	settings     config.SearchSettings
	classifier   *classify.Classifier
	pool         *fetch.NamePool
	source       *fetch.Source
	orchestrator *fetch.Orchestrator
	recent       *recent.List
	observer     services.SearchObserver

	mu          sync.Mutex
	token       uint64
	queryText   string
	pendingText string
	results     []model.Creature
	lastResult  *model.SearchResult
	timer       *time.Timer
	cancel      context.CancelFunc
	closed      bool
}

// NewController creates a Controller over the given collaborators. The
// observer may be nil; recentStore may be nil for memory-only history.
// Close must be called when the session is torn down.
func NewController(repo services.Repository, recentStore services.RecentSearchStore, observer services.SearchObserver, settings config.SearchSettings) (*Controller, error) {
	if err := settings.Check(); err != nil {
		return nil, err
	}

	pool := fetch.NewNamePool(repo, settings.PoolPageSize)
	ranker := fuzzy.NewRanker(settings)
	orchestrator, err := fetch.NewOrchestrator(repo, settings)
	if err != nil {
		return nil, err
	}

	return &Controller{
		settings:     settings,
		classifier:   classify.NewClassifier(),
		pool:         pool,
		source:       fetch.NewSource(repo, pool, ranker, settings),
		orchestrator: orchestrator,
		recent:       recent.NewList(recentStore, settings.RecentLimit),
		observer:     observer,
	}, nil
}

// SetQuery feeds one keystroke's worth of query text into the session. Empty
// text returns the session to idle immediately; non-empty text (re)starts the
// debounce timer, so rapid typing admits only the final query.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.queryText = text
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		c.stopTimerLocked()
		c.invalidateLocked()
		c.pendingText = ""
		c.results = nil
		c.publishLocked(services.SearchState{})
		return
	}

	c.pendingText = trimmed
	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.settings.DebounceWindow, c.debounceExpired)
}

// Reset dismisses the session: any pending or in-flight work is invalidated
// and an idle state is published. The session can be reused afterwards.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()
	c.invalidateLocked()
	c.queryText = ""
	c.pendingText = ""
	c.results = nil
	c.lastResult = nil
	c.publishLocked(services.SearchState{})
}

// Close tears the session down. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.invalidateLocked()
	c.closed = true
	c.mu.Unlock()

	c.orchestrator.Release()
}

// Results returns the last published record set in relevance order.
func (c *Controller) Results() []model.Creature {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Creature, len(c.results))
	copy(out, c.results)
	return out
}

// LastResult returns the last published search result, or nil if none has
// been published since the session started or was reset.
func (c *Controller) LastResult() *model.SearchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastResult == nil {
		return nil
	}
	result := *c.lastResult
	return &result
}

// RecentSearches returns the recent-searches history, most recent first.
func (c *Controller) RecentSearches() []string {
	return c.recent.Get()
}

// RefreshNamePool drops the cached name listing so the next name query
// reloads it from the repository.
func (c *Controller) RefreshNamePool() {
	c.pool.Refresh()
}

// debounceExpired runs when the quiet period elapses: it issues a new
// generation token, cancels the previous operation's context, and runs the
// pipeline for the admitted query.
func (c *Controller) debounceExpired() {
	c.mu.Lock()
	if c.closed || c.pendingText == "" {
		c.mu.Unlock()
		return
	}
	text := c.pendingText
	// Consume the pending text so a timer that fired just before being
	// stopped cannot admit the same query twice.
	c.pendingText = ""
	token, ctx := c.issueTokenLocked()
	queryID := uuid.New().String()
	c.publishLocked(services.SearchState{IsSearching: true, Results: c.results})
	c.mu.Unlock()

	c.run(ctx, token, queryID, text)
}

// run executes one search operation: classify, build candidates, fetch, then
// publish if the operation's token is still current.
func (c *Controller) run(ctx context.Context, token uint64, queryID, text string) {
	start := time.Now()

	query := c.classifier.Classify(text)
	candidates, err := c.source.Candidates(ctx, query)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if token != c.token {
			log.Printf("session: discarding stale error for query %q (op %s)", text, queryID)
			return
		}
		// Recoverable search error: results cleared, error surfaced.
		c.results = nil
		c.lastResult = nil
		c.publishLocked(services.SearchState{Err: err})
		log.Printf("session: query %q (op %s) failed: %v", text, queryID, err)
		return
	}

	records := c.orchestrator.FetchAll(ctx, candidates)

	c.mu.Lock()
	if token != c.token {
		c.mu.Unlock()
		log.Printf("session: discarding stale result for query %q (op %s)", text, queryID)
		return
	}
	c.results = records
	c.lastResult = &model.SearchResult{
		QueryID:     queryID,
		Token:       token,
		Query:       text,
		Intent:      query.Intent,
		Records:     records,
		CompletedAt: time.Now(),
		Took:        time.Since(start).Milliseconds(),
	}
	c.publishLocked(services.SearchState{Results: records})
	c.mu.Unlock()

	log.Printf("session: query %q (op %s) published %d records in %v", text, queryID, len(records), time.Since(start))
	c.recent.Add(text)
}

// issueTokenLocked bumps the generation token and swaps the operation
// context, cancelling the previous one so a context-aware repository may
// abort in-flight fetches early. Stale operations are discarded on token
// mismatch either way.
func (c *Controller) issueTokenLocked() (uint64, context.Context) {
	c.token++
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	return c.token, ctx
}

// invalidateLocked bumps the token without starting a new operation, so any
// in-flight result fails the staleness check on arrival.
func (c *Controller) invalidateLocked() {
	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) publishLocked(state services.SearchState) {
	if c.observer != nil {
		c.observer.SearchStateChanged(state)
	}
}
