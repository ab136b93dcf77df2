// Package fetch builds candidate lists from classified queries and retrieves
// the corresponding full records concurrently, preserving relevance order.
package fetch

import (
	"context"
	"log"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/internal/errors"
	"github.com/bestiary/creaturedex/model"
	"github.com/bestiary/creaturedex/services"
)

// Orchestrator fans out one fetch per candidate over a bounded worker pool
// and reassembles the results in the candidates' original order. Each unit
// of work owns a distinct output slot, so no slot is written by more than one
// goroutine; the orchestrator joins on every unit before reassembly.
type Orchestrator struct {
	repo services.Repository
	pool *ants.Pool
}

// NewOrchestrator creates an Orchestrator whose concurrency is bounded by
// the settings' worker cap. Release must be called when done with it.
func NewOrchestrator(repo services.Repository, settings config.SearchSettings) (*Orchestrator, error) {
	size := settings.WorkerCap
	if size < 1 {
		size = 1
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{repo: repo, pool: pool}, nil
}

// Release shuts down the worker pool.
func (o *Orchestrator) Release() {
	o.pool.Release()
}

// FetchAll retrieves the full record for each candidate and returns the
// records sorted by their candidate's original index, never by completion
// order. Individual fetch failures are logged and the candidate is silently
// dropped; a partial result set is acceptable.
func (o *Orchestrator) FetchAll(ctx context.Context, candidates []model.Candidate) []model.Creature {
	if len(candidates) == 0 {
		return []model.Creature{}
	}

	// One pre-sized slot per candidate; a nil slot after the join means that
	// candidate's fetch failed.
	records := make([]*model.Creature, len(candidates))

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		slot := model.FetchSlot{Index: i, CandidateID: candidate.ID}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			creature, err := o.repo.FetchByID(ctx, slot.CandidateID)
			if err != nil {
				log.Printf("fetch: dropping slot %d: %v", slot.Index, errors.NewItemFetchError(slot.CandidateID, err))
				return
			}
			records[slot.Index] = &creature
		}
		if err := o.pool.Submit(task); err != nil {
			// Pool released mid-operation; run the unit inline so the join
			// contract still holds.
			log.Printf("fetch: worker pool unavailable, running slot %d inline: %v", slot.Index, err)
			task()
		}
	}
	wg.Wait()

	results := make([]model.Creature, 0, len(candidates))
	for _, record := range records {
		if record != nil {
			results = append(results, *record)
		}
	}
	return results
}
