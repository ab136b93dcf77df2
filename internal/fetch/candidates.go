package fetch

import (
	"context"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/internal/errors"
	"github.com/bestiary/creaturedex/internal/fuzzy"
	"github.com/bestiary/creaturedex/model"
	"github.com/bestiary/creaturedex/services"
)

// legendaryIDs is the fixed id list behind the "legendary" category query.
var legendaryIDs = []int{
	144, 145, 146, 150, 151, 243, 244, 245, 249, 250, 251,
	377, 378, 379, 380, 381, 382, 383, 384, 385, 386,
	480, 481, 482, 483, 484, 487, 493,
}

// starterIDs lists the first-stage starters of each generation.
var starterIDs = []int{
	1, 4, 7, 152, 155, 158, 252, 255, 258, 387, 390, 393,
	495, 498, 501, 650, 653, 656, 722, 725, 728, 810, 813, 816,
	906, 909, 912,
}

// evolutionIDs lists the showcase branching-evolution families behind the
// "evolution" category query.
var evolutionIDs = []int{
	133, 134, 135, 136, 196, 197, 470, 471, 700,
	236, 106, 107, 237,
	280, 281, 282, 475,
}

// Source turns a classified query into the ordered candidate list that the
// orchestrator retrieves. Name queries rank against the cached name pool;
// the other intents derive fixed-rank id lists from the repository's lookups
// or from static category tables.
type Source struct {
	repo   services.Repository
	pool   *NamePool
	ranker *fuzzy.Ranker
	limit  int
}

// NewSource creates a Source.
func NewSource(repo services.Repository, pool *NamePool, ranker *fuzzy.Ranker, settings config.SearchSettings) *Source {
	return &Source{
		repo:   repo,
		pool:   pool,
		ranker: ranker,
		limit:  settings.CandidateLimit,
	}
}

// Candidates builds the candidate list for a classified query. A failure of
// the id-list-producing lookup (name pool load or type listing) is returned
// as a CandidateLookupError; an unknown region or generation yields an empty
// list, not an error.
func (s *Source) Candidates(ctx context.Context, query model.ClassifiedQuery) ([]model.Candidate, error) {
	switch query.Intent {
	case model.IntentName:
		pool, err := s.pool.Names(ctx)
		if err != nil {
			return nil, errors.NewCandidateLookupError(string(query.Intent), err)
		}
		return s.ranker.Rank(query.Name, pool), nil

	case model.IntentType:
		refs, err := s.repo.ListByType(ctx, query.TypeID)
		if err != nil {
			return nil, errors.NewCandidateLookupError(string(query.Intent), err)
		}
		return s.fixedRank(refs), nil

	case model.IntentGeneration:
		return s.generationCandidates(ctx, query.Generation), nil

	case model.IntentRegion:
		generation, ok := s.repo.RegionGeneration(query.Region)
		if !ok {
			return []model.Candidate{}, nil
		}
		return s.generationCandidates(ctx, generation), nil

	case model.IntentCategory:
		return s.categoryCandidates(ctx, query.Category), nil
	}

	return []model.Candidate{}, nil
}

// fixedRank converts listing references to fixed-rank candidates, capped at
// the candidate limit.
func (s *Source) fixedRank(refs []model.NamedRef) []model.Candidate {
	if len(refs) > s.limit {
		refs = refs[:s.limit]
	}
	candidates := make([]model.Candidate, 0, len(refs))
	for _, ref := range refs {
		candidates = append(candidates, model.Candidate{ID: ref.ID, Name: ref.Name})
	}
	return candidates
}

// generationCandidates expands a generation's fixed id range into fixed-rank
// candidates in ascending id order. Display names come from the cached pool
// when available; a pool miss leaves the name empty rather than failing,
// since the id list itself derives from the fixed table.
func (s *Source) generationCandidates(ctx context.Context, generation int) []model.Candidate {
	first, last, ok := s.repo.GenerationRange(generation)
	if !ok {
		return []model.Candidate{}
	}

	candidates := make([]model.Candidate, 0, s.limit)
	for id := first; id <= last && len(candidates) < s.limit; id++ {
		name, _ := s.pool.DisplayName(ctx, id)
		candidates = append(candidates, model.Candidate{ID: id, Name: name})
	}
	return candidates
}

// categoryCandidates maps a category to its static id list.
func (s *Source) categoryCandidates(ctx context.Context, kind model.CategoryKind) []model.Candidate {
	var ids []int
	switch kind {
	case model.CategoryLegendary:
		ids = legendaryIDs
	case model.CategoryStarter:
		ids = starterIDs
	case model.CategoryEvolution:
		ids = evolutionIDs
	default:
		return []model.Candidate{}
	}

	if len(ids) > s.limit {
		ids = ids[:s.limit]
	}
	candidates := make([]model.Candidate, 0, len(ids))
	for _, id := range ids {
		name, _ := s.pool.DisplayName(ctx, id)
		candidates = append(candidates, model.Candidate{ID: id, Name: name})
	}
	return candidates
}
