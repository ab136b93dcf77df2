// Package fuzzy implements edit-distance based name matching and ranking.
// It is pure: ranking a query against the name pool never touches the
// network.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/model"
)

// Ranker orders a bounded name pool by fuzzy relevance to a query.
//
// An entry is accepted when its edit distance to the query is within
// max(floor, len(query)/divisor), or when its name contains the query as a
// case-insensitive substring. The substring rescue deliberately admits broad
// matches for very short queries; the candidate limit bounds the output.
type Ranker struct {
	limit   int
	floor   int
	divisor int
}

// NewRanker creates a Ranker using the threshold and limit settings.
func NewRanker(settings config.SearchSettings) *Ranker {
	return &Ranker{
		limit:   settings.CandidateLimit,
		floor:   settings.ThresholdFloor,
		divisor: settings.ThresholdDivisor,
	}
}

type scoredRef struct {
	ref      model.NamedRef
	distance int
	exact    bool
	prefix   bool
}

// Rank returns the relevance-ordered subset of pool accepted for query,
// truncated to the candidate limit. Accepted entries sort by: exact
// case-insensitive match first, then case-insensitive prefix matches, then
// ascending edit distance, with ascending id as the final tie-break so the
// order is a total order.
func (r *Ranker) Rank(query string, pool []model.NamedRef) []model.Candidate {
	q := strings.ToLower(strings.TrimSpace(query))
	threshold := r.threshold(q)

	accepted := make([]scoredRef, 0, len(pool))
	for _, ref := range pool {
		name := strings.ToLower(ref.Name)
		distance := Distance(q, name)
		if distance > threshold && !strings.Contains(name, q) {
			continue
		}
		accepted = append(accepted, scoredRef{
			ref:      ref,
			distance: distance,
			exact:    name == q,
			prefix:   strings.HasPrefix(name, q),
		})
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		a, b := accepted[i], accepted[j]
		if a.exact != b.exact {
			return a.exact
		}
		if a.prefix != b.prefix {
			return a.prefix
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.ref.ID < b.ref.ID
	})

	if len(accepted) > r.limit {
		accepted = accepted[:r.limit]
	}

	candidates := make([]model.Candidate, 0, len(accepted))
	for _, s := range accepted {
		candidates = append(candidates, model.Candidate{
			ID:    s.ref.ID,
			Name:  s.ref.Name,
			Score: s.distance,
		})
	}
	return candidates
}

// threshold returns max(floor, len(query)/divisor), counting runes.
func (r *Ranker) threshold(query string) int {
	t := len([]rune(query)) / r.divisor
	if t < r.floor {
		t = r.floor
	}
	return t
}
