// Package config provides configuration structures for the creaturedex
// search core: debounce timing, candidate limits, and fuzzy-matching knobs.
package config

import (
	"fmt"
	"time"
)

// SearchSettings contains all tunables for a search session.
//
// The fuzzy acceptance threshold for a query of length L is
// max(ThresholdFloor, L/ThresholdDivisor) (integer division). Entries whose
// name contains the query as a substring are accepted regardless of distance,
// which rescues short queries and typo-tolerant long queries alike.
type SearchSettings struct {
	DebounceWindow   time.Duration `json:"debounce_window"`   // quiet period after the last keystroke before a search is admitted
	CandidateLimit   int           `json:"candidate_limit"`   // maximum candidates retained after ranking
	ThresholdFloor   int           `json:"threshold_floor"`   // minimum fuzzy acceptance threshold
	ThresholdDivisor int           `json:"threshold_divisor"` // query length divisor for the acceptance threshold
	RecentLimit      int           `json:"recent_limit"`      // maximum entries kept in the recent-searches list
	WorkerCap        int           `json:"worker_cap"`        // upper bound on concurrent record fetches
	PoolPageSize     int           `json:"pool_page_size"`    // page size used when loading the name pool
}

// DefaultSettings returns the settings used by the reference UI: a 300ms
// debounce, 20 candidates, the max(2, len/3) threshold, 10 recent searches.
func DefaultSettings() SearchSettings {
	return SearchSettings{
		DebounceWindow:   300 * time.Millisecond,
		CandidateLimit:   20,
		ThresholdFloor:   2,
		ThresholdDivisor: 3,
		RecentLimit:      10,
		WorkerCap:        20,
		PoolPageSize:     200,
	}
}

// Validate checks the settings for basic requirements and returns a list of
// conflicts. An empty list means the settings are usable.
func (s SearchSettings) Validate() []string {
	var conflicts []string

	if s.DebounceWindow < 0 {
		conflicts = append(conflicts, "debounce_window cannot be negative")
	}
	if s.CandidateLimit < 1 {
		conflicts = append(conflicts, "candidate_limit must be at least 1")
	}
	if s.ThresholdFloor < 0 {
		conflicts = append(conflicts, "threshold_floor cannot be negative")
	}
	if s.ThresholdDivisor < 1 {
		conflicts = append(conflicts, "threshold_divisor must be at least 1")
	}
	if s.RecentLimit < 1 {
		conflicts = append(conflicts, "recent_limit must be at least 1")
	}
	if s.WorkerCap < 1 {
		conflicts = append(conflicts, "worker_cap must be at least 1")
	}
	if s.PoolPageSize < 1 {
		conflicts = append(conflicts, "pool_page_size must be at least 1")
	}

	return conflicts
}

// Check returns an error summarizing any validation conflicts, for callers
// that want a single error value instead of the conflict list.
func (s SearchSettings) Check() error {
	if conflicts := s.Validate(); len(conflicts) > 0 {
		return fmt.Errorf("invalid search settings: %v", conflicts)
	}
	return nil
}
