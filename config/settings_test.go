package config

import (
	"testing"
	"time"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	settings := DefaultSettings()

	if conflicts := settings.Validate(); len(conflicts) != 0 {
		t.Errorf("DefaultSettings should validate cleanly, got conflicts: %v", conflicts)
	}
	if settings.DebounceWindow != 300*time.Millisecond {
		t.Errorf("default debounce window = %v, want 300ms", settings.DebounceWindow)
	}
	if settings.CandidateLimit != 20 {
		t.Errorf("default candidate limit = %d, want 20", settings.CandidateLimit)
	}
	if settings.RecentLimit != 10 {
		t.Errorf("default recent limit = %d, want 10", settings.RecentLimit)
	}
}

func TestValidateReportsConflicts(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SearchSettings)
		conflicts int
	}{
		{"negative debounce", func(s *SearchSettings) { s.DebounceWindow = -time.Second }, 1},
		{"zero candidate limit", func(s *SearchSettings) { s.CandidateLimit = 0 }, 1},
		{"zero threshold divisor", func(s *SearchSettings) { s.ThresholdDivisor = 0 }, 1},
		{"zero worker cap", func(s *SearchSettings) { s.WorkerCap = 0 }, 1},
		{"multiple conflicts", func(s *SearchSettings) {
			s.CandidateLimit = 0
			s.RecentLimit = 0
			s.PoolPageSize = 0
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(&settings)

			conflicts := settings.Validate()
			if len(conflicts) != tt.conflicts {
				t.Errorf("Validate returned %d conflicts (%v), want %d", len(conflicts), conflicts, tt.conflicts)
			}
			if err := settings.Check(); err == nil {
				t.Error("Check should return an error when conflicts exist")
			}
		})
	}
}
