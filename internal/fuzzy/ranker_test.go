package fuzzy

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/model"
)

func newTestRanker() *Ranker {
	return NewRanker(config.DefaultSettings())
}

func TestRankExactMatchFirst(t *testing.T) {
	pool := []model.NamedRef{
		{ID: 150, Name: "mewtwo"},
		{ID: 151, Name: "mew"},
	}

	got := newTestRanker().Rank("mew", pool)
	if len(got) != 2 {
		t.Fatalf("Rank returned %d candidates, want 2: %v", len(got), got)
	}
	if got[0].Name != "mew" {
		t.Errorf("exact match should rank first, got %q", got[0].Name)
	}
	if got[0].Score != 0 {
		t.Errorf("exact match score = %d, want 0", got[0].Score)
	}
	if got[1].Name != "mewtwo" {
		t.Errorf("prefix match should rank second, got %q", got[1].Name)
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	pool := []model.NamedRef{{ID: 25, Name: "Pikachu"}}

	got := newTestRanker().Rank("PIKACHU", pool)
	if len(got) != 1 || got[0].ID != 25 {
		t.Fatalf("case-insensitive exact match not accepted: %v", got)
	}
	if got[0].Name != "Pikachu" {
		t.Errorf("candidate should keep original display name, got %q", got[0].Name)
	}
}

func TestRankThreshold(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		poolName string
		accepted bool
	}{
		{"distance 0 accepted", "pikachu", "pikachu", true},
		{"distance 2 accepted", "pikachu", "pikachuxx", true},
		{"distance 3 rejected for len 7", "pikachu", "raichu", false},
		{"substring rescues long name", "chu", "pikachu", true},
		{"short query floor of 2", "mw", "mew", true},
		{"unrelated rejected", "snorlax", "gyarados", false},
	}

	ranker := newTestRanker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ranker.Rank(tt.query, []model.NamedRef{{ID: 1, Name: tt.poolName}})
			if accepted := len(got) == 1; accepted != tt.accepted {
				t.Errorf("Rank(%q, [%q]) accepted=%v, want %v", tt.query, tt.poolName, accepted, tt.accepted)
			}
		})
	}
}

func TestRankNeverExceedsLimit(t *testing.T) {
	pool := make([]model.NamedRef, 0, 50)
	for i := 1; i <= 50; i++ {
		pool = append(pool, model.NamedRef{ID: i, Name: fmt.Sprintf("abra-%d", i)})
	}

	got := newTestRanker().Rank("abra", pool)
	if len(got) > 20 {
		t.Errorf("Rank returned %d candidates, want at most 20", len(got))
	}
}

func TestRankOrderIsTotal(t *testing.T) {
	// Same distance, same prefix status: ascending id breaks the tie.
	pool := []model.NamedRef{
		{ID: 5, Name: "charmeleon"},
		{ID: 4, Name: "charmander"},
	}

	got := newTestRanker().Rank("char", pool)
	if len(got) != 2 {
		t.Fatalf("Rank returned %d candidates, want 2", len(got))
	}
	if got[0].ID != 4 || got[1].ID != 5 {
		t.Errorf("tie-break should order by ascending id, got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestRankSortedByDistance(t *testing.T) {
	pool := []model.NamedRef{
		{ID: 1, Name: "serch"},  // distance 1 from "search"
		{ID: 2, Name: "search"}, // distance 0
		{ID: 3, Name: "sarch"},  // distance 1
		{ID: 4, Name: "seech"},  // distance 2
	}

	got := newTestRanker().Rank("search", pool)
	if len(got) != 4 {
		t.Fatalf("Rank returned %d candidates, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev, curr := got[i-1], got[i]
		if prev.Score > curr.Score {
			t.Errorf("candidates not sorted by ascending distance: %v", got)
		}
		if prev.Score == curr.Score && prev.ID > curr.ID {
			t.Errorf("equal-distance candidates not sorted by ascending id: %v", got)
		}
	}
	if got[0].Name != "search" {
		t.Errorf("exact match should rank first, got %q", got[0].Name)
	}
}

func TestRankPikachuScenario(t *testing.T) {
	pool := []model.NamedRef{
		{ID: 25, Name: "pikachu"},
		{ID: 26, Name: "raichu"},
		{ID: 172, Name: "pichu"},
	}

	got := newTestRanker().Rank("pikachu", pool)
	if len(got) == 0 || got[0].Name != "pikachu" {
		t.Fatalf("pikachu should rank first, got %v", got)
	}
	// raichu is at distance 3, beyond max(2, 7/3) = 2, and is not a
	// substring match for this query length.
	for _, c := range got {
		if c.Name == "raichu" {
			t.Errorf("raichu should be outside the threshold for query 'pikachu': %v", got)
		}
	}
}

func TestRankEmptyPool(t *testing.T) {
	got := newTestRanker().Rank("pikachu", nil)
	if len(got) != 0 {
		t.Errorf("Rank over empty pool returned %v, want empty", got)
	}
}

func TestRankShortQuerySubstringRescue(t *testing.T) {
	// Single-character queries match almost everything via the substring
	// override. This matches the source behavior and is deliberately not
	// tightened; the limit caps the output.
	pool := []model.NamedRef{
		{ID: 1, Name: "bulbasaur"},
		{ID: 4, Name: "charmander"},
		{ID: 7, Name: "squirtle"},
	}

	got := newTestRanker().Rank("a", pool)
	if len(got) != 3 {
		t.Errorf("substring rescue should accept all names containing 'a', got %v", got)
	}
	for _, c := range got {
		if !strings.Contains(c.Name, "a") {
			t.Errorf("unexpected candidate %q for query 'a'", c.Name)
		}
	}
}
