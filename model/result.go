package model

import "time"

// SearchResult is the final ordered record set produced by one search
// operation, tagged with the generation token of the query that produced it.
// The session controller only publishes a result whose token still matches
// its current token.
type SearchResult struct {
	QueryID     string     `json:"query_id"` // unique UUID for this search operation
	Token       uint64     `json:"-"`
	Query       string     `json:"query"`
	Intent      IntentKind `json:"intent"`
	Records     []Creature `json:"records"`
	CompletedAt time.Time  `json:"completed_at"`
	Took        int64      `json:"took"` // milliseconds
}
