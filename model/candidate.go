package model

// Candidate is a ranked, lightweight reference to a full record, prior to
// retrieval. Score is the edit distance to the query for name queries, and 0
// for the fixed-rank intents (type, generation, region, category).
type Candidate struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// FetchSlot pairs a candidate id with its position in the ranked candidate
// list, so results of concurrent fetches can be reassembled in relevance
// order regardless of completion order.
type FetchSlot struct {
	Index       int
	CandidateID int
}
