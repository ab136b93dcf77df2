package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	internalErrors "github.com/bestiary/creaturedex/internal/errors"
	"github.com/bestiary/creaturedex/model"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchResponse is the JSON shape of one completed search operation.
type SearchResponse struct {
	QueryID string           `json:"query_id"`
	Query   string           `json:"query"`
	Intent  model.IntentKind `json:"intent"`
	Hits    []model.Creature `json:"hits"`
	Total   int              `json:"total"`
	Took    int64            `json:"took"` // milliseconds
}

// SuggestResponse is the JSON shape of a ranker-only suggestion request.
type SuggestResponse struct {
	Query       string            `json:"query"`
	Suggestions []model.Candidate `json:"suggestions"`
}

// SearchHandler runs the full pipeline (classify, candidates, fetch) for one
// query and records it in the recent-searches list on success.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Query cannot be empty")
		return
	}

	query := api.classifier.Classify(req.Query)
	candidates, err := api.source.Candidates(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, internalErrors.ErrCandidateLookup) {
			SendError(c, http.StatusBadGateway, ErrorCodeLookupFailed, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
		return
	}

	hits := api.orchestrator.FetchAll(c.Request.Context(), candidates)
	api.recent.Add(strings.TrimSpace(req.Query))

	c.JSON(http.StatusOK, SearchResponse{
		QueryID: uuid.New().String(),
		Query:   req.Query,
		Intent:  query.Intent,
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(startTime).Milliseconds(),
	})
}

// SuggestHandler ranks the name pool against the q parameter without
// fetching full records; for typeahead suggestion lists.
func (api *API) SuggestHandler(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Query parameter 'q' is required")
		return
	}

	candidates, err := api.source.Candidates(c.Request.Context(), model.NameQuery(q))
	if err != nil {
		SendError(c, http.StatusBadGateway, ErrorCodeLookupFailed, err.Error())
		return
	}

	c.JSON(http.StatusOK, SuggestResponse{Query: q, Suggestions: candidates})
}
