// Package api exposes the search core over HTTP for the demo server. The
// core itself is an in-process library; this surface exists so the pipeline
// can be driven without a UI.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/internal/classify"
	"github.com/bestiary/creaturedex/internal/fetch"
	"github.com/bestiary/creaturedex/internal/fuzzy"
	"github.com/bestiary/creaturedex/internal/recent"
	"github.com/bestiary/creaturedex/services"
)

// API holds dependencies for the HTTP handlers: the pipeline components and
// the recent-searches list. Unlike the session controller it runs each
// request synchronously; debouncing is a UI concern.
type API struct {
	settings     config.SearchSettings
	classifier   *classify.Classifier
	source       *fetch.Source
	orchestrator *fetch.Orchestrator
	recent       *recent.List
}

// NewAPI creates the API handler structure over the given collaborators.
func NewAPI(repo services.Repository, recentStore services.RecentSearchStore, settings config.SearchSettings) (*API, error) {
	if err := settings.Check(); err != nil {
		return nil, err
	}

	pool := fetch.NewNamePool(repo, settings.PoolPageSize)
	orchestrator, err := fetch.NewOrchestrator(repo, settings)
	if err != nil {
		return nil, err
	}

	return &API{
		settings:     settings,
		classifier:   classify.NewClassifier(),
		source:       fetch.NewSource(repo, pool, fuzzy.NewRanker(settings), settings),
		orchestrator: orchestrator,
		recent:       recent.NewList(recentStore, settings.RecentLimit),
	}, nil
}

// Close releases the API's worker pool.
func (api *API) Close() {
	api.orchestrator.Release()
}

// SetupRoutes defines all the API routes for the demo server.
func SetupRoutes(router *gin.Engine, api *API) {
	router.Use(RequestIDMiddleware())

	router.GET("/health", api.HealthCheckHandler)
	router.POST("/search", api.SearchHandler)
	router.GET("/suggest", api.SuggestHandler)

	recentRoutes := router.Group("/recent")
	{
		recentRoutes.GET("", api.GetRecentHandler)      // List recent searches
		recentRoutes.DELETE("", api.ClearRecentHandler) // Clear recent searches
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetRecentHandler returns the recent-searches list, most recent first.
func (api *API) GetRecentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recent_searches": api.recent.Get()})
}

// ClearRecentHandler empties the recent-searches list.
func (api *API) ClearRecentHandler(c *gin.Context) {
	api.recent.Clear()
	c.JSON(http.StatusOK, gin.H{"recent_searches": []string{}})
}
