package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bestiary/creaturedex/api"
	"github.com/bestiary/creaturedex/config"
	"github.com/bestiary/creaturedex/internal/catalog"
	"github.com/bestiary/creaturedex/internal/recent"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "8080", "Port to run the server on")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Creaturedex - fuzzy creature encyclopedia search\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000    # Start server on port 9000\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Creaturedex v1.0.0\n")
		fmt.Printf("Typo-tolerant search with intent classification and ordered concurrent retrieval\n")
		return
	}

	// Seed the in-memory catalog with the sample encyclopedia
	store := catalog.NewStore()
	store.Seed(catalog.SampleCreatures())
	log.Printf("Seeded catalog with %d creatures", store.Len())

	apiHandler, err := api.NewAPI(store, recent.NewMemoryStore(), config.DefaultSettings())
	if err != nil {
		log.Fatalf("Failed to initialize API: %v", err)
	}
	defer apiHandler.Close()

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.CORSMiddleware())

	// Setup API routes
	api.SetupRoutes(router, apiHandler)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
