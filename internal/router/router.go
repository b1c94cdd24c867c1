package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/guenbae-park01/youtube-best-tool/internal/handler"
	"github.com/guenbae-park01/youtube-best-tool/internal/metrics"
	"github.com/guenbae-park01/youtube-best-tool/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Search *handler.SearchHandler
	Video  *handler.VideoHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(metrics.Middleware())

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus scrape endpoint
	app.Get("/metrics", metrics.Handler())

	// API routes
	api := app.Group("/api")

	searchLimit := middleware.NewSearchRateLimiter()
	transcriptLimit := middleware.NewTranscriptRateLimiter()
	analyzeLimit := middleware.NewAnalyzeRateLimiter()

	api.Get("/search", h.Search.Search, searchLimit.Handler())

	api.Get("/videos/:videoId/transcript", h.Video.GetTranscript, transcriptLimit.Handler())
	api.Get("/videos/:videoId/prompt", h.Video.GetPrompt, transcriptLimit.Handler())
	api.Post("/videos/:videoId/analyze", h.Video.Analyze, analyzeLimit.Handler())
}
