package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/guenbae-park01/youtube-best-tool/internal/config"
	"github.com/guenbae-park01/youtube-best-tool/internal/handler"
	"github.com/guenbae-park01/youtube-best-tool/internal/metrics"
	"github.com/guenbae-park01/youtube-best-tool/internal/middleware"
	"github.com/guenbae-park01/youtube-best-tool/internal/platform"
	"github.com/guenbae-park01/youtube-best-tool/internal/router"
	"github.com/guenbae-park01/youtube-best-tool/internal/service"
)

// resultTTL bounds how long a search result stays addressable for the
// transcript/prompt/analyze endpoints.
const resultTTL = time.Hour

func main() {
	// Best effort: a missing .env is fine in containerized deploys.
	_ = godotenv.Load()

	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "youtube-best-tool")

	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}

	ctx := context.Background()
	yt, err := platform.NewClient(ctx, cfg.YouTubeAPIKey, cfg.SearchPageSize)
	if err != nil {
		log.Fatalf("failed to create YouTube client: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	baseLog := middleware.Logger

	stats := service.NewChannelStatsFetcher(yt, cache, baseLog.With().Str("component", "channel_stats").Logger())
	store := service.NewResultStore(resultTTL)
	search := service.NewSearchService(yt, stats, store, baseLog.With().Str("component", "search").Logger())

	transcripts := service.NewTranscriptFetcher(
		platform.NewInnertubeClient(),
		cfg.TranscriptLangs,
		baseLog.With().Str("component", "transcript").Logger(),
	)

	analysis := service.NewAnalysisService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	metrics.Register()

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Best Tool API",
		ServerHeader: "youtube-best-tool",
	})

	router.Setup(app, &router.Handlers{
		Search: handler.NewSearchHandler(search),
		Video:  handler.NewVideoHandler(store, transcripts, analysis),
		Health: handler.NewHealthHandler(cache.Client(), cfg.YouTubeAPIKey != "", analysis.Enabled()),
	}, cfg.CORSOrigins)

	log.Printf("youtube-best-tool backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
