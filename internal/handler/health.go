package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	rdb             *redis.Client
	youtubeReady    bool
	analysisEnabled bool
	startAt         time.Time
}

func NewHealthHandler(rdb *redis.Client, youtubeReady, analysisEnabled bool) *HealthHandler {
	return &HealthHandler{
		rdb:             rdb,
		youtubeReady:    youtubeReady,
		analysisEnabled: analysisEnabled,
		startAt:         time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with dependency checks.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := make(fiber.Map)
	overallStatus := "healthy"

	// YouTube Data API check: static, the client refuses to start without a
	// key, but keep it visible in the probe output.
	if h.youtubeReady {
		checks["youtube"] = fiber.Map{"status": "up"}
	} else {
		checks["youtube"] = fiber.Map{"status": "down", "error": "API key not configured"}
		overallStatus = "degraded"
	}

	// Redis check
	checks["redis"] = checkRedis(ctx, h.rdb)
	if redisCheck, ok := checks["redis"].(fiber.Map); ok {
		if redisCheck["status"] == "down" && overallStatus == "healthy" {
			overallStatus = "degraded"
		}
	}

	if h.analysisEnabled {
		checks["analysis"] = fiber.Map{"status": "up"}
	} else {
		checks["analysis"] = fiber.Map{"status": "disabled"}
	}

	uptimeSeconds := int(time.Since(h.startAt).Seconds())

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": uptimeSeconds,
		"version":        "1.0.0",
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}

func checkRedis(ctx context.Context, rdb *redis.Client) fiber.Map {
	if rdb == nil {
		return fiber.Map{
			"status": "disabled",
		}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
