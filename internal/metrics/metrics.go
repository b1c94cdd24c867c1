package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Prometheus collectors for the analyzer backend.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytbest_searches_total",
			Help: "Total search pipeline runs, by outcome (ok, empty, error).",
		},
		[]string{"outcome"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytbest_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ytbest_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytbest_subscriber_cache_hits_total",
			Help: "Total Redis subscriber-cache hits.",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytbest_subscriber_cache_misses_total",
			Help: "Total Redis subscriber-cache misses.",
		},
	)

	TranscriptFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytbest_transcript_fetches_total",
			Help: "Total transcript fetch attempts, by result (ok, unavailable).",
		},
		[]string{"result"},
	)

	AnalysisRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytbest_analysis_requests_total",
			Help: "Total LLM analysis runs, by outcome (ok, error).",
		},
		[]string{"outcome"},
	)
)

// Register registers all collectors. Call once at startup.
func Register() {
	prometheus.MustRegister(
		SearchesTotal,
		RequestDuration,
		RequestsInFlight,
		CacheHits,
		CacheMisses,
		TranscriptFetches,
		AnalysisRequests,
	)
}

// Middleware records request duration and in-flight count for Prometheus.
func Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers.
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	if strings.HasPrefix(path, "/api/videos/") {
		rest := path[len("/api/videos/"):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return "/api/videos/:videoId" + rest[i:]
		}
		return "/api/videos/:videoId"
	}
	return path
}

// Handler serves the Prometheus /metrics endpoint via Fiber.
func Handler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
