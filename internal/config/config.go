package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            string
	YouTubeAPIKey   string
	RedisURL        string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	TranscriptLangs []string
	SearchPageSize  int64
	LogLevel        string
	Environment     string
	CORSOrigins     string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		YouTubeAPIKey:   getEnv("YOUTUBE_API_KEY", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		TranscriptLangs: splitList(getEnv("TRANSCRIPT_LANGS", "ko,en")),
		SearchPageSize:  getEnvInt64("SEARCH_PAGE_SIZE", 30),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
