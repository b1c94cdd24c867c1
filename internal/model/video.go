package model

import "time"

// GradeTier classifies a video's viral performance from its views-to-subscribers ratio.
type GradeTier string

const (
	TierLegendary GradeTier = "legendary"
	TierHero      GradeTier = "hero"
	TierStrong    GradeTier = "strong"
	TierNormal    GradeTier = "normal"
	TierUnranked  GradeTier = "unranked"
)

// VideoDetail is one raw item from the platform's video details call,
// before filtering and classification.
type VideoDetail struct {
	VideoID      string
	Title        string
	ThumbnailURL string
	ChannelID    string
	ChannelTitle string
	PublishedAt  time.Time
	Duration     string // ISO-8601, e.g. "PT1H2M3S"
	ViewCount    int64
}

// VideoRecord represents a classified search result as served to the dashboard.
type VideoRecord struct {
	VideoID         string    `json:"videoId"`
	Title           string    `json:"title"`
	ThumbnailURL    string    `json:"thumbnail"`
	ChannelID       string    `json:"channelId"`
	ChannelTitle    string    `json:"channel"`
	ViewCount       int64     `json:"views"`
	SubscriberCount int64     `json:"subscribers"`
	PublishedDate   string    `json:"date"` // YYYY-MM-DD
	DurationSeconds int       `json:"durationSeconds"`
	GradeLabel      string    `json:"gradeLabel"`
	GradeTier       GradeTier `json:"gradeTier"`
}

// SearchResponse is the API response for a search request.
type SearchResponse struct {
	Results []VideoRecord `json:"results"`
	Count   int           `json:"count"`
	Message string        `json:"message"`
}

// TranscriptResponse is the API response for a transcript lookup.
type TranscriptResponse struct {
	VideoID    string `json:"videoId"`
	Transcript string `json:"transcript"`
}

// PromptResponse is the API response for a built analysis prompt.
type PromptResponse struct {
	VideoID       string `json:"videoId"`
	Prompt        string `json:"prompt"`
	HasTranscript bool   `json:"hasTranscript"`
}

// AnalysisResponse is the API response for an LLM analysis run.
type AnalysisResponse struct {
	VideoID  string `json:"videoId"`
	Analysis string `json:"analysis"`
}
