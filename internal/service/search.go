package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/guenbae-park01/youtube-best-tool/internal/metrics"
	"github.com/guenbae-park01/youtube-best-tool/internal/model"
	"github.com/guenbae-park01/youtube-best-tool/pkg/duration"
)

// PlatformClient is the slice of the video platform API the pipeline uses.
type PlatformClient interface {
	SearchVideoIDs(ctx context.Context, query string, publishedAfter time.Time) ([]string, error)
	ListVideos(ctx context.Context, ids []string) ([]model.VideoDetail, error)
}

// SearchService runs the search → details → channel stats → filter →
// classify pipeline for one dashboard search.
type SearchService struct {
	api   PlatformClient
	stats *ChannelStatsFetcher
	store *ResultStore
	log   zerolog.Logger
	now   func() time.Time
}

func NewSearchService(api PlatformClient, stats *ChannelStatsFetcher, store *ResultStore, log zerolog.Logger) *SearchService {
	return &SearchService{
		api:   api,
		stats: stats,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Search returns the filtered, classified records for the given filter, in
// the platform's relevance order. An empty slice with a nil error is the
// normal "no results" outcome.
//
// Failure semantics: a search or details error aborts the whole run — no
// partial results. A channel-stats error only degrades subscriber counts to
// the "unknown" sentinel (0) for that batch.
func (s *SearchService) Search(ctx context.Context, filter model.SearchFilter) ([]model.VideoRecord, error) {
	start := s.now()

	publishedAfter, _ := filter.Window.PublishedAfter(start)

	ids, err := s.api.SearchVideoIDs(ctx, filter.Keyword, publishedAfter)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("search videos: %w", err)
	}
	if len(ids) == 0 {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return []model.VideoRecord{}, nil
	}

	details, err := s.api.ListVideos(ctx, ids)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch video details: %w", err)
	}

	channelIDs := make([]string, 0, len(details))
	for _, d := range details {
		channelIDs = append(channelIDs, d.ChannelID)
	}

	subscribers, err := s.stats.Fetch(ctx, channelIDs)
	if err != nil {
		// Degrade: every channel in this batch becomes "subscribers unknown".
		s.log.Warn().Err(err).Msg("channel stats unavailable, grading without subscriber counts")
		subscribers = map[string]int64{}
	}

	records := make([]model.VideoRecord, 0, len(details))
	for _, d := range details {
		seconds := duration.Seconds(d.Duration)
		subs := subscribers[d.ChannelID]

		if d.ViewCount < filter.MinViews || subs < filter.MinSubs {
			continue
		}
		if !filter.Duration.Matches(seconds) {
			continue
		}

		label, tier := Grade(d.ViewCount, subs)
		records = append(records, model.VideoRecord{
			VideoID:         d.VideoID,
			Title:           d.Title,
			ThumbnailURL:    d.ThumbnailURL,
			ChannelID:       d.ChannelID,
			ChannelTitle:    d.ChannelTitle,
			ViewCount:       d.ViewCount,
			SubscriberCount: subs,
			PublishedDate:   publishedDate(d.PublishedAt),
			DurationSeconds: seconds,
			GradeLabel:      label,
			GradeTier:       tier,
		})
	}

	s.store.Put(records)

	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("keyword", filter.Keyword).
		Int("fetched", len(details)).
		Int("returned", len(records)).
		Dur("duration_ms", time.Since(start)).
		Msg("search complete")

	return records, nil
}

func publishedDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
