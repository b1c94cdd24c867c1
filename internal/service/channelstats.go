package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/guenbae-park01/youtube-best-tool/internal/metrics"
)

// ChannelLister is the slice of the platform client the stats fetcher needs.
type ChannelLister interface {
	ListChannelSubscribers(ctx context.Context, ids []string) (map[string]int64, error)
}

// ChannelStatsFetcher resolves subscriber counts for a batch of channels,
// consulting the Redis cache before the Data API.
type ChannelStatsFetcher struct {
	api   ChannelLister
	cache *CacheService
	log   zerolog.Logger
}

func NewChannelStatsFetcher(api ChannelLister, cache *CacheService, log zerolog.Logger) *ChannelStatsFetcher {
	return &ChannelStatsFetcher{api: api, cache: cache, log: log}
}

// Fetch returns subscriber counts keyed by channel ID. Input IDs are
// deduplicated before querying — one search page routinely contains several
// videos from the same channel.
//
// A platform failure is returned to the caller as-is; the search pipeline
// decides to degrade to "subscribers unknown" rather than this helper
// swallowing the error.
func (f *ChannelStatsFetcher) Fetch(ctx context.Context, channelIDs []string) (map[string]int64, error) {
	unique := dedupe(channelIDs)
	stats := make(map[string]int64, len(unique))

	var misses []string
	for _, id := range unique {
		count, ok, err := f.cache.GetSubscribers(ctx, id)
		if err != nil {
			f.log.Warn().Err(err).Str("channelId", id).Msg("subscriber cache read failed")
		}
		if ok {
			metrics.CacheHits.Inc()
			stats[id] = count
			continue
		}
		metrics.CacheMisses.Inc()
		misses = append(misses, id)
	}

	if len(misses) == 0 {
		return stats, nil
	}

	fetched, err := f.api.ListChannelSubscribers(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("fetch channel stats: %w", err)
	}

	for id, count := range fetched {
		stats[id] = count
		if err := f.cache.SetSubscribers(ctx, id, count); err != nil {
			f.log.Warn().Err(err).Str("channelId", id).Msg("subscriber cache write failed")
		}
	}
	return stats, nil
}

// dedupe returns the unique IDs in a stable (sorted) order so upstream
// request URLs are deterministic.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
