package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/guenbae-park01/youtube-best-tool/internal/metrics"
)

// CaptionFetcher is the caption-service collaborator contract.
type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, videoID string, langs []string) (string, error)
}

// TranscriptFetcher retrieves concatenated caption text for single videos.
type TranscriptFetcher struct {
	captions CaptionFetcher
	langs    []string
	log      zerolog.Logger
}

// NewTranscriptFetcher creates a fetcher with the given language preference
// order (first match wins).
func NewTranscriptFetcher(captions CaptionFetcher, langs []string, log zerolog.Logger) *TranscriptFetcher {
	if len(langs) == 0 {
		langs = []string{"ko", "en"}
	}
	return &TranscriptFetcher{captions: captions, langs: langs, log: log}
}

// Fetch returns the transcript text for a video. The error covers every
// "absent" case — no captions, unsupported video, upstream failure — and the
// caller chooses how to degrade (inline unavailable marker, prompt
// placeholder).
func (f *TranscriptFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	text, err := f.captions.FetchCaptions(ctx, videoID, f.langs)
	if err != nil {
		metrics.TranscriptFetches.WithLabelValues("unavailable").Inc()
		f.log.Debug().Err(err).Str("videoId", videoID).Msg("transcript unavailable")
		return "", err
	}
	metrics.TranscriptFetches.WithLabelValues("ok").Inc()
	return text, nil
}
