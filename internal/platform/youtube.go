package platform

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/guenbae-park01/youtube-best-tool/internal/model"
)

// Client wraps the YouTube Data API v3 for search, video details and
// channel statistics lookups.
type Client struct {
	svc      *youtube.Service
	pageSize int64
}

// NewClient builds a Data API client authenticated with the given key.
// Extra options are appended after the key, so tests can point the client
// at a local server with option.WithEndpoint.
func NewClient(ctx context.Context, apiKey string, pageSize int64, opts ...option.ClientOption) (*Client, error) {
	if pageSize <= 0 {
		pageSize = 30
	}
	all := make([]option.ClientOption, 0, len(opts)+1)
	if apiKey != "" {
		all = append(all, option.WithAPIKey(apiKey))
	}
	all = append(all, opts...)

	svc, err := youtube.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("youtube.NewService: %w", err)
	}
	return &Client{svc: svc, pageSize: pageSize}, nil
}

// SearchVideoIDs returns up to one page of video IDs matching the keyword,
// in the platform's relevance order. A zero publishedAfter leaves the date
// unbounded.
func (c *Client) SearchVideoIDs(ctx context.Context, query string, publishedAfter time.Time) ([]string, error) {
	call := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(c.pageSize)
	if !publishedAfter.IsZero() {
		call = call.PublishedAfter(publishedAfter.UTC().Format(time.RFC3339))
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search.list: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// ListVideos fetches full details for the given video IDs in one batch call.
func (c *Client) ListVideos(ctx context.Context, ids []string) ([]model.VideoDetail, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resp, err := c.svc.Videos.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list: %w", err)
	}

	details := make([]model.VideoDetail, 0, len(resp.Items))
	for _, v := range resp.Items {
		if v.Snippet == nil {
			continue
		}
		d := model.VideoDetail{
			VideoID:      v.Id,
			Title:        v.Snippet.Title,
			ChannelID:    v.Snippet.ChannelId,
			ChannelTitle: v.Snippet.ChannelTitle,
			ThumbnailURL: highThumbnail(v.Snippet.Thumbnails),
		}
		if t, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			d.PublishedAt = t
		}
		if v.Statistics != nil {
			d.ViewCount = int64(v.Statistics.ViewCount)
		}
		if v.ContentDetails != nil {
			d.Duration = v.ContentDetails.Duration
		}
		details = append(details, d)
	}
	return details, nil
}

// ListChannelSubscribers returns subscriber counts keyed by channel ID.
// Channels that hide their count are omitted, as are IDs the API does not
// return at all.
func (c *Client) ListChannelSubscribers(ctx context.Context, ids []string) (map[string]int64, error) {
	if len(ids) == 0 {
		return map[string]int64{}, nil
	}

	resp, err := c.svc.Channels.
		List([]string{"statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list: %w", err)
	}

	subs := make(map[string]int64, len(resp.Items))
	for _, ch := range resp.Items {
		if ch.Statistics == nil || ch.Statistics.HiddenSubscriberCount {
			continue
		}
		subs[ch.Id] = int64(ch.Statistics.SubscriberCount)
	}
	return subs, nil
}

func highThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	switch {
	case t.High != nil:
		return t.High.Url
	case t.Medium != nil:
		return t.Medium.Url
	case t.Default != nil:
		return t.Default.Url
	}
	return ""
}
