package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

// Caption retrieval goes through the Innertube ANDROID /player endpoint:
// it returns the caption track list without the consent and bot checks the
// web player enforces, and the track URLs resolve to plain timedtext XML.

const (
	innertubePlayerURL = "https://www.youtube.com/youtubei/v1/player"
	androidVersion     = "19.09.37"
	androidUserAgent   = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"

	maxTimedTextBytes = 512 * 1024
)

type innertubeRequest struct {
	VideoID        string           `json:"videoId"`
	Context        innertubeContext `json:"context"`
	RacyCheckOk    bool             `json:"racyCheckOk"`
	ContentCheckOk bool             `json:"contentCheckOk"`
}

type innertubeContext struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion"`
	Hl                string `json:"hl"`
	Gl                string `json:"gl"`
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// InnertubeClient fetches video captions without a Data API quota cost.
type InnertubeClient struct {
	httpClient *http.Client
	playerURL  string
}

// NewInnertubeClient builds a caption client with a sane default timeout.
func NewInnertubeClient() *InnertubeClient {
	return &InnertubeClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		playerURL:  innertubePlayerURL,
	}
}

// FetchCaptions returns the full caption text for a video, preferring the
// given language codes in order. Fragments are joined with single spaces;
// no timing metadata is retained.
func (c *InnertubeClient) FetchCaptions(ctx context.Context, videoID string, langs []string) (string, error) {
	tracks, err := c.listCaptionTracks(ctx, videoID)
	if err != nil {
		return "", err
	}
	track, ok := pickTrack(tracks, langs)
	if !ok {
		return "", errors.New("no caption tracks")
	}
	return c.fetchTimedText(ctx, track.BaseURL)
}

func (c *InnertubeClient) listCaptionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	reqBody, err := json.Marshal(innertubeRequest{
		VideoID: videoID,
		Context: innertubeContext{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube player: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("innertube player status %d", resp.StatusCode)
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", player.PlayabilityStatus.Reason)
		}
		return nil, errors.New("no captions in player response")
	}
	return player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// pickTrack selects the caption track to fetch: a manually-authored track in
// a preferred language first, then an auto-generated one, then any track.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	if len(tracks) == 0 {
		return captionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	return tracks[0], true
}

func (c *InnertubeClient) fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTimedTextBytes))
	if err != nil {
		return "", err
	}
	return parseTimedText(body)
}

// parseTimedText extracts plain caption text from timedtext XML, joining
// fragments in document (temporal) order with single spaces.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	if sb.Len() == 0 {
		return "", errors.New("empty transcript")
	}
	return sb.String(), nil
}
