package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestPickTrack_PrefersManualInPreferredLanguage(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "en-asr", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "ko-manual", LanguageCode: "ko"},
		{BaseURL: "en-manual", LanguageCode: "en"},
	}

	track, ok := pickTrack(tracks, []string{"ko", "en"})
	if !ok {
		t.Fatal("expected a track")
	}
	if track.BaseURL != "ko-manual" {
		t.Errorf("picked %s, want ko-manual", track.BaseURL)
	}
}

func TestPickTrack_FallsBackToSecondLanguage(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "en-manual", LanguageCode: "en"},
		{BaseURL: "ja-manual", LanguageCode: "ja"},
	}

	track, _ := pickTrack(tracks, []string{"ko", "en"})
	if track.BaseURL != "en-manual" {
		t.Errorf("picked %s, want en-manual", track.BaseURL)
	}
}

func TestPickTrack_AutoGeneratedBeforeForeign(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "ja-manual", LanguageCode: "ja"},
		{BaseURL: "ko-asr", LanguageCode: "ko", Kind: "asr"},
	}

	track, _ := pickTrack(tracks, []string{"ko", "en"})
	if track.BaseURL != "ko-asr" {
		t.Errorf("picked %s, want ko-asr", track.BaseURL)
	}
}

func TestPickTrack_AnyTrackAsLastResort(t *testing.T) {
	tracks := []captionTrack{{BaseURL: "fr-manual", LanguageCode: "fr"}}
	track, ok := pickTrack(tracks, []string{"ko", "en"})
	if !ok || track.BaseURL != "fr-manual" {
		t.Errorf("picked %v %v, want fr-manual", track, ok)
	}
}

func TestPickTrack_NoTracks(t *testing.T) {
	if _, ok := pickTrack(nil, []string{"en"}); ok {
		t.Error("expected no track for empty track list")
	}
}

func TestParseTimedText(t *testing.T) {
	body := `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">hello</text>
  <text start="2.5" dur="3.0">world &amp; beyond</text>
  <text start="5.5" dur="1.0">  </text>
  <text start="6.5" dur="2.0">the end</text>
</transcript>`

	got, err := parseTimedText([]byte(body))
	if err != nil {
		t.Fatalf("parseTimedText: %v", err)
	}
	want := "hello world & beyond the end"
	if got != want {
		t.Errorf("parseTimedText = %q, want %q", got, want)
	}
}

func TestParseTimedText_Empty(t *testing.T) {
	if _, err := parseTimedText([]byte(`<transcript></transcript>`)); err == nil {
		t.Error("expected error for empty transcript")
	}
}

func TestParseTimedText_Malformed(t *testing.T) {
	if _, err := parseTimedText([]byte(`not xml at all`)); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestFetchCaptions_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	var captionsURL string
	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		var req innertubeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode player request: %v", err)
		}
		if req.VideoID != "vid-1" {
			t.Errorf("videoId = %s, want vid-1", req.VideoID)
		}
		if req.Context.Client.ClientName != "ANDROID" {
			t.Errorf("clientName = %s, want ANDROID", req.Context.Client.ClientName)
		}
		resp := map[string]any{
			"captions": map[string]any{
				"playerCaptionsTracklistRenderer": map[string]any{
					"captionTracks": []map[string]any{
						{"baseUrl": captionsURL, "languageCode": "ko"},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript><text start="0" dur="1">안녕하세요</text><text start="1" dur="1">여러분</text></transcript>`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	captionsURL = srv.URL + "/timedtext"

	client := &InnertubeClient{
		httpClient: srv.Client(),
		playerURL:  srv.URL + "/player",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := client.FetchCaptions(ctx, "vid-1", []string{"ko", "en"})
	if err != nil {
		t.Fatalf("FetchCaptions: %v", err)
	}
	if got != "안녕하세요 여러분" {
		t.Errorf("FetchCaptions = %q", got)
	}
}

func TestFetchCaptions_NoCaptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"playabilityStatus":{"status":"OK"}}`))
	}))
	defer srv.Close()

	client := &InnertubeClient{httpClient: srv.Client(), playerURL: srv.URL}

	_, err := client.FetchCaptions(context.Background(), "vid-1", []string{"en"})
	if err == nil || !strings.Contains(err.Error(), "no captions") {
		t.Errorf("err = %v, want no-captions error", err)
	}
}
