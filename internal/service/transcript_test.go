package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaptions struct {
	text      string
	err       error
	lastLangs []string
}

func (f *fakeCaptions) FetchCaptions(_ context.Context, _ string, langs []string) (string, error) {
	f.lastLangs = langs
	return f.text, f.err
}

func TestTranscriptFetcher_PassesLanguagePreference(t *testing.T) {
	captions := &fakeCaptions{text: "hello world"}
	f := NewTranscriptFetcher(captions, []string{"en", "ko"}, zerolog.Nop())

	text, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, []string{"en", "ko"}, captions.lastLangs)
}

func TestTranscriptFetcher_DefaultLanguages(t *testing.T) {
	captions := &fakeCaptions{text: "x"}
	f := NewTranscriptFetcher(captions, nil, zerolog.Nop())

	_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, []string{"ko", "en"}, captions.lastLangs)
}

func TestTranscriptFetcher_SurfacesUnavailable(t *testing.T) {
	captions := &fakeCaptions{err: errors.New("no caption tracks")}
	f := NewTranscriptFetcher(captions, nil, zerolog.Nop())

	text, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.Error(t, err)
	assert.Empty(t, text)
}
