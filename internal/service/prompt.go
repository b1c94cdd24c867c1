package service

import (
	"fmt"

	"github.com/guenbae-park01/youtube-best-tool/internal/model"
)

const (
	// TranscriptMaxChars is the hard cutoff applied to the script section of
	// the analysis prompt. The cut is by character count, not sentence-aware.
	TranscriptMaxChars = 15000

	// NoTranscriptPlaceholder fills the script section when no captions exist.
	NoTranscriptPlaceholder = "(no transcript)"
)

const promptFormat = `# Role: YouTube analysis expert
# Task: In-depth analysis of the video '%s'

[Video Info]
URL: https://youtu.be/%s
Thumbnail: %s
Performance: %s

[Script]
"""
%s...
"""

[Analysis Request]
1. [Vision] Thumbnail & opening alignment
2. [Script] Emotional triggers & logical structure
3. [Retention] Drop-off prevention devices
4. [Killer Moment] The segment viewers obsess over
5. [Action Plan] A benchmarking formula to apply`

// BuildPrompt renders the fixed analysis prompt for one video. Pure string
// templating: the same record and transcript always produce the same prompt.
func BuildPrompt(rec model.VideoRecord, transcript string) string {
	script := NoTranscriptPlaceholder
	if transcript != "" {
		script = truncateChars(transcript, TranscriptMaxChars)
	}
	return fmt.Sprintf(promptFormat,
		rec.Title, rec.VideoID, rec.ThumbnailURL, rec.GradeLabel, script)
}

// truncateChars cuts s to at most max characters (runes, so multi-byte
// scripts are not split mid-character).
func truncateChars(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
