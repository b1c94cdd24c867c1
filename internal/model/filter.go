package model

import (
	"fmt"
	"time"
)

// DateWindow bounds search results to a trailing publish-date window.
type DateWindow string

const (
	WindowAll  DateWindow = "all"
	Window30d  DateWindow = "30d"
	Window90d  DateWindow = "90d"
	Window365d DateWindow = "365d"
)

// ParseDateWindow validates a window query parameter. Empty means "all".
func ParseDateWindow(s string) (DateWindow, error) {
	switch DateWindow(s) {
	case "", WindowAll:
		return WindowAll, nil
	case Window30d, Window90d, Window365d:
		return DateWindow(s), nil
	}
	return "", fmt.Errorf("invalid date window %q", s)
}

// PublishedAfter resolves the window into an absolute lower bound.
// The second return value is false when the window is unbounded.
func (w DateWindow) PublishedAfter(now time.Time) (time.Time, bool) {
	var days int
	switch w {
	case Window30d:
		days = 30
	case Window90d:
		days = 90
	case Window365d:
		days = 365
	default:
		return time.Time{}, false
	}
	return now.AddDate(0, 0, -days), true
}

// ShortFormMaxSeconds is the boundary between short-form and long-form videos.
const ShortFormMaxSeconds = 180

// DurationClass filters results by video length.
type DurationClass string

const (
	DurationAny   DurationClass = "any"
	DurationShort DurationClass = "short" // <= 180s
	DurationLong  DurationClass = "long"  // > 180s
)

// ParseDurationClass validates a duration query parameter. Empty means "any".
func ParseDurationClass(s string) (DurationClass, error) {
	switch DurationClass(s) {
	case "", DurationAny:
		return DurationAny, nil
	case DurationShort, DurationLong:
		return DurationClass(s), nil
	}
	return "", fmt.Errorf("invalid duration class %q", s)
}

// Matches reports whether a video of the given length passes the filter.
func (d DurationClass) Matches(seconds int) bool {
	switch d {
	case DurationShort:
		return seconds <= ShortFormMaxSeconds
	case DurationLong:
		return seconds > ShortFormMaxSeconds
	}
	return true
}

// SearchFilter holds the user's search parameters for one invocation.
type SearchFilter struct {
	Keyword  string
	MinViews int64
	MinSubs  int64
	Window   DateWindow
	Duration DurationClass
}
