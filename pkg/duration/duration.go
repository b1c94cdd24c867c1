package duration

import (
	"regexp"
	"strconv"
)

// iso8601Re matches the PT#H#M#S subset used by the YouTube Data API.
// Any of the three components may be absent.
var iso8601Re = regexp.MustCompile(`^PT(\d+H)?(\d+M)?(\d+S)?`)

// Seconds converts an ISO-8601 duration like "PT1H2M3S" into total seconds.
// Inputs that do not match the expected pattern yield 0 — the platform's
// duration field is trusted to be well-formed, so a mismatch is treated as
// "no duration" rather than an error.
func Seconds(iso string) int {
	m := iso8601Re.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}
	return component(m[1])*3600 + component(m[2])*60 + component(m[3])
}

// component parses a captured group like "25M", dropping the unit suffix.
func component(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0
	}
	return n
}
