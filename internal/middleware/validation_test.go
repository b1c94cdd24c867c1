package middleware

import (
	"strings"
	"testing"
)

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"valid with dash and underscore", "abc-def_123", "abc-def_123", false},
		{"trims whitespace", "  dQw4w9WgXcQ  ", "dQw4w9WgXcQ", false},
		{"empty", "", "", true},
		{"too short", "abc", "", true},
		{"too long", "dQw4w9WgXcQQ", "", true},
		{"invalid chars", "dQw4w9 WgXc", "", true},
		{"sql injection", "a'; DROP--x", "", true},
		{"unicode", "abcédef123", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateVideoID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "viral cooking", "viral cooking", false},
		{"trims whitespace", "  golang tutorial  ", "golang tutorial", false},
		{"korean", "바이럴 영상", "바이럴 영상", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly max", strings.Repeat("k", MaxKeywordLen), strings.Repeat("k", MaxKeywordLen), false},
		{"over max", strings.Repeat("k", MaxKeywordLen+1), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateKeyword(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
