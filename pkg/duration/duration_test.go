package duration

import "testing"

func TestSeconds(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want int
	}{
		{"full form", "PT1H2M3S", 3723},
		{"hours only", "PT2H", 7200},
		{"minutes only", "PT25M", 1500},
		{"seconds only", "PT45S", 45},
		{"hours and seconds", "PT1H30S", 3630},
		{"minutes and seconds", "PT3M20S", 200},
		{"short form boundary", "PT3M", 180},
		{"just above boundary", "PT3M1S", 181},
		{"bare PT", "PT", 0},
		{"large values", "PT100H100M100S", 366100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Seconds(tt.iso); got != tt.want {
				t.Errorf("Seconds(%q) = %d, want %d", tt.iso, got, tt.want)
			}
		})
	}
}

func TestSeconds_NonMatchingInput(t *testing.T) {
	// Anything that does not start with "PT" falls back to 0, not an error.
	for _, iso := range []string{"", "1H2M3S", "P1DT2H", "garbage", "pt3m"} {
		if got := Seconds(iso); got != 0 {
			t.Errorf("Seconds(%q) = %d, want 0", iso, got)
		}
	}
}
