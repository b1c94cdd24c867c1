package service

import (
	"testing"

	"github.com/guenbae-park01/youtube-best-tool/internal/model"
)

func TestGrade_UnknownSubscribers(t *testing.T) {
	// subscribers == 0 means "count unavailable", never a division.
	label, tier := Grade(0, 0)
	if tier != model.TierUnranked {
		t.Errorf("tier = %s, want %s", tier, model.TierUnranked)
	}
	if label != GradeLabelNoData {
		t.Errorf("label = %q, want %q", label, GradeLabelNoData)
	}

	if _, tier := Grade(1_000_000, 0); tier != model.TierUnranked {
		t.Errorf("high views with unknown subscribers: tier = %s, want %s", tier, model.TierUnranked)
	}
}

func TestGrade_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		views     int64
		subs      int64
		wantLabel string
		wantTier  model.GradeTier
	}{
		{"ratio 5.0 exactly", 500, 100, GradeLabelLegendary5, model.TierLegendary},
		{"ratio above 5.0", 1200, 100, GradeLabelLegendary5, model.TierLegendary},
		{"ratio 3.0 exactly", 300, 100, GradeLabelLegendary3, model.TierLegendary},
		{"ratio 4.99", 499, 100, GradeLabelLegendary3, model.TierLegendary},
		{"ratio 2.5", 250, 100, GradeLabelHero, model.TierHero},
		{"ratio 2.0 exactly", 200, 100, GradeLabelHero, model.TierHero},
		{"ratio 1.5", 150, 100, GradeLabelStrong, model.TierStrong},
		{"ratio 1.0 exactly", 100, 100, GradeLabelStrong, model.TierStrong},
		{"ratio 0.99", 99, 100, GradeLabelNormal, model.TierNormal},
		{"ratio 0.5", 50, 100, GradeLabelNormal, model.TierNormal},
		{"ratio near zero keeps catch-all label", 1, 100_000, GradeLabelNormal, model.TierNormal},
		{"zero views", 0, 100, GradeLabelNormal, model.TierNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, tier := Grade(tt.views, tt.subs)
			if tier != tt.wantTier {
				t.Errorf("Grade(%d, %d) tier = %s, want %s", tt.views, tt.subs, tier, tt.wantTier)
			}
			if label != tt.wantLabel {
				t.Errorf("Grade(%d, %d) label = %q, want %q", tt.views, tt.subs, label, tt.wantLabel)
			}
		})
	}
}

func TestGrade_Deterministic(t *testing.T) {
	l1, t1 := Grade(1234, 567)
	l2, t2 := Grade(1234, 567)
	if l1 != l2 || t1 != t2 {
		t.Error("Grade should be deterministic for the same input")
	}
}
