package service

import "github.com/guenbae-park01/youtube-best-tool/internal/model"

// Grade labels shown on result cards.
const (
	GradeLabelLegendary5 = "Legendary 5.0x+"
	GradeLabelLegendary3 = "Legendary 3.0x+"
	GradeLabelHero       = "Hero 2.0x+"
	GradeLabelStrong     = "Strong 1.0x+"
	GradeLabelNormal     = "Normal 0.5x+"
	GradeLabelNoData     = "No data"
)

// Grade maps a (views, subscribers) pair to a performance label and tier.
//
// A subscriber count of 0 is the "count unavailable" sentinel, so those
// videos land in the unranked tier instead of dividing by zero. Thresholds
// are checked top-down; the first match wins:
//
//	ratio >= 5.0 → legendary ("5.0x+")
//	ratio >= 3.0 → legendary ("3.0x+")
//	ratio >= 2.0 → hero
//	ratio >= 1.0 → strong
//	otherwise    → normal
//
// The catch-all label reads "0.5x+" even for ratios below 0.5. That matches
// the badge text the dashboard has always shown, so it stays.
func Grade(views, subscribers int64) (string, model.GradeTier) {
	if subscribers == 0 {
		return GradeLabelNoData, model.TierUnranked
	}
	ratio := float64(views) / float64(subscribers)
	switch {
	case ratio >= 5.0:
		return GradeLabelLegendary5, model.TierLegendary
	case ratio >= 3.0:
		return GradeLabelLegendary3, model.TierLegendary
	case ratio >= 2.0:
		return GradeLabelHero, model.TierHero
	case ratio >= 1.0:
		return GradeLabelStrong, model.TierStrong
	}
	return GradeLabelNormal, model.TierNormal
}
