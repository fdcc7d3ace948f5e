package signal

import (
	"math"

	"SignalDesk/internal/domain/models"
)

// round1 rounds a percentage to one decimal place, the precision batch and
// history percentages are reported at (per-signal values stay at four).
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// validityPct returns valid/total as a percentage, 0 when total is 0.
func validityPct(valid, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(valid) / float64(total) * 100)
}

// Summarize reduces an evaluated batch into per-sentiment counts and
// validity ratios. Pure: no state, no side effects.
func Summarize(signals []models.EvaluatedSignal) models.SignalBatchStatistics {
	var stats models.SignalBatchStatistics
	for _, s := range signals {
		switch s.Sentiment {
		case models.SentimentBullish:
			stats.BullishCount++
			if s.IsValid {
				stats.ValidBullishCount++
			}
		case models.SentimentBearish:
			stats.BearishCount++
			if s.IsValid {
				stats.ValidBearishCount++
			}
		}
	}
	stats.BullishValidityPct = validityPct(stats.ValidBullishCount, stats.BullishCount)
	stats.BearishValidityPct = validityPct(stats.ValidBearishCount, stats.BearishCount)
	return stats
}

// ValidityPct is exposed for history ratio strings derived at read time.
func ValidityPct(valid, total int) float64 {
	return validityPct(valid, total)
}
