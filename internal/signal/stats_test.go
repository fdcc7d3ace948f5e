package signal

import (
	"testing"

	"SignalDesk/internal/domain/models"
)

func evaluated(s models.Sentiment, valid bool) models.EvaluatedSignal {
	return models.EvaluatedSignal{
		CandidateSignal: models.CandidateSignal{Sentiment: s},
		IsValid:         valid,
	}
}

func TestSummarizeCountsAndPercentages(t *testing.T) {
	batch := []models.EvaluatedSignal{
		evaluated(models.SentimentBullish, true),
		evaluated(models.SentimentBullish, true),
		evaluated(models.SentimentBullish, false),
	}
	stats := Summarize(batch)
	if stats.BullishCount != 3 || stats.ValidBullishCount != 2 {
		t.Fatalf("unexpected bullish counts: %+v", stats)
	}
	if stats.BullishValidityPct != 66.7 {
		t.Fatalf("expected 66.7, got %v", stats.BullishValidityPct)
	}
	if stats.BearishCount != 0 || stats.BearishValidityPct != 0 {
		t.Fatalf("empty bearish side must report zero, got %+v", stats)
	}
}

func TestSummarizeIgnoresUnknownSentiment(t *testing.T) {
	batch := []models.EvaluatedSignal{
		evaluated(models.SentimentUnknown, false),
		evaluated(models.SentimentBearish, true),
	}
	stats := Summarize(batch)
	if stats.BullishCount != 0 || stats.BearishCount != 1 {
		t.Fatalf("unknown sentiment must not be counted: %+v", stats)
	}
	if stats.BearishValidityPct != 100 {
		t.Fatalf("expected 100, got %v", stats.BearishValidityPct)
	}
}

func TestSummarizeEmptyBatch(t *testing.T) {
	stats := Summarize(nil)
	if stats != (models.SignalBatchStatistics{}) {
		t.Fatalf("empty batch must produce zero statistics: %+v", stats)
	}
}
