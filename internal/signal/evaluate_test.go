package signal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"SignalDesk/internal/domain/models"
)

func num(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func candidate(sentiment models.Sentiment, trigger, strategy string) models.CandidateSignal {
	c := models.CandidateSignal{
		DisplayTicker: "HKG:700",
		LookupKey:     "0700.HK",
		SignalDate:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Sentiment:     sentiment,
		StrategyLabel: strategy,
	}
	if trigger != "" {
		c.TriggerPrice = num(trigger)
	}
	return c
}

func TestEvaluateBullishBoundaryInclusive(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "100.0000", ""), num("100.0000"), num("100.0000"))
	if !e.IsValid {
		t.Fatalf("close == trigger must be valid for bullish breakout")
	}
}

func TestEvaluateBullishBelowTriggerInvalid(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "100.0000", ""), num("99.9999"), num("99.9999"))
	if e.IsValid {
		t.Fatalf("close below trigger must be invalid for bullish breakout")
	}
	if e.PLPercent.Valid {
		t.Fatalf("invalid signals carry no PL")
	}
}

func TestEvaluateMagicInvertsComparison(t *testing.T) {
	// Magic strategies treat the trigger as a ceiling for bullish signals.
	e := Evaluate(candidate(models.SentimentBullish, "100.0000", "Magic 9"), num("100.0001"), num("100.0001"))
	if e.IsValid {
		t.Fatalf("magic bullish with close above trigger must be invalid")
	}
	e = Evaluate(candidate(models.SentimentBullish, "100.0000", "Magic 13"), num("99.5000"), num("99.5000"))
	if !e.IsValid {
		t.Fatalf("magic bullish with close below trigger must be valid")
	}
}

func TestEvaluateBearishComparisons(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBearish, "100.0000", ""), num("99.0000"), num("99.0000"))
	if !e.IsValid {
		t.Fatalf("bearish with close below trigger must be valid")
	}
	e = Evaluate(candidate(models.SentimentBearish, "100.0000", "Magic 9"), num("101.0000"), num("101.0000"))
	if !e.IsValid {
		t.Fatalf("magic bearish with close above trigger must be valid")
	}
}

func TestEvaluateUnknownSentimentNeverValid(t *testing.T) {
	e := Evaluate(candidate(models.SentimentUnknown, "100.0000", ""), num("150.0000"), num("150.0000"))
	if e.IsValid {
		t.Fatalf("unknown sentiment must never be valid")
	}
}

func TestEvaluateMissingTriggerPriceInvalid(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "", ""), num("100.0000"), num("100.0000"))
	if e.IsValid {
		t.Fatalf("missing trigger price must be invalid")
	}
}

func TestEvaluateMissingTriggerDayCloseInvalid(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "100.0000", ""), decimal.NullDecimal{}, num("100.0000"))
	if e.IsValid {
		t.Fatalf("missing trigger-day close must be invalid")
	}
}

func TestEvaluatePLBullish(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "50.0000", ""), num("55.0000"), num("55.0000"))
	if got := Format4(e.PLPercent); got != "10.0000" {
		t.Fatalf("expected 10.0000, got %q", got)
	}
}

func TestEvaluatePLBearish(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBearish, "50.0000", ""), num("45.0000"), num("45.0000"))
	if got := Format4(e.PLPercent); got != "11.1111" {
		t.Fatalf("expected 11.1111, got %q", got)
	}
}

func TestEvaluatePLUsesPresentCloseNotTriggerDayClose(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "50.0000", ""), num("55.0000"), num("60.0000"))
	if got := Format4(e.PLPercent); got != "20.0000" {
		t.Fatalf("PL must use present close, got %q", got)
	}
}

func TestEvaluatePLNullOnZeroTrigger(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "0", ""), num("55.0000"), num("55.0000"))
	if e.PLPercent.Valid {
		t.Fatalf("zero trigger price must yield null PL")
	}
}

func TestEvaluatePLNullOnMissingPresentClose(t *testing.T) {
	e := Evaluate(candidate(models.SentimentBullish, "50.0000", ""), num("55.0000"), decimal.NullDecimal{})
	if e.PLPercent.Valid {
		t.Fatalf("missing present close must yield null PL")
	}
}

func TestFormat4(t *testing.T) {
	if got := Format4(num("10")); got != "10.0000" {
		t.Fatalf("expected 10.0000, got %q", got)
	}
	if got := Format4(decimal.NullDecimal{}); got != "" {
		t.Fatalf("null must format to empty string, got %q", got)
	}
}

func TestParseDecimalMalformed(t *testing.T) {
	if d := parseDecimal("30.0.0"); d.Valid {
		t.Fatalf("malformed number must parse to null")
	}
	if d := parseDecimal(""); d.Valid {
		t.Fatalf("empty string must parse to null")
	}
	if d := parseDecimal(" 300.00 "); !d.Valid || d.Decimal.StringFixed(2) != "300.00" {
		t.Fatalf("surrounding whitespace should be tolerated")
	}
}

func TestRowFormatsNullsAsEmpty(t *testing.T) {
	e := Evaluate(candidate(models.SentimentUnknown, "", ""), decimal.NullDecimal{}, decimal.NullDecimal{})
	row := Row(e)
	if row.TriggerPrice != "" || row.TriggerDayClose != "" || row.PresentClose != "" || row.PLPercent != "" {
		t.Fatalf("null fields must render empty, got %+v", row)
	}
	if row.SignalDate != "2024-01-02" {
		t.Fatalf("unexpected signal date %q", row.SignalDate)
	}
}
