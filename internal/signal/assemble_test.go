package signal

import (
	"testing"
	"time"

	"SignalDesk/internal/domain/models"
)

func parsed(id string, ts time.Time, text string) models.ParsedMessage {
	return models.ParsedMessage{
		Message: models.RawMessage{ID: id, Timestamp: ts, Text: text},
		Fields:  ExtractFields(text),
	}
}

func window(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}

func TestAssembleBuildsCandidate(t *testing.T) {
	from, to := window(t)
	ts := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	text := "HKEX:700 信號觸發價=300.00\n策略失效價=290.00\n阻力1=310.00\n看好"

	batch := Assemble([]models.ParsedMessage{parsed("1", ts, text)}, models.VenueHKEX, from, to)
	if len(batch.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(batch.Candidates))
	}
	c := batch.Candidates[0]
	if c.DisplayTicker != "HKG:700" || c.LookupKey != "0700.HK" {
		t.Fatalf("unexpected ticker %q / key %q", c.DisplayTicker, c.LookupKey)
	}
	if c.Sentiment != models.SentimentBullish {
		t.Fatalf("expected bullish, got %q", c.Sentiment)
	}
	if Format4(c.TriggerPrice) != "300.0000" {
		t.Fatalf("unexpected trigger price %q", Format4(c.TriggerPrice))
	}
	if Format4(c.StopPrice) != "290.0000" {
		t.Fatalf("unexpected stop price %q", Format4(c.StopPrice))
	}
	if Format4(c.Resistances[0]) != "310.0000" {
		t.Fatalf("unexpected resistance1 %q", Format4(c.Resistances[0]))
	}
	if c.Resistances[1].Valid || c.Resistances[2].Valid {
		t.Fatalf("absent resistances should be null")
	}
	if batch.LookupKeys[0] != "0700.HK" {
		t.Fatalf("unexpected lookup keys %v", batch.LookupKeys)
	}
}

func TestAssembleSkipsMessagesOutsideWindow(t *testing.T) {
	from, to := window(t)
	early := parsed("1", time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC), "HKEX:700 看好")
	late := parsed("2", time.Date(2024, 2, 1, 0, 0, 1, 0, time.UTC), "HKEX:700 看好")

	batch := Assemble([]models.ParsedMessage{early, late}, models.VenueHKEX, from, to)
	if len(batch.Candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(batch.Candidates))
	}
}

func TestAssembleWindowIgnoresTimezone(t *testing.T) {
	from, to := window(t)
	// 2024-01-01 06:00 in UTC+8 is 2023-12-31 22:00 UTC. The naive comparison
	// discards the offset, so the message counts as inside the window.
	loc := time.FixedZone("HKT", 8*3600)
	msg := parsed("1", time.Date(2024, 1, 1, 6, 0, 0, 0, loc), "HKEX:700 看好")

	batch := Assemble([]models.ParsedMessage{msg}, models.VenueHKEX, from, to)
	if len(batch.Candidates) != 1 {
		t.Fatalf("naive window comparison failed")
	}
}

func TestAssembleSkipsEmptyVenueField(t *testing.T) {
	from, to := window(t)
	msg := parsed("1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "BATS:AAPL 看好")

	batch := Assemble([]models.ParsedMessage{msg}, models.VenueHKEX, from, to)
	if len(batch.Candidates) != 0 {
		t.Fatalf("message without target venue should be skipped")
	}
}

func TestAssembleDegradesMalformedNumbers(t *testing.T) {
	from, to := window(t)
	msg := parsed("1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"HKEX:700 信號觸發價=30.0.0\n策略失效價=abc\n看好")

	batch := Assemble([]models.ParsedMessage{msg}, models.VenueHKEX, from, to)
	if len(batch.Candidates) != 1 {
		t.Fatalf("malformed numbers must not drop the candidate")
	}
	c := batch.Candidates[0]
	if c.TriggerPrice.Valid || c.StopPrice.Valid {
		t.Fatalf("malformed numbers should degrade to null")
	}
}

func TestAssembleUnknownSentimentAndStrategy(t *testing.T) {
	from, to := window(t)
	msg := parsed("1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "HKEX:700 no glyph here")

	batch := Assemble([]models.ParsedMessage{msg}, models.VenueHKEX, from, to)
	c := batch.Candidates[0]
	if c.Sentiment != models.SentimentUnknown {
		t.Fatalf("expected unknown sentiment, got %q", c.Sentiment)
	}
	if c.StrategyLabel != "" {
		t.Fatalf("strategy label should be empty without a glyph, got %q", c.StrategyLabel)
	}
}

func TestAssembleStrategyLabelPrecedesGlyph(t *testing.T) {
	from, to := window(t)
	msg := parsed("1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Magic 9 HKEX:700 看淡")

	batch := Assemble([]models.ParsedMessage{msg}, models.VenueHKEX, from, to)
	c := batch.Candidates[0]
	if c.Sentiment != models.SentimentBearish {
		t.Fatalf("expected bearish, got %q", c.Sentiment)
	}
	if c.StrategyLabel != "Magic 9 HKEX:700" {
		t.Fatalf("unexpected strategy label %q", c.StrategyLabel)
	}
}

func TestAssembleEarliestGlyphWins(t *testing.T) {
	from, to := window(t)
	msg := parsed("1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "HKEX:700 看淡 然後 看好")

	batch := Assemble([]models.ParsedMessage{msg}, models.VenueHKEX, from, to)
	if batch.Candidates[0].Sentiment != models.SentimentBearish {
		t.Fatalf("earliest glyph should decide sentiment")
	}
}

func TestAssembleDistinctLookupKeys(t *testing.T) {
	from, to := window(t)
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	msgs := []models.ParsedMessage{
		parsed("1", ts, "HKEX:700 看好"),
		parsed("2", ts, "HKEX:700 看淡"),
		parsed("3", ts, "HKEX:9988 看好"),
	}

	batch := Assemble(msgs, models.VenueHKEX, from, to)
	if len(batch.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(batch.Candidates))
	}
	if len(batch.LookupKeys) != 2 {
		t.Fatalf("expected 2 distinct keys, got %v", batch.LookupKeys)
	}
}
