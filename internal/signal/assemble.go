package signal

import (
	"regexp"
	"strings"
	"time"

	"SignalDesk/internal/domain/models"
)

var (
	firstTokenRe  = regexp.MustCompile(`^\S+`)
	triggerRe     = regexp.MustCompile(labelTrigger + `\s*=\s*([0-9.]+)`)
	stopRe        = regexp.MustCompile(labelStop + `\s*=\s*([0-9.]+)`)
	resistanceRes = [3]*regexp.Regexp{
		regexp.MustCompile(`阻力\s*1\s*=\s*([0-9.]+)`),
		regexp.MustCompile(`阻力\s*2\s*=\s*([0-9.]+)`),
		regexp.MustCompile(`阻力\s*3\s*=\s*([0-9.]+)`),
	}
)

// Sentiment glyphs. A message carries at most one directional bias: the
// earliest glyph occurrence wins.
const (
	glyphBullish = "看好"
	glyphBearish = "看淡"
)

// Batch is the assembler output: candidate signals for one venue plus the
// distinct lookup keys the price provider must be asked for.
type Batch struct {
	Candidates []models.CandidateSignal
	LookupKeys []string
}

// Naive strips the timezone from a timestamp so window bounds and message
// times compare as local wall-clock values.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// DateOnly truncates a timestamp to its date component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InWindow reports whether ts falls inside [from, to], comparing naive values.
func InWindow(ts, from, to time.Time) bool {
	n := Naive(ts)
	return !n.Before(Naive(from)) && !n.After(Naive(to))
}

// detectSentiment scans the full text for the earliest sentiment glyph and
// returns the bias plus the glyph's byte offset (-1 when absent).
func detectSentiment(text string) (models.Sentiment, int) {
	bull := strings.Index(text, glyphBullish)
	bear := strings.Index(text, glyphBearish)
	switch {
	case bull < 0 && bear < 0:
		return models.SentimentUnknown, -1
	case bear < 0 || (bull >= 0 && bull < bear):
		return models.SentimentBullish, bull
	default:
		return models.SentimentBearish, bear
	}
}

// strategyLabel is the trimmed text preceding the first sentiment glyph,
// empty when no glyph is present.
func strategyLabel(text string, glyphIdx int) string {
	if glyphIdx < 0 {
		return ""
	}
	return strings.TrimSpace(text[:glyphIdx])
}

// Assemble filters parsed messages to the window and target venue and builds
// candidate signals. A single message's extraction failures degrade fields to
// null rather than aborting the batch; only an unrecoverable ticker token
// skips the message for this venue.
func Assemble(msgs []models.ParsedMessage, venue models.Venue, from, to time.Time) Batch {
	var batch Batch
	seen := make(map[string]bool)

	for _, pm := range msgs {
		if !InWindow(pm.Message.Timestamp, from, to) {
			continue
		}
		rawField := pm.Fields.Venues[venue]
		if rawField == "" {
			continue
		}
		token := firstTokenRe.FindString(rawField)
		if token == "" {
			continue
		}

		sentiment, glyphIdx := detectSentiment(pm.Fields.FullText)
		cand := models.CandidateSignal{
			DisplayTicker: DisplayTicker(token, venue),
			LookupKey:     LookupKey(token, venue),
			SignalDate:    DateOnly(pm.Message.Timestamp),
			Sentiment:     sentiment,
			TriggerPrice:  parseLabeled(rawField, triggerRe),
			StopPrice:     parseLabeled(pm.Fields.StopLoss, stopRe),
			StrategyLabel: strategyLabel(pm.Fields.FullText, glyphIdx),
		}
		for i, re := range resistanceRes {
			cand.Resistances[i] = parseLabeled(pm.Fields.FullText, re)
		}

		batch.Candidates = append(batch.Candidates, cand)
		if !seen[cand.LookupKey] {
			seen[cand.LookupKey] = true
			batch.LookupKeys = append(batch.LookupKeys, cand.LookupKey)
		}
	}
	return batch
}
