package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue identifies one supported exchange/market feed. The set is closed:
// messages label their ticker lines with exactly these six codes.
type Venue string

const (
	VenueHKEX  Venue = "HKEX"
	VenueBATS  Venue = "BATS"
	VenueOANDA Venue = "OANDA"
	VenueSSE   Venue = "SSE_DLY"
	VenueHSI   Venue = "HSI"
	VenueZSE   Venue = "ZSE_DLY"
)

// Venues lists all supported venue codes in the order they are matched
// against message lines.
var Venues = []Venue{VenueHKEX, VenueBATS, VenueOANDA, VenueSSE, VenueHSI, VenueZSE}

// ParseVenue returns the venue for a code string, false if unknown.
func ParseVenue(s string) (Venue, bool) {
	for _, v := range Venues {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// Sentiment is the directional bias of a signal, derived from the 看好/看淡
// glyph in the message body.
type Sentiment string

const (
	SentimentBullish Sentiment = "bullish"
	SentimentBearish Sentiment = "bearish"
	SentimentUnknown Sentiment = ""
)

// RawMessage is one already-retrieved chat message. Immutable; identity is ID.
type RawMessage struct {
	ID        string
	Timestamp time.Time
	Text      string
}

// ExtractedFields is the flat record produced from one message text.
// Venues is pre-seeded with every supported code so absent fields read as
// empty strings rather than missing keys.
type ExtractedFields struct {
	Venues   map[Venue]string
	StopLoss string
	DateText string
	Remark   string
	FullText string
}

// NewExtractedFields returns a record with all fields defaulted and the
// original text retained for later free-text scans.
func NewExtractedFields(text string) ExtractedFields {
	venues := make(map[Venue]string, len(Venues))
	for _, v := range Venues {
		venues[v] = ""
	}
	return ExtractedFields{Venues: venues, FullText: text}
}

// ParsedMessage pairs a raw message with its extracted fields.
type ParsedMessage struct {
	Message RawMessage
	Fields  ExtractedFields
}

// CandidateSignal is one signal extracted from one message for one venue.
// DisplayTicker and LookupKey are always non-empty; messages without a
// parseable ticker token never produce a candidate.
type CandidateSignal struct {
	DisplayTicker string
	LookupKey     string
	SignalDate    time.Time
	Sentiment     Sentiment
	TriggerPrice  decimal.NullDecimal
	StopPrice     decimal.NullDecimal
	Resistances   [3]decimal.NullDecimal
	StrategyLabel string
}

// PriceBar is one daily close. Series are ordered by date; weekends and
// holidays are naturally absent.
type PriceBar struct {
	Date  time.Time       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// PriceSeries is the daily close history for one lookup key.
type PriceSeries []PriceBar

// EvaluatedSignal is a candidate plus its price reconciliation and verdict.
// PLPercent is set only when IsValid is true and both trigger price and
// present close are usable.
type EvaluatedSignal struct {
	CandidateSignal
	TriggerDayClose decimal.NullDecimal
	PresentClose    decimal.NullDecimal
	PLPercent       decimal.NullDecimal
	IsValid         bool
}

// SignalBatchStatistics summarizes one evaluated batch. Percentages are
// rounded to one decimal place and are 0 when the denominator is 0.
type SignalBatchStatistics struct {
	BullishCount       int     `json:"bullish_count"`
	BearishCount       int     `json:"bearish_count"`
	ValidBullishCount  int     `json:"valid_bullish_count"`
	ValidBearishCount  int     `json:"valid_bearish_count"`
	BullishValidityPct float64 `json:"bullish_validity_pct"`
	BearishValidityPct float64 `json:"bearish_validity_pct"`
}

// SignalRow is the flat serialization of an EvaluatedSignal. All decimal
// fields are formatted to exactly four fractional digits; null values format
// to the empty string.
type SignalRow struct {
	DisplayTicker   string `json:"display_ticker" csv:"display_ticker"`
	LookupKey       string `json:"lookup_key" csv:"lookup_key"`
	SignalDate      string `json:"signal_date" csv:"signal_date"`
	Sentiment       string `json:"sentiment" csv:"sentiment"`
	TriggerPrice    string `json:"trigger_price" csv:"trigger_price"`
	StopPrice       string `json:"stop_price" csv:"stop_price"`
	Resistance1     string `json:"resistance1" csv:"resistance1"`
	Resistance2     string `json:"resistance2" csv:"resistance2"`
	Resistance3     string `json:"resistance3" csv:"resistance3"`
	StrategyLabel   string `json:"strategy_label" csv:"strategy_label"`
	TriggerDayClose string `json:"trigger_day_close" csv:"trigger_day_close"`
	PresentClose    string `json:"present_close" csv:"present_close"`
	PLPercent       string `json:"pl_percent" csv:"pl_percent"`
	IsValid         bool   `json:"is_valid" csv:"is_valid"`
}

// HistoryEntry is one persisted run record for a (date, venue) pair, plus
// ratio strings derived at read time.
type HistoryEntry struct {
	Date              string `json:"date"`
	Venue             string `json:"venue"`
	BullishCount      int    `json:"bullish_count"`
	ValidBullishCount int    `json:"valid_bullish_count"`
	BearishCount      int    `json:"bearish_count"`
	ValidBearishCount int    `json:"valid_bearish_count"`
	InitialRatio      string `json:"initial_ratio"`
	ActualRatio       string `json:"actual_ratio"`
	BullishStrength   string `json:"bullish_strength"`
	BearishStrength   string `json:"bearish_strength"`
}

// SignalReport is the full result of one pipeline run.
type SignalReport struct {
	Signals       []SignalRow           `json:"signals"`
	Statistics    SignalBatchStatistics `json:"statistics"`
	TotalMessages int                   `json:"total_messages"`
}
