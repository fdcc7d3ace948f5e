package signal

import (
	"strings"

	"github.com/shopspring/decimal"

	"SignalDesk/internal/domain/models"
)

// Strategy names whose trigger is a ceiling/floor touch instead of a
// breakout, inverting the validity comparison direction.
var magicStrategies = []string{"Magic 9", "Magic 13"}

var oneHundred = decimal.NewFromInt(100)

func isMagicStrategy(label string) bool {
	for _, s := range magicStrategies {
		if strings.Contains(label, s) {
			return true
		}
	}
	return false
}

// isValid applies the sentiment/strategy comparison table. The trigger-day
// close is rounded to four decimal places first, matching the precision the
// value is reported at. Boundaries are inclusive.
func isValid(c models.CandidateSignal, triggerDayClose decimal.NullDecimal) bool {
	if c.Sentiment == models.SentimentUnknown || !c.TriggerPrice.Valid || !triggerDayClose.Valid {
		return false
	}
	trigger := c.TriggerPrice.Decimal
	close := triggerDayClose.Decimal.Round(4)
	magic := isMagicStrategy(c.StrategyLabel)

	switch c.Sentiment {
	case models.SentimentBullish:
		if magic {
			return close.LessThanOrEqual(trigger)
		}
		return close.GreaterThanOrEqual(trigger)
	case models.SentimentBearish:
		if magic {
			return close.GreaterThanOrEqual(trigger)
		}
		return close.LessThanOrEqual(trigger)
	}
	return false
}

// plPercent computes the current profit/loss percentage against the present
// close. Null when the signal is invalid, when either leg is missing, or when
// a denominator would be zero.
func plPercent(c models.CandidateSignal, presentClose decimal.NullDecimal, valid bool) decimal.NullDecimal {
	if !valid || !c.TriggerPrice.Valid || !presentClose.Valid {
		return decimal.NullDecimal{}
	}
	trigger := c.TriggerPrice.Decimal
	present := presentClose.Decimal

	switch c.Sentiment {
	case models.SentimentBullish:
		if trigger.IsZero() {
			return decimal.NullDecimal{}
		}
		pl := present.Div(trigger).Sub(decimal.NewFromInt(1)).Mul(oneHundred)
		return decimal.NullDecimal{Decimal: pl, Valid: true}
	case models.SentimentBearish:
		if present.IsZero() || trigger.IsZero() {
			return decimal.NullDecimal{}
		}
		pl := trigger.Div(present).Sub(decimal.NewFromInt(1)).Mul(oneHundred)
		return decimal.NullDecimal{Decimal: pl, Valid: true}
	}
	return decimal.NullDecimal{}
}

// Evaluate classifies one candidate against its reconciled prices.
func Evaluate(c models.CandidateSignal, triggerDayClose, presentClose decimal.NullDecimal) models.EvaluatedSignal {
	valid := isValid(c, triggerDayClose)
	return models.EvaluatedSignal{
		CandidateSignal: c,
		TriggerDayClose: triggerDayClose,
		PresentClose:    presentClose,
		PLPercent:       plPercent(c, presentClose, valid),
		IsValid:         valid,
	}
}

// Row flattens an evaluated signal into its serializable form, formatting
// every decimal to four fractional digits (empty string for null).
func Row(e models.EvaluatedSignal) models.SignalRow {
	return models.SignalRow{
		DisplayTicker:   e.DisplayTicker,
		LookupKey:       e.LookupKey,
		SignalDate:      e.SignalDate.Format("2006-01-02"),
		Sentiment:       string(e.Sentiment),
		TriggerPrice:    Format4(e.TriggerPrice),
		StopPrice:       Format4(e.StopPrice),
		Resistance1:     Format4(e.Resistances[0]),
		Resistance2:     Format4(e.Resistances[1]),
		Resistance3:     Format4(e.Resistances[2]),
		StrategyLabel:   e.StrategyLabel,
		TriggerDayClose: Format4(e.TriggerDayClose),
		PresentClose:    Format4(e.PresentClose),
		PLPercent:       Format4(e.PLPercent),
		IsValid:         e.IsValid,
	}
}
