package signal

import (
	"time"

	"github.com/shopspring/decimal"

	"SignalDesk/internal/domain/models"
)

// Reconcile finds the trigger-day close and the present close for one signal.
//
// The trigger-day close is the earliest close on or after the signal date:
// a signal landing on a weekend or holiday rounds forward to the next trading
// day, never backward. When the signal date is past the last available bar
// the last close is used. The present close is always the last bar's close.
// An empty or absent series yields nulls for both.
func Reconcile(signalDate time.Time, series models.PriceSeries) (triggerDayClose, presentClose decimal.NullDecimal) {
	if len(series) == 0 {
		return decimal.NullDecimal{}, decimal.NullDecimal{}
	}

	last := series[len(series)-1]
	presentClose = decimal.NullDecimal{Decimal: last.Close, Valid: true}

	day := DateOnly(signalDate)
	for _, bar := range series {
		if !bar.Date.Before(day) {
			return decimal.NullDecimal{Decimal: bar.Close, Valid: true}, presentClose
		}
	}
	return decimal.NullDecimal{Decimal: last.Close, Valid: true}, presentClose
}
