package signal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"SignalDesk/internal/domain/models"
)

func bar(y int, m time.Month, d int, close string) models.PriceBar {
	return models.PriceBar{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Close: decimal.RequireFromString(close),
	}
}

func threeDaySeries() models.PriceSeries {
	return models.PriceSeries{
		bar(2024, 1, 2, "100.50"),
		bar(2024, 1, 3, "101.25"),
		bar(2024, 1, 5, "99.75"),
	}
}

func TestReconcileExactDateMatch(t *testing.T) {
	trigger, present := Reconcile(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), threeDaySeries())
	if Format4(trigger) != "101.2500" {
		t.Fatalf("expected close at D2, got %q", Format4(trigger))
	}
	if Format4(present) != "99.7500" {
		t.Fatalf("present close should be last bar, got %q", Format4(present))
	}
}

func TestReconcileRoundsForwardOverGap(t *testing.T) {
	// Jan 4 has no bar; the trigger-day close must come from Jan 5, never Jan 3.
	trigger, _ := Reconcile(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), threeDaySeries())
	if Format4(trigger) != "99.7500" {
		t.Fatalf("expected forward-rounded close, got %q", Format4(trigger))
	}
}

func TestReconcileSignalAfterLastBarFallsBackToLast(t *testing.T) {
	trigger, _ := Reconcile(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), threeDaySeries())
	if Format4(trigger) != "99.7500" {
		t.Fatalf("expected last close fallback, got %q", Format4(trigger))
	}
}

func TestReconcileSignalBeforeFirstBar(t *testing.T) {
	trigger, _ := Reconcile(time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC), threeDaySeries())
	if Format4(trigger) != "100.5000" {
		t.Fatalf("expected first close, got %q", Format4(trigger))
	}
}

func TestReconcileEmptySeries(t *testing.T) {
	trigger, present := Reconcile(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), nil)
	if trigger.Valid || present.Valid {
		t.Fatalf("empty series must yield nulls")
	}
}

func TestReconcileIgnoresSignalTimeOfDay(t *testing.T) {
	trigger, _ := Reconcile(time.Date(2024, 1, 3, 18, 45, 0, 0, time.UTC), threeDaySeries())
	if Format4(trigger) != "101.2500" {
		t.Fatalf("intraday timestamp should still match its date, got %q", Format4(trigger))
	}
}
