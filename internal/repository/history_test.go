package repository

import (
	"testing"

	"SignalDesk/internal/domain/models"
)

func TestDecorateRatios(t *testing.T) {
	e := models.HistoryEntry{
		BullishCount:      3,
		ValidBullishCount: 2,
		BearishCount:      2,
		ValidBearishCount: 1,
	}
	decorate(&e)

	if e.InitialRatio != "3 好 : 2 淡" {
		t.Fatalf("unexpected initial ratio %q", e.InitialRatio)
	}
	if e.ActualRatio != "2 好 : 1 淡" {
		t.Fatalf("unexpected actual ratio %q", e.ActualRatio)
	}
	if e.BullishStrength != "3 好 : 2 有效 (66.7%)" {
		t.Fatalf("unexpected bullish strength %q", e.BullishStrength)
	}
	if e.BearishStrength != "2 淡 : 1 有效 (50.0%)" {
		t.Fatalf("unexpected bearish strength %q", e.BearishStrength)
	}
}

func TestDecorateZeroCounts(t *testing.T) {
	var e models.HistoryEntry
	decorate(&e)

	if e.BullishStrength != "0 好 : 0 有效 (0%)" {
		t.Fatalf("unexpected bullish strength %q", e.BullishStrength)
	}
	if e.BearishStrength != "0 淡 : 0 有效 (0%)" {
		t.Fatalf("unexpected bearish strength %q", e.BearishStrength)
	}
}
