package repository

import (
	"context"
	"time"

	"SignalDesk/internal/domain/models"
)

// MessageSource retrieves raw channel messages within a date window
// (inclusive bounds). Ordering follows the channel; filtering is done on
// naive timestamps.
type MessageSource interface {
	Messages(ctx context.Context, from, to time.Time) ([]models.RawMessage, error)
}

// PriceSource returns daily close series for a set of lookup keys. Keys the
// provider has no data for are simply absent from the result.
type PriceSource interface {
	FetchDaily(ctx context.Context, keys []string) (map[string]models.PriceSeries, error)
}

// HistoryStore persists the four raw counts of a run keyed by (date, venue)
// with last-write-wins semantics, and serves the most recent entries for a
// venue ordered by date descending.
type HistoryStore interface {
	Save(ctx context.Context, date string, venue models.Venue, stats models.SignalBatchStatistics) error
	Recent(ctx context.Context, venue models.Venue, limit int) ([]models.HistoryEntry, error)
	Health(ctx context.Context) error
	Close() error
}

// StatsPublisher emits batch statistics after each run.
type StatsPublisher interface {
	Publish(ctx context.Context, venue models.Venue, date string, stats models.SignalBatchStatistics) error
	Close() error
}

// Metrics records operational metrics for pipeline runs.
type Metrics interface {
	RecordMessagesFetched(venue string, n int)
	RecordCandidates(venue string, n int)
	RecordError(kind string)
	RecordRunDuration(venue string, seconds float64)
	RecordCacheResult(hit bool)
}
