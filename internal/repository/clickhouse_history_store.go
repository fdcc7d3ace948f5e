package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"SignalDesk/internal/domain/models"
	"SignalDesk/internal/signal"
	pkgch "SignalDesk/pkg/clickhouse"
	applogger "SignalDesk/pkg/logger"
	"SignalDesk/pkg/util"
)

// CHHistoryStore persists per-run batch statistics in ClickHouse, keyed by
// (venue, date). The ReplacingMergeTree engine keeps the latest row per key,
// so re-running a day overwrites that day's record.
type CHHistoryStore struct {
	client *pkgch.Client
	db     *sql.DB
	l      *applogger.Logger
}

// Schema returns idempotent DDL for the history table.
func Schema() []string {
	return []string{
		`CREATE DATABASE IF NOT EXISTS signaldesk`,
		`CREATE TABLE IF NOT EXISTS signaldesk.signal_history (
            date Date,
            venue LowCardinality(String),
            bullish_count UInt32,
            valid_bullish_count UInt32,
            bearish_count UInt32,
            valid_bearish_count UInt32,
            updated_at DateTime DEFAULT now()
        ) ENGINE = ReplacingMergeTree(updated_at)
        ORDER BY (venue, date)`,
	}
}

// NewCHHistoryStore creates the store and ensures the schema exists.
func NewCHHistoryStore(ctx context.Context, ch *pkgch.Client, l *applogger.Logger) (*CHHistoryStore, error) {
	if err := ch.InitSchema(ctx, Schema()); err != nil {
		return nil, fmt.Errorf("history schema: %w", err)
	}
	return &CHHistoryStore{client: ch, db: ch.DB(), l: l}, nil
}

func (s *CHHistoryStore) Save(ctx context.Context, date string, venue models.Venue, stats models.SignalBatchStatistics) error {
	start := time.Now()
	const q = `
        INSERT INTO signaldesk.signal_history
            (date, venue, bullish_count, valid_bullish_count, bearish_count, valid_bearish_count)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := s.db.ExecContext(ctx, q, date, string(venue),
		stats.BullishCount, stats.ValidBullishCount,
		stats.BearishCount, stats.ValidBearishCount,
	)
	if err != nil {
		s.l.Error("history save error",
			applogger.String("venue", string(venue)),
			applogger.String("date", date),
			applogger.Error(err),
		)
		return fmt.Errorf("save history: %w", err)
	}
	s.l.Info("history saved",
		applogger.String("venue", string(venue)),
		applogger.String("date", date),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return nil
}

func (s *CHHistoryStore) Recent(ctx context.Context, venue models.Venue, limit int) ([]models.HistoryEntry, error) {
	const q = `
        SELECT date, venue, bullish_count, valid_bullish_count, bearish_count, valid_bearish_count
        FROM signaldesk.signal_history FINAL
        WHERE venue = ?
        ORDER BY date DESC
        LIMIT ?
    `
	rows, err := s.db.QueryContext(ctx, q, string(venue), limit)
	if err != nil {
		s.l.Error("history query error",
			applogger.String("venue", string(venue)),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := make([]models.HistoryEntry, 0, limit)
	for rows.Next() {
		var (
			date time.Time
			e    models.HistoryEntry
		)
		if err := rows.Scan(&date, &e.Venue,
			&e.BullishCount, &e.ValidBullishCount,
			&e.BearishCount, &e.ValidBearishCount,
		); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Date = date.Format(util.DateLayout)
		decorate(&e)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// decorate fills the derived ratio and strength strings on a raw entry.
func decorate(e *models.HistoryEntry) {
	e.InitialRatio = fmt.Sprintf("%d 好 : %d 淡", e.BullishCount, e.BearishCount)
	e.ActualRatio = fmt.Sprintf("%d 好 : %d 淡", e.ValidBullishCount, e.ValidBearishCount)
	e.BullishStrength = fmt.Sprintf("%d 好 : %d 有效 (%s%%)",
		e.BullishCount, e.ValidBullishCount, pctString(e.ValidBullishCount, e.BullishCount))
	e.BearishStrength = fmt.Sprintf("%d 淡 : %d 有效 (%s%%)",
		e.BearishCount, e.ValidBearishCount, pctString(e.ValidBearishCount, e.BearishCount))
}

func pctString(valid, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", signal.ValidityPct(valid, total))
}

func (s *CHHistoryStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *CHHistoryStore) Close() error {
	return s.client.Close()
}
