package usecase

import (
	"context"
	"time"

	"SignalDesk/internal/domain/models"
	"SignalDesk/internal/domain/repository"
	"SignalDesk/internal/signal"
	"SignalDesk/pkg/cache"
	applogger "SignalDesk/pkg/logger"
	"SignalDesk/pkg/util"
)

// SignalRunner orchestrates one pipeline run: fetch messages, extract fields,
// assemble candidates, reconcile against daily closes, evaluate, summarize,
// persist the batch statistics, and emit them to the stats topic.
type SignalRunner struct {
	messages  repository.MessageSource
	prices    repository.PriceSource
	history   repository.HistoryStore
	publisher repository.StatsPublisher
	metrics   repository.Metrics
	cache     cache.Service
	cacheTTL  time.Duration
	log       *applogger.Logger
	now       func() time.Time
}

func NewSignalRunner(
	messages repository.MessageSource,
	prices repository.PriceSource,
	history repository.HistoryStore,
	publisher repository.StatsPublisher,
	metrics repository.Metrics,
	cacheSvc cache.Service,
	cacheTTL time.Duration,
	log *applogger.Logger,
) *SignalRunner {
	if cacheTTL <= 0 {
		cacheTTL = 15 * time.Minute
	}
	return &SignalRunner{
		messages:  messages,
		prices:    prices,
		history:   history,
		publisher: publisher,
		metrics:   metrics,
		cache:     cacheSvc,
		cacheTTL:  cacheTTL,
		log:       log,
		now:       time.Now,
	}
}

// Run executes the pipeline for one venue over [from, to].
func (r *SignalRunner) Run(ctx context.Context, venue models.Venue, from, to time.Time) (*models.SignalReport, error) {
	start := time.Now()

	raw, err := r.messages.Messages(ctx, from, to)
	if err != nil {
		r.metrics.RecordError("message_fetch")
		return nil, err
	}
	r.metrics.RecordMessagesFetched(string(venue), len(raw))

	parsed := make([]models.ParsedMessage, 0, len(raw))
	for _, m := range raw {
		parsed = append(parsed, models.ParsedMessage{
			Message: m,
			Fields:  signal.ExtractFields(m.Text),
		})
	}

	batch := signal.Assemble(parsed, venue, from, to)
	r.metrics.RecordCandidates(string(venue), len(batch.Candidates))

	series, err := r.priceSeries(ctx, batch.LookupKeys)
	if err != nil {
		r.metrics.RecordError("price_fetch")
		return nil, err
	}

	evaluated := make([]models.EvaluatedSignal, 0, len(batch.Candidates))
	rows := make([]models.SignalRow, 0, len(batch.Candidates))
	for _, c := range batch.Candidates {
		triggerDayClose, presentClose := signal.Reconcile(c.SignalDate, series[c.LookupKey])
		e := signal.Evaluate(c, triggerDayClose, presentClose)
		evaluated = append(evaluated, e)
		rows = append(rows, signal.Row(e))
	}

	stats := signal.Summarize(evaluated)

	// Persist and emit only when the batch produced signals. An empty run
	// must not write a zero-count row: under last-write-wins it would
	// overwrite a real record saved for the same (date, venue) key.
	if len(batch.Candidates) > 0 {
		runDate := r.now().Format(util.DateLayout)
		if d := batch.Candidates[0].SignalDate; !d.IsZero() {
			runDate = d.Format(util.DateLayout)
		}
		if err := r.history.Save(ctx, runDate, venue, stats); err != nil {
			r.metrics.RecordError("history_save")
			return nil, err
		}

		// Emitting stats is best-effort; a broker outage must not fail the run.
		if err := r.publisher.Publish(ctx, venue, runDate, stats); err != nil {
			r.metrics.RecordError("stats_publish")
			r.log.Warn("stats publish failed",
				applogger.String("venue", string(venue)),
				applogger.Error(err),
			)
		}
	}

	r.metrics.RecordRunDuration(string(venue), time.Since(start).Seconds())
	r.log.Info("pipeline run complete",
		applogger.String("venue", string(venue)),
		applogger.Int("messages", len(raw)),
		applogger.Int("candidates", len(batch.Candidates)),
		applogger.Duration("duration_ms", time.Since(start)),
	)

	return &models.SignalReport{
		Signals:       rows,
		Statistics:    stats,
		TotalMessages: len(raw),
	}, nil
}

// priceSeries resolves daily close series for the given lookup keys, serving
// from cache where possible and fetching only the misses.
func (r *SignalRunner) priceSeries(ctx context.Context, keys []string) (map[string]models.PriceSeries, error) {
	out := make(map[string]models.PriceSeries, len(keys))
	missing := make([]string, 0, len(keys))

	for _, key := range keys {
		var series models.PriceSeries
		if err := r.cache.Get(ctx, priceCacheKey(key), &series); err == nil {
			r.metrics.RecordCacheResult(true)
			out[key] = series
			continue
		}
		r.metrics.RecordCacheResult(false)
		missing = append(missing, key)
	}

	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := r.prices.FetchDaily(ctx, missing)
	if err != nil {
		return nil, err
	}
	for key, series := range fetched {
		out[key] = series
		if err := r.cache.Set(ctx, priceCacheKey(key), series, r.cacheTTL); err != nil {
			r.log.Warn("price cache set failed",
				applogger.String("key", key),
				applogger.Error(err),
			)
		}
	}
	return out, nil
}

func priceCacheKey(lookupKey string) string {
	return "prices:daily:" + lookupKey
}
