package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	messagesFetched *prometheus.CounterVec
	candidatesTotal *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	cacheResults    *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		messagesFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_messages_fetched_total",
				Help: "Total number of alert messages fetched from the source channel",
			},
			[]string{"venue"},
		),
		candidatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_candidates_total",
				Help: "Total number of candidate signals extracted",
			},
			[]string{"venue"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		runDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signaldesk_run_duration_seconds",
				Help:    "Duration of pipeline runs in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"venue"},
		),
		cacheResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_cache_results_total",
				Help: "Price cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// RecordMessagesFetched records messages fetched for a venue.
func (r *Recorder) RecordMessagesFetched(venue string, count int) {
	r.messagesFetched.WithLabelValues(venue).Add(float64(count))
}

// RecordCandidates records candidate signals extracted for a venue.
func (r *Recorder) RecordCandidates(venue string, count int) {
	r.candidatesTotal.WithLabelValues(venue).Add(float64(count))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRunDuration records pipeline run latency in seconds.
func (r *Recorder) RecordRunDuration(venue string, seconds float64) {
	r.runDuration.WithLabelValues(venue).Observe(seconds)
}

// RecordCacheResult records a price cache hit or miss.
func (r *Recorder) RecordCacheResult(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheResults.WithLabelValues(result).Inc()
}
