package ingest

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// metricsOnce ensures metrics are registered only once
	metricsOnce sync.Once

	// ingestRequestsTotal tracks ingestion attempts by result
	ingestRequestsTotal *prometheus.CounterVec

	// ingestDuration tracks latency of ingestion requests
	ingestDuration prometheus.Histogram
)

// InitMetrics registers all Prometheus metrics for the ingestion client.
// This should be called once at application startup.
func InitMetrics() {
	metricsOnce.Do(func() {
		ingestRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loganalytics_ingest_requests_total",
				Help: "Total number of Log Analytics ingestion requests by result",
			},
			[]string{"result"},
		)

		ingestDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "loganalytics_ingest_duration_seconds",
				Help:    "Duration of Log Analytics ingestion requests in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
		)
	})
}

// RecordRequest records an ingestion attempt.
// result: "accepted", "signature_error", "request_error", "connection_error", "http_4xx", "http_5xx"
func RecordRequest(result string) {
	if ingestRequestsTotal != nil {
		ingestRequestsTotal.WithLabelValues(result).Inc()
	}
}

// IngestTimer is a helper for timing ingestion requests
type IngestTimer struct {
	start time.Time
}

// StartTimer creates a new timer for measuring ingestion duration
func StartTimer() *IngestTimer {
	return &IngestTimer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer started
func (t *IngestTimer) ObserveDuration() {
	if t != nil && ingestDuration != nil {
		ingestDuration.Observe(time.Since(t.start).Seconds())
	}
}
