package handler

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// metricsOnce ensures metrics are registered only once
	metricsOnce sync.Once

	// eventsTotal tracks processed findings by outcome
	eventsTotal *prometheus.CounterVec

	// processDuration tracks end-to-end handling latency
	processDuration prometheus.Histogram
)

// InitMetrics registers all Prometheus metrics for the event handler.
// This should be called once at application startup.
func InitMetrics() {
	metricsOnce.Do(func() {
		eventsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forwarder_events_total",
				Help: "Total number of CWP findings handled by outcome",
			},
			[]string{"outcome"},
		)

		processDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forwarder_process_duration_seconds",
				Help:    "Duration of end-to-end finding handling in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
		)
	})
}

// RecordEvent records one handled finding.
// outcome: "forwarded", "discarded", "unsupported", "malformed", "error"
func RecordEvent(outcome string) {
	if eventsTotal != nil {
		eventsTotal.WithLabelValues(outcome).Inc()
	}
}

// HandleTimer is a helper for timing event handling
type HandleTimer struct {
	start time.Time
}

// StartTimer creates a new timer for measuring handling duration
func StartTimer() *HandleTimer {
	return &HandleTimer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer started
func (t *HandleTimer) ObserveDuration() {
	if t != nil && processDuration != nil {
		processDuration.Observe(time.Since(t.start).Seconds())
	}
}
