// Package metrics holds the Prometheus collectors for generation runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes.
const (
	OutcomeUnchanged = "unchanged"
	OutcomeUpdated   = "updated"
	OutcomeFailed    = "failed"
)

var Runs = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pont_runs_total",
	Help: "Number of generation runs by outcome",
}, []string{"outcome"})

var Failures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pont_failures_total",
	Help: "Number of failed runs by stage",
}, []string{"stage"})

var RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "pont_run_duration_seconds",
	Help:    "Duration of generation runs",
	Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
})

var FilesWritten = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pont_files_written_total",
	Help: "Number of generated files written to disk",
})

var FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pont_fetch_duration_seconds",
	Help:    "Duration of origin document fetches",
	Buckets: prometheus.DefBuckets,
}, []string{"origin"})

var LastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "pont_last_success_timestamp_seconds",
	Help: "Unix time of the last successful run",
})

// ObserveRun records one finished run.
func ObserveRun(start time.Time, written int, err error) {
	RunDuration.Observe(time.Since(start).Seconds())
	switch {
	case err != nil:
		Runs.WithLabelValues(OutcomeFailed).Inc()
	case written > 0:
		Runs.WithLabelValues(OutcomeUpdated).Inc()
		FilesWritten.Add(float64(written))
		LastSuccess.SetToCurrentTime()
	default:
		Runs.WithLabelValues(OutcomeUnchanged).Inc()
		LastSuccess.SetToCurrentTime()
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
