// Package metrics exposes the portal's Prometheus instruments.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "portal_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	searchTotal      *prometheus.CounterVec
	searchSuperseded prometheus.Counter

	repasseMismatch prometheus.Counter
)

// Init registers the portal metrics with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		backendRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "backend_requests_total",
				Help: "Total backend requests by operation and result",
			},
			[]string{"operation", "result"},
		)
		backendLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "backend_latency_seconds",
				Help:    "Backend request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_export_total",
				Help: "Total statement exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_export_latency_seconds",
				Help:    "Statement export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)
		searchTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "search_queries_total",
				Help: "Total evaluated search queries by outcome",
			},
			[]string{"outcome"},
		)
		searchSuperseded = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "search_superseded_total",
				Help: "Live search queries dropped by the debouncer",
			},
		)
		repasseMismatch = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "repasse_mismatch_total",
				Help: "Statements whose distribution sum differs from the declared valor_repasse",
			},
		)

		prometheus.MustRegister(
			backendRequests,
			backendLatency,
			exportTotal,
			exportLatency,
			searchTotal,
			searchSuperseded,
			repasseMismatch,
		)
	})
}

// ObserveBackend records one backend call.
func ObserveBackend(operation, result string, duration time.Duration) {
	if backendRequests == nil {
		return
	}
	backendRequests.WithLabelValues(operation, result).Inc()
	backendLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveExport records one document export.
func ObserveExport(format, result string, duration time.Duration) {
	if exportTotal == nil {
		return
	}
	exportTotal.WithLabelValues(format, result).Inc()
	exportLatency.WithLabelValues(format).Observe(duration.Seconds())
}

// IncSearch counts an evaluated search; outcome is "hit" or "miss".
func IncSearch(outcome string) {
	if searchTotal == nil {
		return
	}
	searchTotal.WithLabelValues(outcome).Inc()
}

// IncSearchSuperseded counts a live query dropped by the debouncer.
func IncSearchSuperseded() {
	if searchSuperseded == nil {
		return
	}
	searchSuperseded.Inc()
}

// IncRepasseMismatch counts a distribution/declared repasse divergence.
func IncRepasseMismatch() {
	if repasseMismatch == nil {
		return
	}
	repasseMismatch.Inc()
}
