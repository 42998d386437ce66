// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "splitledger/internal/errors"
)

const namespace = "splitledger"

var (
	// HTTPRequests counts handled requests by route template and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route template.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LedgerWrites counts person and expense mutations by outcome.
	LedgerWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_writes_total",
		Help:      "Total number of ledger write operations by outcome.",
	}, []string{"operation", "outcome"})
)

// ObserveLedgerWrite records the outcome of a write operation. Failed writes
// are labelled with their error kind.
func ObserveLedgerWrite(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.KindOf(err))
	}
	LedgerWrites.WithLabelValues(operation, outcome).Inc()
}
