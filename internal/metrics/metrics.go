package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are registered once on the default registry at package init so tests can
// build several routers without duplicate-registration panics.
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snm_http_requests_total",
		Help: "Total HTTP requests, labeled by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snm_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, labeled by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	StoreCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snm_store_calls_total",
		Help: "Stored procedure and query calls, labeled by procedure and outcome",
	}, []string{"procedure", "outcome"})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snm_exports_total",
		Help: "Spreadsheet exports, labeled by outcome (ok, empty, error)",
	}, []string{"outcome"})
)

// Store call outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
	OutcomeEmpty   = "empty"
)

// ObserveStore counts one store call.
func ObserveStore(procedure, outcome string) {
	StoreCalls.WithLabelValues(procedure, outcome).Inc()
}
