// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zappabad/pulse/internal/token"
)

// Metrics holds all Prometheus metrics for the dashboard.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Feed metrics
	BatchesReconciled prometheus.Counter
	PairsReceived     *prometheus.CounterVec
	ReconcileLatency  prometheus.Histogram

	// Column metrics
	ColumnSize *prometheus.GaugeVec

	// Delivery metrics
	EventsDropped prometheus.Counter

	// Action metrics
	BuyRequests *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance registered with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "pulse"
	}
	factory := promauto.With(reg)

	return &Metrics{
		BatchesReconciled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "batches_reconciled_total",
			Help:      "Total number of feed batches reconciled into the columns",
		}),
		PairsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "pairs_received_total",
			Help:      "Total number of pairs received from the feed by category",
		}, []string{"category"}),
		ReconcileLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "reconcile_duration_seconds",
			Help:      "Time spent reconciling one batch",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		}),
		ColumnSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "columns",
			Name:      "size",
			Help:      "Number of pairs currently held per column",
		}, []string{"category"}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "dropped_total",
			Help:      "Total number of batch events dropped because the subscriber lagged",
		}),
		BuyRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "actions",
			Name:      "buy_requests_total",
			Help:      "Total number of buy requests by result",
		}, []string{"result"}),
	}
}

// RecordBatch records one reconciled batch.
func (m *Metrics) RecordBatch(batch []token.Pair, took time.Duration) {
	if m == nil {
		return
	}
	m.BatchesReconciled.Inc()
	m.ReconcileLatency.Observe(took.Seconds())
	for _, p := range batch {
		m.PairsReceived.WithLabelValues(string(p.Category)).Inc()
	}
}

// SetColumnSizes updates the per-column gauges.
func (m *Metrics) SetColumnSizes(cols token.Columns) {
	if m == nil {
		return
	}
	for _, cat := range token.Categories() {
		m.ColumnSize.WithLabelValues(string(cat)).Set(float64(len(cols[cat])))
	}
}

// RecordDropped increments the dropped events counter.
func (m *Metrics) RecordDropped() {
	if m == nil {
		return
	}
	m.EventsDropped.Inc()
}

// RecordBuy records a buy request outcome.
func (m *Metrics) RecordBuy(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.BuyRequests.WithLabelValues(result).Inc()
}

// Handler returns an HTTP handler for the /metrics endpoint of g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
