package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gotolinks_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PreviewHubConnections is the gauge of live preview connections per handle.
	PreviewHubConnections = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gotolinks_preview_hub_connections",
		Help: "Number of live preview WebSocket connections per handle",
	}, []string{"handle"})

	// PreviewUpdatesTotal counts preview updates pushed by handle.
	PreviewUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gotolinks_preview_updates_total",
		Help: "Total number of live preview updates pushed",
	}, []string{"handle"})

	// PreviewBackpressureDrops counts preview messages dropped due to slow clients.
	PreviewBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gotolinks_preview_backpressure_drops_total",
		Help: "Total number of preview messages dropped due to backpressure",
	}, []string{"hub", "reason"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// PreviewMetrics tracks live preview hub connection counts.
type PreviewMetrics struct {
	counts map[string]int
}

// NewPreviewMetrics returns a new PreviewMetrics instance.
func NewPreviewMetrics() *PreviewMetrics {
	return &PreviewMetrics{counts: make(map[string]int)}
}

// IncrementHandle increments the connection count for the handle.
func (m *PreviewMetrics) IncrementHandle(handle string) {
	m.counts[handle]++
	PreviewHubConnections.WithLabelValues(handle).Inc()
}

// DecrementHandle decrements the connection count for the handle.
func (m *PreviewMetrics) DecrementHandle(handle string) {
	if m.counts[handle] > 0 {
		m.counts[handle]--
	}
	PreviewHubConnections.WithLabelValues(handle).Dec()
}

// HandleCount returns the current connection count for the handle.
func (m *PreviewMetrics) HandleCount(handle string) int {
	return m.counts[handle]
}

// RecordUpdate increments the preview updates counter for the handle.
func (*PreviewMetrics) RecordUpdate(handle string) {
	PreviewUpdatesTotal.WithLabelValues(handle).Inc()
}
