// Package metrics exposes Prometheus counters for certifications page events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks how visitors use the certifications page.
type Metrics struct {
	QueryChanges   prometheus.Counter
	EmptyResults   prometheus.Counter
	DetailOpened   *prometheus.CounterVec
	DetailClosed   prometheus.Counter
	ActiveSessions prometheus.Gauge
}

// New creates a Metrics instance registered with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueryChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "certpanel_query_changes_total",
			Help: "Total number of search query updates",
		}),
		EmptyResults: factory.NewCounter(prometheus.CounterOpts{
			Name: "certpanel_empty_results_total",
			Help: "Total number of query updates that matched no credential",
		}),
		DetailOpened: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "certpanel_detail_opened_total",
			Help: "Total number of detail views opened, by credential status",
		}, []string{"status"}),
		DetailClosed: factory.NewCounter(prometheus.CounterOpts{
			Name: "certpanel_detail_closed_total",
			Help: "Total number of detail close actions",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "certpanel_active_sessions",
			Help: "Number of live browser sessions",
		}),
	}
}

// ObserveQuery records a query update and whether it matched anything.
func (m *Metrics) ObserveQuery(matched int) {
	m.QueryChanges.Inc()
	if matched == 0 {
		m.EmptyResults.Inc()
	}
}

// ObserveDetailOpened records a detail view opened for a credential with the given status.
func (m *Metrics) ObserveDetailOpened(status string) {
	m.DetailOpened.WithLabelValues(status).Inc()
}

// ObserveDetailClosed records a detail close action.
func (m *Metrics) ObserveDetailClosed() {
	m.DetailClosed.Inc()
}

// SetActiveSessions records the number of live sessions.
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}
