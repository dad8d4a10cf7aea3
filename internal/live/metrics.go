package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// sessionMetrics holds the live server collectors.
type sessionMetrics struct {
	activeSessions prometheus.Gauge
	eventsTotal    *prometheus.CounterVec
	eventDuration  prometheus.Histogram
	wsErrors       *prometheus.CounterVec
}

func newSessionMetrics(reg prometheus.Registerer, namespace string) *sessionMetrics {
	factory := promauto.With(reg)

	return &sessionMetrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "active_sessions",
			Help:      "Number of open websocket sessions",
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "events_total",
			Help:      "Total number of browser events handled, by status",
		}, []string{"status"}),

		eventDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "event_duration_seconds",
			Help:      "Time to dispatch an event and serialize the result",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "websocket_errors_total",
			Help:      "Total number of websocket errors, by type",
		}, []string{"type"}),
	}
}

func (m *sessionMetrics) sessionOpened() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

func (m *sessionMetrics) sessionClosed() {
	if m != nil {
		m.activeSessions.Dec()
	}
}

func (m *sessionMetrics) event(seconds float64, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.eventsTotal.WithLabelValues(status).Inc()
	m.eventDuration.Observe(seconds)
}

func (m *sessionMetrics) wsError(kind string) {
	if m != nil {
		m.wsErrors.WithLabelValues(kind).Inc()
	}
}
