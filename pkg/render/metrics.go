package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/rangeui/pkg/vdom"
)

// MetricsConfig configures the Prometheus metrics of an Engine.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "rangeui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for update duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures MetricsConfig.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "rangeui",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors fed by engines. One Metrics value
// may be shared by many engines.
type Metrics struct {
	mountsTotal    *prometheus.CounterVec
	patchesTotal   *prometheus.CounterVec
	updatesTotal   *prometheus.CounterVec
	updateDuration prometheus.Histogram
}

// NewMetrics registers the engine collectors.
//
// Metrics collected:
//   - rangeui_render_mounts_total: nodes mounted, by kind
//   - rangeui_render_patches_total: reconciliation decisions, by op
//     (replace, keep, append, remove)
//   - rangeui_render_updates_total: update passes, by status
//   - rangeui_render_update_duration_seconds: update pass duration
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		mountsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of nodes mounted, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of reconciliation decisions, by op",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		updatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of update passes, by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		updateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "update_duration_seconds",
			Help:        "Update pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) observeMount(kind vdom.Kind) {
	if m == nil {
		return
	}
	m.mountsTotal.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) observeUpdate(d time.Duration, st patchStats, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.updatesTotal.WithLabelValues(status).Inc()
	m.updateDuration.Observe(d.Seconds())

	m.patchesTotal.WithLabelValues("replace").Add(float64(st.replaced))
	m.patchesTotal.WithLabelValues("keep").Add(float64(st.kept))
	m.patchesTotal.WithLabelValues("append").Add(float64(st.appended))
	m.patchesTotal.WithLabelValues("remove").Add(float64(st.removed))
}
