package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/routewalk/routewalk/pkg/router"
)

// MetricsConfig configures the Prometheus metrics for route resolution.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "routewalk").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for scan duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
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

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "routewalk",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics recorded during boot-time route
// resolution.
type Metrics struct {
	filesScanned    prometheus.Counter
	routesRegistered *prometheus.CounterVec
	scanDuration    prometheus.Histogram
	resolveErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers the resolution metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		filesScanned: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "files_scanned_total",
			Help:        "Total number of route files discovered by the scanner",
			ConstLabels: config.ConstLabels,
		}),

		routesRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_registered_total",
			Help:        "Total number of routes registered, by priority tier",
			ConstLabels: config.ConstLabels,
		}, []string{"tier"}),

		scanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scan_duration_seconds",
			Help:        "Directory scan duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		resolveErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolve_errors_total",
			Help:        "Total number of fatal route resolution errors, by stage",
			ConstLabels: config.ConstLabels,
		}, []string{"stage"}),
	}
}

// ObserveScan records a completed directory scan.
func (m *Metrics) ObserveScan(files int, d time.Duration) {
	if m == nil {
		return
	}
	m.filesScanned.Add(float64(files))
	m.scanDuration.Observe(d.Seconds())
}

// RouteRegistered records one registered route by tier.
func (m *Metrics) RouteRegistered(priority int) {
	if m == nil {
		return
	}
	m.routesRegistered.WithLabelValues(router.PriorityName(priority)).Inc()
}

// ResolveError records a fatal resolution error at the given stage
// ("scan", "map", "register", "apply").
func (m *Metrics) ResolveError(stage string) {
	if m == nil {
		return
	}
	m.resolveErrors.WithLabelValues(stage).Inc()
}
