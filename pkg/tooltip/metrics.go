package tooltip

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tooltip").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registerer is the Prometheus registerer to use.
	// Default: prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

// MetricsOption configures the Prometheus collector.
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

// WithRegisterer sets the Prometheus registerer.
func WithRegisterer(registerer prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registerer = registerer
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:  "tooltip",
		Registerer: prometheus.DefaultRegisterer,
	}
}

// Collector records tooltip lifecycle metrics. A nil *Collector is valid
// and records nothing.
type Collector struct {
	created        prometheus.Counter
	createFailures *prometheus.CounterVec
	shown          prometheus.Counter
	hidden         prometheus.Counter
	destroyed      prometheus.Counter
	live           prometheus.Gauge
	fallbacks      prometheus.Counter
}

// NewCollector creates and registers the tooltip metrics.
func NewCollector(opts ...MetricsOption) *Collector {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registerer)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	return &Collector{
		created:   counter("created_total", "Total number of tooltips created"),
		shown:     counter("shown_total", "Total number of show transitions"),
		hidden:    counter("hidden_total", "Total number of hide transitions"),
		destroyed: counter("destroyed_total", "Total number of tooltips destroyed"),
		fallbacks: counter("orientation_fallbacks_total", "Side tooltips flipped to the top for lack of space"),

		createFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "create_failures_total",
			Help:        "Total number of rejected create calls",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		live: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live",
			Help:        "Number of tooltips currently registered",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (c *Collector) recordCreated() {
	if c != nil {
		c.created.Inc()
		c.live.Inc()
	}
}

func (c *Collector) recordCreateFailure(code string) {
	if c != nil {
		c.createFailures.WithLabelValues(code).Inc()
	}
}

func (c *Collector) recordShown() {
	if c != nil {
		c.shown.Inc()
	}
}

func (c *Collector) recordHidden() {
	if c != nil {
		c.hidden.Inc()
	}
}

func (c *Collector) recordDestroyed() {
	if c != nil {
		c.destroyed.Inc()
		c.live.Dec()
	}
}

func (c *Collector) recordFallback() {
	if c != nil {
		c.fallbacks.Inc()
	}
}
