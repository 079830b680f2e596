package observability

import (
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by watch lifecycle events.
type Metrics struct {
	installed *prometheus.CounterVec
	skipped   *prometheus.CounterVec
	restored  prometheus.Counter
	changes   prometheus.Counter
	overrides prometheus.Counter
	scalars   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		installed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "objwatch_properties_installed_total",
				Help: "Total number of properties converted into intercepted accessors",
			},
			[]string{"container"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "objwatch_properties_skipped_total",
				Help: "Total number of properties left untouched by a build",
			},
			[]string{"mode", "reason"},
		),
		restored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objwatch_properties_restored_total",
			Help: "Total number of properties restored to plain data properties",
		}),
		changes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objwatch_changes_total",
			Help: "Total number of committed changes reported to change callbacks",
		}),
		overrides: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "objwatch_overrides_total",
			Help: "Total number of changes whose stored value was replaced by the callback",
		}),
		scalars: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "objwatch_build_scalars",
				Help:    "Number of scalar properties encountered per build",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"mode"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.installed, m.skipped, m.restored, m.changes, m.overrides, m.scalars)
	}
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInstall: func(e *domain.PropertyEvent) {
			m.installed.WithLabelValues(containerLabel(e)).Inc()
		},
		OnSkip: func(e *domain.PropertyEvent) {
			m.skipped.WithLabelValues(string(e.Mode), string(e.Result)).Inc()
		},
		OnRestore: func(e *domain.PropertyEvent) {
			m.restored.Inc()
		},
		OnChange: func(e *domain.ChangeEvent) {
			m.changes.Inc()
			if e.Overridden {
				m.overrides.Inc()
			}
		},
		OnBuild: func(e *domain.BuildEvent) {
			m.scalars.WithLabelValues(string(e.Report.Mode)).Observe(float64(e.Report.Scalars))
		},
	}
}

func containerLabel(e *domain.PropertyEvent) string {
	if e.Key.IsIndex() {
		return "array"
	}
	return "object"
}
