package engine

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "resumegen"
	metricsSubsystem = "engine"

	statusOK    = "ok"
	statusError = "error"
)

type metrics struct {
	renders   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "renders_total",
				Help:      "Renders by template, family and outcome.",
			},
			[]string{"template", "family", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "render_duration_seconds",
				Help:      "Render latency by family.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"family"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "descriptor_fallbacks_total",
				Help:      "Template ids missing from the catalog, answered with the default descriptor.",
			},
			[]string{"requested"},
		),
	}

	var err error
	if m.renders, err = register(reg, m.renders); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.fallbacks, err = register(reg, m.fallbacks); err != nil {
		return nil, err
	}
	return m, nil
}

// register reuses a collector already registered under the same
// descriptor, so several engines can share one registerer.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return collector, err
	}
	return collector, nil
}

func (m *metrics) observe(templateID, family string, started time.Time, err error) {
	if m == nil {
		return
	}
	status := statusOK
	if err != nil {
		status = statusError
	}
	m.renders.WithLabelValues(templateID, family, status).Inc()
	if err == nil {
		m.duration.WithLabelValues(family).Observe(time.Since(started).Seconds())
	}
}

func (m *metrics) fallback(requested string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(requested).Inc()
}
