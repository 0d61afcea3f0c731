// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcomes.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultFallback = "fallback"
	ResultCached   = "cached"
)

// Metrics groups all collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Renders           *prometheus.CounterVec
	RenderDuration    *prometheus.HistogramVec
	CompositeFailures *prometheus.CounterVec
	PreviewTriggers   prometheus.Counter
	PreviewCoalesced  prometheus.Counter
	PreviewStale      prometheus.Counter
	LiveHandles       prometheus.Gauge
	Sessions          prometheus.Gauge
	RateLimited       *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Renders: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrgen_renders_total",
				Help: "Total number of QR renders by output format and result",
			},
			[]string{"format", "result"},
		),
		RenderDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qrgen_render_duration_seconds",
				Help:    "Duration of QR acquisition and compositing in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"format"},
		),
		CompositeFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrgen_composite_failures_total",
				Help: "Total number of logo composite failures by output format",
			},
			[]string{"format"},
		),
		PreviewTriggers: f.NewCounter(prometheus.CounterOpts{
			Name: "qrgen_preview_triggers_total",
			Help: "Total number of preview input changes received",
		}),
		PreviewCoalesced: f.NewCounter(prometheus.CounterOpts{
			Name: "qrgen_preview_coalesced_total",
			Help: "Total number of preview renders cancelled by a newer change",
		}),
		PreviewStale: f.NewCounter(prometheus.CounterOpts{
			Name: "qrgen_preview_stale_total",
			Help: "Total number of preview results discarded because newer input arrived",
		}),
		LiveHandles: f.NewGauge(prometheus.GaugeOpts{
			Name: "qrgen_preview_handles",
			Help: "Number of preview image handles currently held",
		}),
		Sessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "qrgen_preview_sessions",
			Help: "Number of live preview sessions",
		}),
		RateLimited: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrgen_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}
}

func (m *Metrics) ObserveRender(format, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(format, result).Inc()
	if result != ResultCached {
		m.RenderDuration.WithLabelValues(format).Observe(d.Seconds())
	}
}

func (m *Metrics) CompositeFailed(format string) {
	if m == nil {
		return
	}
	m.CompositeFailures.WithLabelValues(format).Inc()
}

func (m *Metrics) PreviewTriggered() {
	if m != nil {
		m.PreviewTriggers.Inc()
	}
}

func (m *Metrics) PreviewCancelled() {
	if m != nil {
		m.PreviewCoalesced.Inc()
	}
}

func (m *Metrics) PreviewDiscarded() {
	if m != nil {
		m.PreviewStale.Inc()
	}
}

func (m *Metrics) HandleAdded() {
	if m != nil {
		m.LiveHandles.Inc()
	}
}

func (m *Metrics) HandleReleased() {
	if m != nil {
		m.LiveHandles.Dec()
	}
}

func (m *Metrics) SessionOpened() {
	if m != nil {
		m.Sessions.Inc()
	}
}

func (m *Metrics) SessionClosed() {
	if m != nil {
		m.Sessions.Dec()
	}
}

func (m *Metrics) Limited(route string) {
	if m != nil {
		m.RateLimited.WithLabelValues(route).Inc()
	}
}
