package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"skinai/internal/wizard"
)

type Metrics struct {
	registry *prometheus.Registry

	transitions     *prometheus.CounterVec
	ignored         *prometheus.CounterVec
	sessionsActive  prometheus.Gauge
	recommendations *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "skinai",
				Subsystem: "wizard",
				Name:      "transitions_total",
				Help:      "Accepted wizard events by action and step",
			},
			[]string{"action", "from", "to"},
		),
		ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "skinai",
				Subsystem: "wizard",
				Name:      "ignored_events_total",
				Help:      "Wizard events dropped without a state change, by reason",
			},
			[]string{"action", "reason"},
		),
		sessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "skinai",
				Subsystem: "wizard",
				Name:      "sessions_active",
				Help:      "Number of open wizard sessions",
			},
		),
		recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "skinai",
				Subsystem: "recommendation",
				Name:      "generated_total",
				Help:      "Recommendations produced, by summary source",
			},
			[]string{"source"},
		),
	}

	m.registry.MustRegister(
		m.transitions,
		m.ignored,
		m.sessionsActive,
		m.recommendations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveWizard is a wizard.Observer.
func (m *Metrics) ObserveWizard(ev wizard.Event) {
	if ev.Applied {
		m.transitions.WithLabelValues(string(ev.Action), ev.From.String(), ev.To.String()).Inc()
		return
	}
	m.ignored.WithLabelValues(string(ev.Action), string(ev.Reason)).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	m.sessionsActive.Set(float64(n))
}

func (m *Metrics) RecommendationGenerated(source string) {
	m.recommendations.WithLabelValues(source).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
