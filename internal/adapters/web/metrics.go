package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corey/svcdash/internal/domain/directory"
)

// Ensure Metrics implements the interface.
var _ directory.Observer = (*Metrics)(nil)

// Metrics counts lookups, link rewrites and dashboard renders.
type Metrics struct {
	registry  *prometheus.Registry
	lookups   *prometheus.CounterVec
	rewritten prometheus.Counter
	renders   prometheus.Counter
}

// NewMetrics registers the dashboard collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "svcdash_lookups_total",
			Help: "Service name lookups by result (hit or miss).",
		}, []string{"result"}),
		rewritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "svcdash_links_rewritten_total",
			Help: "Dashboard links pointed at a service URL.",
		}),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "svcdash_dashboard_renders_total",
			Help: "Dashboard pages rendered.",
		}),
	}
	m.registry.MustRegister(m.lookups, m.rewritten, m.renders)
	return m
}

// ObserveLookup implements directory.Observer.
func (m *Metrics) ObserveLookup(_ string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	m.lookups.WithLabelValues(result).Inc()
}

// ObserveRewrite implements directory.Observer.
func (m *Metrics) ObserveRewrite(string) {
	m.rewritten.Inc()
}

func (m *Metrics) observeRender() {
	m.renders.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
