package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the publishing server.
type Metrics struct {
	registry        *prometheus.Registry
	DocumentServed  prometheus.Counter
	DocumentMissing prometheus.Counter
}

// NewMetrics creates a dedicated registry so tests can run in parallel
// without collector name collisions.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DocumentServed: factory.NewCounter(prometheus.CounterOpts{
			Name: "tabcli_document_served_total",
			Help: "Number of times the result document was served.",
		}),
		DocumentMissing: factory.NewCounter(prometheus.CounterOpts{
			Name: "tabcli_document_missing_total",
			Help: "Number of requests that found no result document on disk.",
		}),
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
