// Package metrics holds the Prometheus collectors for the inspector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
// Following the explicit dependency injection pattern, this struct is
// passed to every component that needs to record metrics. A nil
// *Metrics disables recording.
type Metrics struct {
	rpcCallsTotal     *prometheus.CounterVec
	rpcCallDuration   *prometheus.HistogramVec
	rpcRetriesTotal   *prometheus.CounterVec
	rpcFailoversTotal *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		rpcCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solana_rpc_calls_total",
				Help: "Total number of Solana RPC call attempts by method, status, and endpoint",
			},
			[]string{"method", "status", "endpoint"},
		),
		rpcCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "solana_rpc_call_duration_seconds",
				Help:    "Duration of Solana RPC call attempts in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "endpoint"},
		),
		rpcRetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solana_rpc_retries_total",
				Help: "Total number of Solana RPC retry attempts by method and endpoint",
			},
			[]string{"method", "endpoint"},
		),
		rpcFailoversTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solana_rpc_failovers_total",
				Help: "Total number of times an endpoint was exhausted and the next one was tried",
			},
			[]string{"method", "endpoint"},
		),
	}
}

// RecordRPCCall records a single RPC call attempt with its duration.
func (m *Metrics) RecordRPCCall(method, status, endpoint string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.rpcCallsTotal.WithLabelValues(method, status, endpoint).Inc()
	m.rpcCallDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordRPCRetry records a retry attempt against an endpoint.
func (m *Metrics) RecordRPCRetry(method, endpoint string) {
	if m == nil {
		return
	}
	m.rpcRetriesTotal.WithLabelValues(method, endpoint).Inc()
}

// RecordRPCFailover records an endpoint being exhausted.
func (m *Metrics) RecordRPCFailover(method, endpoint string) {
	if m == nil {
		return
	}
	m.rpcFailoversTotal.WithLabelValues(method, endpoint).Inc()
}
