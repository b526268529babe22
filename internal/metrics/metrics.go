// Package metrics exposes Prometheus instrumentation for the executor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCCallsTotal tracks dispatched attempts per node and method
	RPCCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_rpc_calls_total",
			Help: "Total number of RPC attempts dispatched",
		},
		[]string{"node", "method"},
	)

	// RPCErrorsTotal tracks failed attempts by failure kind
	RPCErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_rpc_errors_total",
			Help: "Total number of failed RPC attempts",
		},
		[]string{"node", "kind"},
	)

	// RPCLatency tracks per-attempt latency
	RPCLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_rpc_latency_seconds",
			Help:    "RPC attempt latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"node", "method"},
	)

	// RPCAttempts tracks how many attempts a logical call needed
	RPCAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledger_rpc_attempts",
			Help:    "Attempts needed per logical call",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// Error kinds used with RPCErrorsTotal.
const (
	ErrKindTransport = "transport"
	ErrKindPrecheck  = "precheck"
	ErrKindBusy      = "busy"
)
