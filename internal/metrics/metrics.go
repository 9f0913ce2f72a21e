// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptolab_operations_total",
		Help: "Cryptographic operations by algorithm, action and outcome.",
	}, []string{"algorithm", "action", "status"})

	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cryptolab_operation_duration_seconds",
		Help:    "Time spent inside the algorithm for one operation.",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"algorithm"})

	HistoryRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cryptolab_history_recorded_total",
		Help: "History rows successfully written to the database.",
	})

	HistoryRecordErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cryptolab_history_record_errors_total",
		Help: "History insert failures.",
	})

	HistoryDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cryptolab_history_dropped_total",
		Help: "History events dropped because the writer queue was full.",
	})

	DebugStaticRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cryptolab_debug_static_requests_total",
		Help: "Requests to the static-folder debug page.",
	})
)
