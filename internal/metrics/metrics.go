// Package metrics exposes the Prometheus metrics the teacher's own
// internal/api/middleware/prometheus.go records, extended with the
// replica/failover state this service's replication core introduces.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPDuration is the request duration histogram, labeled by replica so
	// a primary and backup scraped by the same Prometheus instance are
	// distinguishable.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code", "replica"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code", "replica"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

var (
	// BankingOperationsTotal mirrors the teacher's metric of the same name;
	// operation is "deposit"/"withdraw", status is "success"/"rejected".
	BankingOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banking_operations_total",
			Help: "Total number of banking operations",
		},
		[]string{"operation", "status", "replica"},
	)

	// AccountBalancesHistogram mirrors the teacher's account_balances_centavos
	// metric, renamed for this service's float64 currency unit.
	AccountBalancesHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "account_balances",
			Help:    "Distribution of account balances after a mutating operation",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
	)
)

var (
	// FailoverMode is the Prometheus expression of the Failover Monitor's
	// own state machine: 0 while HEALTHY, 1 while in FAILOVER.
	FailoverMode = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "failover_mode",
			Help: "1 if this replica's replicated writer is operating in failover mode, 0 otherwise",
		},
	)

	// ReplicationFailuresTotal counts every backup-first write that failed
	// because the backup was unreachable or rejected the call.
	ReplicationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replication_failures_total",
			Help: "Total number of replicated write attempts that failed to reach or were rejected by the backup",
		},
		[]string{"operation", "reason"},
	)
)

// RecordBankingOperation records a deposit/withdraw outcome and, on success,
// folds the resulting balance into the distribution histogram.
func RecordBankingOperation(operation, status, replica string, newBalance float64) {
	BankingOperationsTotal.WithLabelValues(operation, status, replica).Inc()
	if status == "success" {
		AccountBalancesHistogram.Observe(newBalance)
	}
}

// SetFailoverMode reflects the Failover Monitor's current state.
func SetFailoverMode(inFailover bool) {
	if inFailover {
		FailoverMode.Set(1)
	} else {
		FailoverMode.Set(0)
	}
}

// RecordReplicationFailure is called by the Replicated Writer whenever the
// backup-first protocol could not complete.
func RecordReplicationFailure(operation, reason string) {
	ReplicationFailuresTotal.WithLabelValues(operation, reason).Inc()
}
