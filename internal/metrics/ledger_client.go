package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger REST operations.",
	}, []string{"operation", "network", "status"})
	ledgerClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tickasting",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// LedgerClient tracks metrics for calls to the ledger REST API.
type LedgerClient struct {
	network string
}

// NewLedgerClient constructs a metrics collector for ledger calls.
func NewLedgerClient(network string) *LedgerClient {
	if network == "" {
		network = "unknown"
	}
	return &LedgerClient{network: network}
}

// Observe records a single ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerClientRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	ledgerClientRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
