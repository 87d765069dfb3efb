// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerSweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "scanner",
		Name:      "sweeps_total",
		Help:      "Count of per-sale treasury scan sweeps.",
	}, []string{"sale_id", "network", "status"})

	scannerSweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tickasting",
		Subsystem: "scanner",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of per-sale treasury scan sweeps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"sale_id", "network", "status"})

	scannerDiscoveredAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tickasting",
		Subsystem: "scanner",
		Name:      "discovered_attempts",
		Help:      "Number of purchase attempts discovered per sweep.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"sale_id", "network"})
)

// Scanner tracks metrics for the transaction scanner.
type Scanner struct {
	network string
}

// NewScanner constructs a Scanner metrics collector.
func NewScanner(network string) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveScan records one per-sale scan sweep.
func (m Scanner) ObserveScan(saleID string, discovered, errCount int, started time.Time) {
	status := "success"
	if errCount > 0 {
		status = "error"
	}
	scannerSweepsTotal.WithLabelValues(saleID, m.network, status).Inc()
	scannerSweepDuration.WithLabelValues(saleID, m.network, status).Observe(time.Since(started).Seconds())
	if discovered > 0 {
		scannerDiscoveredAttempts.WithLabelValues(saleID, m.network).Observe(float64(discovered))
	}
}
