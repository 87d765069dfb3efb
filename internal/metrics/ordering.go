package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orderingSweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "ordering",
		Name:      "sweeps_total",
		Help:      "Count of per-sale rank computation sweeps.",
	}, []string{"sale_id", "network", "status"})

	orderingSweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tickasting",
		Subsystem: "ordering",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of per-sale rank computation sweeps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"sale_id", "network", "status"})

	orderingRankWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "ordering",
		Name:      "rank_writes_total",
		Help:      "Count of attempts whose ranks were rewritten.",
	}, []string{"sale_id", "network"})
)

// Ordering tracks metrics for the ordering engine.
type Ordering struct {
	network string
}

// NewOrdering constructs an Ordering metrics collector.
func NewOrdering(network string) *Ordering {
	if network == "" {
		network = "unknown"
	}
	return &Ordering{network: network}
}

// ObserveCompute records one per-sale rank computation sweep.
func (m Ordering) ObserveCompute(saleID string, written, errCount int, started time.Time) {
	status := "success"
	if errCount > 0 {
		status = "error"
	}
	orderingSweepsTotal.WithLabelValues(saleID, m.network, status).Inc()
	orderingSweepDuration.WithLabelValues(saleID, m.network, status).Observe(time.Since(started).Seconds())
	if written > 0 {
		orderingRankWrites.WithLabelValues(saleID, m.network).Add(float64(written))
	}
}
