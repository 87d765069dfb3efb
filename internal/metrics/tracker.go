package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerSweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "tracker",
		Name:      "sweeps_total",
		Help:      "Count of per-sale acceptance tracking sweeps.",
	}, []string{"sale_id", "network", "status"})

	trackerSweepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tickasting",
		Subsystem: "tracker",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of per-sale acceptance tracking sweeps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"sale_id", "network", "status"})

	trackerUpdatedAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "tracker",
		Name:      "updated_attempts_total",
		Help:      "Count of attempts whose acceptance state changed.",
	}, []string{"sale_id", "network"})

	trackerNewlyAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "tracker",
		Name:      "newly_accepted_total",
		Help:      "Count of attempts newly observed as accepted.",
	}, []string{"sale_id", "network"})

	trackerNewlyFinal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tickasting",
		Subsystem: "tracker",
		Name:      "newly_final_total",
		Help:      "Count of attempts that newly crossed the finality threshold.",
	}, []string{"sale_id", "network"})
)

// Tracker tracks metrics for the acceptance tracker.
type Tracker struct {
	network string
}

// NewTracker constructs a Tracker metrics collector.
func NewTracker(network string) *Tracker {
	if network == "" {
		network = "unknown"
	}
	return &Tracker{network: network}
}

// ObserveTrack records one per-sale tracking sweep.
func (m Tracker) ObserveTrack(saleID string, updated, newlyAccepted, newlyFinal, errCount int, started time.Time) {
	status := "success"
	if errCount > 0 {
		status = "error"
	}
	trackerSweepsTotal.WithLabelValues(saleID, m.network, status).Inc()
	trackerSweepDuration.WithLabelValues(saleID, m.network, status).Observe(time.Since(started).Seconds())
	if updated > 0 {
		trackerUpdatedAttempts.WithLabelValues(saleID, m.network).Add(float64(updated))
	}
	if newlyAccepted > 0 {
		trackerNewlyAccepted.WithLabelValues(saleID, m.network).Add(float64(newlyAccepted))
	}
	if newlyFinal > 0 {
		trackerNewlyFinal.WithLabelValues(saleID, m.network).Add(float64(newlyFinal))
	}
}
