package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/clock"
	"github.com/StudioLIQ/tickasting-sub000/internal/model"
)

// SweepLoop runs one pipeline stage on a fixed interval. A new tick never
// starts before the previous one returns, and a canceled context stops the
// loop after the in-flight tick, never mid-tick.
type SweepLoop struct {
	name     string
	interval time.Duration
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	tick     func(context.Context) error
}

// NewSweepLoop builds a loop around a tick function.
func NewSweepLoop(name string, interval time.Duration, logger *zap.Logger, tick func(context.Context) error) *SweepLoop {
	return &SweepLoop{
		name:     name,
		interval: interval,
		logger:   logger.With(zap.String("loop", name)),
		sleep:    clock.SleepWithContext,
		tick:     tick,
	}
}

// Run drives the loop until the context is canceled.
func (l *SweepLoop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.tick(ctx); err != nil {
			l.logger.Warn("tick failed", zap.Error(err))
		}
		if err := l.sleep(ctx, l.interval); err != nil {
			return err
		}
	}
}

// TrackerTick sweeps acceptance state for all live sales.
func TrackerTick(store Store, tracker *AcceptanceTracker, logger *zap.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		sales, err := store.ListSalesByStatus(ctx, model.SaleLive)
		if err != nil {
			return err
		}
		if len(sales) == 0 {
			return nil
		}
		for _, result := range tracker.Track(ctx, sales) {
			logTrackingResult(logger, result)
		}
		return nil
	}
}

// OrderingTick recomputes ranks for all live sales.
func OrderingTick(store Store, engine *OrderingEngine, logger *zap.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		sales, err := store.ListSalesByStatus(ctx, model.SaleLive)
		if err != nil {
			return err
		}
		if len(sales) == 0 {
			return nil
		}
		for _, result := range engine.ComputeRanks(ctx, sales) {
			if len(result.Errors) > 0 {
				logger.Warn("ordering sweep reported failures",
					zap.String("sale_id", result.SaleID),
					zap.Strings("errors", result.Errors))
			}
		}
		return nil
	}
}

// ScannerTick discovers new attempts for all live sales.
func ScannerTick(store Store, scanner *TransactionScanner, logger *zap.Logger) func(context.Context) error {
	return func(ctx context.Context) error {
		sales, err := store.ListSalesByStatus(ctx, model.SaleLive)
		if err != nil {
			return err
		}
		if len(sales) == 0 {
			return nil
		}
		for _, result := range scanner.Scan(ctx, sales) {
			if len(result.Errors) > 0 {
				logger.Warn("scan sweep reported failures",
					zap.String("sale_id", result.SaleID),
					zap.Strings("errors", result.Errors))
			}
		}
		return nil
	}
}

func logTrackingResult(logger *zap.Logger, result TrackingResult) {
	if len(result.Errors) > 0 {
		logger.Warn("tracking sweep reported failures",
			zap.String("sale_id", result.SaleID),
			zap.Strings("errors", result.Errors))
	}
	if result.Updated > 0 {
		logger.Info("acceptance state refreshed",
			zap.String("sale_id", result.SaleID),
			zap.Int("updated", result.Updated),
			zap.Int("newly_accepted", result.NewlyAccepted),
			zap.Int("newly_final", result.NewlyFinal))
	}
}
