package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/pkg/safe"
	"github.com/StudioLIQ/tickasting-sub000/pkg/workerpool"
)

// OrderingRule is the published, plain-text description of the total order.
// It depends only on ledger-observable facts so any third party reading the
// same ledger reproduces the exact ranking.
const OrderingRule = "finality weight (accepting block blue score) ascending, unresolved weight last; tie-break: transaction id, byte-lexicographic ascending"

const defaultOrderingSaleWorkers = 4

// OrderingConfig tunes the ordering engine.
type OrderingConfig struct {
	SaleWorkers int
}

// OrderingEngine computes provisional and final ranks over each sale's
// accepted, valid attempts.
type OrderingEngine struct {
	store   Store
	metrics OrderingMetrics
	logger  *zap.Logger
	cfg     OrderingConfig
}

// NewOrderingEngine builds an OrderingEngine with dependencies.
func NewOrderingEngine(store Store, metrics OrderingMetrics, logger *zap.Logger, cfg OrderingConfig) (*OrderingEngine, error) {
	if metrics == nil {
		return nil, errors.New("ordering metrics is required")
	}
	if cfg.SaleWorkers <= 0 {
		cfg.SaleWorkers = defaultOrderingSaleWorkers
	}
	return &OrderingEngine{
		store:   store,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
	}, nil
}

// ComputeRanks recomputes ranks for every given sale. Per-sale failures are
// reported in that sale's result without aborting the others.
func (e *OrderingEngine) ComputeRanks(ctx context.Context, sales []model.Sale) []OrderingResult {
	return workerpool.Collect(ctx, e.cfg.SaleWorkers, sales, e.computeSale)
}

func (e *OrderingEngine) computeSale(ctx context.Context, sale model.Sale) OrderingResult {
	started := time.Now()
	result := OrderingResult{SaleID: sale.ID}
	defer func() {
		e.metrics.ObserveCompute(sale.ID, result.Written, len(result.Errors), started)
	}()

	attempts, err := e.store.AcceptedValidAttempts(ctx, sale.ID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("select attempts: %v", err))
		return result
	}

	sort.Slice(attempts, func(i, j int) bool {
		return attemptLess(&attempts[i], &attempts[j])
	})

	// Pass 1: provisional ranks over every accepted, valid attempt.
	provisional := make([]uint32, len(attempts))
	for i := range attempts {
		rank, err := safe.Uint32(uint64(i) + 1)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("provisional rank: %v", err))
			return result
		}
		provisional[i] = rank
	}
	result.Provisional = len(attempts)

	// Pass 2: final ranks as an independent dense 1..k numbering over the
	// subsequence that crossed the finality threshold, not a filtered view
	// of the provisional numbering.
	final := make([]*uint32, len(attempts))
	var nextFinal uint32
	for i := range attempts {
		if attempts[i].Confirmations >= sale.FinalityDepth {
			nextFinal++
			rank := nextFinal
			final[i] = &rank
		}
	}
	result.Final = int(nextFinal)

	for i := range attempts {
		p := provisional[i]
		if !rankChanged(attempts[i].ProvisionalRank, &p) && !rankChanged(attempts[i].FinalRank, final[i]) {
			continue
		}
		if err := e.store.UpdateAttemptRanks(ctx, sale.ID, attempts[i].TxID, &p, final[i]); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("write ranks %s: %v", attempts[i].TxID, err))
			continue
		}
		result.Written++
	}

	e.clearDepartedRanks(ctx, sale, attempts, &result)

	if result.Written > 0 {
		e.logger.Debug("ranks updated",
			zap.String("sale_id", sale.ID),
			zap.Int("provisional", result.Provisional),
			zap.Int("final", result.Final),
			zap.Int("written", result.Written))
	}
	return result
}

// clearDepartedRanks drops stored ranks from attempts no longer in the
// accepted, valid set, so an attempt whose acceptance flipped before finality
// does not keep a stale rank.
func (e *OrderingEngine) clearDepartedRanks(ctx context.Context, sale model.Sale, attempts []model.PurchaseAttempt, result *OrderingResult) {
	ranked, err := e.store.RankedAttempts(ctx, sale.ID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("select ranked attempts: %v", err))
		return
	}

	current := make(map[string]struct{}, len(attempts))
	for i := range attempts {
		current[attempts[i].TxID] = struct{}{}
	}

	for i := range ranked {
		if _, ok := current[ranked[i].TxID]; ok {
			continue
		}
		if err := e.store.UpdateAttemptRanks(ctx, sale.ID, ranked[i].TxID, nil, nil); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("clear ranks %s: %v", ranked[i].TxID, err))
			continue
		}
		result.Written++
	}
}

// attemptLess is the total order behind OrderingRule. An attempt without a
// resolved finality weight sorts after every attempt with one; the rule is
// explicit here because it is part of the public, auditable contract.
func attemptLess(a, b *model.PurchaseAttempt) bool {
	switch {
	case a.FinalityWeight == nil && b.FinalityWeight == nil:
		return a.TxID < b.TxID
	case a.FinalityWeight == nil:
		return false
	case b.FinalityWeight == nil:
		return true
	case *a.FinalityWeight != *b.FinalityWeight:
		return *a.FinalityWeight < *b.FinalityWeight
	default:
		return a.TxID < b.TxID
	}
}

func rankChanged(stored, computed *uint32) bool {
	if (stored == nil) != (computed == nil) {
		return true
	}
	return stored != nil && *stored != *computed
}
