// Command salectl administers raffle sales: creating them and driving the
// lifecycle to its on-chain commit.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/metrics"
	"github.com/StudioLIQ/tickasting-sub000/internal/model"
	"github.com/StudioLIQ/tickasting-sub000/internal/repository/clickhouse"
	"github.com/StudioLIQ/tickasting-sub000/internal/service"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"TICKASTING_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       string `long:"network" env:"TICKASTING_NETWORK" description:"ledger network name" default:"mainnet"`

	SaleID          string `long:"sale-id" description:"sale id (omit on create to generate one)"`
	TreasuryAddress string `long:"treasury-address" description:"treasury address purchases pay into"`
	UnitPrice       uint64 `long:"unit-price" description:"ticket price in base units"`
	SupplyTotal     uint32 `long:"supply" description:"number of tickets for sale"`
	PerAddressCap   uint32 `long:"per-address-cap" description:"per-buyer ticket cap (0 for none)"`
	PowDifficulty   uint8  `long:"difficulty" description:"admission puzzle leading zero bits"`
	FinalityDepth   uint64 `long:"finality-depth" description:"confirmations required for finality" default:"100"`
	FallbackMode    bool   `long:"fallback" description:"admit memo-less payments as fallback entries"`
	CommitTxID      string `long:"commit-txid" description:"on-chain commit transaction id (commit action)"`

	Args struct {
		Action string `positional-arg-name:"action" description:"create | publish | finalize | commit"`
	} `positional-args:"true" required:"true"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("salectl failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	lifecycle := service.NewSaleLifecycle(repo, service.NewSnapshotBuilder(repo), logger)

	switch cfg.Args.Action {
	case "create":
		return create(ctx, cfg, repo)
	case "publish":
		if cfg.SaleID == "" {
			return errors.New("sale id is required")
		}
		return lifecycle.Publish(ctx, cfg.SaleID)
	case "finalize":
		if cfg.SaleID == "" {
			return errors.New("sale id is required")
		}
		snap, err := lifecycle.Finalize(ctx, cfg.SaleID)
		if err != nil {
			return err
		}
		return printJSON(snap)
	case "commit":
		if cfg.SaleID == "" {
			return errors.New("sale id is required")
		}
		memo, err := lifecycle.Commit(ctx, cfg.SaleID, cfg.CommitTxID)
		if err != nil {
			return err
		}
		fmt.Printf("commit memo: %s\n", memo)
		return nil
	default:
		return fmt.Errorf("unknown action %q", cfg.Args.Action)
	}
}

func create(ctx context.Context, cfg config, repo *clickhouse.Repository) error {
	if cfg.TreasuryAddress == "" {
		return errors.New("treasury address is required")
	}
	if cfg.UnitPrice == 0 {
		return errors.New("unit price is required")
	}
	if cfg.SupplyTotal == 0 {
		return errors.New("supply is required")
	}

	saleID := cfg.SaleID
	if saleID == "" {
		saleID = uuid.NewString()
	} else if _, err := uuid.Parse(saleID); err != nil {
		return fmt.Errorf("invalid sale id: %w", err)
	}

	sale := model.Sale{
		ID:              saleID,
		Network:         cfg.Network,
		TreasuryAddress: cfg.TreasuryAddress,
		UnitPrice:       cfg.UnitPrice,
		SupplyTotal:     cfg.SupplyTotal,
		PowDifficulty:   cfg.PowDifficulty,
		FinalityDepth:   cfg.FinalityDepth,
		FallbackMode:    cfg.FallbackMode,
		Status:          model.SaleScheduled,
	}
	if cfg.PerAddressCap > 0 {
		perAddressCap := cfg.PerAddressCap
		sale.PerAddressCap = &perAddressCap
	}

	if err := repo.InsertSale(ctx, sale); err != nil {
		return err
	}
	fmt.Printf("created sale %s\n", saleID)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
