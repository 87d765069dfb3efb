package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/StudioLIQ/tickasting-sub000/internal/ledger"
	"github.com/StudioLIQ/tickasting-sub000/internal/metrics"
	"github.com/StudioLIQ/tickasting-sub000/internal/repository/clickhouse"
	"github.com/StudioLIQ/tickasting-sub000/internal/service"
	"github.com/StudioLIQ/tickasting-sub000/internal/transport"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"TICKASTING_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       string `long:"network" env:"TICKASTING_NETWORK" description:"ledger network name" default:"mainnet"`

	LedgerAPIURL     string        `long:"ledger-api-url" env:"TICKASTING_LEDGER_API_URL" description:"ledger REST API base URL"`
	LedgerRPS        int           `long:"ledger-rps" env:"TICKASTING_LEDGER_RPS" description:"ledger API requests per second" default:"10"`
	LedgerAPITimeout time.Duration `long:"ledger-api-timeout" env:"TICKASTING_LEDGER_API_TIMEOUT" description:"ledger API HTTP timeout" default:"30s"`

	ScanInterval  time.Duration `long:"scan-interval" env:"TICKASTING_SCAN_INTERVAL" description:"treasury scan sweep interval" default:"30s"`
	TrackInterval time.Duration `long:"track-interval" env:"TICKASTING_TRACK_INTERVAL" description:"acceptance tracking sweep interval" default:"15s"`
	OrderInterval time.Duration `long:"order-interval" env:"TICKASTING_ORDER_INTERVAL" description:"rank computation sweep interval" default:"20s"`

	AuditAddr   string `long:"audit-addr" env:"TICKASTING_AUDIT_ADDR" description:"address for the audit API server" default:":8080"`
	MetricsAddr string `long:"metrics-addr" env:"TICKASTING_METRICS_ADDR" description:"address for the metrics server" default:":2112"`
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
	if cfg.LedgerAPIURL == "" {
		logger.Fatal("ledger API URL is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("raffle daemon failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	ledgerClient, err := ledger.NewClient(ledger.ClientConfig{
		BaseURL:           cfg.LedgerAPIURL,
		RequestsPerSecond: cfg.LedgerRPS,
		HTTPTimeout:       cfg.LedgerAPITimeout,
	}, metrics.NewLedgerClient(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	writer := service.NewAttemptWriter(repo, logger)
	writer.Start(ctx)
	defer writer.Stop()

	scanner, err := service.NewTransactionScanner(
		ledgerClient,
		writer,
		metrics.NewScanner(cfg.Network),
		logger,
		service.ScannerConfig{},
	)
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}
	tracker, err := service.NewAcceptanceTracker(
		repo,
		ledgerClient,
		metrics.NewTracker(cfg.Network),
		logger,
		service.TrackerConfig{},
	)
	if err != nil {
		return fmt.Errorf("init tracker: %w", err)
	}
	engine, err := service.NewOrderingEngine(
		repo,
		metrics.NewOrdering(cfg.Network),
		logger,
		service.OrderingConfig{},
	)
	if err != nil {
		return fmt.Errorf("init ordering engine: %w", err)
	}

	startAuditServer(ctx, cfg.AuditAddr, service.NewSnapshotBuilder(repo), logger)

	loops := []*service.SweepLoop{
		service.NewSweepLoop("scanner", cfg.ScanInterval, logger, service.ScannerTick(repo, scanner, logger)),
		service.NewSweepLoop("tracker", cfg.TrackInterval, logger, service.TrackerTick(repo, tracker, logger)),
		service.NewSweepLoop("ordering", cfg.OrderInterval, logger, service.OrderingTick(repo, engine, logger)),
	}

	var wg sync.WaitGroup
	for _, loop := range loops {
		wg.Add(1)
		go func(loop *service.SweepLoop) {
			defer wg.Done()
			if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("sweep loop stopped", zap.Error(err))
			}
		}(loop)
	}
	wg.Wait()

	return ctx.Err()
}

func startAuditServer(ctx context.Context, addr string, snapshots *service.SnapshotBuilder, logger *zap.Logger) {
	mux := http.NewServeMux()
	transport.NewAuditHandler(snapshots, logger).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting audit server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("audit server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown audit server", zap.Error(err))
		}
	}()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
