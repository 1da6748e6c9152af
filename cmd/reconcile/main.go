package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/adapter"
	"github.com/castlight/hub-indexer/internal/config"
	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/processor"
	"github.com/castlight/hub-indexer/internal/providers/hub"
	"github.com/castlight/hub-indexer/internal/reconciler"
	"github.com/castlight/hub-indexer/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to the directory holding .env files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadStreamConsumerConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if cfg.Hub.Address == "" {
		panic("hub.address is required")
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
		Tags:        map[string]string{"service": "reconcile"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting reconciliation run")

	// Connect to database
	db, err := store.Open(cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime,
	); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.EnsureSchema(db); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Initialize store and processor
	dataStore := store.NewPGStore(db)

	replyFilter := processor.NopSuppressReplyFilter
	if cfg.ReplyFilter.Fid != 0 {
		replyFilter = processor.NewFidSubstringFilter(domain.Fid(cfg.ReplyFilter.Fid), cfg.ReplyFilter.Substring)
	}
	proc := processor.NewProcessor(dataStore, replyFilter)

	// Create hub client
	scheme := "http"
	if cfg.Hub.UseTLS {
		scheme = "https"
	}
	hubClient := hub.NewClient(
		adapter.NewHTTPClient(cfg.Hub.RequestTimeout),
		fmt.Sprintf("%s://%s", scheme, cfg.Hub.Address),
		cfg.Hub.PageSize,
	)
	defer func() {
		if err := hubClient.Close(); err != nil {
			logger.Error(err)
		}
	}()

	rec := reconciler.NewReconciler(
		reconciler.Config{
			WorkerPoolSize:  cfg.Worker.PoolSize,
			WorkerQueueSize: cfg.Worker.QueueSize,
			PageSize:        cfg.Hub.PageSize,
			RequestTimeout:  cfg.Hub.RequestTimeout,
		},
		hubClient,
		dataStore,
		proc,
		adapter.NewClock(),
	)

	// Cancel the run on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := rec.Run(ctx); err != nil {
		logger.Fatal("Reconciliation failed", zap.Error(err))
	}

	logger.Info("Reconciliation run finished")
}
