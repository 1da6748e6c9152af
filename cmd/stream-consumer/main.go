package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/adapter"
	"github.com/castlight/hub-indexer/internal/config"
	"github.com/castlight/hub-indexer/internal/consumer"
	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/processor"
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

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
		Tags:        map[string]string{"service": "stream-consumer"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting stream consumer")

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
		logger.Info("Reply notification filter enabled", zap.Uint64("fid", cfg.ReplyFilter.Fid))
	}
	proc := processor.NewProcessor(dataStore, replyFilter)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Create consumer
	streamConsumer, err := consumer.NewConsumer(
		consumer.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
		},
		natsJS,
		dataStore,
		proc,
		jsonAdapter,
	)
	if err != nil {
		logger.Fatal("Failed to create stream consumer", zap.Error(err))
	}
	defer streamConsumer.Close()
	logger.Info("Stream consumer created",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName),
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for consumer errors
	errCh := make(chan error, 1)

	go func() {
		if err := streamConsumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "consumer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Stream consumer stopped")
}
