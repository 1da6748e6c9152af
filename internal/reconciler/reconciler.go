package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/adapter"
	"github.com/castlight/hub-indexer/internal/consumer"
	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/store"
)

// HubClient reads the upstream hub's authoritative message sets. It is
// kept as an interface so transports (gRPC, HTTP) stay out of the
// reconciliation core.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=HubClient=MockHubClient
type HubClient interface {
	// ListMessagesByFid pages through the account's messages of one
	// kind. An empty next token ends the iteration.
	ListMessagesByFid(ctx context.Context, fid domain.Fid, kind domain.MessageKind, pageToken string) ([]*domain.Message, string, error)
	// MaxFid returns the highest registered account id
	MaxFid(ctx context.Context) (domain.Fid, error)
	// Close releases the underlying connection
	Close() error
}

// Config holds reconciliation configuration
type Config struct {
	WorkerPoolSize  int
	WorkerQueueSize int
	PageSize        int
	RequestTimeout  time.Duration
}

// Reconciler backfills messages the live stream missed. It walks every
// account, compares the hub's message sets against the materialized
// tables, and replays anything absent with notification writes
// suppressed.
type Reconciler struct {
	config    Config
	hub       HubClient
	store     store.Store
	processor consumer.MessageProcessor
	clock     adapter.Clock
}

// reconciledKinds are the message kinds the hub can enumerate per account.
var reconciledKinds = []domain.MessageKind{
	domain.KindCast,
	domain.KindReaction,
	domain.KindLink,
	domain.KindVerification,
	domain.KindUserData,
}

// NewReconciler creates a reconciler reading from hub and repairing st.
func NewReconciler(cfg Config, hub HubClient, st store.Store, processor consumer.MessageProcessor, clock adapter.Clock) *Reconciler {
	return &Reconciler{
		config:    cfg,
		hub:       hub,
		store:     st,
		processor: processor,
		clock:     clock,
	}
}

// Run reconciles every account from 1 through the hub's highest fid.
func (r *Reconciler) Run(ctx context.Context) error {
	startTime := r.clock.Now()

	var maxFid domain.Fid
	err := backoff.Retry(func() error {
		var err error
		maxFid, err = r.hub.MaxFid(ctx)
		return err
	}, r.newBackoff(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch max fid: %w", err)
	}

	logger.InfoCtx(ctx, "Starting reconciliation",
		zap.Uint64("maxFid", uint64(maxFid)),
		zap.Int("workerPoolSize", r.config.WorkerPoolSize),
	)

	pool := pond.NewPool(
		r.config.WorkerPoolSize,
		pond.WithQueueSize(r.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	var replayed, failed atomic.Int64
	for fid := domain.Fid(1); fid <= maxFid; fid++ {
		fid := fid
		pool.Submit(func() {
			n, err := r.ReconcileFid(ctx, fid)
			replayed.Add(n)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err, zap.Uint64("fid", uint64(fid)))
				}
				failed.Add(1)
			}
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Reconciliation completed",
		zap.Duration("duration", r.clock.Since(startTime)),
		zap.Uint64("accounts", uint64(maxFid)),
		zap.Int64("replayed", replayed.Load()),
		zap.Int64("failedAccounts", failed.Load()),
	)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// ReconcileFid repairs one account across all message kinds. It returns
// the number of messages replayed.
func (r *Reconciler) ReconcileFid(ctx context.Context, fid domain.Fid) (int64, error) {
	var replayed int64
	for _, kind := range reconciledKinds {
		n, err := r.reconcileKind(ctx, fid, kind)
		replayed += n
		if err != nil {
			return replayed, fmt.Errorf("failed to reconcile %s messages for fid %d: %w", kind, fid, err)
		}
	}
	return replayed, nil
}

// reconcileKind pages through one account's messages of one kind and
// replays the ones the materialized tables are missing. Replays carry
// the missed flag: rows and counters are repaired, stale notifications
// are not emitted.
func (r *Reconciler) reconcileKind(ctx context.Context, fid domain.Fid, kind domain.MessageKind) (int64, error) {
	var replayed int64
	pageToken := ""
	for {
		var (
			messages []*domain.Message
			next     string
		)
		err := backoff.Retry(func() error {
			reqCtx, cancel := context.WithTimeout(ctx, r.config.RequestTimeout)
			defer cancel()

			var err error
			messages, next, err = r.hub.ListMessagesByFid(reqCtx, fid, kind, pageToken)
			if err != nil && ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}, r.newBackoff(ctx))
		if err != nil {
			return replayed, err
		}

		for _, msg := range messages {
			exists, err := r.store.MessageExists(ctx, kind, msg.Hash)
			if err != nil {
				return replayed, fmt.Errorf("failed to check message existence: %w", err)
			}
			if exists {
				continue
			}
			if err := r.processor.HandleMessage(ctx, msg, msg.State(), true, true); err != nil {
				return replayed, err
			}
			replayed++
		}

		if next == "" {
			return replayed, nil
		}
		pageToken = next
	}
}

func (r *Reconciler) newBackoff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	b.Multiplier = 1.5
	b.RandomizationFactor = 0.5 // Add jitter
	return backoff.WithContext(b, ctx)
}
