package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/adapter"
	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/store"
)

// Config holds the configuration for the stream consumer
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// MessageProcessor materializes decoded hub events. Implemented by the
// processor package, mocked in tests.
//
//go:generate mockgen -source=consumer.go -destination=../mocks/consumer.go -package=mocks -mock_names=MessageProcessor=MockMessageProcessor
type MessageProcessor interface {
	HandleMessage(ctx context.Context, msg *domain.Message, state domain.MessageState, isNew, wasMissed bool) error
	HandleOnChainEvent(ctx context.Context, event *domain.OnChainEvent) error
}

// Consumer defines the interface for the stream consumer
type Consumer interface {
	// Run starts consuming until ctx is cancelled
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	store     store.Store
	processor MessageProcessor
	json      adapter.JSON
	config    Config
}

// NewConsumer connects to NATS and creates a stream consumer.
func NewConsumer(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	processor MessageProcessor,
	jsonAdapter adapter.JSON,
) (Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:        nc,
		js:        js,
		store:     st,
		processor: processor,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// Run starts the stream consumer. Messages are handled one at a time
// in delivery order: each hub shard serializes its events onto one
// subject, and interleaving creates with their own deletes corrupts the
// materialized tables.
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting stream consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName),
	)

	subject := c.config.SubjectPrefix + ".>"

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: subject,
	}

	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := jsConsumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := jsConsumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubscriptionFailed, err)
	}
	defer sub.Stop()

	logger.Info("Started consuming events")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down stream consumer")
			return ctx.Err()
		case msg := <-msgChan:
			c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message carrying one hub event.
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.HubEvent
	if err := c.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal hub event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	var deliveryCount uint64
	if metadata != nil {
		deliveryCount = metadata.NumDelivered
	}
	logger.Debug("Received hub event",
		zap.Uint64("eventID", event.ID),
		zap.String("eventType", string(event.Type)),
		zap.String("subject", msg.Subject()),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	if err := c.processEvent(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to process hub event"), zap.Uint64("eventID", event.ID))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// processEvent routes one decoded hub event to the processor.
func (c *consumer) processEvent(ctx context.Context, event *domain.HubEvent) error {
	switch event.Type {
	case domain.HubEventTypeMergeMessage:
		body := event.MergeMessageBody
		if body == nil || body.Message == nil {
			return fmt.Errorf("merge event %d has no message body", event.ID)
		}
		if err := c.materialize(ctx, body.Message, body.Message.State()); err != nil {
			return err
		}
		// Messages the merge displaced are deletions in the same batch.
		for _, deleted := range body.DeletedMessages {
			if err := c.materialize(ctx, deleted, domain.MessageStateDeleted); err != nil {
				return err
			}
		}
		return nil

	case domain.HubEventTypeMergeOnChainEvent:
		body := event.MergeOnChainEventBody
		if body == nil || body.OnChainEvent == nil {
			return fmt.Errorf("on-chain event %d has no body", event.ID)
		}
		return c.processor.HandleOnChainEvent(ctx, body.OnChainEvent)

	case domain.HubEventTypePruneMessage:
		body := event.PruneMessageBody
		if body == nil || body.Message == nil {
			return fmt.Errorf("prune event %d has no message body", event.ID)
		}
		return c.materialize(ctx, body.Message, domain.MessageStateDeleted)

	case domain.HubEventTypeRevokeMessage:
		body := event.RevokeMessageBody
		if body == nil || body.Message == nil {
			return fmt.Errorf("revoke event %d has no message body", event.ID)
		}
		return c.materialize(ctx, body.Message, domain.MessageStateDeleted)

	default:
		logger.Warn("Skipping hub event of unknown type",
			zap.Uint64("eventID", event.ID),
			zap.String("eventType", string(event.Type)),
		)
		return nil
	}
}

// materialize computes the idempotency gate against the durable store
// and hands the message to the processor. A create is new when no row
// for its hash exists yet; a delete always runs, soft deletion being
// idempotent itself.
func (c *consumer) materialize(ctx context.Context, msg *domain.Message, state domain.MessageState) error {
	isNew := true
	if state == domain.MessageStateCreated {
		exists, err := c.store.MessageExists(ctx, msg.Kind(), msg.Hash)
		if err != nil {
			return fmt.Errorf("failed to check message existence: %w", err)
		}
		isNew = !exists
	}
	return c.processor.HandleMessage(ctx, msg, state, isNew, false)
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}
	c.nc.Close()
}
