package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlight/hub-indexer/internal/adapter"
	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/mocks"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildCastAddMessage(fid domain.Fid, hash string) *domain.Message {
	return &domain.Message{
		Data: domain.MessageData{
			Type:      domain.MessageTypeCastAdd,
			Fid:       fid,
			Timestamp: 100_000_000,
			Network:   1,
			CastBody:  &domain.CastBody{Text: "hello"},
		},
		Hash:            []byte(hash),
		HashScheme:      1,
		Signature:       []byte("sig"),
		SignatureScheme: 1,
		Signer:          []byte("signer"),
	}
}

func buildMergeEvent(id uint64, msg *domain.Message, deleted ...*domain.Message) []byte {
	event := domain.HubEvent{
		ID:   id,
		Type: domain.HubEventTypeMergeMessage,
		MergeMessageBody: &domain.MergeMessageBody{
			Message:         msg,
			DeletedMessages: deleted,
		},
	}
	data, err := adapter.NewJSON().Marshal(event)
	if err != nil {
		panic(err)
	}
	return data
}

type consumerFixture struct {
	consumer  *consumer
	store     *mocks.MockStore
	processor *mocks.MockMessageProcessor
}

func newTestConsumer(t *testing.T) *consumerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)
	mockProcessor := mocks.NewMockMessageProcessor(ctrl)
	return &consumerFixture{
		consumer: &consumer{
			store:     mockStore,
			processor: mockProcessor,
			json:      adapter.NewJSON(),
			config: Config{
				StreamName:    "HUB_EVENTS",
				ConsumerName:  "stream-consumer",
				SubjectPrefix: "hub.events",
			},
		},
		store:     mockStore,
		processor: mockProcessor,
	}
}

func newMockNatsMessage(t *testing.T, payload []byte) *mocks.MockJetStreamMessage {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	msg := mocks.NewMockJetStreamMessage(ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Subject().Return("hub.events.1").AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

// =============================================================================
// Message Handling
// =============================================================================

func TestHandleMessageAcksOnSuccess(t *testing.T) {
	f := newTestConsumer(t)

	castMsg := buildCastAddMessage(1, "hash-1")
	natsMsg := newMockNatsMessage(t, buildMergeEvent(100, castMsg))
	natsMsg.EXPECT().Ack().Return(nil)

	f.store.EXPECT().
		MessageExists(gomock.Any(), domain.KindCast, []byte("hash-1")).
		Return(false, nil)
	f.processor.EXPECT().
		HandleMessage(gomock.Any(), gomock.Any(), domain.MessageStateCreated, true, false).
		Return(nil)

	f.consumer.handleMessage(context.Background(), natsMsg)
}

func TestHandleMessageExistingCreateIsNotNew(t *testing.T) {
	f := newTestConsumer(t)

	castMsg := buildCastAddMessage(1, "hash-1")
	natsMsg := newMockNatsMessage(t, buildMergeEvent(100, castMsg))
	natsMsg.EXPECT().Ack().Return(nil)

	f.store.EXPECT().
		MessageExists(gomock.Any(), domain.KindCast, []byte("hash-1")).
		Return(true, nil)
	f.processor.EXPECT().
		HandleMessage(gomock.Any(), gomock.Any(), domain.MessageStateCreated, false, false).
		Return(nil)

	f.consumer.handleMessage(context.Background(), natsMsg)
}

func TestHandleMessageTermsUnparseablePayload(t *testing.T) {
	f := newTestConsumer(t)

	natsMsg := newMockNatsMessage(t, []byte("{not json"))
	natsMsg.EXPECT().Term().Return(nil)

	f.consumer.handleMessage(context.Background(), natsMsg)
}

func TestHandleMessageNaksOnProcessingFailure(t *testing.T) {
	f := newTestConsumer(t)

	castMsg := buildCastAddMessage(1, "hash-1")
	natsMsg := newMockNatsMessage(t, buildMergeEvent(100, castMsg))
	natsMsg.EXPECT().Nak().Return(nil)

	f.store.EXPECT().
		MessageExists(gomock.Any(), domain.KindCast, []byte("hash-1")).
		Return(false, errors.New("db down"))

	f.consumer.handleMessage(context.Background(), natsMsg)
}

func TestHandleMessageAcksUnknownEventType(t *testing.T) {
	f := newTestConsumer(t)

	payload, err := adapter.NewJSON().Marshal(domain.HubEvent{ID: 1, Type: "merge_username_proof"})
	require.NoError(t, err)

	natsMsg := newMockNatsMessage(t, payload)
	natsMsg.EXPECT().Ack().Return(nil)

	// Unknown event types are skipped and acknowledged, not retried.
	f.consumer.handleMessage(context.Background(), natsMsg)
}

// =============================================================================
// Event Routing
// =============================================================================

func TestProcessEventRoutesDisplacedMessagesAsDeletes(t *testing.T) {
	f := newTestConsumer(t)

	added := buildCastAddMessage(1, "hash-new")
	displaced := buildCastAddMessage(1, "hash-old")

	var event domain.HubEvent
	require.NoError(t, adapter.NewJSON().Unmarshal(buildMergeEvent(100, added, displaced), &event))

	gomock.InOrder(
		f.store.EXPECT().
			MessageExists(gomock.Any(), domain.KindCast, []byte("hash-new")).
			Return(false, nil),
		f.processor.EXPECT().
			HandleMessage(gomock.Any(), gomock.Any(), domain.MessageStateCreated, true, false).
			Return(nil),
		// Displaced messages skip the existence check: deletes always run.
		f.processor.EXPECT().
			HandleMessage(gomock.Any(), gomock.Any(), domain.MessageStateDeleted, true, false).
			DoAndReturn(func(_ context.Context, msg *domain.Message, _ domain.MessageState, _, _ bool) error {
				assert.Equal(t, []byte("hash-old"), msg.Hash)
				return nil
			}),
	)

	assert.NoError(t, f.consumer.processEvent(context.Background(), &event))
}

func TestProcessEventRoutesRemoveMessageByItsState(t *testing.T) {
	f := newTestConsumer(t)

	removeMsg := buildCastAddMessage(1, "hash-rm")
	removeMsg.Data.Type = domain.MessageTypeCastRemove
	removeMsg.Data.CastBody = nil

	var event domain.HubEvent
	require.NoError(t, adapter.NewJSON().Unmarshal(buildMergeEvent(101, removeMsg), &event))

	f.processor.EXPECT().
		HandleMessage(gomock.Any(), gomock.Any(), domain.MessageStateDeleted, true, false).
		Return(nil)

	assert.NoError(t, f.consumer.processEvent(context.Background(), &event))
}

func TestProcessEventPruneAndRevokeAreDeletes(t *testing.T) {
	for _, eventType := range []domain.HubEventType{
		domain.HubEventTypePruneMessage,
		domain.HubEventTypeRevokeMessage,
	} {
		t.Run(string(eventType), func(t *testing.T) {
			f := newTestConsumer(t)

			msg := buildCastAddMessage(1, "hash-p")
			event := domain.HubEvent{ID: 7, Type: eventType}
			switch eventType {
			case domain.HubEventTypePruneMessage:
				event.PruneMessageBody = &domain.PruneMessageBody{Message: msg}
			case domain.HubEventTypeRevokeMessage:
				event.RevokeMessageBody = &domain.RevokeMessageBody{Message: msg}
			}

			f.processor.EXPECT().
				HandleMessage(gomock.Any(), msg, domain.MessageStateDeleted, true, false).
				Return(nil)

			assert.NoError(t, f.consumer.processEvent(context.Background(), &event))
		})
	}
}

func TestProcessEventRoutesOnChainEvents(t *testing.T) {
	f := newTestConsumer(t)

	chainEvent := &domain.OnChainEvent{
		Type:        domain.OnChainEventTypeIdRegister,
		Fid:         42,
		BlockNumber: 1000,
		LogIndex:    3,
	}
	event := domain.HubEvent{
		ID:                    8,
		Type:                  domain.HubEventTypeMergeOnChainEvent,
		MergeOnChainEventBody: &domain.MergeOnChainEventBody{OnChainEvent: chainEvent},
	}

	f.processor.EXPECT().HandleOnChainEvent(gomock.Any(), chainEvent).Return(nil)

	assert.NoError(t, f.consumer.processEvent(context.Background(), &event))
}

func TestProcessEventMergeWithoutMessageBodyFails(t *testing.T) {
	f := newTestConsumer(t)

	event := domain.HubEvent{ID: 9, Type: domain.HubEventTypeMergeMessage}
	assert.Error(t, f.consumer.processEvent(context.Background(), &event))
}

// =============================================================================
// Run Loop
// =============================================================================

func TestRunConsumesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockProcessor := mocks.NewMockMessageProcessor(ctrl)
	mockJS := mocks.NewMockJetStream(ctrl)
	mockConsumer := mocks.NewMockNatsConsumer(ctrl)
	mockSub := mocks.NewMockConsumeContext(ctrl)

	c := &consumer{
		js:        mockJS,
		store:     mockStore,
		processor: mockProcessor,
		json:      adapter.NewJSON(),
		config: Config{
			StreamName:    "HUB_EVENTS",
			ConsumerName:  "stream-consumer",
			SubjectPrefix: "hub.events",
		},
	}

	mockJS.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "HUB_EVENTS", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cfg jetstream.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "stream-consumer", cfg.Durable)
			assert.Equal(t, "hub.events.>", cfg.FilterSubject)
			assert.Equal(t, jetstream.AckExplicitPolicy, cfg.AckPolicy)
			return mockConsumer, nil
		})
	mockConsumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "stream-consumer"}, nil)

	handlerCh := make(chan adapter.MessageHandler, 1)
	mockConsumer.EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(h adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerCh <- h
			return mockSub, nil
		})
	mockSub.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())

	natsMsg := mocks.NewMockJetStreamMessage(ctrl)
	natsMsg.EXPECT().Data().Return(buildMergeEvent(100, buildCastAddMessage(1, "hash-1"))).AnyTimes()
	natsMsg.EXPECT().Subject().Return("hub.events.1").AnyTimes()
	natsMsg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	natsMsg.EXPECT().Ack().Return(nil)

	mockStore.EXPECT().
		MessageExists(gomock.Any(), domain.KindCast, []byte("hash-1")).
		Return(false, nil)
	mockProcessor.EXPECT().
		HandleMessage(gomock.Any(), gomock.Any(), domain.MessageStateCreated, true, false).
		DoAndReturn(func(context.Context, *domain.Message, domain.MessageState, bool, bool) error {
			cancel()
			return nil
		})

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Run(ctx)
	}()

	// Wait for Run to install the handler, then deliver one message.
	select {
	case handler := <-handlerCh:
		handler(natsMsg)
	case <-time.After(time.Second):
		t.Fatal("consume handler was never installed")
	}

	err := <-errCh
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunFailsWhenConsumerCreationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJS := mocks.NewMockJetStream(ctrl)
	mockJS.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("stream not found"))

	c := &consumer{
		js:     mockJS,
		json:   adapter.NewJSON(),
		config: Config{StreamName: "HUB_EVENTS", ConsumerName: "stream-consumer", SubjectPrefix: "hub.events"},
	}

	assert.Error(t, c.Run(context.Background()))
}
