package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		messageType MessageType
		kind        MessageKind
	}{
		{MessageTypeCastAdd, KindCast},
		{MessageTypeCastRemove, KindCast},
		{MessageTypeReactionAdd, KindReaction},
		{MessageTypeReactionRemove, KindReaction},
		{MessageTypeLinkAdd, KindLink},
		{MessageTypeLinkRemove, KindLink},
		{MessageTypeVerificationAdd, KindVerification},
		{MessageTypeVerificationRemove, KindVerification},
		{MessageTypeUserDataAdd, KindUserData},
		{MessageType(0), KindUnknown},
		{MessageType(99), KindUnknown},
	}

	for _, tt := range tests {
		msg := &Message{Data: MessageData{Type: tt.messageType}}
		assert.Equal(t, tt.kind, msg.Kind(), "type %d", tt.messageType)
	}
}

func TestState(t *testing.T) {
	removes := []MessageType{
		MessageTypeCastRemove,
		MessageTypeReactionRemove,
		MessageTypeLinkRemove,
		MessageTypeVerificationRemove,
	}
	for _, messageType := range removes {
		msg := &Message{Data: MessageData{Type: messageType}}
		assert.Equal(t, MessageStateDeleted, msg.State(), "type %d", messageType)
	}

	adds := []MessageType{
		MessageTypeCastAdd,
		MessageTypeReactionAdd,
		MessageTypeLinkAdd,
		MessageTypeVerificationAdd,
		MessageTypeUserDataAdd,
	}
	for _, messageType := range adds {
		msg := &Message{Data: MessageData{Type: messageType}}
		assert.Equal(t, MessageStateCreated, msg.State(), "type %d", messageType)
	}
}

func TestHashHex(t *testing.T) {
	assert.Equal(t, "0x0a1b", HashHex([]byte{0x0a, 0x1b}))
	assert.Equal(t, "0x", HashHex(nil))

	msg := &Message{Hash: []byte{0xff}}
	assert.Equal(t, "0xff", msg.HashHex())
}

func TestEpochToTime(t *testing.T) {
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), EpochToTime(0))
	assert.Equal(t, time.Date(2021, 1, 1, 0, 1, 40, 0, time.UTC), EpochToTime(100))
}

func TestBucketTime(t *testing.T) {
	// Same 48h window, same bucket key.
	assert.Equal(t, BucketTime(0), BucketTime(BucketSeconds-1))
	assert.NotEqual(t, BucketTime(0), BucketTime(BucketSeconds))

	// The key is the bucket index run through the epoch conversion, not
	// the window's start time.
	assert.Equal(t, EpochToTime(0), BucketTime(BucketSeconds-1))
	assert.Equal(t, EpochToTime(1), BucketTime(BucketSeconds))
	assert.Equal(t, EpochToTime(2), BucketTime(2*BucketSeconds+17))
}

func TestOnChainEventTime(t *testing.T) {
	event := &OnChainEvent{BlockTimestamp: 1_700_000_000}
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), event.Time())
}
