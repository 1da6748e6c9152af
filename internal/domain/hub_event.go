package domain

// HubEventType distinguishes the event envelopes the upstream hub
// publishes on the stream.
type HubEventType string

const (
	HubEventTypeMergeMessage      HubEventType = "merge_message"
	HubEventTypeMergeOnChainEvent HubEventType = "merge_onchain_event"
	HubEventTypePruneMessage      HubEventType = "prune_message"
	HubEventTypeRevokeMessage     HubEventType = "revoke_message"
)

// MergeMessageBody carries a newly merged message plus any messages the
// merge displaced (e.g. the cast a cast-remove deletes).
type MergeMessageBody struct {
	Message         *Message   `json:"message"`
	DeletedMessages []*Message `json:"deleted_messages,omitempty"`
}

// MergeOnChainEventBody carries a chain-observed event.
type MergeOnChainEventBody struct {
	OnChainEvent *OnChainEvent `json:"onchain_event"`
}

// PruneMessageBody carries a message evicted for storage limits.
type PruneMessageBody struct {
	Message *Message `json:"message"`
}

// RevokeMessageBody carries a message invalidated by a signer removal.
type RevokeMessageBody struct {
	Message *Message `json:"message"`
}

// HubEvent is one entry of the upstream hub's event stream. Exactly one
// body field is set, matching the event type.
type HubEvent struct {
	ID   uint64       `json:"id"`
	Type HubEventType `json:"type"`

	MergeMessageBody      *MergeMessageBody      `json:"merge_message_body,omitempty"`
	MergeOnChainEventBody *MergeOnChainEventBody `json:"merge_onchain_event_body,omitempty"`
	PruneMessageBody      *PruneMessageBody      `json:"prune_message_body,omitempty"`
	RevokeMessageBody     *RevokeMessageBody     `json:"revoke_message_body,omitempty"`
}
