package domain

import "time"

// OnChainEventType mirrors the hub protocol's on-chain event type codes.
type OnChainEventType int16

const (
	OnChainEventTypeSigner        OnChainEventType = 1
	OnChainEventTypeSignerMigrate OnChainEventType = 2
	OnChainEventTypeIdRegister    OnChainEventType = 3
	OnChainEventTypeStorageRent   OnChainEventType = 4
)

// SignerEventBody describes a signer key rotation.
type SignerEventBody struct {
	Key          []byte `json:"key"`
	KeyType      uint32 `json:"key_type"`
	EventType    int16  `json:"event_type"`
	Metadata     []byte `json:"metadata"`
	MetadataType uint32 `json:"metadata_type"`
}

// IdRegisterEventBody describes an identity registration or transfer.
type IdRegisterEventBody struct {
	To              []byte `json:"to"`
	EventType       int16  `json:"event_type"`
	From            []byte `json:"from"`
	RecoveryAddress []byte `json:"recovery_address"`
}

// StorageRentEventBody describes a storage unit purchase.
type StorageRentEventBody struct {
	Payer  []byte `json:"payer"`
	Units  uint32 `json:"units"`
	Expiry uint32 `json:"expiry"`
}

// OnChainEvent is a chain-observed account or storage event, delivered
// on the same stream as messages but recorded independently of them.
type OnChainEvent struct {
	Type            OnChainEventType `json:"type"`
	Fid             Fid              `json:"fid"`
	BlockNumber     uint64           `json:"block_number"`
	BlockTimestamp  int64            `json:"block_timestamp"` // unix seconds
	LogIndex        uint32           `json:"log_index"`
	TransactionHash []byte           `json:"transaction_hash"`

	SignerEventBody      *SignerEventBody      `json:"signer_event_body,omitempty"`
	IdRegisterEventBody  *IdRegisterEventBody  `json:"id_register_event_body,omitempty"`
	StorageRentEventBody *StorageRentEventBody `json:"storage_rent_event_body,omitempty"`
}

// Time converts the event's block timestamp to wall-clock time.
func (e *OnChainEvent) Time() time.Time {
	return time.Unix(e.BlockTimestamp, 0).UTC()
}
