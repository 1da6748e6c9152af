package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/castlight/hub-indexer/internal/domain"
)

// OnChainEvent represents the onchain_events table - an append-only
// record of chain-observed account and storage events. Rows are keyed by
// (block number, log index) and never mutated.
type OnChainEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Fid is the account the event concerns
	Fid domain.Fid `gorm:"column:fid;not null;type:bigint;index"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// BlockNumber is the block the event was emitted in
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint;uniqueIndex:uq_onchain_events_block_log,priority:1"`
	// LogIndex is the event's position within the block
	LogIndex uint32 `gorm:"column:log_index;not null;uniqueIndex:uq_onchain_events_block_log,priority:2"`
	// TxHash is the transaction that emitted the event
	TxHash []byte `gorm:"column:tx_hash;not null;type:bytea"`
	// Type is the on-chain event type code
	Type domain.OnChainEventType `gorm:"column:type;not null;type:smallint"`
	// Body is the decoded, type-specific payload; empty for unknown types
	Body datatypes.JSON `gorm:"column:body;type:jsonb"`
	// CreatedAt is when this row was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when this row was last touched
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OnChainEvent model
func (OnChainEvent) TableName() string {
	return "onchain_events"
}
