package schema

import (
	"time"

	"github.com/castlight/hub-indexer/internal/domain"
)

// MessageFields holds the signed-envelope columns shared by every
// per-type message table. Hash is unique per table: re-materializing an
// already-present hash is a constraint violation the caller treats as an
// ignorable anomaly.
type MessageFields struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// MessageType is the hub protocol type code of the originating message
	MessageType domain.MessageType `gorm:"column:message_type;not null;type:smallint"`
	// Fid is the author's account identifier
	Fid domain.Fid `gorm:"column:fid;not null;type:bigint;index:,composite:fid_timestamp,priority:1"`
	// Timestamp is the author-asserted message time
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz;index:,composite:fid_timestamp,priority:2"`
	// Network is the hub network identifier
	Network int16 `gorm:"column:network;not null;type:smallint"`
	// Hash is the message content hash, globally unique per message table
	Hash []byte `gorm:"column:hash;not null;type:bytea;uniqueIndex"`
	// HashScheme identifies the hashing scheme used for Hash
	HashScheme int16 `gorm:"column:hash_scheme;not null;type:smallint"`
	// Signature is the author's signature over the message data
	Signature []byte `gorm:"column:signature;not null;type:bytea"`
	// SignatureScheme identifies the signing scheme used for Signature
	SignatureScheme int16 `gorm:"column:signature_scheme;not null;type:smallint"`
	// Signer is the public key that produced Signature
	Signer []byte `gorm:"column:signer;not null;type:bytea"`
	// CreatedAt is when this row was first materialized
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when this row was last touched
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	// DeletedAt is the soft-delete marker; rows are never physically removed
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz"`
}
