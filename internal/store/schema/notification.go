package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/castlight/hub-indexer/internal/domain"
)

// NotificationType identifies the engagement kind of a notification.
type NotificationType int16

const (
	NotificationTypeLike    NotificationType = 1
	NotificationTypeFollow  NotificationType = 2
	NotificationTypeRecast  NotificationType = 3
	NotificationTypeReply   NotificationType = 4
	NotificationTypeMention NotificationType = 5
	NotificationTypeQuote   NotificationType = 6
	NotificationTypeTrade   NotificationType = 7
)

// Aggregated reports whether notifications of this type collapse many
// actors into one row per 48h bucket. Non-aggregated (singleton) types
// carry a NULL timestamp group and one row per recipient.
func (t NotificationType) Aggregated() bool {
	return t == NotificationTypeLike || t == NotificationTypeRecast || t == NotificationTypeFollow
}

// ActorsKey returns the extra_data key holding the actor set for an
// aggregated type, or "" for singleton types.
func (t NotificationType) ActorsKey() string {
	switch t {
	case NotificationTypeLike:
		return "liked_by"
	case NotificationTypeRecast:
		return "recasted_by"
	case NotificationTypeFollow:
		return "followed_by"
	default:
		return ""
	}
}

// Notification represents the notifications table - one aggregated or
// singleton alert to a recipient. The identity of an aggregated row is
// (recipient, type, timestamp group, unit identifier); concurrent actors
// on the same unit within the same bucket merge into one row.
type Notification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Type is the engagement kind
	Type NotificationType `gorm:"column:notification_type;not null;type:smallint;uniqueIndex:uq_notifications_identity,priority:2"`
	// Recipient is the account being notified
	Recipient domain.Fid `gorm:"column:recipient;not null;type:bigint;uniqueIndex:uq_notifications_identity,priority:1"`
	// Actor is the most recent contributing account
	Actor *domain.Fid `gorm:"column:actor;type:bigint"`
	// Timestamp is the time of the most recent contributing action
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// IsRead tracks whether the recipient has seen the notification
	IsRead bool `gorm:"column:is_read;not null;default:false"`
	// TimestampGroup is the 48h bucket key; NULL for singleton types
	TimestampGroup *time.Time `gorm:"column:timestamp_group;type:timestamptz;uniqueIndex:uq_notifications_identity,priority:3"`
	// UnitIdentifier is the acted-on unit: a cast hash for LIKE/RECAST and
	// singleton types, the followed fid for FOLLOW
	UnitIdentifier *string `gorm:"column:unit_identifier;type:text;uniqueIndex:uq_notifications_identity,priority:4"`
	// ExtraData holds the per-type payload, including the actor set for
	// aggregated types (liked_by / recasted_by / followed_by)
	ExtraData datatypes.JSON `gorm:"column:extra_data;type:jsonb"`
	// CreatedAt is when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when this row was last merged into
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
