package store

import (
	"context"
	"time"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

// NotificationKey identifies one aggregated notification row:
// (recipient, type, 48h bucket, acted-on unit). Concurrent actors
// sharing a key merge into a single row.
type NotificationKey struct {
	Type       schema.NotificationType
	Recipient  domain.Fid
	BucketTime time.Time
	Unit       string
}

// ProfileField names a single profile column maintained from user data
// messages.
type ProfileField string

const (
	ProfileFieldAvatarURL   ProfileField = "avatar_url"
	ProfileFieldDisplayName ProfileField = "display_name"
	ProfileFieldBio         ProfileField = "bio"
	ProfileFieldUsername    ProfileField = "username"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// InsertCast materializes the canonical row for a cast message
	InsertCast(ctx context.Context, cast *schema.Cast) error
	// SoftDeleteCast marks the cast with the given content hash deleted
	SoftDeleteCast(ctx context.Context, hash []byte, deletedAt time.Time) error
	// InsertReaction materializes the canonical row for a reaction message
	InsertReaction(ctx context.Context, reaction *schema.Reaction) error
	// SoftDeleteReaction marks the reaction with the given content hash deleted
	SoftDeleteReaction(ctx context.Context, hash []byte, deletedAt time.Time) error
	// InsertLink materializes the canonical row for a link message
	InsertLink(ctx context.Context, link *schema.Link) error
	// SoftDeleteLink marks the link with the given content hash deleted
	SoftDeleteLink(ctx context.Context, hash []byte, deletedAt time.Time) error
	// InsertVerification materializes the canonical row for a verification message
	InsertVerification(ctx context.Context, verification *schema.Verification) error
	// SoftDeleteVerification marks the verification with the given content hash deleted
	SoftDeleteVerification(ctx context.Context, hash []byte, deletedAt time.Time) error
	// InsertUserData materializes the canonical row for a user data message
	InsertUserData(ctx context.Context, userData *schema.UserData) error
	// MessageExists reports whether a message of the given kind has been
	// materialized under the given content hash
	MessageExists(ctx context.Context, kind domain.MessageKind, hash []byte) (bool, error)

	// InsertNotification inserts one singleton (non-aggregated) notification row
	InsertNotification(ctx context.Context, notification *schema.Notification) error
	// DeleteNotificationsByUnit removes every singleton notification of the
	// given type for the given unit, regardless of recipient
	DeleteNotificationsByUnit(ctx context.Context, notificationType schema.NotificationType, unit string) error
	// MergeNotificationActor upserts the aggregated notification row for the
	// key, atomically appending the actor to its stored actor set
	MergeNotificationActor(ctx context.Context, key NotificationKey, actor domain.Fid, at time.Time) error
	// RemoveNotificationActor atomically removes the actor from the row's
	// actor set, deleting the row once the set is empty
	RemoveNotificationActor(ctx context.Context, key NotificationKey, actor domain.Fid) error

	// IncrementFollowCounts bumps follower's following count and target's
	// follower count by one, creating either profile row on first reference
	IncrementFollowCounts(ctx context.Context, follower, target domain.Fid) error
	// DecrementFollowCounts reverses IncrementFollowCounts for existing rows
	DecrementFollowCounts(ctx context.Context, follower, target domain.Fid) error
	// UpsertProfileField sets one profile column for the account, creating
	// the row with defaults on first reference
	UpsertProfileField(ctx context.Context, fid domain.Fid, field ProfileField, value string) error

	// InsertOnChainEvent records a chain-observed event, idempotent over
	// (block number, log index)
	InsertOnChainEvent(ctx context.Context, event *schema.OnChainEvent) error

	// GetCastByHash retrieves a cast row by content hash, nil when absent
	GetCastByHash(ctx context.Context, hash []byte) (*schema.Cast, error)
	// GetReactionByHash retrieves a reaction row by content hash, nil when absent
	GetReactionByHash(ctx context.Context, hash []byte) (*schema.Reaction, error)
	// GetLinkByHash retrieves a link row by content hash, nil when absent
	GetLinkByHash(ctx context.Context, hash []byte) (*schema.Link, error)
	// GetNotificationsByRecipient lists a recipient's notifications, newest first
	GetNotificationsByRecipient(ctx context.Context, recipient domain.Fid) ([]schema.Notification, error)
	// GetProfile retrieves a profile row by fid, nil when absent
	GetProfile(ctx context.Context, fid domain.Fid) (*schema.Profile, error)
}
