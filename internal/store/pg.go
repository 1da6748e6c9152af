package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Open connects to PostgreSQL with error translation enabled so that
// unique constraint violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates or updates every table the indexer materializes
// into. Binaries call this once at startup.
func EnsureSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&schema.Cast{},
		&schema.Reaction{},
		&schema.Link{},
		&schema.Verification{},
		&schema.UserData{},
		&schema.Notification{},
		&schema.Profile{},
		&schema.OnChainEvent{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection. Zero values fall back to defaults:
// MaxOpenConns 20, MaxIdleConns 5, ConnMaxLifetime 5m, ConnMaxIdleTime 10m.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// =============================================================================
// Message Materialization
// =============================================================================

// InsertCast materializes the canonical row for a cast message
func (s *pgStore) InsertCast(ctx context.Context, cast *schema.Cast) error {
	if err := s.db.WithContext(ctx).Create(cast).Error; err != nil {
		return fmt.Errorf("failed to insert cast: %w", err)
	}
	return nil
}

// SoftDeleteCast marks the cast with the given content hash deleted
func (s *pgStore) SoftDeleteCast(ctx context.Context, hash []byte, deletedAt time.Time) error {
	return s.softDeleteByHash(ctx, &schema.Cast{}, hash, deletedAt)
}

// InsertReaction materializes the canonical row for a reaction message
func (s *pgStore) InsertReaction(ctx context.Context, reaction *schema.Reaction) error {
	if err := s.db.WithContext(ctx).Create(reaction).Error; err != nil {
		return fmt.Errorf("failed to insert reaction: %w", err)
	}
	return nil
}

// SoftDeleteReaction marks the reaction with the given content hash deleted
func (s *pgStore) SoftDeleteReaction(ctx context.Context, hash []byte, deletedAt time.Time) error {
	return s.softDeleteByHash(ctx, &schema.Reaction{}, hash, deletedAt)
}

// InsertLink materializes the canonical row for a link message
func (s *pgStore) InsertLink(ctx context.Context, link *schema.Link) error {
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

// SoftDeleteLink marks the link with the given content hash deleted
func (s *pgStore) SoftDeleteLink(ctx context.Context, hash []byte, deletedAt time.Time) error {
	return s.softDeleteByHash(ctx, &schema.Link{}, hash, deletedAt)
}

// InsertVerification materializes the canonical row for a verification message
func (s *pgStore) InsertVerification(ctx context.Context, verification *schema.Verification) error {
	if err := s.db.WithContext(ctx).Create(verification).Error; err != nil {
		return fmt.Errorf("failed to insert verification: %w", err)
	}
	return nil
}

// SoftDeleteVerification marks the verification with the given content hash deleted
func (s *pgStore) SoftDeleteVerification(ctx context.Context, hash []byte, deletedAt time.Time) error {
	return s.softDeleteByHash(ctx, &schema.Verification{}, hash, deletedAt)
}

// InsertUserData materializes the canonical row for a user data message
func (s *pgStore) InsertUserData(ctx context.Context, userData *schema.UserData) error {
	if err := s.db.WithContext(ctx).Create(userData).Error; err != nil {
		return fmt.Errorf("failed to insert user data: %w", err)
	}
	return nil
}

// softDeleteByHash stamps deleted_at on the row matching the content
// hash. A missing row is a zero-row update, not an error: the create was
// never observed and there is nothing to repair here.
func (s *pgStore) softDeleteByHash(ctx context.Context, model interface{}, hash []byte, deletedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(model).
		Where("hash = ?", hash).
		Updates(map[string]interface{}{
			"updated_at": gorm.Expr("now()"),
			"deleted_at": deletedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to soft delete message: %w", err)
	}
	return nil
}

// MessageExists reports whether a message of the given kind has been
// materialized under the given content hash
func (s *pgStore) MessageExists(ctx context.Context, kind domain.MessageKind, hash []byte) (bool, error) {
	var model interface{}
	switch kind {
	case domain.KindCast:
		model = &schema.Cast{}
	case domain.KindReaction:
		model = &schema.Reaction{}
	case domain.KindLink:
		model = &schema.Link{}
	case domain.KindVerification:
		model = &schema.Verification{}
	case domain.KindUserData:
		model = &schema.UserData{}
	default:
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownMessageKind, kind)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(model).Where("hash = ?", hash).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check message existence: %w", err)
	}
	return count > 0, nil
}

// =============================================================================
// Notifications
// =============================================================================

// InsertNotification inserts one singleton (non-aggregated) notification row
func (s *pgStore) InsertNotification(ctx context.Context, notification *schema.Notification) error {
	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// DeleteNotificationsByUnit removes every singleton notification of the
// given type for the given unit, regardless of recipient
func (s *pgStore) DeleteNotificationsByUnit(ctx context.Context, notificationType schema.NotificationType, unit string) error {
	err := s.db.WithContext(ctx).
		Where("notification_type = ? AND unit_identifier = ? AND timestamp_group IS NULL", notificationType, unit).
		Delete(&schema.Notification{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

// MergeNotificationActor upserts the aggregated notification row for the
// key, atomically appending the actor to its stored actor set. The
// append references the stored column value server-side so two actors
// hitting the same key concurrently both land in the set.
func (s *pgStore) MergeNotificationActor(ctx context.Context, key NotificationKey, actor domain.Fid, at time.Time) error {
	field := key.Type.ActorsKey()
	if field == "" {
		return fmt.Errorf("notification type %d is not aggregated", key.Type)
	}

	seed, err := json.Marshal(map[string][]domain.Fid{field: {actor}})
	if err != nil {
		return fmt.Errorf("failed to marshal actor set: %w", err)
	}

	// field is one of the fixed ActorsKey values, safe to splice into the
	// jsonb path.
	query := fmt.Sprintf(`
		INSERT INTO notifications
			(notification_type, recipient, actor, timestamp, timestamp_group, unit_identifier, extra_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, now(), now())
		ON CONFLICT (recipient, notification_type, timestamp_group, unit_identifier)
		DO UPDATE SET
			updated_at = now(),
			actor = EXCLUDED.actor,
			timestamp = EXCLUDED.timestamp,
			extra_data = jsonb_set(
				notifications.extra_data,
				'{%s}',
				COALESCE(notifications.extra_data->'%s', '[]'::jsonb) || to_jsonb(?::bigint)
			)`, field, field)

	err = s.db.WithContext(ctx).Exec(query,
		key.Type, key.Recipient, actor, at, key.BucketTime, key.Unit, datatypes.JSON(seed), actor,
	).Error
	if err != nil {
		return fmt.Errorf("failed to merge notification actor: %w", err)
	}
	return nil
}

// RemoveNotificationActor atomically removes the actor from the row's
// actor set, deleting the row once the set is empty
func (s *pgStore) RemoveNotificationActor(ctx context.Context, key NotificationKey, actor domain.Fid) error {
	field := key.Type.ActorsKey()
	if field == "" {
		return fmt.Errorf("notification type %d is not aggregated", key.Type)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := fmt.Sprintf(`
			UPDATE notifications SET
				updated_at = now(),
				extra_data = jsonb_set(
					extra_data,
					'{%s}',
					COALESCE((
						SELECT jsonb_agg(elem)
						FROM jsonb_array_elements(extra_data->'%s') AS elem
						WHERE elem <> to_jsonb(?::bigint)
					), '[]'::jsonb)
				)
			WHERE recipient = ? AND notification_type = ? AND timestamp_group = ? AND unit_identifier = ?`,
			field, field)

		err := tx.Exec(update, actor, key.Recipient, key.Type, key.BucketTime, key.Unit).Error
		if err != nil {
			return fmt.Errorf("failed to remove notification actor: %w", err)
		}

		del := fmt.Sprintf(`
			DELETE FROM notifications
			WHERE recipient = ? AND notification_type = ? AND timestamp_group = ? AND unit_identifier = ?
				AND extra_data->'%s' = '[]'::jsonb`, field)

		err = tx.Exec(del, key.Recipient, key.Type, key.BucketTime, key.Unit).Error
		if err != nil {
			return fmt.Errorf("failed to prune empty notification: %w", err)
		}
		return nil
	})
}

// =============================================================================
// Profiles
// =============================================================================

// IncrementFollowCounts bumps follower's following count and target's
// follower count by one, creating either profile row on first reference
func (s *pgStore) IncrementFollowCounts(ctx context.Context, follower, target domain.Fid) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fid"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"following_count": gorm.Expr("profiles.following_count + 1"),
				"updated_at":      gorm.Expr("now()"),
			}),
		}).Create(&schema.Profile{Fid: follower, FollowingCount: 1}).Error
		if err != nil {
			return fmt.Errorf("failed to increment following count: %w", err)
		}

		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fid"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"follower_count": gorm.Expr("profiles.follower_count + 1"),
				"updated_at":     gorm.Expr("now()"),
			}),
		}).Create(&schema.Profile{Fid: target, FollowerCount: 1}).Error
		if err != nil {
			return fmt.Errorf("failed to increment follower count: %w", err)
		}
		return nil
	})
}

// DecrementFollowCounts reverses IncrementFollowCounts. Counters are
// decremented unconditionally and only on existing rows; under
// out-of-order delivery they can go negative, which is preserved rather
// than corrected.
func (s *pgStore) DecrementFollowCounts(ctx context.Context, follower, target domain.Fid) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&schema.Profile{}).
			Where("fid = ?", follower).
			Updates(map[string]interface{}{
				"following_count": gorm.Expr("following_count - 1"),
				"updated_at":      gorm.Expr("now()"),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to decrement following count: %w", err)
		}

		err = tx.Model(&schema.Profile{}).
			Where("fid = ?", target).
			Updates(map[string]interface{}{
				"follower_count": gorm.Expr("follower_count - 1"),
				"updated_at":     gorm.Expr("now()"),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to decrement follower count: %w", err)
		}
		return nil
	})
}

// UpsertProfileField sets one profile column for the account, creating
// the row with defaults on first reference
func (s *pgStore) UpsertProfileField(ctx context.Context, fid domain.Fid, field ProfileField, value string) error {
	profile := schema.Profile{Fid: fid}
	switch field {
	case ProfileFieldAvatarURL:
		profile.AvatarURL = value
	case ProfileFieldDisplayName:
		profile.DisplayName = value
	case ProfileFieldBio:
		profile.Bio = value
	case ProfileFieldUsername:
		profile.Username = value
	default:
		return fmt.Errorf("unknown profile field: %s", field)
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "fid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			string(field): value,
			"updated_at":  gorm.Expr("now()"),
		}),
	}).Create(&profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile field %s: %w", field, err)
	}
	return nil
}

// =============================================================================
// On-Chain Events
// =============================================================================

// InsertOnChainEvent records a chain-observed event. Replays of the same
// (block number, log index) are no-ops.
func (s *pgStore) InsertOnChainEvent(ctx context.Context, event *schema.OnChainEvent) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "block_number"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to insert onchain event: %w", err)
	}
	return nil
}

// =============================================================================
// Reads
// =============================================================================

// GetCastByHash retrieves a cast row by content hash, nil when absent
func (s *pgStore) GetCastByHash(ctx context.Context, hash []byte) (*schema.Cast, error) {
	var cast schema.Cast
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&cast).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cast: %w", err)
	}
	return &cast, nil
}

// GetReactionByHash retrieves a reaction row by content hash, nil when absent
func (s *pgStore) GetReactionByHash(ctx context.Context, hash []byte) (*schema.Reaction, error) {
	var reaction schema.Reaction
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}
	return &reaction, nil
}

// GetLinkByHash retrieves a link row by content hash, nil when absent
func (s *pgStore) GetLinkByHash(ctx context.Context, hash []byte) (*schema.Link, error) {
	var link schema.Link
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return &link, nil
}

// GetNotificationsByRecipient lists a recipient's notifications, newest first
func (s *pgStore) GetNotificationsByRecipient(ctx context.Context, recipient domain.Fid) ([]schema.Notification, error) {
	var notifications []schema.Notification
	err := s.db.WithContext(ctx).
		Where("recipient = ?", recipient).
		Order("updated_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

// GetProfile retrieves a profile row by fid, nil when absent
func (s *pgStore) GetProfile(ctx context.Context, fid domain.Fid) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).Where("fid = ?", fid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
