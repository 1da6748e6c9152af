package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildMessageFields creates envelope columns with a deterministic hash.
func buildMessageFields(fid domain.Fid, messageType domain.MessageType, hash string) schema.MessageFields {
	return schema.MessageFields{
		MessageType:     messageType,
		Fid:             fid,
		Timestamp:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Network:         1,
		Hash:            []byte(hash),
		HashScheme:      1,
		Signature:       []byte("sig-" + hash),
		SignatureScheme: 1,
		Signer:          []byte("signer-" + hash),
	}
}

func buildTestCast(fid domain.Fid, hash, text string) *schema.Cast {
	return &schema.Cast{
		MessageFields: buildMessageFields(fid, domain.MessageTypeCastAdd, hash),
		Text:          text,
	}
}

func buildTestReaction(fid domain.Fid, hash string, reactionType domain.ReactionType) *schema.Reaction {
	target, _ := json.Marshal(map[string]interface{}{"fid": 99, "hash": "0xtarget"})
	return &schema.Reaction{
		MessageFields: buildMessageFields(fid, domain.MessageTypeReactionAdd, hash),
		Type:          reactionType,
		TargetCast:    datatypes.JSON(target),
	}
}

func buildTestLink(fid domain.Fid, hash string, target domain.Fid) *schema.Link {
	return &schema.Link{
		MessageFields: buildMessageFields(fid, domain.MessageTypeLinkAdd, hash),
		Type:          "follow",
		TargetFid:     target,
	}
}

// bucket is a fixed 48h bucket key used across aggregation tests.
var bucket = time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

func buildAggregatedKey(notificationType schema.NotificationType, recipient domain.Fid, unit string) NotificationKey {
	return NotificationKey{
		Type:       notificationType,
		Recipient:  recipient,
		BucketTime: bucket,
		Unit:       unit,
	}
}

// actorSet extracts the aggregated actor list from a notification row.
func actorSet(t *testing.T, n schema.Notification) []int64 {
	t.Helper()
	var extra map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(n.ExtraData, &extra))
	raw, ok := extra[n.Type.ActorsKey()]
	require.True(t, ok, "actor set key missing from extra_data")
	var actors []int64
	require.NoError(t, json.Unmarshal(raw, &actors))
	return actors
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the full behavioral suite against a Store produced
// by initDB. Each subtest gets a fresh, isolated store.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("InsertCastAndGetByHash", func(t *testing.T) {
		s := initDB(t)

		cast := buildTestCast(100, "hash-cast-1", "hello world")
		require.NoError(t, s.InsertCast(ctx, cast))

		got, err := s.GetCastByHash(ctx, []byte("hash-cast-1"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hello world", got.Text)
		assert.Equal(t, domain.Fid(100), got.Fid)
		assert.Nil(t, got.DeletedAt)
	})

	t.Run("DuplicateCastInsertIsDetectable", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.InsertCast(ctx, buildTestCast(100, "hash-dup", "first")))
		err := s.InsertCast(ctx, buildTestCast(100, "hash-dup", "second"))
		require.Error(t, err)
		assert.True(t, IsDuplicateKey(err))
	})

	t.Run("SoftDeleteCastSetsDeletedAt", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.InsertCast(ctx, buildTestCast(100, "hash-del", "doomed")))
		deletedAt := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.SoftDeleteCast(ctx, []byte("hash-del"), deletedAt))

		got, err := s.GetCastByHash(ctx, []byte("hash-del"))
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.DeletedAt)
		assert.True(t, got.DeletedAt.Equal(deletedAt))
		// Other columns are untouched
		assert.Equal(t, "doomed", got.Text)
	})

	t.Run("SoftDeleteMissingRowIsNoop", func(t *testing.T) {
		s := initDB(t)

		assert.NoError(t, s.SoftDeleteCast(ctx, []byte("never-created"), time.Now().UTC()))
		assert.NoError(t, s.SoftDeleteLink(ctx, []byte("never-created"), time.Now().UTC()))
	})

	t.Run("MessageExists", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.InsertReaction(ctx, buildTestReaction(200, "hash-r1", domain.ReactionTypeLike)))

		exists, err := s.MessageExists(ctx, domain.KindReaction, []byte("hash-r1"))
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.MessageExists(ctx, domain.KindReaction, []byte("hash-r2"))
		require.NoError(t, err)
		assert.False(t, exists)

		// A soft-deleted row still exists for idempotency purposes
		require.NoError(t, s.SoftDeleteReaction(ctx, []byte("hash-r1"), time.Now().UTC()))
		exists, err = s.MessageExists(ctx, domain.KindReaction, []byte("hash-r1"))
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = s.MessageExists(ctx, domain.KindUnknown, []byte("hash-r1"))
		assert.Error(t, err)
	})

	t.Run("SingletonNotificationsDeletedByUnit", func(t *testing.T) {
		s := initDB(t)

		// A cast mentioning two accounts produces one row per recipient
		// under the same unit.
		actor := domain.Fid(10)
		unit := "0xcasthash"
		for _, recipient := range []domain.Fid{11, 12} {
			require.NoError(t, s.InsertNotification(ctx, &schema.Notification{
				Type:           schema.NotificationTypeMention,
				Recipient:      recipient,
				Actor:          &actor,
				Timestamp:      time.Now().UTC(),
				UnitIdentifier: &unit,
			}))
		}

		require.NoError(t, s.DeleteNotificationsByUnit(ctx, schema.NotificationTypeMention, unit))

		for _, recipient := range []domain.Fid{11, 12} {
			notifications, err := s.GetNotificationsByRecipient(ctx, recipient)
			require.NoError(t, err)
			assert.Empty(t, notifications)
		}
	})

	t.Run("DeleteNotificationsByUnitIsTypeScoped", func(t *testing.T) {
		s := initDB(t)

		actor := domain.Fid(10)
		unit := "0xcasthash"
		require.NoError(t, s.InsertNotification(ctx, &schema.Notification{
			Type:           schema.NotificationTypeReply,
			Recipient:      11,
			Actor:          &actor,
			Timestamp:      time.Now().UTC(),
			UnitIdentifier: &unit,
		}))

		require.NoError(t, s.DeleteNotificationsByUnit(ctx, schema.NotificationTypeMention, unit))

		notifications, err := s.GetNotificationsByRecipient(ctx, 11)
		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("MergeNotificationActorAggregatesIntoOneRow", func(t *testing.T) {
		s := initDB(t)

		key := buildAggregatedKey(schema.NotificationTypeLike, 50, "0xlikedcast")
		at := time.Now().UTC()

		require.NoError(t, s.MergeNotificationActor(ctx, key, 1, at))
		require.NoError(t, s.MergeNotificationActor(ctx, key, 2, at.Add(time.Minute)))

		notifications, err := s.GetNotificationsByRecipient(ctx, 50)
		require.NoError(t, err)
		require.Len(t, notifications, 1)

		n := notifications[0]
		assert.Equal(t, schema.NotificationTypeLike, n.Type)
		require.NotNil(t, n.Actor)
		assert.Equal(t, domain.Fid(2), *n.Actor)
		assert.Equal(t, []int64{1, 2}, actorSet(t, n))
	})

	t.Run("MergeNotificationActorSeparatesBuckets", func(t *testing.T) {
		s := initDB(t)

		unit := "0xlikedcast"
		keyA := buildAggregatedKey(schema.NotificationTypeLike, 50, unit)
		keyB := keyA
		keyB.BucketTime = bucket.Add(48 * time.Hour)

		require.NoError(t, s.MergeNotificationActor(ctx, keyA, 1, time.Now().UTC()))
		require.NoError(t, s.MergeNotificationActor(ctx, keyB, 2, time.Now().UTC()))

		notifications, err := s.GetNotificationsByRecipient(ctx, 50)
		require.NoError(t, err)
		assert.Len(t, notifications, 2)
	})

	t.Run("RemoveNotificationActorShrinksThenPrunes", func(t *testing.T) {
		s := initDB(t)

		// A follows B, then C follows B within the same bucket; the row
		// aggregates both. Unfollows shrink and finally remove the row.
		key := buildAggregatedKey(schema.NotificationTypeFollow, 60, "60")
		require.NoError(t, s.MergeNotificationActor(ctx, key, 1, time.Now().UTC()))
		require.NoError(t, s.MergeNotificationActor(ctx, key, 3, time.Now().UTC()))

		require.NoError(t, s.RemoveNotificationActor(ctx, key, 1))

		notifications, err := s.GetNotificationsByRecipient(ctx, 60)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, []int64{3}, actorSet(t, notifications[0]))

		require.NoError(t, s.RemoveNotificationActor(ctx, key, 3))

		notifications, err = s.GetNotificationsByRecipient(ctx, 60)
		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("RemoveNotificationActorMissingRowIsNoop", func(t *testing.T) {
		s := initDB(t)

		key := buildAggregatedKey(schema.NotificationTypeRecast, 70, "0xnothing")
		assert.NoError(t, s.RemoveNotificationActor(ctx, key, 1))
	})

	t.Run("MergeRejectsSingletonTypes", func(t *testing.T) {
		s := initDB(t)

		key := buildAggregatedKey(schema.NotificationTypeMention, 70, "0xcast")
		assert.Error(t, s.MergeNotificationActor(ctx, key, 1, time.Now().UTC()))
		assert.Error(t, s.RemoveNotificationActor(ctx, key, 1))
	})

	t.Run("IncrementFollowCountsCreatesProfiles", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.IncrementFollowCounts(ctx, 1, 2))

		follower, err := s.GetProfile(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, follower)
		assert.Equal(t, int64(1), follower.FollowingCount)
		assert.Equal(t, int64(0), follower.FollowerCount)

		target, err := s.GetProfile(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, target)
		assert.Equal(t, int64(1), target.FollowerCount)
		assert.Equal(t, int64(0), target.FollowingCount)
	})

	t.Run("FollowCounterSymmetry", func(t *testing.T) {
		s := initDB(t)

		const n = 3
		for i := 0; i < n; i++ {
			require.NoError(t, s.IncrementFollowCounts(ctx, 1, 2))
		}
		for i := 0; i < n; i++ {
			require.NoError(t, s.DecrementFollowCounts(ctx, 1, 2))
		}

		follower, err := s.GetProfile(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, follower)
		assert.Equal(t, int64(0), follower.FollowingCount)

		target, err := s.GetProfile(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, target)
		assert.Equal(t, int64(0), target.FollowerCount)
	})

	t.Run("DecrementWithoutProfileDoesNotCreateRow", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.DecrementFollowCounts(ctx, 5, 6))

		profile, err := s.GetProfile(ctx, 5)
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("CountersMayGoNegative", func(t *testing.T) {
		s := initDB(t)

		// A delete observed after its account was created by another path
		// drives the counter below zero. The skew is preserved, not fixed.
		require.NoError(t, s.UpsertProfileField(ctx, 7, ProfileFieldUsername, "alice"))
		require.NoError(t, s.DecrementFollowCounts(ctx, 7, 8))

		profile, err := s.GetProfile(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, int64(-1), profile.FollowingCount)
	})

	t.Run("UpsertProfileFieldCreatesAndUpdates", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.UpsertProfileField(ctx, 9, ProfileFieldUsername, "bob"))
		require.NoError(t, s.UpsertProfileField(ctx, 9, ProfileFieldBio, "hello"))
		require.NoError(t, s.UpsertProfileField(ctx, 9, ProfileFieldUsername, "bob2"))

		profile, err := s.GetProfile(ctx, 9)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "bob2", profile.Username)
		assert.Equal(t, "hello", profile.Bio)
	})

	t.Run("UpsertProfileFieldRejectsUnknownField", func(t *testing.T) {
		s := initDB(t)

		assert.Error(t, s.UpsertProfileField(ctx, 9, ProfileField("favorite_color"), "green"))
	})

	t.Run("InsertOnChainEventIsIdempotent", func(t *testing.T) {
		s := initDB(t)

		event := &schema.OnChainEvent{
			Fid:         42,
			Timestamp:   time.Now().UTC(),
			BlockNumber: 1000,
			LogIndex:    3,
			TxHash:      []byte("0xtx"),
			Type:        domain.OnChainEventTypeIdRegister,
		}
		require.NoError(t, s.InsertOnChainEvent(ctx, event))

		replay := &schema.OnChainEvent{
			Fid:         42,
			Timestamp:   time.Now().UTC(),
			BlockNumber: 1000,
			LogIndex:    3,
			TxHash:      []byte("0xtx"),
			Type:        domain.OnChainEventTypeIdRegister,
		}
		require.NoError(t, s.InsertOnChainEvent(ctx, replay))

		var count int64
		pg, ok := s.(*pgStore)
		require.True(t, ok)
		require.NoError(t, pg.db.Model(&schema.OnChainEvent{}).
			Where("block_number = ? AND log_index = ?", 1000, 3).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("GetLinkByHash", func(t *testing.T) {
		s := initDB(t)

		require.NoError(t, s.InsertLink(ctx, buildTestLink(1, "hash-l1", 2)))

		link, err := s.GetLinkByHash(ctx, []byte("hash-l1"))
		require.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, domain.Fid(2), link.TargetFid)
		assert.Equal(t, "follow", link.Type)

		link, err = s.GetLinkByHash(ctx, []byte("hash-absent"))
		require.NoError(t, err)
		assert.Nil(t, link)
	})
}
