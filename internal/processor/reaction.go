package processor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/store"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

// reactionNotificationKey derives the aggregated notification identity
// for a reaction: the target cast's author is notified, the target
// cast's hash is the unit, and actions within the same 48h bucket
// collapse into one row.
func reactionNotificationKey(msg *domain.Message) (store.NotificationKey, bool) {
	body := msg.Data.ReactionBody
	if body == nil || body.TargetCastID == nil {
		return store.NotificationKey{}, false
	}

	var notificationType schema.NotificationType
	switch body.Type {
	case domain.ReactionTypeLike:
		notificationType = schema.NotificationTypeLike
	case domain.ReactionTypeRecast:
		notificationType = schema.NotificationTypeRecast
	default:
		return store.NotificationKey{}, false
	}

	return store.NotificationKey{
		Type:       notificationType,
		Recipient:  body.TargetCastID.Fid,
		BucketTime: domain.BucketTime(msg.Data.Timestamp),
		Unit:       domain.HashHex(body.TargetCastID.Hash),
	}, true
}

// createReaction materializes the reaction row and merges the actor into
// the target cast's LIKE or RECAST notification.
func (p *Processor) createReaction(ctx context.Context, msg *domain.Message, wasMissed bool) error {
	body := msg.Data.ReactionBody
	if body == nil {
		return fmt.Errorf("%w: reaction add %s", domain.ErrMissingBody, msg.HashHex())
	}

	reaction := &schema.Reaction{
		MessageFields: messageFields(msg),
		Type:          body.Type,
		TargetCast:    toJSON(body.TargetCastID),
		TargetURL:     body.TargetURL,
	}
	if err := p.store.InsertReaction(ctx, reaction); err != nil {
		if store.IsDuplicateKey(err) {
			logger.WarnCtx(ctx, "Duplicate reaction insert ignored", zap.String("hash", msg.HashHex()))
			return nil
		}
		return err
	}

	if wasMissed {
		return nil
	}

	key, ok := reactionNotificationKey(msg)
	if !ok {
		// URL-targeted or unknown reaction types produce no notification.
		return nil
	}
	if err := p.store.MergeNotificationActor(ctx, key, msg.Data.Fid, msg.Time()); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("hash", msg.HashHex()), zap.String("unit", key.Unit))
	}
	return nil
}

// deleteReaction soft-deletes the reaction row and withdraws the actor
// from the aggregated notification, pruning it when the set empties.
func (p *Processor) deleteReaction(ctx context.Context, msg *domain.Message, wasMissed bool) error {
	if err := p.store.SoftDeleteReaction(ctx, msg.Hash, msg.Time()); err != nil {
		return err
	}

	if wasMissed {
		return nil
	}

	key, ok := reactionNotificationKey(msg)
	if !ok {
		return nil
	}
	if err := p.store.RemoveNotificationActor(ctx, key, msg.Data.Fid); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("hash", msg.HashHex()), zap.String("unit", key.Unit))
	}
	return nil
}
