package processor

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/store"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

// followNotificationKey derives the aggregated FOLLOW notification
// identity for a link: the followed account is both recipient and unit.
func followNotificationKey(msg *domain.Message) store.NotificationKey {
	target := msg.Data.LinkBody.TargetFid
	return store.NotificationKey{
		Type:       schema.NotificationTypeFollow,
		Recipient:  target,
		BucketTime: domain.BucketTime(msg.Data.Timestamp),
		Unit:       strconv.FormatUint(uint64(target), 10),
	}
}

// createLink materializes the link row, merges the follower into the
// target's FOLLOW notification, and bumps both follow counters. The
// counter adjustment runs even for missed messages: counts track base
// state, not alerting.
func (p *Processor) createLink(ctx context.Context, msg *domain.Message, wasMissed bool) error {
	body := msg.Data.LinkBody
	if body == nil {
		return fmt.Errorf("%w: link add %s", domain.ErrMissingBody, msg.HashHex())
	}

	link := &schema.Link{
		MessageFields: messageFields(msg),
		Type:          body.Type,
		TargetFid:     body.TargetFid,
	}
	if err := p.store.InsertLink(ctx, link); err != nil {
		if store.IsDuplicateKey(err) {
			logger.WarnCtx(ctx, "Duplicate link insert ignored", zap.String("hash", msg.HashHex()))
			return nil
		}
		return err
	}

	if !wasMissed {
		key := followNotificationKey(msg)
		if err := p.store.MergeNotificationActor(ctx, key, msg.Data.Fid, msg.Time()); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("hash", msg.HashHex()), zap.String("unit", key.Unit))
		}
	}

	if err := p.store.IncrementFollowCounts(ctx, msg.Data.Fid, body.TargetFid); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Uint64("follower", uint64(msg.Data.Fid)),
			zap.Uint64("target", uint64(body.TargetFid)),
		)
	}

	return nil
}

// deleteLink soft-deletes the link row, withdraws the follower from the
// FOLLOW notification, and decrements both counters unconditionally.
func (p *Processor) deleteLink(ctx context.Context, msg *domain.Message, wasMissed bool) error {
	body := msg.Data.LinkBody
	if body == nil {
		return fmt.Errorf("%w: link remove %s", domain.ErrMissingBody, msg.HashHex())
	}

	if err := p.store.SoftDeleteLink(ctx, msg.Hash, msg.Time()); err != nil {
		return err
	}

	if !wasMissed {
		key := followNotificationKey(msg)
		if err := p.store.RemoveNotificationActor(ctx, key, msg.Data.Fid); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("hash", msg.HashHex()), zap.String("unit", key.Unit))
		}
	}

	if err := p.store.DecrementFollowCounts(ctx, msg.Data.Fid, body.TargetFid); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Uint64("follower", uint64(msg.Data.Fid)),
			zap.Uint64("target", uint64(body.TargetFid)),
		)
	}

	return nil
}
