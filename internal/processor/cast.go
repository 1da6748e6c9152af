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

// createCast materializes the cast row, then fans out singleton
// notifications to every mentioned account, the replied-to author, and
// every quoted author. Notification failures do not roll back the base
// row; each target is attempted independently.
func (p *Processor) createCast(ctx context.Context, msg *domain.Message, wasMissed bool) error {
	body := msg.Data.CastBody
	if body == nil {
		return fmt.Errorf("%w: cast add %s", domain.ErrMissingBody, msg.HashHex())
	}

	cast := &schema.Cast{
		MessageFields:     messageFields(msg),
		Text:              body.Text,
		Embeds:            toJSON(body.Embeds),
		Mentions:          toJSON(body.Mentions),
		MentionsPositions: toJSON(body.MentionsPositions),
		ParentURL:         body.ParentURL,
		ParentCast:        toJSON(body.ParentCastID),
	}
	if err := p.store.InsertCast(ctx, cast); err != nil {
		if store.IsDuplicateKey(err) {
			// isNew filtering already happened upstream; a duplicate here is a
			// benign race, not a fault.
			logger.WarnCtx(ctx, "Duplicate cast insert ignored", zap.String("hash", msg.HashHex()))
			return nil
		}
		return err
	}

	if wasMissed {
		return nil
	}

	unit := msg.HashHex()
	ts := msg.Time()
	actor := msg.Data.Fid

	for _, mention := range body.Mentions {
		notification := &schema.Notification{
			Type:           schema.NotificationTypeMention,
			Recipient:      mention,
			Actor:          &actor,
			Timestamp:      ts,
			UnitIdentifier: &unit,
			ExtraData:      toJSON(map[string]string{"new_cast_hash": unit}),
		}
		if err := p.store.InsertNotification(ctx, notification); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("hash", unit), zap.Uint64("recipient", uint64(mention)))
		}
	}

	if body.ParentCastID != nil && !p.suppressReply(msg) {
		notification := &schema.Notification{
			Type:           schema.NotificationTypeReply,
			Recipient:      body.ParentCastID.Fid,
			Actor:          &actor,
			Timestamp:      ts,
			UnitIdentifier: &unit,
			ExtraData: toJSON(map[string]string{
				"new_cast_hash":    unit,
				"target_cast_hash": domain.HashHex(body.ParentCastID.Hash),
			}),
		}
		if err := p.store.InsertNotification(ctx, notification); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("hash", unit), zap.Uint64("recipient", uint64(body.ParentCastID.Fid)))
		}
	}

	for _, embed := range body.Embeds {
		if embed.CastID == nil {
			continue
		}
		notification := &schema.Notification{
			Type:           schema.NotificationTypeQuote,
			Recipient:      embed.CastID.Fid,
			Actor:          &actor,
			Timestamp:      ts,
			UnitIdentifier: &unit,
			ExtraData: toJSON(map[string]string{
				"new_cast_hash":    unit,
				"target_cast_hash": domain.HashHex(embed.CastID.Hash),
			}),
		}
		if err := p.store.InsertNotification(ctx, notification); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("hash", unit), zap.Uint64("recipient", uint64(embed.CastID.Fid)))
		}
	}

	return nil
}

// deleteCast soft-deletes the cast row and removes every singleton
// notification the cast generated, keyed by the cast's own hash.
func (p *Processor) deleteCast(ctx context.Context, msg *domain.Message, wasMissed bool) error {
	if err := p.store.SoftDeleteCast(ctx, msg.Hash, msg.Time()); err != nil {
		return err
	}

	if wasMissed {
		return nil
	}

	unit := msg.HashHex()
	for _, t := range []schema.NotificationType{
		schema.NotificationTypeMention,
		schema.NotificationTypeReply,
		schema.NotificationTypeQuote,
	} {
		if err := p.store.DeleteNotificationsByUnit(ctx, t, unit); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("hash", unit), zap.Int16("notificationType", int16(t)))
		}
	}

	return nil
}
