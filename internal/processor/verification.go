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

// createVerification materializes an address verification claim. No
// notification is produced for verifications.
func (p *Processor) createVerification(ctx context.Context, msg *domain.Message) error {
	body := msg.Data.VerificationBody
	if body == nil {
		return fmt.Errorf("%w: verification add %s", domain.ErrMissingBody, msg.HashHex())
	}

	verification := &schema.Verification{
		MessageFields: messageFields(msg),
		Claim:         toJSON(body),
	}
	if err := p.store.InsertVerification(ctx, verification); err != nil {
		if store.IsDuplicateKey(err) {
			logger.WarnCtx(ctx, "Duplicate verification insert ignored", zap.String("hash", msg.HashHex()))
			return nil
		}
		return err
	}
	return nil
}

func (p *Processor) deleteVerification(ctx context.Context, msg *domain.Message) error {
	return p.store.SoftDeleteVerification(ctx, msg.Hash, msg.Time())
}
