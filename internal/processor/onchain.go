package processor

import (
	"context"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/store/schema"
)

// onChainEventBody renders the type-specific payload as a flat JSON
// object with hex-encoded byte fields. Unknown event types keep an empty
// object so the row is still queryable.
func onChainEventBody(event *domain.OnChainEvent) map[string]any {
	switch event.Type {
	case domain.OnChainEventTypeSigner, domain.OnChainEventTypeSignerMigrate:
		if b := event.SignerEventBody; b != nil {
			return map[string]any{
				"key":          "0x" + hex.EncodeToString(b.Key),
				"keyType":      b.KeyType,
				"eventType":    b.EventType,
				"metadata":     "0x" + hex.EncodeToString(b.Metadata),
				"metadataType": b.MetadataType,
			}
		}
	case domain.OnChainEventTypeIdRegister:
		if b := event.IdRegisterEventBody; b != nil {
			return map[string]any{
				"to":              "0x" + hex.EncodeToString(b.To),
				"eventType":       b.EventType,
				"from":            "0x" + hex.EncodeToString(b.From),
				"recoveryAddress": "0x" + hex.EncodeToString(b.RecoveryAddress),
			}
		}
	case domain.OnChainEventTypeStorageRent:
		if b := event.StorageRentEventBody; b != nil {
			return map[string]any{
				"payer":  "0x" + hex.EncodeToString(b.Payer),
				"units":  b.Units,
				"expiry": b.Expiry,
			}
		}
	}
	return map[string]any{}
}

// HandleOnChainEvent appends one chain-observed event to the durable
// record. Re-delivered events are absorbed by the (block, log index) key.
func (p *Processor) HandleOnChainEvent(ctx context.Context, event *domain.OnChainEvent) error {
	row := &schema.OnChainEvent{
		Fid:         event.Fid,
		Timestamp:   event.Time(),
		BlockNumber: event.BlockNumber,
		LogIndex:    event.LogIndex,
		TxHash:      event.TransactionHash,
		Type:        event.Type,
		Body:        toJSON(onChainEventBody(event)),
	}
	if err := p.store.InsertOnChainEvent(ctx, row); err != nil {
		if isFatal(ctx, err) {
			return err
		}
		logger.ErrorCtx(ctx, err,
			zap.Uint64("blockNumber", event.BlockNumber),
			zap.Uint32("logIndex", event.LogIndex),
			zap.Int16("type", int16(event.Type)),
		)
		return nil
	}

	logger.DebugCtx(ctx, "Recorded on-chain event",
		zap.Uint64("fid", uint64(event.Fid)),
		zap.Uint64("blockNumber", event.BlockNumber),
		zap.Uint32("logIndex", event.LogIndex),
		zap.Int16("type", int16(event.Type)),
	)
	return nil
}
