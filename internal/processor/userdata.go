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

// profileField maps a user data code onto the profile column it maintains.
func profileField(t domain.UserDataType) (store.ProfileField, bool) {
	switch t {
	case domain.UserDataTypeAvatar:
		return store.ProfileFieldAvatarURL, true
	case domain.UserDataTypeDisplayName:
		return store.ProfileFieldDisplayName, true
	case domain.UserDataTypeBio:
		return store.ProfileFieldBio, true
	case domain.UserDataTypeUsername:
		return store.ProfileFieldUsername, true
	default:
		return "", false
	}
}

// createUserData materializes the user data row and mirrors recognized
// field codes into the denormalized profile. Unrecognized codes keep
// their canonical row but touch no profile column.
func (p *Processor) createUserData(ctx context.Context, msg *domain.Message) error {
	body := msg.Data.UserDataBody
	if body == nil {
		return fmt.Errorf("%w: user data add %s", domain.ErrMissingBody, msg.HashHex())
	}

	userData := &schema.UserData{
		MessageFields: messageFields(msg),
		Type:          body.Type,
		Value:         body.Value,
	}
	if err := p.store.InsertUserData(ctx, userData); err != nil {
		if store.IsDuplicateKey(err) {
			logger.WarnCtx(ctx, "Duplicate user data insert ignored", zap.String("hash", msg.HashHex()))
			return nil
		}
		return err
	}

	field, ok := profileField(body.Type)
	if !ok {
		logger.DebugCtx(ctx, "User data code has no profile column",
			zap.Int16("type", int16(body.Type)),
			zap.Uint64("fid", uint64(msg.Data.Fid)),
		)
		return nil
	}

	if err := p.store.UpsertProfileField(ctx, msg.Data.Fid, field, body.Value); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Uint64("fid", uint64(msg.Data.Fid)),
			zap.String("field", string(field)),
		)
	}
	return nil
}
