package processor

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/castlight/hub-indexer/internal/domain"
	"github.com/castlight/hub-indexer/internal/logger"
	"github.com/castlight/hub-indexer/internal/store"
)

// SuppressReplyFilter decides whether a reply notification should be
// withheld for a given cast. Injected so operators can filter out bot
// traffic without touching the materialization core.
type SuppressReplyFilter func(msg *domain.Message) bool

// NopSuppressReplyFilter suppresses nothing.
func NopSuppressReplyFilter(*domain.Message) bool { return false }

// NewFidSubstringFilter suppresses reply notifications for casts
// authored by fid whose text contains substr. Matches the production
// filter shipped in configuration.
func NewFidSubstringFilter(fid domain.Fid, substr string) SuppressReplyFilter {
	return func(msg *domain.Message) bool {
		if msg.Data.Fid != fid || msg.Data.CastBody == nil {
			return false
		}
		return substr != "" && strings.Contains(msg.Data.CastBody.Text, substr)
	}
}

// Processor is the single entry point of the materialization engine. It
// classifies each incoming message, routes it to the matching per-kind
// materializer, and gates notification side effects on the missed flag.
type Processor struct {
	store         store.Store
	suppressReply SuppressReplyFilter
}

// NewProcessor creates a processor writing through the given store.
func NewProcessor(st store.Store, suppressReply SuppressReplyFilter) *Processor {
	if suppressReply == nil {
		suppressReply = NopSuppressReplyFilter
	}
	return &Processor{store: st, suppressReply: suppressReply}
}

// HandleMessage materializes one message event.
//
// isNew is the sole idempotency gate: the caller has already proven
// presence or absence against the durable store, so a false value means
// the message is fully materialized and the call is a no-op.
//
// wasMissed marks messages recovered by reconciliation. Base rows and
// profile counters are always repaired; notification writes are skipped
// entirely, because the activity already happened in the past.
//
// Failures in one message's side effects are logged and swallowed so the
// stream keeps moving; only cancellation and deadline errors propagate.
func (p *Processor) HandleMessage(ctx context.Context, msg *domain.Message, state domain.MessageState, isNew, wasMissed bool) error {
	if !isNew {
		// Already materialized, no-op.
		return nil
	}

	var err error
	kind := msg.Kind()
	switch kind {
	case domain.KindCast:
		if state == domain.MessageStateCreated {
			err = p.createCast(ctx, msg, wasMissed)
		} else {
			err = p.deleteCast(ctx, msg, wasMissed)
		}
	case domain.KindReaction:
		if state == domain.MessageStateCreated {
			err = p.createReaction(ctx, msg, wasMissed)
		} else {
			err = p.deleteReaction(ctx, msg, wasMissed)
		}
	case domain.KindLink:
		if state == domain.MessageStateCreated {
			err = p.createLink(ctx, msg, wasMissed)
		} else {
			err = p.deleteLink(ctx, msg, wasMissed)
		}
	case domain.KindVerification:
		if state == domain.MessageStateCreated {
			err = p.createVerification(ctx, msg)
		} else {
			err = p.deleteVerification(ctx, msg)
		}
	case domain.KindUserData:
		if state == domain.MessageStateCreated {
			err = p.createUserData(ctx, msg)
		}
	default:
		logger.WarnCtx(ctx, "Skipping message of unknown kind",
			zap.Int16("messageType", int16(msg.Data.Type)),
			zap.String("hash", msg.HashHex()),
		)
		return nil
	}

	if err != nil {
		if isFatal(ctx, err) {
			return err
		}
		logger.ErrorCtx(ctx, err,
			zap.String("kind", string(kind)),
			zap.String("state", string(state)),
			zap.Bool("wasMissed", wasMissed),
			zap.String("hash", msg.HashHex()),
		)
		return nil
	}

	logger.DebugCtx(ctx, "Materialized message",
		zap.String("kind", string(kind)),
		zap.String("state", string(state)),
		zap.Bool("wasMissed", wasMissed),
		zap.String("hash", msg.HashHex()),
	)
	return nil
}

// isFatal separates "this record failed" from "the whole pipeline is
// down": cancellation and deadline expiry abort the caller's loop,
// everything else is a per-record failure.
func isFatal(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
