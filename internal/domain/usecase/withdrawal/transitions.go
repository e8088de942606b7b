package withdrawal

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

// BindCorrelationID stores the ConversationID returned by an accepted payout
func (u *UseCase) BindCorrelationID(ctx context.Context, withdrawalID uint64, conversationID string) (*entity.Withdrawal, error) {
	repo := u.uow.GetWithdrawalRepository(ctx)

	w, err := repo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	changed, err := w.BindRequestID(conversationID)
	if err != nil {
		u.logger.Error("Refused to rebind payout conversation id", errs.LogFields(err))
		return nil, err
	}
	if !changed {
		return w, nil
	}

	bound, err := repo.SetRequestID(ctx, w)
	if err != nil {
		return nil, err
	}
	if !bound {
		stored, err := repo.GetByID(ctx, withdrawalID)
		if err != nil {
			return nil, err
		}
		if stored.RequestID() != conversationID {
			return nil, errs.NewTransitionError("withdrawal", withdrawalID, string(stored.Status), string(stored.Status),
				fmt.Sprintf("bound to %s, got %s", stored.RequestID(), conversationID), errs.ErrCorrelationConflict)
		}
		return stored, nil
	}

	u.logger.Info("Payout conversation bound", map[string]any{
		"withdrawal_id":   withdrawalID,
		"conversation_id": conversationID,
	})
	return w, nil
}

// Complete moves a PENDING withdrawal to COMPLETED
func (u *UseCase) Complete(ctx context.Context, withdrawalID uint64, receipt string) (*entity.Withdrawal, error) {
	now := u.timeProvider.Now()
	return u.transition(ctx, withdrawalID, entity.WithdrawalCompleted, func(w *entity.Withdrawal) error {
		return w.Complete(receipt, now, u.cfg.AllowReprocess)
	})
}

// Fail moves a PENDING withdrawal to FAILED
func (u *UseCase) Fail(ctx context.Context, withdrawalID uint64, reason string) (*entity.Withdrawal, error) {
	if reason == "" {
		reason = "Payout failed"
	}
	now := u.timeProvider.Now()
	return u.transition(ctx, withdrawalID, entity.WithdrawalFailed, func(w *entity.Withdrawal) error {
		return w.Fail(reason, now, u.cfg.AllowReprocess)
	})
}

// transition loads the withdrawal, applies the guarded change and persists it with a
// compare-and-set on the status it was loaded with. Losing that race means another
// callback finished the payout first, which is reported as ErrAlreadyProcessed.
func (u *UseCase) transition(
	ctx context.Context,
	withdrawalID uint64,
	to entity.WithdrawalStatus,
	apply func(w *entity.Withdrawal) error,
) (*entity.Withdrawal, error) {
	repo := u.uow.GetWithdrawalRepository(ctx)

	w, err := repo.GetByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	from := w.Status
	if err := apply(w); err != nil {
		return w, err
	}

	updated, err := repo.Transition(ctx, w, from)
	if err != nil {
		u.logger.Error("Failed to persist withdrawal transition", map[string]any{
			"withdrawal_id": withdrawalID,
			"from":          from,
			"to":            to,
			"error":         err.Error(),
		})
		return nil, err
	}
	if !updated {
		stored, err := repo.GetByID(ctx, withdrawalID)
		if err != nil {
			return nil, err
		}
		return stored, errs.NewTransitionError("withdrawal", withdrawalID, string(stored.Status), string(to),
			"concurrent update won", errs.ErrAlreadyProcessed)
	}

	u.metrics.IncTransition("withdrawal", string(to))
	u.logger.Info("Withdrawal status changed", map[string]any{
		"withdrawal_id": withdrawalID,
		"creator_id":    w.CreatorID,
		"from":          from,
		"to":            to,
		"receipt":       w.Receipt(),
		"reason":        w.Reason(),
	})
	return w, nil
}
