package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

// transition applies a pure state change to a copy of current and persists it
// with a compare-and-set on the status. When the stored row already moved on
// (duplicate callback, poll racing a callback, sweep) the stored record is
// returned with applied=false and nothing else happens.
func (s *Service) transition(
	ctx context.Context,
	current *entity.Transaction,
	apply func(tx *entity.Transaction) bool,
) (*entity.Transaction, bool, error) {
	if current == nil {
		return nil, false, errs.ErrTransactionNotFound
	}

	next := current.Clone()
	from := next.Status
	if !apply(next) {
		return current, false, nil
	}

	repo := s.uow.GetTransactionRepository(ctx)
	updated, err := repo.Transition(ctx, next, from)
	if err != nil {
		s.logger.Error("Failed to persist transaction transition", map[string]any{
			"transaction_id": current.ID,
			"from":           from,
			"to":             next.Status,
			"error":          err.Error(),
		})
		return nil, false, err
	}

	if !updated {
		stored, err := repo.GetByID(ctx, current.ID)
		if err != nil {
			return nil, false, err
		}
		s.logger.Info("Transition skipped, transaction already processed", map[string]any{
			"transaction_id": current.ID,
			"status":         stored.Status,
			"attempted":      next.Status,
		})
		return stored, false, nil
	}

	s.metrics.IncTransition("transaction", string(next.Status))
	return next, true, nil
}

// MarkInitiated binds the gateway CheckoutRequestID once the push was accepted
func (s *Service) MarkInitiated(ctx context.Context, txID uint64, requestID string) (*entity.Transaction, error) {
	repo := s.uow.GetTransactionRepository(ctx)

	tx, err := repo.GetByID(ctx, txID)
	if err != nil {
		return nil, err
	}

	changed, err := tx.BindRequestID(requestID, s.now())
	if err != nil {
		s.logger.Error("Refused to rebind gateway request id", errs.LogFields(err))
		return nil, err
	}
	if !changed {
		return tx, nil
	}

	bound, err := repo.SetRequestID(ctx, tx)
	if err != nil {
		return nil, err
	}
	if !bound {
		stored, err := repo.GetByID(ctx, txID)
		if err != nil {
			return nil, err
		}
		if stored.RequestID() != requestID {
			return nil, errs.NewTransitionError("transaction", txID, string(stored.Status), string(stored.Status),
				fmt.Sprintf("bound to %s, got %s", stored.RequestID(), requestID), errs.ErrCorrelationConflict)
		}
		return stored, nil
	}

	s.logger.Info("Push payment initiated", map[string]any{
		"transaction_id":      txID,
		"checkout_request_id": requestID,
	})
	return tx, nil
}

// Complete moves a PENDING transaction to COMPLETED. An empty receipt is replaced
// with a synthetic one. new_tip and tip_status fire only when this call made the change.
func (s *Service) Complete(ctx context.Context, tx *entity.Transaction, receipt, phone string) (*entity.Transaction, bool, error) {
	if receipt == "" {
		receipt = s.receipts()
	}
	if phone != "" {
		if normalised, err := entity.NormalizePhone(phone); err == nil {
			phone = normalised
		} else {
			phone = ""
		}
	}

	now := s.now()
	updated, applied, err := s.transition(ctx, tx, func(t *entity.Transaction) bool {
		return t.Complete(receipt, phone, now)
	})
	if err != nil || !applied {
		return updated, applied, err
	}

	s.logger.Info("Tip completed", map[string]any{
		"transaction_id": updated.ID,
		"creator_id":     updated.CreatorID,
		"receipt":        updated.Receipt(),
	})
	s.publishCompleted(ctx, updated)
	return updated, true, nil
}

// Fail moves a PENDING transaction to FAILED
func (s *Service) Fail(ctx context.Context, tx *entity.Transaction, reason string) (*entity.Transaction, bool, error) {
	if reason == "" {
		reason = "Payment failed"
	}

	now := s.now()
	updated, applied, err := s.transition(ctx, tx, func(t *entity.Transaction) bool {
		return t.Fail(reason, now)
	})
	if err != nil || !applied {
		return updated, applied, err
	}

	s.logger.Info("Tip failed", map[string]any{
		"transaction_id": updated.ID,
		"creator_id":     updated.CreatorID,
		"reason":         reason,
	})
	s.publishStatus(ctx, updated)
	return updated, true, nil
}

// publishCompleted announces the first completion of a tip
func (s *Service) publishCompleted(ctx context.Context, tx *entity.Transaction) {
	s.publish(ctx, tx.CreatorID, entity.EventNewTip, entity.NewTipEventFrom(tx))
	s.publishStatus(ctx, tx)
}

func (s *Service) publishStatus(ctx context.Context, tx *entity.Transaction) {
	s.publish(ctx, tx.CreatorID, entity.EventTipStatus, entity.TipStatusEventFrom(tx))
}

func (s *Service) publish(ctx context.Context, creatorID uint64, event string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, entity.CreatorChannel(creatorID), event, payload); err != nil {
		s.logger.Warn("Failed to publish live event", map[string]any{
			"creator_id": creatorID,
			"event":      event,
			"error":      err.Error(),
		})
	}
}
