package withdrawal

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

// Create checks the balance and inserts a PENDING withdrawal inside one unit of work.
// The creator row is locked first, so concurrent requests for the same creator queue
// behind each other and the second one sees the first one's reservation.
func (u *UseCase) Create(ctx context.Context, req usecase.WithdrawalRequest) (*entity.Withdrawal, error) {
	if req.CreatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateAmountRange(amount, u.cfg.MaxAmount); err != nil {
		return nil, err
	}

	phone := req.Phone
	if phone != "" {
		if phone, err = entity.NormalizePhone(phone); err != nil {
			return nil, err
		}
	}

	var created *entity.Withdrawal
	err = u.uow.Execute(ctx, func(ctx context.Context) error {
		creator, err := u.uow.GetCreatorRepository(ctx).LockByID(ctx, req.CreatorID)
		if err != nil {
			return err
		}

		destination := phone
		if destination == "" {
			if destination, err = entity.NormalizePhone(creator.PhoneNumber); err != nil {
				return err
			}
		}

		balance, err := u.computeBalance(ctx, req.CreatorID)
		if err != nil {
			return err
		}
		if !balance.Covers(amount) {
			return errs.NewInsufficientBalanceError(req.CreatorID, entity.FormatAmount(amount), entity.FormatAmount(balance.Available))
		}

		w, err := entity.NewWithdrawal(req.CreatorID, amount, destination, u.timeProvider.Now())
		if err != nil {
			return err
		}
		if err := u.uow.GetWithdrawalRepository(ctx).Create(ctx, w); err != nil {
			return err
		}

		created = w
		return nil
	})
	if err != nil {
		var insufficient *errs.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			u.logger.Warn("Withdrawal exceeds available balance", insufficient.LogFields())
		} else if !errs.IsValidationError(err) && !errs.IsNotFoundError(err) {
			u.logger.Error("Failed to create withdrawal", map[string]any{
				"creator_id": req.CreatorID,
				"amount":     req.Amount,
				"error":      err.Error(),
			})
		}
		return nil, err
	}

	u.metrics.IncTransition("withdrawal", string(entity.WithdrawalPending))
	u.logger.Info("Withdrawal created", map[string]any{
		"withdrawal_id": created.ID,
		"creator_id":    created.CreatorID,
		"amount":        entity.FormatAmount(created.Amount),
	})
	return created, nil
}
