package withdrawal

import (
	"context"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

// Balance derives a creator's available and pending balance. Both aggregates are
// read under the creator row lock, the same view a concurrent Create decides on.
func (u *UseCase) Balance(ctx context.Context, creatorID uint64) (*entity.Balance, error) {
	if creatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}

	var balance entity.Balance
	err := u.uow.Execute(ctx, func(ctx context.Context) error {
		if _, err := u.uow.GetCreatorRepository(ctx).LockByID(ctx, creatorID); err != nil {
			return err
		}
		var err error
		balance, err = u.computeBalance(ctx, creatorID)
		return err
	})
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, err
		}
		u.logger.Error("Failed to compute balance", map[string]any{
			"creator_id": creatorID,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Debug("Creator balance computed", map[string]any{
		"creator_id": creatorID,
		"available":  entity.FormatAmount(balance.Available),
		"pending":    entity.FormatAmount(balance.Pending),
	})
	return &balance, nil
}

// computeBalance reads the aggregates through repositories bound to ctx, so inside a
// unit of work it sees the same snapshot as the surrounding writes.
func (u *UseCase) computeBalance(ctx context.Context, creatorID uint64) (entity.Balance, error) {
	completedTips, pendingTips, err := u.uow.GetTransactionRepository(ctx).Totals(ctx, creatorID)
	if err != nil {
		return entity.Balance{}, err
	}

	completedOut, pendingOut, err := u.uow.GetWithdrawalRepository(ctx).Totals(ctx, creatorID)
	if err != nil {
		return entity.Balance{}, err
	}

	return entity.NewBalance(creatorID, entity.BalanceTotals{
		CompletedTips:        completedTips,
		PendingTips:          pendingTips,
		CompletedWithdrawals: completedOut,
		PendingWithdrawals:   pendingOut,
	}), nil
}
