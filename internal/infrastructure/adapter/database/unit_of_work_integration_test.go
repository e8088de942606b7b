package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/logger"
)

func setupUnitOfWork(t *testing.T) (*TestDBManager, persistence.UnitOfWork) {
	m := NewTestDBManager(t, logger.NewNoopLogger())
	m.Connect(t)
	m.CreateTestCreator(t, 7, "254700000007")

	uow, err := m.Manager.CreateUnitOfWork()
	require.NoError(t, err)
	return m, uow
}

func newPendingTip(t *testing.T, amount string) *entity.Transaction {
	tx, err := entity.NewTransaction(7, decimal.RequireFromString(amount), "254712345678", "", "thanks", time.Now().UTC())
	require.NoError(t, err)
	return tx
}

func TestTransactionRepository_Lifecycle(t *testing.T) {
	_, uow := setupUnitOfWork(t)
	ctx := context.Background()
	repo := uow.GetTransactionRepository(ctx)

	tx := newPendingTip(t, "250.50")
	require.NoError(t, repo.Create(ctx, tx))
	require.NotZero(t, tx.ID)

	changed, err := tx.BindRequestID("ws_CO_1", time.Now().UTC())
	require.NoError(t, err)
	require.True(t, changed)

	bound, err := repo.SetRequestID(ctx, tx)
	require.NoError(t, err)
	assert.True(t, bound)

	// second bind is refused by the IS NULL guard
	bound, err = repo.SetRequestID(ctx, tx)
	require.NoError(t, err)
	assert.False(t, bound)

	loaded, err := repo.GetByRequestID(ctx, "ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, tx.ID, loaded.ID)
	assert.True(t, decimal.RequireFromString("250.50").Equal(loaded.Amount))

	require.True(t, loaded.Complete("RCP1", "", time.Now().UTC()))
	applied, err := repo.Transition(ctx, loaded, entity.StatusPending)
	require.NoError(t, err)
	assert.True(t, applied)

	// stale compare-and-set loses
	applied, err = repo.Transition(ctx, loaded, entity.StatusPending)
	require.NoError(t, err)
	assert.False(t, applied)

	completed, pending, err := repo.Totals(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "250.5", completed.String())
	assert.True(t, pending.IsZero())
}

func TestTransactionRepository_NotFoundAndConflicts(t *testing.T) {
	_, uow := setupUnitOfWork(t)
	ctx := context.Background()
	repo := uow.GetTransactionRepository(ctx)

	_, err := repo.GetByRequestID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	orphan, err := entity.NewTransaction(99, decimal.NewFromInt(10), "254712345678", "", "", time.Now().UTC())
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, orphan), errs.ErrCreatorNotFound)

	first := newPendingTip(t, "10")
	second := newPendingTip(t, "20")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	_, _ = first.BindRequestID("ws_CO_dup", time.Now().UTC())
	_, _ = second.BindRequestID("ws_CO_dup", time.Now().UTC())
	_, err = repo.SetRequestID(ctx, first)
	require.NoError(t, err)
	_, err = repo.SetRequestID(ctx, second)
	assert.ErrorIs(t, err, errs.ErrCorrelationConflict)
}

func TestTransactionRepository_ListStalePending(t *testing.T) {
	m, uow := setupUnitOfWork(t)
	ctx := context.Background()
	repo := uow.GetTransactionRepository(ctx)

	now := m.TimeProvider.Now().UTC()
	old := newPendingTip(t, "5")
	old.CreatedAt = now.Add(-2 * time.Hour)
	fresh := newPendingTip(t, "6")
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))

	stale, err := repo.ListStalePending(ctx, now.Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, old.ID, stale[0].ID)
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	_, uow := setupUnitOfWork(t)
	ctx := context.Background()

	err := uow.Execute(ctx, func(ctx context.Context) error {
		if err := uow.GetTransactionRepository(ctx).Create(ctx, newPendingTip(t, "40")); err != nil {
			return err
		}
		return errs.ErrInsufficientBalance
	})
	require.ErrorIs(t, err, errs.ErrInsufficientBalance)

	list, err := uow.GetTransactionRepository(ctx).ListByCreator(ctx, 7, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnitOfWork_CreatorLockSerialisesWithdrawals(t *testing.T) {
	_, uow := setupUnitOfWork(t)
	ctx := context.Background()

	tip := newPendingTip(t, "100")
	require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, tip))
	tip.Complete("RCP-LOCK", "", time.Now().UTC())
	_, err := uow.GetTransactionRepository(ctx).Transition(ctx, tip, entity.StatusPending)
	require.NoError(t, err)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := uow.Execute(ctx, func(ctx context.Context) error {
				if _, err := uow.GetCreatorRepository(ctx).LockByID(ctx, 7); err != nil {
					return err
				}
				wr := uow.GetWithdrawalRepository(ctx)
				tr := uow.GetTransactionRepository(ctx)
				tips, _, err := tr.Totals(ctx, 7)
				if err != nil {
					return err
				}
				done, pending, err := wr.Totals(ctx, 7)
				if err != nil {
					return err
				}
				if tips.Sub(done).Sub(pending).LessThan(decimal.NewFromInt(100)) {
					return errs.ErrInsufficientBalance
				}
				w, err := entity.NewWithdrawal(7, decimal.NewFromInt(100), "254700000007", time.Now().UTC())
				if err != nil {
					return err
				}
				return wr.Create(ctx, w)
			})
			if err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
