package withdrawal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

func createPending(t *testing.T, f *fixture, amount string) *entity.Withdrawal {
	t.Helper()
	w, err := f.uc.Create(context.Background(), usecase.WithdrawalRequest{CreatorID: creatorID, Amount: amount})
	require.NoError(t, err)
	return w
}

func TestUseCase_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("should complete a pending withdrawal", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
		w := createPending(t, f, "40")

		done, err := f.uc.Complete(ctx, w.ID, "TEST-abcd1234")

		require.NoError(t, err)
		assert.Equal(t, entity.WithdrawalCompleted, done.Status)
		assert.Equal(t, "TEST-abcd1234", done.Receipt())
		require.NotNil(t, done.CompletedAt)
		assert.Equal(t, fixedTime, *done.CompletedAt)
		assert.Equal(t, entity.WithdrawalCompleted, f.store.Withdrawal(w.ID).Status)
	})

	t.Run("should refuse to complete twice", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
		w := createPending(t, f, "40")

		_, err := f.uc.Complete(ctx, w.ID, "R1")
		require.NoError(t, err)

		again, err := f.uc.Complete(ctx, w.ID, "R2")

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.True(t, errs.IsAlreadyProcessedError(err))
		assert.Equal(t, "R1", again.Receipt())
		assert.Equal(t, "R1", f.store.Withdrawal(w.ID).Receipt())
	})

	t.Run("should refuse to fail a completed withdrawal", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
		w := createPending(t, f, "40")

		_, err := f.uc.Complete(ctx, w.ID, "R1")
		require.NoError(t, err)

		_, err = f.uc.Fail(ctx, w.ID, "late timeout")

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Equal(t, entity.WithdrawalCompleted, f.store.Withdrawal(w.ID).Status)
	})

	t.Run("should report an unknown withdrawal", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Complete(ctx, 12345, "R1")

		assert.ErrorIs(t, err, errs.ErrWithdrawalNotFound)
	})
}

func TestUseCase_Fail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
	w := createPending(t, f, "40")

	failed, err := f.uc.Fail(ctx, w.ID, "")

	require.NoError(t, err)
	assert.Equal(t, entity.WithdrawalFailed, failed.Status)
	assert.Equal(t, "Payout failed", failed.Reason())
}

func TestUseCase_BindCorrelationID(t *testing.T) {
	ctx := context.Background()

	t.Run("should bind once and accept the same id again", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
		w := createPending(t, f, "40")

		bound, err := f.uc.BindCorrelationID(ctx, w.ID, "AG_1")
		require.NoError(t, err)
		assert.Equal(t, "AG_1", bound.RequestID())

		again, err := f.uc.BindCorrelationID(ctx, w.ID, "AG_1")
		require.NoError(t, err)
		assert.Equal(t, "AG_1", again.RequestID())

		found, err := f.uc.FindByCorrelationID(ctx, "AG_1")
		require.NoError(t, err)
		assert.Equal(t, w.ID, found.ID)
	})

	t.Run("should refuse a different id", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
		w := createPending(t, f, "40")

		_, err := f.uc.BindCorrelationID(ctx, w.ID, "AG_1")
		require.NoError(t, err)

		_, err = f.uc.BindCorrelationID(ctx, w.ID, "AG_2")

		assert.ErrorIs(t, err, errs.ErrCorrelationConflict)
		assert.Equal(t, "AG_1", f.store.Withdrawal(w.ID).RequestID())
	})

	t.Run("should not find an empty conversation id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.FindByCorrelationID(ctx, "")

		assert.ErrorIs(t, err, errs.ErrWithdrawalNotFound)
	})
}

func TestUseCase_AllowReprocess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uc.cfg.AllowReprocess = true
	f.store.AddCompletedTip(creatorID, "100.00", fixedTime)
	w := createPending(t, f, "40")

	_, err := f.uc.Fail(ctx, w.ID, "first")
	require.NoError(t, err)

	done, err := f.uc.Complete(ctx, w.ID, "R9")

	require.NoError(t, err)
	assert.Equal(t, entity.WithdrawalCompleted, done.Status)
	assert.Empty(t, done.Reason())
}
