package withdrawal

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

func TestUseCase_Balance(t *testing.T) {
	ctx := context.Background()

	t.Run("should derive available and pending amounts", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "120.50", fixedTime)
		f.store.AddCompletedTip(creatorID, "29.50", fixedTime)
		f.store.AddTransaction(&entity.Transaction{
			CreatorID: creatorID,
			Amount:    decimal.NewFromInt(40),
			Status:    entity.StatusPending,
			CreatedAt: fixedTime,
		})
		f.store.AddTransaction(&entity.Transaction{
			CreatorID: creatorID,
			Amount:    decimal.NewFromInt(1000),
			Status:    entity.StatusFailed,
			CreatedAt: fixedTime,
		})

		w, err := f.uc.Create(ctx, usecase.WithdrawalRequest{CreatorID: creatorID, Amount: "50"})
		require.NoError(t, err)
		_, err = f.uc.Complete(ctx, w.ID, "RCPT1")
		require.NoError(t, err)
		_, err = f.uc.Create(ctx, usecase.WithdrawalRequest{CreatorID: creatorID, Amount: "25"})
		require.NoError(t, err)

		balance, err := f.uc.Balance(ctx, creatorID)

		require.NoError(t, err)
		assert.Equal(t, creatorID, balance.CreatorID)
		assert.Equal(t, "75.00", entity.FormatAmount(balance.Available))
		assert.Equal(t, "40.00", entity.FormatAmount(balance.Pending))
	})

	t.Run("should release funds of a failed withdrawal", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddCompletedTip(creatorID, "100.00", fixedTime)

		w, err := f.uc.Create(ctx, usecase.WithdrawalRequest{CreatorID: creatorID, Amount: "100"})
		require.NoError(t, err)
		_, err = f.uc.Fail(ctx, w.ID, "insufficient float")
		require.NoError(t, err)

		balance, err := f.uc.Balance(ctx, creatorID)

		require.NoError(t, err)
		assert.Equal(t, "100.00", entity.FormatAmount(balance.Available))
	})

	t.Run("should return zero for a creator without activity", func(t *testing.T) {
		f := newFixture(t)

		balance, err := f.uc.Balance(ctx, creatorID)

		require.NoError(t, err)
		assert.True(t, balance.Available.IsZero())
		assert.True(t, balance.Pending.IsZero())
	})

	t.Run("should reject unknown and zero creators", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Balance(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidCreatorID)

		_, err = f.uc.Balance(ctx, 404)
		assert.ErrorIs(t, err, errs.ErrCreatorNotFound)
	})
}

func TestUseCase_Balance_ReadsUnderCreatorLock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.AddCompletedTip(creatorID, "100.00", fixedTime)

	writer, err := f.store.Begin(ctx)
	require.NoError(t, err)
	_, err = f.store.GetCreatorRepository(writer).LockByID(writer, creatorID)
	require.NoError(t, err)

	result := make(chan *entity.Balance, 1)
	go func() {
		balance, err := f.uc.Balance(ctx, creatorID)
		assert.NoError(t, err)
		result <- balance
	}()

	select {
	case <-result:
		t.Fatal("balance read while another unit of work held the creator lock")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, f.store.GetWithdrawalRepository(writer).Create(writer, &entity.Withdrawal{
		CreatorID:   creatorID,
		Amount:      decimal.NewFromInt(30),
		PhoneNumber: creatorPhone,
		Status:      entity.WithdrawalPending,
		CreatedAt:   fixedTime,
	}))
	require.NoError(t, f.store.Commit(writer))

	select {
	case balance := <-result:
		require.NotNil(t, balance)
		assert.Equal(t, "70.00", entity.FormatAmount(balance.Available))
	case <-time.After(time.Second):
		t.Fatal("balance read never finished")
	}
	assert.Equal(t, 1, f.store.ExecuteCalls)
}

func TestUseCase_ListByCreator(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.AddCompletedTip(creatorID, "100.00", fixedTime)

	for _, amount := range []string{"10", "20", "30"} {
		_, err := f.uc.Create(ctx, usecase.WithdrawalRequest{CreatorID: creatorID, Amount: amount})
		require.NoError(t, err)
	}

	list, err := f.uc.ListByCreator(ctx, creatorID, 2)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "30.00", entity.FormatAmount(list[0].Amount))
	assert.Equal(t, "20.00", entity.FormatAmount(list[1].Amount))
}
