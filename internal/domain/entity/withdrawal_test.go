package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawal_Lifecycle(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	done := created.Add(2 * time.Minute)

	newPending := func(t *testing.T) *Withdrawal {
		w, err := NewWithdrawal(42, decimal.NewFromInt(100), "254712345678", created)
		require.NoError(t, err)
		w.ID = 9
		return w
	}

	t.Run("Creation validates amount", func(t *testing.T) {
		_, err := NewWithdrawal(42, decimal.Zero, "254712345678", created)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewWithdrawal(42, decimal.RequireFromString("1.234"), "254712345678", created)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Complete stamps receipt and time", func(t *testing.T) {
		w := newPending(t)

		require.NoError(t, w.Complete("RCPT1", done, false))
		assert.Equal(t, WithdrawalCompleted, w.Status)
		assert.Equal(t, "RCPT1", w.Receipt())
		require.NotNil(t, w.CompletedAt)
		assert.Equal(t, done, *w.CompletedAt)
	})

	t.Run("Fail stores reason", func(t *testing.T) {
		w := newPending(t)

		require.NoError(t, w.Fail("Transaction timed out", done, false))
		assert.Equal(t, WithdrawalFailed, w.Status)
		assert.Equal(t, "Transaction timed out", w.Reason())
	})

	t.Run("Terminal payout is guarded", func(t *testing.T) {
		w := newPending(t)
		require.NoError(t, w.Complete("RCPT1", done, false))

		err := w.Fail("late timeout", done, false)
		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Equal(t, WithdrawalCompleted, w.Status)

		err = w.Complete("RCPT2", done, false)
		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Equal(t, "RCPT1", w.Receipt())
	})

	t.Run("Reprocess override allows a second transition", func(t *testing.T) {
		w := newPending(t)
		require.NoError(t, w.Fail("first", done, false))

		require.NoError(t, w.Complete("RCPT2", done, true))
		assert.Equal(t, WithdrawalCompleted, w.Status)
		assert.Empty(t, w.Reason())
	})

	t.Run("Bind request id", func(t *testing.T) {
		w := newPending(t)

		changed, err := w.BindRequestID("AG_1")
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = w.BindRequestID("AG_1")
		require.NoError(t, err)
		assert.False(t, changed)

		_, err = w.BindRequestID("AG_2")
		assert.ErrorIs(t, err, errs.ErrCorrelationConflict)
	})
}

func TestNewBalance(t *testing.T) {
	totals := BalanceTotals{
		CompletedTips:        decimal.NewFromInt(500),
		PendingTips:          decimal.NewFromInt(40),
		CompletedWithdrawals: decimal.NewFromInt(100),
		PendingWithdrawals:   decimal.NewFromInt(150),
	}

	b := NewBalance(42, totals)

	assert.Equal(t, "250", b.Available.String())
	assert.Equal(t, "40", b.Pending.String())
	assert.True(t, b.Covers(decimal.NewFromInt(250)))
	assert.False(t, b.Covers(decimal.RequireFromString("250.01")))
}
