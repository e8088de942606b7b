package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(50)

	t.Run("Valid transaction creation", func(t *testing.T) {
		tx, err := NewTransaction(42, amount, "254712345678", "Jane", "Great stream", fixedTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), tx.CreatorID)
		assert.True(t, amount.Equal(tx.Amount))
		assert.Equal(t, StatusPending, tx.Status)
		assert.Nil(t, tx.GatewayReceipt)
		assert.Nil(t, tx.GatewayRequestID)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Equal(t, fixedTime, tx.UpdatedAt)
		assert.False(t, tx.Withdrawn)
	})

	t.Run("Blank payer name defaults to Anonymous", func(t *testing.T) {
		tx, err := NewTransaction(42, amount, "254712345678", "  ", "", fixedTime)

		require.NoError(t, err)
		assert.Equal(t, DefaultPayerName, tx.PayerName)
	})

	t.Run("Zero creator", func(t *testing.T) {
		tx, err := NewTransaction(0, amount, "254712345678", "", "", fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidCreatorID)
		assert.Nil(t, tx)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		tx, err := NewTransaction(42, decimal.Zero, "254712345678", "", "", fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)
	})

	t.Run("Name too long", func(t *testing.T) {
		tx, err := NewTransaction(42, amount, "254712345678", strings.Repeat("a", 51), "", fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, tx)
	})

	t.Run("Message too long", func(t *testing.T) {
		tx, err := NewTransaction(42, amount, "254712345678", "", strings.Repeat("m", 201), fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, tx)
	})
}

func newPendingTx(t *testing.T) *Transaction {
	t.Helper()
	tx, err := NewTransaction(42, decimal.NewFromInt(50), "254712345678", "Jane", "", time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	tx.ID = 1
	return tx
}

func TestTransaction_BindRequestID(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 1, 0, 0, time.UTC)

	t.Run("First bind sets id", func(t *testing.T) {
		tx := newPendingTx(t)
		changed, err := tx.BindRequestID("abc123", now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "abc123", tx.RequestID())
		assert.Equal(t, now, tx.UpdatedAt)
	})

	t.Run("Same id twice is a no-op", func(t *testing.T) {
		tx := newPendingTx(t)
		_, _ = tx.BindRequestID("abc123", now)
		changed, err := tx.BindRequestID("abc123", now.Add(time.Minute))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now, tx.UpdatedAt)
	})

	t.Run("Different id is a conflict", func(t *testing.T) {
		tx := newPendingTx(t)
		_, _ = tx.BindRequestID("abc123", now)
		changed, err := tx.BindRequestID("zzz999", now)

		assert.ErrorIs(t, err, errs.ErrCorrelationConflict)
		assert.False(t, changed)
		assert.Equal(t, "abc123", tx.RequestID())
	})

	t.Run("Empty id rejected", func(t *testing.T) {
		tx := newPendingTx(t)
		_, err := tx.BindRequestID("", now)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestTransaction_Transitions(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 5, 0, 0, time.UTC)

	t.Run("Complete from pending", func(t *testing.T) {
		tx := newPendingTx(t)

		assert.True(t, tx.Complete("XYZ1", "254700000000", now))
		assert.Equal(t, StatusCompleted, tx.Status)
		assert.Equal(t, "XYZ1", tx.Receipt())
		assert.Equal(t, "254700000000", tx.PayerPhone)
	})

	t.Run("Complete keeps phone when none supplied", func(t *testing.T) {
		tx := newPendingTx(t)

		assert.True(t, tx.Complete("XYZ1", "", now))
		assert.Equal(t, "254712345678", tx.PayerPhone)
	})

	t.Run("Second complete keeps the first receipt", func(t *testing.T) {
		tx := newPendingTx(t)
		tx.Complete("FIRST", "", now)

		assert.False(t, tx.Complete("SECOND", "", now.Add(time.Minute)))
		assert.Equal(t, "FIRST", tx.Receipt())
		assert.Equal(t, now, tx.UpdatedAt)
	})

	t.Run("Fail appends reason to empty message", func(t *testing.T) {
		tx := newPendingTx(t)

		assert.True(t, tx.Fail("Request cancelled by user", now))
		assert.Equal(t, StatusFailed, tx.Status)
		assert.Equal(t, "Failed: Request cancelled by user", tx.Message)
		assert.Nil(t, tx.GatewayReceipt)
	})

	t.Run("Fail appends reason after existing message", func(t *testing.T) {
		tx := newPendingTx(t)
		tx.Message = "Great stream"

		tx.Fail("Insufficient funds", now)
		assert.Equal(t, "Great stream (Failed: Insufficient funds)", tx.Message)
	})

	t.Run("Terminal states refuse every transition", func(t *testing.T) {
		for _, status := range []TransactionStatus{StatusCompleted, StatusFailed, StatusTimeout} {
			tx := newPendingTx(t)
			tx.Status = status

			assert.False(t, tx.Complete("R", "", now), status)
			assert.False(t, tx.Fail("x", now), status)
			assert.False(t, tx.Timeout(now), status)
			assert.Equal(t, status, tx.Status)
			assert.True(t, status.IsTerminal())
		}
		assert.False(t, StatusPending.IsTerminal())
	})

	t.Run("Timeout from pending", func(t *testing.T) {
		tx := newPendingTx(t)

		assert.True(t, tx.Timeout(now))
		assert.Equal(t, StatusTimeout, tx.Status)
	})
}

func TestTransaction_Clone(t *testing.T) {
	tx := newPendingTx(t)
	_, _ = tx.BindRequestID("abc123", tx.CreatedAt)

	c := tx.Clone()
	c.Complete("XYZ1", "", tx.CreatedAt)
	*c.GatewayRequestID = "mutated"

	assert.Equal(t, StatusPending, tx.Status)
	assert.Equal(t, "abc123", tx.RequestID())
	assert.Nil(t, tx.GatewayReceipt)
}

func TestEventsFromTransaction(t *testing.T) {
	tx := newPendingTx(t)
	tx.Message = "hi"
	tx.Complete("XYZ1", "", time.Date(2023, 1, 1, 12, 5, 0, 0, time.UTC))

	tip := NewTipEventFrom(tx)
	assert.Equal(t, "Jane", tip.Name)
	assert.Equal(t, "50.00", tip.Amount)
	assert.Equal(t, "XYZ1", tip.MpesaReceipt)

	status := TipStatusEventFrom(tx)
	assert.Equal(t, uint64(1), status.ID)
	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, "254712345678", status.PhoneNumber)
	assert.Equal(t, "creator_42", CreatorChannel(tx.CreatorID))
}
