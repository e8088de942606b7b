package callback

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/tip-processor/mocks/port/usecase"
)

type mocks struct {
	transactions *mockusecase.MockTransactionUseCase
	withdrawals  *mockusecase.MockWithdrawalUseCase
	metrics      *mockcore.MockMetrics
	svc          *Service
}

func newMocks(t *testing.T) *mocks {
	m := &mocks{
		transactions: mockusecase.NewMockTransactionUseCase(t),
		withdrawals:  mockusecase.NewMockWithdrawalUseCase(t),
		metrics:      mockcore.NewPermissiveMetrics(),
	}
	m.svc = NewCallbackService(m.transactions, m.withdrawals, fastPolicy, mockcore.NewPermissiveLogger(), m.metrics)
	return m
}

func pending(id uint64) *entity.Transaction {
	return &entity.Transaction{ID: id, CreatorID: 1, Amount: decimal.NewFromInt(10), Status: entity.StatusPending}
}

func TestService_HandlePushCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("should complete on success", func(t *testing.T) {
		m := newMocks(t)
		tx := pending(5)
		m.transactions.EXPECT().FindByCorrelationID(mock.Anything, "ws_CO_1").Return(tx, nil).Once()
		m.transactions.EXPECT().Complete(mock.Anything, tx, "QK1", "254712345678").Return(tx, true, nil).Once()

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{
			CheckoutRequestID: "ws_CO_1",
			ResultCode:        0,
			Receipt:           "QK1",
			Phone:             "254712345678",
		})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeApplied, outcome)
		m.metrics.AssertCalled(t, "IncCallback", "push", "applied")
	})

	t.Run("should fail with the gateway description", func(t *testing.T) {
		m := newMocks(t)
		tx := pending(5)
		m.transactions.EXPECT().FindByCorrelationID(mock.Anything, "ws_CO_1").Return(tx, nil).Once()
		m.transactions.EXPECT().Fail(mock.Anything, tx, "Request cancelled by user").Return(tx, true, nil).Once()

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{
			CheckoutRequestID: "ws_CO_1",
			ResultCode:        1032,
			ResultDesc:        "Request cancelled by user",
		})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeApplied, outcome)
	})

	t.Run("should ignore a terminal record", func(t *testing.T) {
		m := newMocks(t)
		tx := pending(5)
		tx.Status = entity.StatusCompleted
		m.transactions.EXPECT().FindByCorrelationID(mock.Anything, "ws_CO_1").Return(tx, nil).Once()

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{CheckoutRequestID: "ws_CO_1"})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeDuplicate, outcome)
		m.transactions.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report a lost race as duplicate", func(t *testing.T) {
		m := newMocks(t)
		tx := pending(5)
		m.transactions.EXPECT().FindByCorrelationID(mock.Anything, "ws_CO_1").Return(tx, nil).Once()
		m.transactions.EXPECT().Complete(mock.Anything, tx, "", "").Return(tx, false, nil).Once()

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{CheckoutRequestID: "ws_CO_1"})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeDuplicate, outcome)
	})

	t.Run("should give up on an unknown id without an error", func(t *testing.T) {
		m := newMocks(t)
		m.transactions.EXPECT().FindByCorrelationID(mock.Anything, "ws_CO_X").Return(nil, errs.ErrTransactionNotFound).Times(3)

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{CheckoutRequestID: "ws_CO_X"})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeNotFound, outcome)
		m.transactions.AssertNumberOfCalls(t, "FindByCorrelationID", 3)
	})

	t.Run("should reject a callback without correlation id", func(t *testing.T) {
		m := newMocks(t)

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeInvalid, outcome)
		m.transactions.AssertNotCalled(t, "FindByCorrelationID", mock.Anything, mock.Anything)
	})

	t.Run("should surface transition errors for logging", func(t *testing.T) {
		m := newMocks(t)
		tx := pending(5)
		m.transactions.EXPECT().FindByCorrelationID(mock.Anything, "ws_CO_1").Return(tx, nil).Once()
		m.transactions.EXPECT().Complete(mock.Anything, tx, "", "").Return(nil, false, errs.ErrStorage).Once()

		outcome, err := m.svc.HandlePushCallback(ctx, usecase.PushCallback{CheckoutRequestID: "ws_CO_1"})

		assert.ErrorIs(t, err, errs.ErrStorage)
		assert.Equal(t, usecase.OutcomeError, outcome)
	})
}

func TestService_HandlePayoutResult(t *testing.T) {
	ctx := context.Background()
	w := &entity.Withdrawal{ID: 9, CreatorID: 1, Status: entity.WithdrawalPending}

	t.Run("should complete on success", func(t *testing.T) {
		m := newMocks(t)
		m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(w, nil).Once()
		m.withdrawals.EXPECT().Complete(mock.Anything, uint64(9), "RCP1").Return(w, nil).Once()

		outcome, err := m.svc.HandlePayoutResult(ctx, usecase.PayoutResult{ConversationID: "AG_1", Receipt: "RCP1"})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeApplied, outcome)
	})

	t.Run("should fail on a non-zero result", func(t *testing.T) {
		m := newMocks(t)
		m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(w, nil).Once()
		m.withdrawals.EXPECT().Fail(mock.Anything, uint64(9), "The initiator is not allowed").Return(w, nil).Once()

		outcome, err := m.svc.HandlePayoutResult(ctx, usecase.PayoutResult{
			ConversationID: "AG_1",
			ResultCode:     2001,
			ResultDesc:     "The initiator is not allowed",
		})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeApplied, outcome)
	})

	t.Run("should acknowledge a duplicate without error", func(t *testing.T) {
		m := newMocks(t)
		m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(w, nil).Once()
		m.withdrawals.EXPECT().Complete(mock.Anything, uint64(9), "RCP1").
			Return(w, errs.NewTransitionError("withdrawal", 9, "completed", "completed", "payout already finished", errs.ErrAlreadyProcessed)).Once()

		outcome, err := m.svc.HandlePayoutResult(ctx, usecase.PayoutResult{ConversationID: "AG_1", Receipt: "RCP1"})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeDuplicate, outcome)
	})

	t.Run("should resolve a record that appears late", func(t *testing.T) {
		m := newMocks(t)
		m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(nil, errs.ErrWithdrawalNotFound).Twice()
		m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(w, nil).Once()
		m.withdrawals.EXPECT().Complete(mock.Anything, uint64(9), "RCP1").Return(w, nil).Once()

		outcome, err := m.svc.HandlePayoutResult(ctx, usecase.PayoutResult{ConversationID: "AG_1", Receipt: "RCP1"})

		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeApplied, outcome)
	})

	t.Run("should surface unexpected lookup errors", func(t *testing.T) {
		m := newMocks(t)
		boom := errors.New("connection reset")
		m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(nil, boom).Once()

		outcome, err := m.svc.HandlePayoutResult(ctx, usecase.PayoutResult{ConversationID: "AG_1"})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, usecase.OutcomeError, outcome)
	})
}

func TestService_HandlePayoutTimeout(t *testing.T) {
	ctx := context.Background()
	w := &entity.Withdrawal{ID: 9, CreatorID: 1, Status: entity.WithdrawalPending}

	m := newMocks(t)
	m.withdrawals.EXPECT().FindByCorrelationID(mock.Anything, "AG_1").Return(w, nil).Once()
	m.withdrawals.EXPECT().Fail(mock.Anything, uint64(9), "Transaction timed out").Return(w, nil).Once()

	outcome, err := m.svc.HandlePayoutTimeout(ctx, "AG_1")

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)
	m.metrics.AssertCalled(t, "IncCallback", "payout_timeout", "applied")

	outcome, err = m.svc.HandlePayoutTimeout(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeInvalid, outcome)
}
