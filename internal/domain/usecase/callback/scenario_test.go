package callback

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/usecase/withdrawal"
	"github.com/amirhossein-jamali/tip-processor/mocks/memory"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/tip-processor/mocks/port/gateway"
	mocknotifier "github.com/amirhossein-jamali/tip-processor/mocks/port/notifier"
)

type scenario struct {
	store        *memory.Store
	gateway      *mockgateway.MockClient
	publisher    *mocknotifier.RecordingPublisher
	transactions *transaction.Service
	withdrawals  *withdrawal.UseCase
	callbacks    *Service
}

func newScenario(t *testing.T) *scenario {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := mockcore.NewFixedTimeProvider(now)
	logger := mockcore.NewPermissiveLogger()
	metrics := mockcore.NewPermissiveMetrics()

	s := &scenario{
		store:     memory.NewStore(),
		gateway:   mockgateway.NewMockClient(t),
		publisher: &mocknotifier.RecordingPublisher{},
	}
	s.store.AddCreator(42, "Creator", "254700000042")

	s.transactions = transaction.NewTransactionService(s.store, s.gateway, s.publisher, clock, logger, metrics, transaction.DefaultConfig())
	s.withdrawals = withdrawal.NewWithdrawalUseCase(s.store, s.gateway, clock, logger, metrics, withdrawal.Config{Remarks: "Withdrawal Payment"})
	s.callbacks = NewCallbackService(s.transactions, s.withdrawals, fastPolicy, logger, metrics)
	return s
}

func TestScenario_TipCompletedByCallback(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.gateway.EXPECT().PushPayment(mock.Anything, mock.MatchedBy(func(req gateway.PushRequest) bool {
		return req.Phone == "254712345678" && req.Amount == 50
	})).Return(&gateway.PushAck{CheckoutRequestID: "abc123", ResponseCode: "0"}, nil).Once()

	tx, err := s.transactions.InitiateTip(ctx, usecase.CreateTipRequest{CreatorID: 42, Amount: "50", Phone: "254712345678"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", s.store.Transaction(tx.ID).RequestID())

	outcome, err := s.callbacks.HandlePushCallback(ctx, usecase.PushCallback{
		CheckoutRequestID: "abc123",
		ResultCode:        0,
		Receipt:           "XYZ1",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)

	stored := s.store.Transaction(tx.ID)
	assert.Equal(t, entity.StatusCompleted, stored.Status)
	assert.Equal(t, "XYZ1", stored.Receipt())

	events := s.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "creator_42", events[0].Channel)
	assert.Equal(t, entity.EventNewTip, events[0].Event)
	assert.Equal(t, "creator_42", events[1].Channel)
	assert.Equal(t, entity.EventTipStatus, events[1].Event)

	outcome, err = s.callbacks.HandlePushCallback(ctx, usecase.PushCallback{
		CheckoutRequestID: "abc123",
		ResultCode:        0,
		Receipt:           "XYZ2",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeDuplicate, outcome)
	assert.Equal(t, "XYZ1", s.store.Transaction(tx.ID).Receipt())
	assert.Equal(t, 1, s.publisher.Count(entity.EventNewTip))
}

func TestScenario_PayoutResultIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.store.AddTransaction(&entity.Transaction{
		CreatorID: 42,
		Amount:    decimal.NewFromInt(300),
		Status:    entity.StatusCompleted,
		CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	s.gateway.EXPECT().Payout(mock.Anything, mock.Anything).
		Return(&gateway.PayoutAck{ConversationID: "AG_777", ResponseCode: "0"}, nil).Once()

	w, err := s.withdrawals.Initiate(ctx, usecase.WithdrawalRequest{CreatorID: 42, Amount: "200"})
	require.NoError(t, err)

	outcome, err := s.callbacks.HandlePayoutResult(ctx, usecase.PayoutResult{ConversationID: "AG_777", Receipt: "TEST-AG_777"})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeApplied, outcome)

	outcome, err = s.callbacks.HandlePayoutTimeout(ctx, "AG_777")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeDuplicate, outcome)

	outcome, err = s.callbacks.HandlePayoutResult(ctx, usecase.PayoutResult{ConversationID: "AG_777", ResultCode: 1, ResultDesc: "late"})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeDuplicate, outcome)

	stored := s.store.Withdrawal(w.ID)
	assert.Equal(t, entity.WithdrawalCompleted, stored.Status)
	assert.Equal(t, "TEST-AG_777", stored.Receipt())

	balance, err := s.withdrawals.Balance(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "100.00", entity.FormatAmount(balance.Available))
}
