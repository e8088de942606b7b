package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

var tipRequest = usecase.CreateTipRequest{
	CreatorID: creatorID,
	Amount:    "150.75",
	Phone:     "0712345678",
	PayerName: "Amina",
}

func TestService_InitiateTip(t *testing.T) {
	ctx := context.Background()

	t.Run("should bind the checkout request id of an accepted push", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().PushPayment(mock.Anything, gateway.PushRequest{
			Phone:            "254712345678",
			Amount:           150,
			CallbackURL:      "https://example.test/payments/callback",
			AccountReference: "TIP3",
			Description:      "Tip for creator 3",
		}).Return(&gateway.PushAck{
			MerchantRequestID: "m-1",
			CheckoutRequestID: "ws_CO_123",
			ResponseCode:      "0",
		}, nil).Once()

		tx, err := f.svc.InitiateTip(ctx, tipRequest)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, tx.Status)
		assert.Equal(t, "ws_CO_123", f.store.Transaction(tx.ID).RequestID())
		assert.Empty(t, f.publisher.Events())
	})

	t.Run("should fail the tip when the push is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().PushPayment(mock.Anything, mock.Anything).Return(&gateway.PushAck{
			ResponseCode: "1",
			ErrorCode:    "400.002.02",
			ErrorMessage: "Bad Request - Invalid PhoneNumber",
		}, nil).Once()

		tx, err := f.svc.InitiateTip(ctx, tipRequest)

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		require.NotNil(t, tx)
		stored := f.store.Transaction(tx.ID)
		assert.Equal(t, entity.StatusFailed, stored.Status)
		assert.Empty(t, stored.RequestID())
		assert.Equal(t, 1, f.publisher.Count(entity.EventTipStatus))
	})

	t.Run("should fail the tip when the gateway is unreachable", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().PushPayment(mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("push", 3, 503, "service unavailable", errs.ErrGatewayUnreachable)).Once()

		tx, err := f.svc.InitiateTip(ctx, tipRequest)

		assert.ErrorIs(t, err, errs.ErrGatewayUnreachable)
		require.NotNil(t, tx)
		assert.Equal(t, entity.StatusFailed, f.store.Transaction(tx.ID).Status)
	})

	t.Run("should not call the gateway for invalid input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.InitiateTip(ctx, usecase.CreateTipRequest{CreatorID: creatorID, Amount: "0", Phone: "0712345678"})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.gateway.AssertNotCalled(t, "PushPayment", mock.Anything, mock.Anything)
	})
}

func TestService_CheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("should complete when the gateway reports success", func(t *testing.T) {
		f := newFixture(t)
		tx := pendingTip(f, "ws_CO_1")
		f.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_1").
			Return(&gateway.StatusResult{ResultCode: "0", ResultDesc: "The service request is processed successfully."}, nil).Once()

		got, err := f.svc.CheckStatus(ctx, tx.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, got.Status)
		assert.Equal(t, "PGHTEST001", got.Receipt())
		assert.Equal(t, 1, f.publisher.Count(entity.EventNewTip))
	})

	t.Run("should fail when the gateway reports a failure code", func(t *testing.T) {
		f := newFixture(t)
		tx := pendingTip(f, "ws_CO_1")
		f.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_1").
			Return(&gateway.StatusResult{ResultCode: "1032", ResultDesc: "Request cancelled by user"}, nil).Once()

		got, err := f.svc.CheckStatus(ctx, tx.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, got.Status)
	})

	t.Run("should keep the tip pending when the query fails", func(t *testing.T) {
		f := newFixture(t)
		tx := pendingTip(f, "ws_CO_1")
		f.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_1").
			Return(nil, errs.ErrGatewayUnreachable).Once()

		got, err := f.svc.CheckStatus(ctx, tx.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, got.Status)
	})

	t.Run("should not query terminal or unbound tips", func(t *testing.T) {
		f := newFixture(t)
		unbound := pendingTip(f, "")
		done := f.store.AddCompletedTip(creatorID, "10.00", fixedTime)

		got, err := f.svc.CheckStatus(ctx, unbound.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, got.Status)

		got, err = f.svc.CheckStatus(ctx, done.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, got.Status)

		f.gateway.AssertNotCalled(t, "QueryStatus", mock.Anything, mock.Anything)
	})

	t.Run("should report a missing transaction", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CheckStatus(ctx, 42)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestService_InitiateTip_RecordsOutcomeAfterCallerLeaves(t *testing.T) {
	t.Run("accepted push keeps its checkout request id", func(t *testing.T) {
		f := newFixture(t)
		f.store.HonorCancellation = true
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.gateway.EXPECT().PushPayment(mock.Anything, mock.Anything).
			Run(func(context.Context, gateway.PushRequest) { cancel() }).
			Return(&gateway.PushAck{CheckoutRequestID: "ws_CO_1", ResponseCode: "0"}, nil).Once()

		tx, err := f.svc.InitiateTip(ctx, tipRequest)

		require.NoError(t, err)
		assert.Equal(t, "ws_CO_1", f.store.Transaction(tx.ID).RequestID())

		found, err := f.svc.FindByCorrelationID(context.Background(), "ws_CO_1")
		require.NoError(t, err)
		assert.Equal(t, tx.ID, found.ID)
	})

	t.Run("failed push still ends FAILED", func(t *testing.T) {
		f := newFixture(t)
		f.store.HonorCancellation = true
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.gateway.EXPECT().PushPayment(mock.Anything, mock.Anything).
			Run(func(context.Context, gateway.PushRequest) { cancel() }).
			Return(nil, errs.NewGatewayError("push", 1, 0, "context canceled", errs.ErrGatewayUnreachable)).Once()

		tx, err := f.svc.InitiateTip(ctx, tipRequest)

		assert.ErrorIs(t, err, errs.ErrGatewayUnreachable)
		require.NotNil(t, tx)
		assert.Equal(t, entity.StatusFailed, f.store.Transaction(tx.ID).Status)
	})
}
