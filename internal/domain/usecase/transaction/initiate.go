package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

// InitiateTip creates a PENDING tip and sends the push request. Gateway failures and
// rejections leave the tip FAILED so that a retry is an explicit new request.
func (s *Service) InitiateTip(ctx context.Context, req usecase.CreateTipRequest) (*entity.Transaction, error) {
	tx, err := s.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	ack, pushErr := s.gateway.PushPayment(ctx, gateway.PushRequest{
		Phone:            tx.PayerPhone,
		Amount:           entity.GatewayAmount(tx.Amount),
		CallbackURL:      s.cfg.CallbackURL,
		AccountReference: fmt.Sprintf("TIP%d", tx.CreatorID),
		Description:      fmt.Sprintf("Tip for creator %d", tx.CreatorID),
	})

	// The payer may already have been prompted, so the outcome is recorded even if
	// the caller has gone away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.SettleTimeout)
	defer cancel()

	if pushErr != nil {
		fields := errs.LogFields(pushErr)
		fields["transaction_id"] = tx.ID
		s.logger.Error("Push payment request failed", fields)
		return s.failInitiation(ctx, tx, "Payment request could not be sent", pushErr)
	}

	if !ack.Accepted() {
		s.logger.Warn("Push payment rejected by gateway", map[string]any{
			"transaction_id": tx.ID,
			"response_code":  ack.ResponseCode,
			"error_code":     ack.ErrorCode,
			"reason":         ack.Reason(),
		})
		rejection := errs.NewGatewayError("push", 1, 0, ack.Reason(), errs.ErrGatewayRejected)
		return s.failInitiation(ctx, tx, "Payment request rejected", rejection)
	}

	return s.MarkInitiated(ctx, tx.ID, ack.CheckoutRequestID)
}

// failInitiation moves the tip to FAILED and returns the original cause
func (s *Service) failInitiation(ctx context.Context, tx *entity.Transaction, reason string, cause error) (*entity.Transaction, error) {
	failed, _, err := s.Fail(ctx, tx, reason)
	if err != nil {
		s.logger.Error("Could not mark tip as failed after gateway error", map[string]any{
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
		return tx, cause
	}
	return failed, cause
}

// CheckStatus returns the transaction, first polling the gateway when a PENDING tip
// already has a request id. Poll errors are ignored and the tip stays PENDING.
func (s *Service) CheckStatus(ctx context.Context, id uint64) (*entity.Transaction, error) {
	tx, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.Status.IsTerminal() || tx.RequestID() == "" {
		return tx, nil
	}

	result, err := s.gateway.QueryStatus(ctx, tx.RequestID())
	if err != nil {
		s.logger.Warn("Status query failed, keeping transaction pending", map[string]any{
			"transaction_id":      tx.ID,
			"checkout_request_id": tx.RequestID(),
			"error":               err.Error(),
		})
		return tx, nil
	}

	switch {
	case result.ResultCode == gateway.ResponseCodeAccepted:
		updated, _, err := s.Complete(ctx, tx, "", "")
		if err != nil {
			return tx, nil
		}
		return updated, nil
	case result.ResultCode != "":
		reason := result.ResultDesc
		if reason == "" {
			reason = "Payment failed with code " + result.ResultCode
		}
		updated, _, err := s.Fail(ctx, tx, reason)
		if err != nil {
			return tx, nil
		}
		return updated, nil
	default:
		return tx, nil
	}
}
