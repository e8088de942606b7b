package withdrawal

import (
	"context"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

// Initiate creates the withdrawal, then submits the payout with no lock held.
// A failed or rejected submission fails the withdrawal, releasing its reservation.
func (u *UseCase) Initiate(ctx context.Context, req usecase.WithdrawalRequest) (*entity.Withdrawal, error) {
	w, err := u.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	ack, payoutErr := u.gateway.Payout(ctx, gateway.PayoutRequest{
		Phone:   w.PhoneNumber,
		Amount:  entity.GatewayAmount(w.Amount),
		Remarks: u.cfg.Remarks,
	})

	// An unbound or unfailed withdrawal keeps its funds reserved, so the outcome is
	// recorded even if the caller has gone away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.SettleTimeout)
	defer cancel()

	if payoutErr != nil {
		fields := errs.LogFields(payoutErr)
		fields["withdrawal_id"] = w.ID
		u.logger.Error("Payout request failed", fields)
		return u.failInitiation(ctx, w, "Payout request could not be sent", payoutErr)
	}

	if !ack.Accepted() {
		u.logger.Warn("Payout rejected by gateway", map[string]any{
			"withdrawal_id": w.ID,
			"response_code": ack.ResponseCode,
			"error_code":    ack.ErrorCode,
			"reason":        ack.Reason(),
		})
		rejection := errs.NewGatewayError("payout", 1, 0, ack.Reason(), errs.ErrGatewayRejected)
		return u.failInitiation(ctx, w, "Payout request rejected", rejection)
	}

	return u.BindCorrelationID(ctx, w.ID, ack.ConversationID)
}

func (u *UseCase) failInitiation(ctx context.Context, w *entity.Withdrawal, reason string, cause error) (*entity.Withdrawal, error) {
	failed, err := u.Fail(ctx, w.ID, reason)
	if err != nil {
		u.logger.Error("Could not mark withdrawal as failed after gateway error", map[string]any{
			"withdrawal_id": w.ID,
			"error":         err.Error(),
		})
		return w, cause
	}
	return failed, cause
}
