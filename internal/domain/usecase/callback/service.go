package callback

import (
	"context"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

const (
	kindPush          = "push"
	kindPayoutResult  = "payout_result"
	kindPayoutTimeout = "payout_timeout"

	payoutTimeoutReason = "Transaction timed out"
)

// Service correlates gateway webhooks with the records they report on
type Service struct {
	transactions usecase.TransactionUseCase
	withdrawals  usecase.WithdrawalUseCase
	policy       RetryPolicy
	logger       coreport.Logger
	metrics      coreport.Metrics
}

var _ usecase.CallbackUseCase = (*Service)(nil)

// NewCallbackService creates a new callback correlator
func NewCallbackService(
	transactions usecase.TransactionUseCase,
	withdrawals usecase.WithdrawalUseCase,
	policy RetryPolicy,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *Service {
	return &Service{
		transactions: transactions,
		withdrawals:  withdrawals,
		policy:       policy,
		logger:       logger,
		metrics:      metrics,
	}
}

// HandlePushCallback applies a push-payment result to its transaction
func (s *Service) HandlePushCallback(ctx context.Context, cb usecase.PushCallback) (outcome usecase.CallbackOutcome, err error) {
	defer func() { s.metrics.IncCallback(kindPush, string(outcome)) }()

	if cb.CheckoutRequestID == "" {
		s.logger.Warn("Push callback without CheckoutRequestID", map[string]any{
			"merchant_request_id": cb.MerchantRequestID,
			"result_code":         cb.ResultCode,
		})
		return usecase.OutcomeInvalid, nil
	}

	tx, attempts, err := Resolve(ctx, s.policy, func(ctx context.Context) (*entity.Transaction, error) {
		return s.transactions.FindByCorrelationID(ctx, cb.CheckoutRequestID)
	})
	if err != nil {
		return s.lookupFailed(kindPush, cb.CheckoutRequestID, attempts, err)
	}

	if tx.Status.IsTerminal() {
		s.logger.Info("Duplicate push callback ignored", map[string]any{
			"transaction_id":      tx.ID,
			"checkout_request_id": cb.CheckoutRequestID,
			"status":              tx.Status,
		})
		return usecase.OutcomeDuplicate, nil
	}

	var applied bool
	if cb.Succeeded() {
		_, applied, err = s.transactions.Complete(ctx, tx, cb.Receipt, cb.Phone)
	} else {
		_, applied, err = s.transactions.Fail(ctx, tx, cb.ResultDesc)
	}
	if err != nil {
		s.logger.Error("Failed to apply push callback", map[string]any{
			"transaction_id": tx.ID,
			"result_code":    cb.ResultCode,
			"error":          err.Error(),
		})
		return usecase.OutcomeError, err
	}
	if !applied {
		return usecase.OutcomeDuplicate, nil
	}

	s.logger.Info("Push callback applied", map[string]any{
		"transaction_id":      tx.ID,
		"checkout_request_id": cb.CheckoutRequestID,
		"result_code":         cb.ResultCode,
		"attempts":            attempts,
	})
	return usecase.OutcomeApplied, nil
}

// HandlePayoutResult applies a payout result to its withdrawal
func (s *Service) HandlePayoutResult(ctx context.Context, res usecase.PayoutResult) (outcome usecase.CallbackOutcome, err error) {
	defer func() { s.metrics.IncCallback(kindPayoutResult, string(outcome)) }()

	if res.ConversationID == "" {
		s.logger.Warn("Payout result without ConversationID", map[string]any{
			"originator_conversation_id": res.OriginatorConversationID,
			"result_code":                res.ResultCode,
		})
		return usecase.OutcomeInvalid, nil
	}

	w, attempts, err := Resolve(ctx, s.policy, func(ctx context.Context) (*entity.Withdrawal, error) {
		return s.withdrawals.FindByCorrelationID(ctx, res.ConversationID)
	})
	if err != nil {
		return s.lookupFailed(kindPayoutResult, res.ConversationID, attempts, err)
	}

	if res.Succeeded() {
		_, err = s.withdrawals.Complete(ctx, w.ID, res.Receipt)
	} else {
		reason := res.ResultDesc
		if reason == "" {
			reason = "Payout failed"
		}
		_, err = s.withdrawals.Fail(ctx, w.ID, reason)
	}
	return s.payoutOutcome(kindPayoutResult, w.ID, err)
}

// HandlePayoutTimeout fails the withdrawal the gateway gave up on
func (s *Service) HandlePayoutTimeout(ctx context.Context, conversationID string) (outcome usecase.CallbackOutcome, err error) {
	defer func() { s.metrics.IncCallback(kindPayoutTimeout, string(outcome)) }()

	if conversationID == "" {
		s.logger.Warn("Payout timeout without ConversationID", nil)
		return usecase.OutcomeInvalid, nil
	}

	w, attempts, err := Resolve(ctx, s.policy, func(ctx context.Context) (*entity.Withdrawal, error) {
		return s.withdrawals.FindByCorrelationID(ctx, conversationID)
	})
	if err != nil {
		return s.lookupFailed(kindPayoutTimeout, conversationID, attempts, err)
	}

	_, err = s.withdrawals.Fail(ctx, w.ID, payoutTimeoutReason)
	return s.payoutOutcome(kindPayoutTimeout, w.ID, err)
}

func (s *Service) payoutOutcome(kind string, withdrawalID uint64, err error) (usecase.CallbackOutcome, error) {
	switch {
	case err == nil:
		s.logger.Info("Payout callback applied", map[string]any{
			"kind":          kind,
			"withdrawal_id": withdrawalID,
		})
		return usecase.OutcomeApplied, nil
	case errs.IsAlreadyProcessedError(err):
		s.logger.Info("Duplicate payout callback ignored", map[string]any{
			"kind":          kind,
			"withdrawal_id": withdrawalID,
		})
		return usecase.OutcomeDuplicate, nil
	default:
		fields := errs.LogFields(err)
		fields["kind"] = kind
		fields["withdrawal_id"] = withdrawalID
		s.logger.Error("Failed to apply payout callback", fields)
		return usecase.OutcomeError, err
	}
}

func (s *Service) lookupFailed(kind, correlationID string, attempts int, err error) (usecase.CallbackOutcome, error) {
	if errs.IsNotFoundError(err) {
		s.logger.Warn("No record matches callback", map[string]any{
			"kind":           kind,
			"correlation_id": correlationID,
			"attempts":       attempts,
		})
		return usecase.OutcomeNotFound, nil
	}

	s.logger.Error("Callback lookup failed", map[string]any{
		"kind":           kind,
		"correlation_id": correlationID,
		"attempts":       attempts,
		"error":          err.Error(),
	})
	return usecase.OutcomeError, err
}
