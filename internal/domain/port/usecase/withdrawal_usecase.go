package usecase

import (
	"context"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

// WithdrawalRequest represents a creator's request to pay out funds.
// An empty Phone falls back to the creator's registered number.
type WithdrawalRequest struct {
	CreatorID uint64
	Amount    string
	Phone     string
}

// WithdrawalUseCase defines the payout state machine
type WithdrawalUseCase interface {
	// Create checks the available balance under a creator lock and inserts a PENDING withdrawal
	Create(ctx context.Context, req WithdrawalRequest) (*entity.Withdrawal, error)

	// Initiate creates the withdrawal and submits the payout to the gateway
	Initiate(ctx context.Context, req WithdrawalRequest) (*entity.Withdrawal, error)

	// BindCorrelationID stores the gateway ConversationID for callback correlation
	BindCorrelationID(ctx context.Context, withdrawalID uint64, conversationID string) (*entity.Withdrawal, error)

	// Complete moves a PENDING withdrawal to COMPLETED; ErrAlreadyProcessed otherwise
	Complete(ctx context.Context, withdrawalID uint64, receipt string) (*entity.Withdrawal, error)

	// Fail moves a PENDING withdrawal to FAILED; ErrAlreadyProcessed otherwise
	Fail(ctx context.Context, withdrawalID uint64, reason string) (*entity.Withdrawal, error)

	// FindByCorrelationID looks a withdrawal up by its gateway ConversationID
	FindByCorrelationID(ctx context.Context, conversationID string) (*entity.Withdrawal, error)

	// Balance derives the creator's available and pending balance
	Balance(ctx context.Context, creatorID uint64) (*entity.Balance, error)

	// ListByCreator returns the most recent withdrawals of a creator
	ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Withdrawal, error)
}
