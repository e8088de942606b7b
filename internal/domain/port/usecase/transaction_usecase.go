package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

// CreateTipRequest represents an incoming request to tip a creator
type CreateTipRequest struct {
	CreatorID uint64
	Amount    string
	Phone     string
	PayerName string
	Message   string
}

// TransactionUseCase defines the tip transaction state machine
type TransactionUseCase interface {
	// Create validates the request and inserts a PENDING transaction
	Create(ctx context.Context, req CreateTipRequest) (*entity.Transaction, error)

	// InitiateTip creates the transaction and sends the push request. A rejected or
	// failed push leaves the transaction FAILED; the error is returned alongside it.
	InitiateTip(ctx context.Context, req CreateTipRequest) (*entity.Transaction, error)

	// MarkInitiated binds the gateway CheckoutRequestID; idempotent for the same id
	MarkInitiated(ctx context.Context, txID uint64, requestID string) (*entity.Transaction, error)

	// Complete moves a PENDING transaction to COMPLETED. The bool reports whether this
	// call performed the transition; repeats return the stored record and false.
	Complete(ctx context.Context, tx *entity.Transaction, receipt, phone string) (*entity.Transaction, bool, error)

	// Fail moves a PENDING transaction to FAILED; no-op otherwise
	Fail(ctx context.Context, tx *entity.Transaction, reason string) (*entity.Transaction, bool, error)

	// TimeoutStale moves PENDING transactions older than olderThan to TIMEOUT and
	// returns how many were moved
	TimeoutStale(ctx context.Context, olderThan time.Duration) (int, error)

	// FindByCorrelationID looks a transaction up by its gateway CheckoutRequestID
	FindByCorrelationID(ctx context.Context, requestID string) (*entity.Transaction, error)

	// GetByID retrieves a transaction
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// CheckStatus returns the transaction, polling the gateway first when it is still
	// PENDING and already has a request id
	CheckStatus(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByCreator returns the most recent transactions of a creator
	ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Transaction, error)
}
