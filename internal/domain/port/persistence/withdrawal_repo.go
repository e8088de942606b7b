package persistence

import (
	"context"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// WithdrawalRepository defines methods to interact with payout data
type WithdrawalRepository interface {
	// Create saves a new PENDING withdrawal and assigns its ID
	Create(ctx context.Context, w *entity.Withdrawal) error

	// GetByID retrieves a withdrawal by its primary key
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: If no withdrawal has the given ID
	// - ErrStorage: If the database operation fails
	GetByID(ctx context.Context, id uint64) (*entity.Withdrawal, error)

	// GetByRequestID retrieves a withdrawal by its gateway ConversationID
	//
	// Possible errors:
	// - ErrWithdrawalNotFound: If no withdrawal carries the id yet
	// - ErrStorage: If the database operation fails
	GetByRequestID(ctx context.Context, requestID string) (*entity.Withdrawal, error)

	// SetRequestID persists w.GatewayRequestID only while the stored value is still empty
	SetRequestID(ctx context.Context, w *entity.Withdrawal) (bool, error)

	// Transition writes status, receipt, failure reason and completed_at of w
	// only if the stored status still equals from
	Transition(ctx context.Context, w *entity.Withdrawal, from entity.WithdrawalStatus) (bool, error)

	// ListByCreator returns the most recent withdrawals of a creator, newest first
	ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Withdrawal, error)

	// Totals returns the completed and pending withdrawal sums for a creator
	Totals(ctx context.Context, creatorID uint64) (completed decimal.Decimal, pending decimal.Decimal, err error)
}
