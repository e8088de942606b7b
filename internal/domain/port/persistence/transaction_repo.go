package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines essential methods to interact with tip transaction data
type TransactionRepository interface {
	// Create saves a new PENDING transaction and assigns its ID
	//
	// Possible errors:
	// - ErrCreatorNotFound: If the referenced creator does not exist
	// - ErrStorage: If the database operation fails
	Create(ctx context.Context, tx *entity.Transaction) error

	// GetByID retrieves a transaction by its primary key
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the given ID
	// - ErrStorage: If the database operation fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByRequestID retrieves a transaction by its gateway CheckoutRequestID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the id yet
	// - ErrStorage: If the database operation fails
	GetByRequestID(ctx context.Context, requestID string) (*entity.Transaction, error)

	// SetRequestID persists tx.GatewayRequestID only while the stored value is still empty.
	// Returns false when another writer bound an id first.
	SetRequestID(ctx context.Context, tx *entity.Transaction) (bool, error)

	// Transition writes the status, receipt, phone, message and updated_at of tx
	// only if the stored status still equals from. Returns false when the row had
	// already moved on, which callers treat as an idempotent no-op.
	Transition(ctx context.Context, tx *entity.Transaction, from entity.TransactionStatus) (bool, error)

	// ListStalePending returns up to limit PENDING transactions created before cutoff, oldest first
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error)

	// ListByCreator returns the most recent transactions of a creator, newest first
	ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Transaction, error)

	// Totals returns the completed non-withdrawn sum and the pending sum for a creator
	Totals(ctx context.Context, creatorID uint64) (completed decimal.Decimal, pending decimal.Decimal, err error)
}
