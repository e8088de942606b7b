package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction, committing on success and rolling back
	// on error or panic. Transient failures (deadlock, serialization) are retried.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// GetCreatorRepository returns a creator repository bound to the current transaction
	GetCreatorRepository(ctx context.Context) CreatorRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetWithdrawalRepository returns a withdrawal repository bound to the current transaction
	GetWithdrawalRepository(ctx context.Context) WithdrawalRepository
}
