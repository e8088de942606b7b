package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

var errNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	isolation   sql.IsolationLevel
	retry       RetryConfig
	errorMapper *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, isolation sql.IsolationLevel, retry RetryConfig) persistence.UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		isolation:   isolation,
		retry:       retry,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{"isolation": u.isolation.String()})

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errNoTransaction
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errNoTransaction
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && (errors.Is(err, sql.ErrTxDone) || errors.Is(err, gorm.ErrInvalidTransaction) || strings.Contains(err.Error(), "already been committed or rolled back")) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Execute runs fn in a transaction and retries the whole unit on serialization
// failures and deadlocks. A context already carrying a transaction joins it.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retry, func() error {
		return u.executeOnce(ctx, fn)
	}, u.errorMapper.Classifier(), u.logger)
}

func (u *UnitOfWork) executeOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(txCtx)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failed unit of work also failed", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetCreatorRepository returns a creator repository in the current transaction
func (u *UnitOfWork) GetCreatorRepository(ctx context.Context) persistence.CreatorRepository {
	return repository.NewCreatorRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWithdrawalRepository returns a withdrawal repository in the current transaction
func (u *UnitOfWork) GetWithdrawalRepository(ctx context.Context) persistence.WithdrawalRepository {
	return repository.NewWithdrawalRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
