package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	NotFoundError     ErrorType = "not_found"
)

// PostgreSQL SQLSTATE codes the repositories react to
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateCheckViolation       = "23514"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateQueryCanceled        = "57014"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConstraintError(err):
		return ConstraintError
	}

	return ""
}

// sqlState returns the PostgreSQL error code carried by err, if any
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// constraintName returns the violated constraint name carried by err, if any
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == sqlStateUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

// IsTransientError checks if an error is transient and the whole unit of work can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if c.IsLockError(err) {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return c.IsConnectionError(err)
}

// IsLockError checks if the error is due to locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if pgconn.SafeToRetry(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "unexpected eof")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateForeignKeyViolation, sqlStateCheckViolation, sqlStateUniqueViolation:
		return true
	}
	return false
}

// IsForeignKeyError checks if a referenced row is missing
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	return sqlState(err) == sqlStateForeignKeyViolation
}

// IsRequestIDConflict checks if a unique index on a gateway request id rejected the write
func (c *ErrorClassifier) IsRequestIDConflict(err error) bool {
	return c.IsDuplicateKeyError(err) && strings.Contains(constraintName(err), "request_id")
}

// storageError wraps err so callers can match ErrStorage while retries still see the driver error
func storageError(operation string, err error) error {
	if sqlState(err) == sqlStateQueryCanceled {
		return fmt.Errorf("%w: %s canceled: %w", errs.ErrStorage, operation, err)
	}
	return fmt.Errorf("%w: %s: %w", errs.ErrStorage, operation, err)
}

// clampLimit bounds list sizes requested by callers
func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
