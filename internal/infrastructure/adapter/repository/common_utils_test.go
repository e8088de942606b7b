package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

func pgError(code, constraint string) error {
	return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, ConstraintName: constraint, Message: "boom"})
}

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"not found", gorm.ErrRecordNotFound, NotFoundError},
		{"unique", pgError("23505", "idx_transactions_gateway_request_id"), DuplicateKeyError},
		{"serialization", pgError("40001", ""), LockError},
		{"deadlock", pgError("40P01", ""), LockError},
		{"foreign key", pgError("23503", "fk_transactions_creator"), ConstraintError},
		{"connection", errors.New("dial tcp: connection refused"), ConnectionError},
		{"unknown", errors.New("syntax error at or near"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_IsTransientError(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsTransientError(pgError("40001", "")))
	assert.True(t, c.IsTransientError(pgError("40P01", "")))
	assert.True(t, c.IsTransientError(errors.New("read: connection reset by peer")))
	assert.False(t, c.IsTransientError(pgError("23505", "")))
	assert.False(t, c.IsTransientError(context.Canceled))
	assert.False(t, c.IsTransientError(nil))
}

func TestErrorClassifier_IsRequestIDConflict(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsRequestIDConflict(pgError("23505", "idx_withdrawals_gateway_request_id")))
	assert.False(t, c.IsRequestIDConflict(pgError("23505", "creators_pkey")))
	assert.False(t, c.IsRequestIDConflict(pgError("23503", "idx_withdrawals_gateway_request_id")))
}

func TestStorageError_KeepsDriverError(t *testing.T) {
	cause := pgError("40001", "")
	err := storageError("updating transaction status", cause)

	assert.ErrorIs(t, err, errs.ErrStorage)
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "40001", pgErr.Code)
	assert.True(t, NewErrorClassifier().IsTransientError(err))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, clampLimit(0, 50, 500))
	assert.Equal(t, 50, clampLimit(-3, 50, 500))
	assert.Equal(t, 10, clampLimit(10, 50, 500))
	assert.Equal(t, 500, clampLimit(9000, 50, 500))
}
