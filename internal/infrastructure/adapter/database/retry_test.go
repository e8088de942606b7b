package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/repository"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func serializationFailure() error {
	return fmt.Errorf("%w: commit: %w", errs.ErrStorage, &pgconn.PgError{Code: "40001"})
}

func TestRetryOnTransientError_RetriesSerializationFailures(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
		calls++
		if calls < 3 {
			return serializationFailure()
		}
		return nil
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_GivesUp(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
		calls++
		return serializationFailure()
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, errs.ErrStorage)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_DoesNotRetryDomainErrors(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
		calls++
		return errs.ErrInsufficientBalance
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastRetry()
	cfg.RetryInterval = time.Hour
	cfg.MaxInterval = time.Hour

	calls := 0
	err := RetryOnTransientError(ctx, cfg, func() error {
		calls++
		cancel()
		return serializationFailure()
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, calls)
}

func TestCalculateBackoffWithJitter_Capped(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, cfg))
	assert.Equal(t, 300*time.Millisecond, calculateBackoffWithJitter(5, cfg))
}

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	assert.Nil(t, m.MapError(nil, "commit"))
	assert.Equal(t, errs.ErrCreatorNotFound, m.MapError(errs.ErrCreatorNotFound, "commit"))

	mapped := m.MapError(&pgconn.PgError{Code: "40P01"}, "commit")
	assert.ErrorIs(t, mapped, errs.ErrStorage)
	assert.True(t, m.Classifier().IsTransientError(mapped))
}
