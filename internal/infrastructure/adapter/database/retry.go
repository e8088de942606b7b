package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 50 * time.Millisecond,
		MaxInterval:   time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError reruns operation while it fails with a serialization,
// deadlock or connection error. Any other error is returned immediately.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	classifier *repository.ErrorClassifier,
	logger coreport.Logger,
) error {
	var err error
	attempts := config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !classifier.IsTransientError(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * (float64(time.Now().UnixNano()%100) / 100.0))
		backoff += jitter
	}

	return backoff
}
