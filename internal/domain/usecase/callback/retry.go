package callback

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

// RetryPolicy bounds how long a webhook waits for its record to become visible.
// A callback can arrive before the initiating request has stored the correlation id.
type RetryPolicy struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	BackoffFactor float64
}

// DefaultRetryPolicy waits 1s then 2s before giving up
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		InitialDelay:  time.Second,
		BackoffFactor: 2,
	}
}

// Resolve calls lookup until it succeeds, fails with a non-retryable error or the
// attempts run out. Not-found and storage errors are retried.
func Resolve[T any](ctx context.Context, policy RetryPolicy, lookup func(ctx context.Context) (T, error)) (T, int, error) {
	var (
		zero    T
		lastErr error
	)

	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := policy.InitialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		found, err := lookup(ctx)
		if err == nil {
			return found, attempt, nil
		}
		lastErr = err

		if !retryable(err) || attempt == attempts {
			return zero, attempt, lastErr
		}

		if err := sleep(ctx, delay); err != nil {
			return zero, attempt, err
		}
		delay = time.Duration(float64(delay) * policy.BackoffFactor)
	}

	return zero, attempts, lastErr
}

func retryable(err error) bool {
	return errs.IsNotFoundError(err) || errs.IsStorageError(err)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
