// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

const (
	DefaultSweepInterval = 5 * time.Minute
	DefaultSweepWindow   = time.Hour
)

// StaleTimeouter moves old pending records to a terminal state
type StaleTimeouter interface {
	TimeoutStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// Sweeper times out stale pending tips on a fixed interval
type Sweeper struct {
	target   StaleTimeouter
	interval time.Duration
	window   time.Duration
	logger   coreport.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewSweeper creates a sweeper; non-positive durations fall back to the defaults
func NewSweeper(target StaleTimeouter, interval, window time.Duration, logger coreport.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if window <= 0 {
		window = DefaultSweepWindow
	}
	return &Sweeper{
		target:   target,
		interval: interval,
		window:   window,
		logger:   logger,
	}
}

// Start runs sweeps until ctx is done or Stop is called. The first sweep
// happens after one interval.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	s.logger.Info("Stale transaction sweeper started", map[string]any{
		"interval": s.interval.String(),
		"window":   s.window.String(),
	})

	go s.loop(ctx, s.done)
}

func (s *Sweeper) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and returns how many records were timed out
func (s *Sweeper) RunOnce(ctx context.Context) int {
	n, err := s.target.TimeoutStale(ctx, s.window)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("Stale transaction sweep failed", map[string]any{
			"timed_out": n,
			"error":     err.Error(),
		})
	}
	return n
}

// Stop cancels the loop and waits for an in-flight sweep to return
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
	s.logger.Info("Stale transaction sweeper stopped", nil)
}
