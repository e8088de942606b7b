package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

const (
	defaultPoolCheckInterval = 30 * time.Second
	defaultPoolPressure      = 0.8
)

// PoolStatser is the part of *sql.DB the watcher reads
type PoolStatser interface {
	Stats() sql.DBStats
}

// PoolWatcher warns when callback and sweep traffic is about to exhaust the pool.
// Gauges for the same figures are exported by the metrics adapter; this only logs.
type PoolWatcher struct {
	pool      PoolStatser
	logger    coreport.Logger
	interval  time.Duration
	threshold float64

	mu        sync.Mutex
	lastWaits int64
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewPoolWatcher creates a watcher; threshold is the in-use fraction that triggers a warning
func NewPoolWatcher(pool PoolStatser, logger coreport.Logger, interval time.Duration, threshold float64) *PoolWatcher {
	if interval <= 0 {
		interval = defaultPoolCheckInterval
	}
	if threshold <= 0 || threshold > 1 {
		threshold = defaultPoolPressure
	}
	return &PoolWatcher{
		pool:      pool,
		logger:    logger,
		interval:  interval,
		threshold: threshold,
	}
}

// Check inspects the pool once and reports whether it is under pressure
func (w *PoolWatcher) Check() bool {
	stats := w.pool.Stats()

	w.mu.Lock()
	newWaits := stats.WaitCount - w.lastWaits
	w.lastWaits = stats.WaitCount
	w.mu.Unlock()

	if stats.MaxOpenConnections <= 0 {
		return false
	}
	if float64(stats.InUse) < float64(stats.MaxOpenConnections)*w.threshold && newWaits == 0 {
		return false
	}

	w.logger.Warn("Database connection pool under pressure", map[string]any{
		"in_use":    stats.InUse,
		"idle":      stats.Idle,
		"max_open":  stats.MaxOpenConnections,
		"new_waits": newWaits,
		"wait_time": stats.WaitDuration.String(),
	})
	return true
}

// Start runs Check every interval until Stop or ctx is done
func (w *PoolWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.Check()
			case <-ctx.Done():
				return
			}
		}
	}(w.done)
}

// Stop halts the watcher and waits for its goroutine
func (w *PoolWatcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
