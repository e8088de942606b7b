package database

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
)

type fakePool struct {
	mu    sync.Mutex
	stats sql.DBStats
}

func (f *fakePool) Stats() sql.DBStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

func (f *fakePool) set(stats sql.DBStats) {
	f.mu.Lock()
	f.stats = stats
	f.mu.Unlock()
}

func TestPoolWatcher_Check(t *testing.T) {
	t.Run("idle pool is quiet", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		pool := &fakePool{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 2, Idle: 3}}

		w := NewPoolWatcher(pool, logger, time.Second, 0.8)

		assert.False(t, w.Check())
		logger.AssertNotCalled(t, "Warn", mock.Anything, mock.Anything)
	})

	t.Run("in-use above threshold warns", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		logger.EXPECT().Warn("Database connection pool under pressure", mock.MatchedBy(func(f map[string]any) bool {
			return f["in_use"] == 9 && f["max_open"] == 10
		})).Once()
		pool := &fakePool{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 9}}

		w := NewPoolWatcher(pool, logger, time.Second, 0.8)

		assert.True(t, w.Check())
	})

	t.Run("only new waits count", func(t *testing.T) {
		logger := mockcore.NewPermissiveLogger()
		pool := &fakePool{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 1, WaitCount: 4}}

		w := NewPoolWatcher(pool, logger, time.Second, 0.8)

		assert.True(t, w.Check())
		assert.False(t, w.Check())

		pool.set(sql.DBStats{MaxOpenConnections: 10, InUse: 1, WaitCount: 5})
		assert.True(t, w.Check())
	})

	t.Run("unbounded pool never warns", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		pool := &fakePool{stats: sql.DBStats{InUse: 50}}

		w := NewPoolWatcher(pool, logger, time.Second, 0.8)

		assert.False(t, w.Check())
	})
}

func TestNewPoolWatcher_Defaults(t *testing.T) {
	w := NewPoolWatcher(&fakePool{}, mockcore.NewPermissiveLogger(), 0, 3)

	assert.Equal(t, defaultPoolCheckInterval, w.interval)
	assert.Equal(t, defaultPoolPressure, w.threshold)
}

func TestPoolWatcher_StartStop(t *testing.T) {
	var warnings atomic.Int32
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Run(func(string, map[string]any) {
		warnings.Add(1)
	})
	pool := &fakePool{stats: sql.DBStats{MaxOpenConnections: 1, InUse: 1}}

	w := NewPoolWatcher(pool, logger, time.Millisecond, 0.5)
	w.Start(context.Background())
	w.Start(context.Background())

	assert.Eventually(t, func() bool {
		return warnings.Load() > 0
	}, time.Second, 5*time.Millisecond)

	w.Stop()
	w.Stop()
}
