package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

func addPendingAt(f *fixture, createdAt time.Time) *entity.Transaction {
	return f.store.AddTransaction(&entity.Transaction{
		CreatorID:  creatorID,
		Amount:     decimal.NewFromInt(20),
		Status:     entity.StatusPending,
		PayerPhone: "254712345678",
		PayerName:  entity.DefaultPayerName,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	})
}

func TestService_TimeoutStale(t *testing.T) {
	ctx := context.Background()

	t.Run("should time out only rows older than the window", func(t *testing.T) {
		f := newFixture(t)
		old := []*entity.Transaction{
			addPendingAt(f, fixedTime.Add(-3*time.Hour)),
			addPendingAt(f, fixedTime.Add(-2*time.Hour)),
			addPendingAt(f, fixedTime.Add(-61*time.Minute)),
		}
		fresh := addPendingAt(f, fixedTime.Add(-59*time.Minute))
		boundary := addPendingAt(f, fixedTime.Add(-time.Hour))
		done := f.store.AddCompletedTip(creatorID, "5.00", fixedTime.Add(-5*time.Hour))

		n, err := f.svc.TimeoutStale(ctx, time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		for _, tx := range old {
			assert.Equal(t, entity.StatusTimeout, f.store.Transaction(tx.ID).Status)
		}
		assert.Equal(t, entity.StatusPending, f.store.Transaction(fresh.ID).Status)
		assert.Equal(t, entity.StatusPending, f.store.Transaction(boundary.ID).Status)
		assert.Equal(t, entity.StatusCompleted, f.store.Transaction(done.ID).Status)

		assert.Equal(t, 3, f.publisher.Count(entity.EventTipStatus))
		f.metrics.AssertCalled(t, "AddSwept", 3)
	})

	t.Run("should do nothing when nothing is stale", func(t *testing.T) {
		f := newFixture(t)
		addPendingAt(f, fixedTime.Add(-time.Minute))

		n, err := f.svc.TimeoutStale(ctx, time.Hour)

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, f.publisher.Events())
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		f := newFixture(t)
		tx := addPendingAt(f, fixedTime.Add(-2*time.Hour))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		n, err := f.svc.TimeoutStale(cancelled, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, n)
		assert.Equal(t, entity.StatusPending, f.store.Transaction(tx.ID).Status)
	})
}
