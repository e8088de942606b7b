package transaction

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

// TimeoutStale moves every PENDING transaction created before now-olderThan to TIMEOUT.
// Individual failures are logged and skipped. Cancelling ctx stops between rows;
// rows already moved stay moved and the rest wait for the next run.
func (s *Service) TimeoutStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().Add(-olderThan)
	repo := s.uow.GetTransactionRepository(ctx)

	timedOut := 0
	failed := 0
	for {
		if err := ctx.Err(); err != nil {
			return timedOut, err
		}

		batch, err := repo.ListStalePending(ctx, cutoff, s.cfg.SweepBatchSize)
		if err != nil {
			s.logger.Error("Failed to list stale transactions", map[string]any{
				"cutoff": cutoff,
				"error":  err.Error(),
			})
			return timedOut, err
		}

		progressed := 0
		for _, tx := range batch {
			if err := ctx.Err(); err != nil {
				s.finishSweep(timedOut, failed, cutoff)
				return timedOut, err
			}

			now := s.now()
			updated, applied, err := s.transition(ctx, tx, func(t *entity.Transaction) bool {
				return t.Timeout(now)
			})
			if err != nil {
				failed++
				s.logger.Warn("Failed to time out transaction", map[string]any{
					"transaction_id": tx.ID,
					"error":          err.Error(),
				})
				continue
			}

			// a row that left PENDING concurrently still counts as progress for the batch loop
			progressed++
			if applied {
				timedOut++
				s.publishStatus(ctx, updated)
			}
		}

		// a short batch means nothing older is left; a batch with no progress
		// is made of rows that keep failing and would be listed again forever
		if len(batch) < s.cfg.SweepBatchSize || progressed == 0 {
			break
		}
	}

	s.finishSweep(timedOut, failed, cutoff)
	return timedOut, nil
}

func (s *Service) finishSweep(timedOut, failed int, cutoff time.Time) {
	s.metrics.AddSwept(timedOut)
	if timedOut > 0 || failed > 0 {
		s.logger.Info("Stale transaction sweep finished", map[string]any{
			"timed_out": timedOut,
			"failed":    failed,
			"cutoff":    cutoff,
		})
	}
}
