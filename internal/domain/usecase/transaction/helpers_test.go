package transaction

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/tip-processor/mocks/memory"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/tip-processor/mocks/port/gateway"
	mocknotifier "github.com/amirhossein-jamali/tip-processor/mocks/port/notifier"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

const creatorID = uint64(3)

type fixture struct {
	store     *memory.Store
	gateway   *mockgateway.MockClient
	publisher *mocknotifier.RecordingPublisher
	metrics   *mockcore.MockMetrics
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	store.AddCreator(creatorID, "Creator", "254700000003")

	f := &fixture{
		store:     store,
		gateway:   mockgateway.NewMockClient(t),
		publisher: &mocknotifier.RecordingPublisher{},
		metrics:   mockcore.NewPermissiveMetrics(),
	}

	cfg := DefaultConfig()
	cfg.CallbackURL = "https://example.test/payments/callback"
	cfg.SweepBatchSize = 2

	f.svc = NewTransactionService(
		store,
		f.gateway,
		f.publisher,
		mockcore.NewFixedTimeProvider(fixedTime),
		mockcore.NewPermissiveLogger(),
		f.metrics,
		cfg,
	).WithReceiptGenerator(func() string { return "PGHTEST001" })

	return f
}
