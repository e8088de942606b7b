package withdrawal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/tip-processor/mocks/memory"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/tip-processor/mocks/port/gateway"
)

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

const (
	creatorID    = uint64(7)
	creatorPhone = "254700000007"
)

type fixture struct {
	store   *memory.Store
	gateway *mockgateway.MockClient
	metrics *mockcore.MockMetrics
	uc      *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	store.AddCreator(creatorID, "Creator", creatorPhone)

	gw := mockgateway.NewMockClient(t)
	metrics := mockcore.NewPermissiveMetrics()

	uc := NewWithdrawalUseCase(
		store,
		gw,
		mockcore.NewFixedTimeProvider(fixedTime),
		mockcore.NewPermissiveLogger(),
		metrics,
		Config{MaxAmount: decimal.NewFromInt(150000), Remarks: "Withdrawal Payment"},
	)

	return &fixture{store: store, gateway: gw, metrics: metrics, uc: uc}
}
