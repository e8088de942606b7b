package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/mocks/memory"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/tip-processor/mocks/port/persistence"
)

func TestCreateDefaultCreators_SkipsExisting(t *testing.T) {
	store := memory.NewStore()
	store.AddCreator(2, "Already here", "254711111111")

	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	ctx := context.Background()
	created, err := CreateDefaultCreators(ctx, store.GetCreatorRepository(ctx), clock)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	existing, err := store.GetCreatorRepository(ctx).GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Already here", existing.Name)

	// Second run is a no-op
	created, err = CreateDefaultCreators(ctx, store.GetCreatorRepository(ctx), clock)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestCreateDefaultCreators_StopsOnStorageError(t *testing.T) {
	repo := mockpersistence.NewMockCreatorRepository(t)
	repo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errors.Join(errs.ErrStorage, errors.New("conn lost"))).Once()

	created, err := CreateDefaultCreators(context.Background(), repo, mockcore.NewMockTimeProvider(t))
	assert.ErrorIs(t, err, errs.ErrStorage)
	assert.Zero(t, created)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
