package migration

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
)

// Seed creators for local development
var defaultCreators = []entity.Creator{
	{ID: 1, Name: "Demo Creator One", PhoneNumber: "254700000001"},
	{ID: 2, Name: "Demo Creator Two", PhoneNumber: "254700000002"},
	{ID: 3, Name: "Demo Creator Three", PhoneNumber: "254700000003"},
}

// CreateDefaultCreators inserts the seed creators that do not exist yet
func CreateDefaultCreators(ctx context.Context, creators persistence.CreatorRepository, timeProvider coreport.TimeProvider) (int, error) {
	created := 0
	for _, c := range defaultCreators {
		_, err := creators.GetByID(ctx, c.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrCreatorNotFound) {
			return created, err
		}

		seed := c
		seed.CreatedAt = timeProvider.Now()
		if err := creators.Create(ctx, &seed); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
