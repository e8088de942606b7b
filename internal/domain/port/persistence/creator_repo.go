package persistence

import (
	"context"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

// CreatorRepository is the read side of the creator collaborator.
// Account management lives outside this service.
type CreatorRepository interface {
	// GetByID retrieves a creator by ID
	//
	// Possible errors:
	// - ErrCreatorNotFound: If creator with specified ID doesn't exist
	// - ErrStorage: If the database operation fails
	GetByID(ctx context.Context, id uint64) (*entity.Creator, error)

	// LockByID reads the creator row with an exclusive row lock held until the
	// surrounding unit of work ends. Serialises balance-affecting sequences per creator.
	//
	// Possible errors:
	// - ErrCreatorNotFound: If creator with specified ID doesn't exist
	// - ErrStorage: If the database operation fails
	LockByID(ctx context.Context, id uint64) (*entity.Creator, error)

	// Create inserts a creator; used for seeding development databases
	Create(ctx context.Context, creator *entity.Creator) error
}
