package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/model"
)

// CreatorRepository implements the creator read side using GORM
type CreatorRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreatorRepository creates a new CreatorRepository instance
func NewCreatorRepository(db *gorm.DB, logger coreport.Logger) *CreatorRepository {
	return &CreatorRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CreatorRepository) modelToEntity(m *model.Creator) *entity.Creator {
	return &entity.Creator{
		ID:          m.ID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CreatorRepository) handleDatabaseError(operation string, err error, creatorID uint64) error {
	if r.errorClassifier.Classify(err) == NotFoundError {
		r.logger.Debug("Creator not found", map[string]any{"creator_id": creatorID})
		return errs.ErrCreatorNotFound
	}

	r.logger.Error("Database error when "+operation, map[string]any{
		"creator_id": creatorID,
		"error":      err.Error(),
		"error_type": r.errorClassifier.Classify(err),
	})
	return storageError(operation, err)
}

// GetByID retrieves a creator by ID
func (r *CreatorRepository) GetByID(ctx context.Context, id uint64) (*entity.Creator, error) {
	var m model.Creator
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting creator", err, id)
	}
	return r.modelToEntity(&m), nil
}

// LockByID reads the creator row under SELECT ... FOR UPDATE.
// The lock is only meaningful inside a unit of work.
func (r *CreatorRepository) LockByID(ctx context.Context, id uint64) (*entity.Creator, error) {
	var m model.Creator
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking creator", err, id)
	}

	r.logger.Debug("Creator row locked", map[string]any{"creator_id": id})
	return r.modelToEntity(&m), nil
}

// Create inserts a creator
func (r *CreatorRepository) Create(ctx context.Context, creator *entity.Creator) error {
	m := model.Creator{
		ID:          creator.ID,
		Name:        creator.Name,
		PhoneNumber: creator.PhoneNumber,
		CreatedAt:   creator.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating creator", err, creator.ID)
	}

	creator.ID = m.ID
	r.logger.Info("Creator created", map[string]any{"creator_id": m.ID})
	return nil
}
