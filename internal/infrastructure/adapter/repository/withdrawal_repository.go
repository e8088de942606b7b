package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/model"
)

// WithdrawalRepository implements WithdrawalRepository interface using GORM
type WithdrawalRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWithdrawalRepository creates a new WithdrawalRepository instance
func NewWithdrawalRepository(db *gorm.DB, logger coreport.Logger) *WithdrawalRepository {
	return &WithdrawalRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WithdrawalRepository) entityToModel(w *entity.Withdrawal) model.Withdrawal {
	return model.Withdrawal{
		ID:               w.ID,
		CreatorID:        w.CreatorID,
		Amount:           w.Amount,
		PhoneNumber:      w.PhoneNumber,
		Status:           string(w.Status),
		GatewayReceipt:   w.GatewayReceipt,
		GatewayRequestID: w.GatewayRequestID,
		FailureReason:    w.FailureReason,
		CreatedAt:        w.CreatedAt,
		CompletedAt:      w.CompletedAt,
	}
}

func (r *WithdrawalRepository) modelToEntity(m *model.Withdrawal) *entity.Withdrawal {
	return &entity.Withdrawal{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		Amount:           m.Amount,
		PhoneNumber:      m.PhoneNumber,
		Status:           entity.WithdrawalStatus(m.Status),
		GatewayReceipt:   m.GatewayReceipt,
		GatewayRequestID: m.GatewayRequestID,
		FailureReason:    m.FailureReason,
		CreatedAt:        m.CreatedAt,
		CompletedAt:      m.CompletedAt,
	}
}

func (r *WithdrawalRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	switch {
	case r.errorClassifier.Classify(err) == NotFoundError:
		return errs.ErrWithdrawalNotFound
	case r.errorClassifier.IsForeignKeyError(err):
		return errs.ErrCreatorNotFound
	case r.errorClassifier.IsRequestIDConflict(err):
		r.logger.Warn("Conversation id already used by another withdrawal", fields)
		return errs.ErrCorrelationConflict
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["error_type"] = r.errorClassifier.Classify(err)
	r.logger.Error("Database error when "+operation, fields)
	return storageError(operation, err)
}

// Create saves a new withdrawal
func (r *WithdrawalRepository) Create(ctx context.Context, w *entity.Withdrawal) error {
	m := r.entityToModel(w)

	if err := r.db.WithContext(ctx).Omit("Creator").Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating withdrawal", err, map[string]any{"creator_id": w.CreatorID})
	}

	w.ID = m.ID
	return nil
}

// GetByID retrieves a withdrawal by its primary key
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uint64) (*entity.Withdrawal, error) {
	var m model.Withdrawal
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting withdrawal", err, map[string]any{"withdrawal_id": id})
	}
	return r.modelToEntity(&m), nil
}

// GetByRequestID retrieves a withdrawal by its ConversationID
func (r *WithdrawalRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.Withdrawal, error) {
	var m model.Withdrawal
	err := r.db.WithContext(ctx).
		Where("gateway_request_id = ?", requestID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting withdrawal by conversation id", err, map[string]any{"conversation_id": requestID})
	}
	return r.modelToEntity(&m), nil
}

// SetRequestID stores the ConversationID only when the row has none yet
func (r *WithdrawalRepository) SetRequestID(ctx context.Context, w *entity.Withdrawal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Withdrawal{}).
		Where("id = ? AND gateway_request_id IS NULL", w.ID).
		Update("gateway_request_id", w.GatewayRequestID)
	if result.Error != nil {
		return false, r.handleDatabaseError("binding conversation id", result.Error, map[string]any{
			"withdrawal_id":   w.ID,
			"conversation_id": w.RequestID(),
		})
	}
	return result.RowsAffected == 1, nil
}

// Transition performs a compare-and-set on status
func (r *WithdrawalRepository) Transition(ctx context.Context, w *entity.Withdrawal, from entity.WithdrawalStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Withdrawal{}).
		Where("id = ? AND status = ?", w.ID, string(from)).
		Updates(map[string]any{
			"status":          string(w.Status),
			"gateway_receipt": w.GatewayReceipt,
			"failure_reason":  w.FailureReason,
			"completed_at":    w.CompletedAt,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("updating withdrawal status", result.Error, map[string]any{
			"withdrawal_id": w.ID,
			"from":          from,
			"to":            w.Status,
		})
	}
	return result.RowsAffected == 1, nil
}

// ListByCreator returns a creator's most recent withdrawals
func (r *WithdrawalRepository) ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Withdrawal, error) {
	var models []model.Withdrawal
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC, id DESC").
		Limit(clampLimit(limit, defaultListLimit, maxListLimit)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing withdrawals", err, map[string]any{"creator_id": creatorID})
	}

	out := make([]*entity.Withdrawal, 0, len(models))
	for i := range models {
		out = append(out, r.modelToEntity(&models[i]))
	}
	return out, nil
}

// Totals sums completed and pending withdrawals for a creator
func (r *WithdrawalRepository) Totals(ctx context.Context, creatorID uint64) (decimal.Decimal, decimal.Decimal, error) {
	var row totalsRow
	err := r.db.WithContext(ctx).Model(&model.Withdrawal{}).
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE status = ?), 0) AS completed, "+
				"COALESCE(SUM(amount) FILTER (WHERE status = ?), 0) AS pending",
			string(entity.WithdrawalCompleted), string(entity.WithdrawalPending),
		).
		Where("creator_id = ?", creatorID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, r.handleDatabaseError("summing withdrawals", err, map[string]any{"creator_id": creatorID})
	}
	return row.Completed, row.Pending, nil
}
