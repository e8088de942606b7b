package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(tx *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:               tx.ID,
		CreatorID:        tx.CreatorID,
		Amount:           tx.Amount,
		Status:           string(tx.Status),
		GatewayReceipt:   tx.GatewayReceipt,
		GatewayRequestID: tx.GatewayRequestID,
		PayerPhone:       tx.PayerPhone,
		PayerName:        tx.PayerName,
		Message:          tx.Message,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
		Withdrawn:        tx.Withdrawn,
		WithdrawalID:     tx.WithdrawalID,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		Amount:           m.Amount,
		Status:           entity.TransactionStatus(m.Status),
		GatewayReceipt:   m.GatewayReceipt,
		GatewayRequestID: m.GatewayRequestID,
		PayerPhone:       m.PayerPhone,
		PayerName:        m.PayerName,
		Message:          m.Message,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Withdrawn:        m.Withdrawn,
		WithdrawalID:     m.WithdrawalID,
	}
}

func (r *TransactionRepository) modelsToEntities(models []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		out = append(out, r.modelToEntity(&models[i]))
	}
	return out
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	switch {
	case r.errorClassifier.Classify(err) == NotFoundError:
		return errs.ErrTransactionNotFound
	case r.errorClassifier.IsForeignKeyError(err):
		return errs.ErrCreatorNotFound
	case r.errorClassifier.IsRequestIDConflict(err):
		r.logger.Warn("Gateway request id already used by another transaction", fields)
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

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	m := r.entityToModel(tx)

	if err := r.db.WithContext(ctx).Omit("Creator").Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, map[string]any{
			"creator_id": tx.CreatorID,
		})
	}

	tx.ID = m.ID
	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": m.ID,
		"creator_id":     m.CreatorID,
	})
	return nil
}

// GetByID retrieves a transaction by its primary key
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var m model.Transaction
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, map[string]any{"transaction_id": id})
	}
	return r.modelToEntity(&m), nil
}

// GetByRequestID retrieves a transaction by its CheckoutRequestID
func (r *TransactionRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).
		Where("gateway_request_id = ?", requestID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting transaction by request id", err, map[string]any{"request_id": requestID})
	}
	return r.modelToEntity(&m), nil
}

// SetRequestID stores the request id only when the row has none yet
func (r *TransactionRepository) SetRequestID(ctx context.Context, tx *entity.Transaction) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND gateway_request_id IS NULL", tx.ID).
		Updates(map[string]any{
			"gateway_request_id": tx.GatewayRequestID,
			"updated_at":         tx.UpdatedAt,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("binding request id", result.Error, map[string]any{
			"transaction_id": tx.ID,
			"request_id":     tx.RequestID(),
		})
	}
	return result.RowsAffected == 1, nil
}

// Transition performs a compare-and-set on status
func (r *TransactionRepository) Transition(ctx context.Context, tx *entity.Transaction, from entity.TransactionStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", tx.ID, string(from)).
		Updates(map[string]any{
			"status":          string(tx.Status),
			"gateway_receipt": tx.GatewayReceipt,
			"payer_phone":     tx.PayerPhone,
			"message":         tx.Message,
			"updated_at":      tx.UpdatedAt,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("updating transaction status", result.Error, map[string]any{
			"transaction_id": tx.ID,
			"from":           from,
			"to":             tx.Status,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Transaction status already moved on", map[string]any{
			"transaction_id": tx.ID,
			"expected":       from,
		})
		return false, nil
	}
	return true, nil
}

// ListStalePending returns the oldest pending transactions created before cutoff
func (r *TransactionRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entity.StatusPending), cutoff).
		Order("created_at ASC, id ASC").
		Limit(clampLimit(limit, defaultListLimit, maxListLimit)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing stale transactions", err, map[string]any{"cutoff": cutoff})
	}
	return r.modelsToEntities(models), nil
}

// ListByCreator returns a creator's most recent transactions
func (r *TransactionRepository) ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC, id DESC").
		Limit(clampLimit(limit, defaultListLimit, maxListLimit)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, map[string]any{"creator_id": creatorID})
	}
	return r.modelsToEntities(models), nil
}

type totalsRow struct {
	Completed decimal.Decimal
	Pending   decimal.Decimal
}

// Totals sums completed non-withdrawn and pending tips for a creator
func (r *TransactionRepository) Totals(ctx context.Context, creatorID uint64) (decimal.Decimal, decimal.Decimal, error) {
	var row totalsRow
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE status = ? AND NOT withdrawn), 0) AS completed, "+
				"COALESCE(SUM(amount) FILTER (WHERE status = ?), 0) AS pending",
			string(entity.StatusCompleted), string(entity.StatusPending),
		).
		Where("creator_id = ?", creatorID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, r.handleDatabaseError("summing transactions", err, map[string]any{"creator_id": creatorID})
	}
	return row.Completed, row.Pending, nil
}
