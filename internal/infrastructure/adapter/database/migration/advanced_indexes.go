package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDef struct {
	name string
	sql  string
}

var requiredIndexes = []indexDef{
	{
		// A CheckoutRequestID identifies at most one tip
		name: "idx_transactions_gateway_request_id",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_gateway_request_id
			ON transactions (gateway_request_id) WHERE gateway_request_id IS NOT NULL`,
	},
	{
		// A ConversationID identifies at most one payout
		name: "idx_withdrawals_gateway_request_id",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_withdrawals_gateway_request_id
			ON withdrawals (gateway_request_id) WHERE gateway_request_id IS NOT NULL`,
	},
	{
		// A gateway receipt settles exactly one tip
		name: "idx_transactions_gateway_receipt",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_gateway_receipt
			ON transactions (gateway_receipt) WHERE gateway_receipt IS NOT NULL`,
	},
	{
		name: "idx_transactions_pending_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_pending_created
			ON transactions (created_at) WHERE status = 'pending'`,
	},
	{
		name: "idx_transactions_creator_balance",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_creator_balance
			ON transactions (creator_id, status) WHERE NOT withdrawn`,
	},
	{
		name: "idx_withdrawals_creator_status",
		sql: `CREATE INDEX IF NOT EXISTS idx_withdrawals_creator_status
			ON withdrawals (creator_id, status)`,
	},
}

// CreateAdvancedIndexes creates partial and composite indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(db *gorm.DB) error {
	if db == nil {
		db = m.db
	}
	m.logger.Info("Creating PostgreSQL indexes", map[string]any{"count": len(requiredIndexes)})

	for _, idx := range requiredIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}

// CreatePerformanceTweaks applies PostgreSQL tweaks; failures are logged only
func (m *AdvancedIndexManager) CreatePerformanceTweaks(db *gorm.DB) {
	if db == nil {
		db = m.db
	}

	// Status updates rewrite rows in place
	if err := db.Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN creator_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for creator_id", map[string]any{
			"error": err.Error(),
		})
	}
}
