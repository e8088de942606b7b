package migration

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	if err := m.autoMigrateModels(db); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(db, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	// Correlation and balance indexes; these carry invariants, not just speed
	if err := m.advancedIndexMgr.CreateAdvancedIndexes(db); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.advancedIndexMgr.CreatePerformanceTweaks(db)

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Tip and payout schema"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	appliedAt := time.Now().UTC()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	return db.AutoMigrate(
		&model.Creator{},
		&model.Transaction{},
		&model.Withdrawal{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(db *gorm.DB, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return m.runBaseMigrations(db)
	case "1.0.0":
		return m.migrateFrom1_0_0To1_1_0(db)
	}

	return nil
}

// runBaseMigrations adds the checks AutoMigrate cannot express
func (m *MigrationManager) runBaseMigrations(db *gorm.DB) error {
	m.logger.Info("Running base migrations", nil)

	statements := []string{
		`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS chk_transactions_status`,
		`ALTER TABLE transactions ADD CONSTRAINT chk_transactions_status
			CHECK (status IN ('pending', 'completed', 'failed', 'timeout'))`,
		`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS chk_transactions_amount`,
		`ALTER TABLE transactions ADD CONSTRAINT chk_transactions_amount CHECK (amount > 0)`,
		`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS chk_transactions_receipt`,
		`ALTER TABLE transactions ADD CONSTRAINT chk_transactions_receipt
			CHECK ((status = 'completed') = (gateway_receipt IS NOT NULL))`,
		`ALTER TABLE withdrawals DROP CONSTRAINT IF EXISTS chk_withdrawals_status`,
		`ALTER TABLE withdrawals ADD CONSTRAINT chk_withdrawals_status
			CHECK (status IN ('pending', 'completed', 'failed'))`,
		`ALTER TABLE withdrawals DROP CONSTRAINT IF EXISTS chk_withdrawals_amount`,
		`ALTER TABLE withdrawals ADD CONSTRAINT chk_withdrawals_amount CHECK (amount > 0)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// migrateFrom1_0_0To1_1_0 adds the withdrawal back-reference on tips
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(db *gorm.DB) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return db.Exec(`ALTER TABLE transactions ADD COLUMN IF NOT EXISTS withdrawal_id BIGINT`).Error
}
