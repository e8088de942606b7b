package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/database/migration"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	migrationMgr      *migration.MigrationManager
	poolWatcher       *PoolWatcher
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the pool, retrying the initial dial
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	var gormDB *gorm.DB

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger: NewStatementLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now().UTC()
			},
			PrepareStmt:            true,
			SkipDefaultTransaction: true, // units of work open their own
		})
		if err == nil {
			err = m.ping(ctx, gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":            m.config.Host,
		"name":            m.config.Database,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"isolation_level": m.config.IsolationLevel,
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.poolWatcher = NewPoolWatcher(sqlDB, m.logger, defaultPoolCheckInterval, defaultPoolPressure)
	m.poolWatcher.Start(context.WithoutCancel(ctx))

	return m.db, nil
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Ping reports whether the pool can reach the server
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	return m.ping(ctx, m.db)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying pool for stats collection
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, fmt.Errorf("database not connected")
	}
	return m.db.DB()
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.poolWatcher != nil {
		m.poolWatcher.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// CreateUnitOfWork creates a new UnitOfWork using the configured isolation level
func (m *Manager) CreateUnitOfWork() (persistence.UnitOfWork, error) {
	isolation, err := m.config.TxIsolation()
	if err != nil {
		return nil, err
	}
	return NewUnitOfWork(m.db, m.logger, isolation, DefaultRetryConfig()), nil
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
