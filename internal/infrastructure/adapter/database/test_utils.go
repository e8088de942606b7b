package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/time"
)

// TestDBHostEnv must name a reachable PostgreSQL host for integration tests to run
const TestDBHostEnv = "TP_TEST_DB_HOST"

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager, skipping the test when no database is configured
func NewTestDBManager(t testing.TB, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host, ok := os.LookupEnv(TestDBHostEnv)
	if !ok || host == "" {
		t.Skipf("%s not set; skipping PostgreSQL integration test", TestDBHostEnv)
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          "postgres",
		Host:            host,
		Port:            getEnvIntOrDefault("TP_TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TP_TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TP_TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TP_TEST_DB_NAME", "tip_processor_test"),
		SSLMode:         getEnvOrDefault("TP_TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1, // fail fast
		RetryDelay:      time.Second,
		IsolationLevel:  "read_committed",
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and rebuilds the schema
func (m *TestDBManager) Connect(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := dropAllTables(db); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// dropAllTables drops all tables in the test database
func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

// CreateTestCreator inserts a creator row
func (m *TestDBManager) CreateTestCreator(t testing.TB, id uint64, phone string) {
	t.Helper()

	creator := model.Creator{
		ID:          id,
		Name:        fmt.Sprintf("creator-%d", id),
		PhoneNumber: phone,
		CreatedAt:   time.Now().UTC(),
	}
	if err := m.Manager.DB().Create(&creator).Error; err != nil {
		t.Fatalf("Failed to create test creator: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
