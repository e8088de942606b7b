package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/config"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	IsolationLevel  string // read_committed, repeatable_read or serializable
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	logLevel := conf.Logger.Level
	if conf.Environment == "production" && logLevel == "debug" {
		// SQL tracing in production leaks payer phone numbers into logs
		logLevel = "warn"
	}

	return &Config{
		Driver:          conf.Database.Driver,
		Host:            conf.Database.Host,
		Port:            ParsePort(conf.Database.Port),
		Username:        conf.Database.Username,
		Password:        conf.Database.Password,
		Database:        conf.Database.Database,
		SSLMode:         conf.Database.SSLMode,
		MaxOpenConns:    conf.Database.MaxOpenConns,
		MaxIdleConns:    conf.Database.MaxIdleConns,
		ConnMaxLifetime: conf.Database.ConnMaxLifetime,
		ConnMaxIdleTime: conf.Database.ConnMaxIdleTime,
		QueryTimeout:    conf.Database.QueryTimeout,
		LogLevel:        logLevel,
		RetryAttempts:   conf.Database.RetryAttempts,
		RetryDelay:      conf.Database.RetryDelay,
		IsolationLevel:  conf.Database.IsolationLevel,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}
	if c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if _, err := c.TxIsolation(); err != nil {
		return err
	}

	return nil
}

// TxIsolation maps the configured isolation level name to database/sql
func (c *Config) TxIsolation() (sql.IsolationLevel, error) {
	switch strings.ToLower(c.IsolationLevel) {
	case "", "read_committed":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("invalid isolation level: %s", c.IsolationLevel)
	}
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // 0 signals not set
	}
	return p
}
