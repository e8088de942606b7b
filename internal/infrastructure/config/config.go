package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Mpesa       MpesaConfig      `mapstructure:"mpesa"`
	Payments    PaymentsConfig   `mapstructure:"payments"`
	Withdrawal  WithdrawalConfig `mapstructure:"withdrawal"`
	Callback    CallbackConfig   `mapstructure:"callback"`
	Sweeper     SweeperConfig    `mapstructure:"sweeper"`
	Notifier    NotifierConfig   `mapstructure:"notifier"`
	Metrics     MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	SeedCreators    bool          `mapstructure:"seedCreators"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// MpesaConfig contains gateway credentials and transport settings
type MpesaConfig struct {
	Environment        string        `mapstructure:"environment"` // sandbox or production
	BaseURL            string        `mapstructure:"baseURL"`     // overrides the environment default
	Simulate           bool          `mapstructure:"simulate"`    // synthetic transport, no network
	ConsumerKey        string        `mapstructure:"consumerKey"`
	ConsumerSecret     string        `mapstructure:"consumerSecret"`
	ShortCode          string        `mapstructure:"shortCode"`
	Passkey            string        `mapstructure:"passkey"`
	B2CShortCode       string        `mapstructure:"b2cShortCode"`
	InitiatorName      string        `mapstructure:"initiatorName"`
	SecurityCredential string        `mapstructure:"securityCredential"`
	CallbackBaseURL    string        `mapstructure:"callbackBaseURL"`
	AuthTimeout        time.Duration `mapstructure:"authTimeout"`     // seconds
	RequestTimeout     time.Duration `mapstructure:"requestTimeout"`  // seconds
	CallbackTimeout    time.Duration `mapstructure:"callbackTimeout"` // seconds
	MaxRetries         int           `mapstructure:"maxRetries"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"` // milliseconds
	SimulatePush       bool          `mapstructure:"simulatePushCallback"`
	SimulatorWorkers   int           `mapstructure:"simulatorWorkers"`
}

// PaymentsConfig contains tip limits
type PaymentsConfig struct {
	MinAmount string `mapstructure:"minAmount"`
	MaxAmount string `mapstructure:"maxAmount"`
}

// WithdrawalConfig contains payout settings
type WithdrawalConfig struct {
	MaxAmount      string `mapstructure:"maxAmount"`
	Remarks        string `mapstructure:"remarks"`
	AllowReprocess bool   `mapstructure:"allowReprocess"`
}

// CallbackConfig contains the correlation retry policy
type CallbackConfig struct {
	RetryAttempts int           `mapstructure:"retryAttempts"`
	RetryDelay    time.Duration `mapstructure:"retryDelay"` // milliseconds
	BackoffFactor float64       `mapstructure:"backoffFactor"`
}

// SweeperConfig contains the stale transaction sweep schedule
type SweeperConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"` // seconds
	Window    time.Duration `mapstructure:"window"`   // minutes
	BatchSize int           `mapstructure:"batchSize"`
}

// NotifierConfig contains live event settings
type NotifierConfig struct {
	BufferSize int           `mapstructure:"bufferSize"`
	Heartbeat  time.Duration `mapstructure:"heartbeat"` // seconds
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// CallbackURL joins the public callback base with a route path
func (m MpesaConfig) CallbackURL(path string) string {
	if m.CallbackBaseURL == "" {
		return ""
	}
	base := m.CallbackBaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + path
}
