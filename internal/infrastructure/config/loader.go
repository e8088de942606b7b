package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "TP"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s.yaml found, using defaults and environment\n", env)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	return decode(v, env)
}

// LoadFromViper decodes an already populated viper instance; used by tests
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 0)       // seconds; 0 keeps SSE streams open
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.isolationLevel", "read_committed")
	v.SetDefault("database.seedCreators", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("mpesa.environment", "sandbox")
	v.SetDefault("mpesa.simulate", false)
	v.SetDefault("mpesa.authTimeout", 10)     // seconds
	v.SetDefault("mpesa.requestTimeout", 30)  // seconds
	v.SetDefault("mpesa.callbackTimeout", 5)  // seconds
	v.SetDefault("mpesa.maxRetries", 2)       // additional attempts
	v.SetDefault("mpesa.retryDelay", 1000)    // milliseconds
	v.SetDefault("mpesa.simulatorWorkers", 4) // sandbox callback delivery

	v.SetDefault("payments.minAmount", "0") // 0 disables the floor
	v.SetDefault("payments.maxAmount", "70000")

	v.SetDefault("withdrawal.maxAmount", "150000")
	v.SetDefault("withdrawal.remarks", "Withdrawal Payment")
	v.SetDefault("withdrawal.allowReprocess", false)

	v.SetDefault("callback.retryAttempts", 3)
	v.SetDefault("callback.retryDelay", 1000) // milliseconds
	v.SetDefault("callback.backoffFactor", 2.0)

	v.SetDefault("sweeper.enabled", true)
	v.SetDefault("sweeper.interval", 300) // seconds
	v.SetDefault("sweeper.window", 60)    // minutes
	v.SetDefault("sweeper.batchSize", 100)

	v.SetDefault("notifier.bufferSize", 16)
	v.SetDefault("notifier.heartbeat", 25) // seconds

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "tip_processor")
}

// getEnvironment determines the environment to use based on TP_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps flat, conventional variable names onto config keys.
// AutomaticEnv covers TP_SECTION_KEY forms; these cover the names deploy tooling uses.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"TP_DB_HOST":                   "database.host",
		"TP_DB_PORT":                   "database.port",
		"TP_DB_USERNAME":               "database.username",
		"TP_DB_PASSWORD":               "database.password",
		"TP_DB_NAME":                   "database.database",
		"TP_DB_SSL_MODE":               "database.sslMode",
		"TP_SERVER_HOST":               "server.host",
		"TP_LOGGER_LEVEL":              "logger.level",
		"TP_MPESA_ENVIRONMENT":         "mpesa.environment",
		"TP_MPESA_BASE_URL":            "mpesa.baseURL",
		"TP_MPESA_CONSUMER_KEY":        "mpesa.consumerKey",
		"TP_MPESA_CONSUMER_SECRET":     "mpesa.consumerSecret",
		"TP_MPESA_SHORTCODE":           "mpesa.shortCode",
		"TP_MPESA_PASSKEY":             "mpesa.passkey",
		"TP_MPESA_B2C_SHORTCODE":       "mpesa.b2cShortCode",
		"TP_MPESA_INITIATOR_NAME":      "mpesa.initiatorName",
		"TP_MPESA_SECURITY_CREDENTIAL": "mpesa.securityCredential",
		"TP_MPESA_CALLBACK_BASE_URL":   "mpesa.callbackBaseURL",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"TP_SERVER_PORT":           "server.port",
		"TP_DB_MAX_OPEN_CONNS":     "database.maxOpenConns",
		"TP_DB_MAX_IDLE_CONNS":     "database.maxIdleConns",
		"TP_DB_RETRY_ATTEMPTS":     "database.retryAttempts",
		"TP_SWEEPER_INTERVAL_SECS": "sweeper.interval",
		"TP_SWEEPER_WINDOW_MINS":   "sweeper.window",
	}
	for env, key := range intOverrides {
		if val := getEnvInt(env, -1); val >= 0 {
			v.Set(key, val)
		}
	}

	if simulate := os.Getenv("TP_MPESA_SIMULATE"); simulate != "" {
		if b, err := strconv.ParseBool(simulate); err == nil {
			v.Set("mpesa.simulate", b)
		}
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw unit counts
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Mpesa.AuthTimeout = time.Duration(config.Mpesa.AuthTimeout) * time.Second
	config.Mpesa.RequestTimeout = time.Duration(config.Mpesa.RequestTimeout) * time.Second
	config.Mpesa.CallbackTimeout = time.Duration(config.Mpesa.CallbackTimeout) * time.Second
	config.Mpesa.RetryDelay = time.Duration(config.Mpesa.RetryDelay) * time.Millisecond

	config.Callback.RetryDelay = time.Duration(config.Callback.RetryDelay) * time.Millisecond

	config.Sweeper.Interval = time.Duration(config.Sweeper.Interval) * time.Second
	config.Sweeper.Window = time.Duration(config.Sweeper.Window) * time.Minute

	config.Notifier.Heartbeat = time.Duration(config.Notifier.Heartbeat) * time.Second
}
