package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  core.LogLevel
}

// Options selects encoder and verbosity
type Options struct {
	Production bool
	Level      string // debug, info, warn, error
	CallerInfo bool
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(isProduction bool) core.Logger {
	return NewZapLoggerWithOptions(Options{Production: isProduction, Level: "info", CallerInfo: true})
}

// NewZapLoggerWithOptions creates a zap logger with an explicit level
func NewZapLoggerWithOptions(opts Options) core.Logger {
	var cfg zap.Config
	if opts.Production {
		// JSON for log shipping
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo

	level := ParseLevel(opts.Level)
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		atom:   cfg.Level,
		level:  level,
	}
}

// NewDefaultLogger creates a standard logger for the application
func NewDefaultLogger() core.Logger {
	return NewZapLogger(false)
}

// ParseLevel maps a config string to a LogLevel; unknown values mean info
func ParseLevel(level string) core.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return core.LogLevelDebug
	case "warn", "warning":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
	l.atom.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
