package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

const defaultSlowQuery = 200 * time.Millisecond

// RequestIDKey is the context key the HTTP layer stores its request id under
type RequestIDKey struct{}

// StatementLogger routes GORM output through the core logger, tagged with the request id
type StatementLogger struct {
	log           coreport.Logger
	clock         coreport.TimeProvider
	level         logger.LogLevel
	slowThreshold time.Duration
}

var _ logger.Interface = (*StatementLogger)(nil)

// NewStatementLogger creates a GORM logger at the given application log level
func NewStatementLogger(log coreport.Logger, clock coreport.TimeProvider, level string) *StatementLogger {
	return &StatementLogger{
		log:           log,
		clock:         clock,
		level:         gormLevel(level),
		slowThreshold: defaultSlowQuery,
	}
}

// gormLevel maps the application log level; only debug traces every statement
func gormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}

func (l *StatementLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *StatementLogger) Info(ctx context.Context, msg string, _ ...any) {
	if l.level >= logger.Info {
		l.log.Info(msg, l.fields(ctx))
	}
}

func (l *StatementLogger) Warn(ctx context.Context, msg string, _ ...any) {
	if l.level >= logger.Warn {
		l.log.Warn(msg, l.fields(ctx))
	}
}

func (l *StatementLogger) Error(ctx context.Context, msg string, _ ...any) {
	if l.level >= logger.Error {
		l.log.Error(msg, l.fields(ctx))
	}
}

// Trace logs failed statements, slow statements, and at debug level everything else
func (l *StatementLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	var elapsed time.Duration
	if l.clock != nil {
		elapsed = l.clock.Since(begin).Std()
	} else {
		elapsed = time.Since(begin)
	}

	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	if !failed && !slow && l.level < logger.Info {
		return
	}

	stmt, rows := fc()
	fields := l.fields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = stmt
	if verb, table := describeStatement(stmt); verb != "" {
		fields["type"] = verb
		if table != "" {
			fields["table"] = table
		}
	}

	switch {
	case failed:
		fields["error"] = err.Error()
		l.log.Error("SQL error", fields)
	case slow:
		l.log.Warn("Slow SQL query", fields)
	default:
		l.log.Debug("SQL query", fields)
	}
}

func (l *StatementLogger) fields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if ctx != nil {
		if id, ok := ctx.Value(RequestIDKey{}).(string); ok && id != "" {
			fields["request_id"] = id
		}
	}
	return fields
}

// describeStatement returns the statement verb and the first table it touches
func describeStatement(stmt string) (verb, table string) {
	words := strings.Fields(stmt)
	if len(words) == 0 {
		return "", ""
	}

	verb = strings.ToUpper(words[0])
	var marker string
	switch verb {
	case "SELECT", "DELETE":
		marker = "FROM"
	case "INSERT":
		marker = "INTO"
	case "UPDATE":
		if len(words) > 1 {
			return verb, strings.Trim(words[1], `"`)
		}
		return verb, ""
	default:
		return "", ""
	}

	for i := 1; i < len(words)-1; i++ {
		if strings.EqualFold(words[i], marker) {
			return verb, strings.Trim(words[i+1], `"`)
		}
	}
	return verb, ""
}
