package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warn":    core.LogLevelWarn,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
		"verbose": core.LogLevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestZapLogger_SetLevel(t *testing.T) {
	l := NewZapLoggerWithOptions(Options{Level: "warn"})
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())

	l.Debug("debug message", map[string]any{"k": "v"})
	l.Info("info message", nil)
	_ = l.Flush()
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Error("ignored", nil)
	assert.NoError(t, l.Flush())
}
