package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
)

func TestDescribeStatement(t *testing.T) {
	tests := []struct {
		stmt  string
		verb  string
		table string
	}{
		{`SELECT * FROM "transactions" WHERE id = $1`, "SELECT", "transactions"},
		{`INSERT INTO "withdrawals" ("creator_id") VALUES ($1)`, "INSERT", "withdrawals"},
		{`UPDATE "creators" SET name = $1`, "UPDATE", "creators"},
		{`delete from transactions where id = 1`, "DELETE", "transactions"},
		{`SELECT 1`, "SELECT", ""},
		{`BEGIN`, "", ""},
		{``, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.stmt, func(t *testing.T) {
			verb, table := describeStatement(tt.stmt)
			assert.Equal(t, tt.verb, verb)
			assert.Equal(t, tt.table, table)
		})
	}
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, gormLevel("silent"))
	assert.Equal(t, logger.Info, gormLevel("DEBUG"))
	assert.Equal(t, logger.Error, gormLevel("error"))
	assert.Equal(t, logger.Warn, gormLevel("info"))
	assert.Equal(t, logger.Warn, gormLevel(""))
}

func clockReturning(t *testing.T, elapsed time.Duration) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(elapsed)).Maybe()
	return clock
}

func statement(stmt string) func() (string, int64) {
	return func() (string, int64) { return stmt, 1 }
}

func TestStatementLogger_Trace(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey{}, "req-42")

	t.Run("errors carry the request id", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Error("SQL error", mock.MatchedBy(func(f map[string]any) bool {
			return f["request_id"] == "req-42" && f["table"] == "transactions" && f["error"] == "boom"
		})).Once()

		l := NewStatementLogger(log, clockReturning(t, time.Millisecond), "warn")
		l.Trace(ctx, time.Now(), statement(`SELECT * FROM transactions`), errors.New("boom"))
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)

		l := NewStatementLogger(log, clockReturning(t, time.Millisecond), "warn")
		l.Trace(ctx, time.Now(), statement(`SELECT * FROM creators`), gorm.ErrRecordNotFound)

		log.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
	})

	t.Run("slow statements warn", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Warn("Slow SQL query", mock.Anything).Once()

		l := NewStatementLogger(log, clockReturning(t, time.Second), "warn")
		l.Trace(ctx, time.Now(), statement(`UPDATE withdrawals SET status = $1`), nil)
	})

	t.Run("fast statements only at debug", func(t *testing.T) {
		quiet := mockcore.NewMockLogger(t)
		NewStatementLogger(quiet, clockReturning(t, time.Millisecond), "info").
			Trace(ctx, time.Now(), statement(`SELECT 1`), nil)
		quiet.AssertNotCalled(t, "Debug", mock.Anything, mock.Anything)

		verbose := mockcore.NewMockLogger(t)
		verbose.EXPECT().Debug("SQL query", mock.Anything).Once()
		NewStatementLogger(verbose, clockReturning(t, time.Millisecond), "debug").
			Trace(ctx, time.Now(), statement(`SELECT 1`), nil)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)

		l := NewStatementLogger(log, nil, "silent")
		l.Trace(ctx, time.Now(), statement(`SELECT 1`), errors.New("boom"))

		assert.Empty(t, log.Calls)
	})
}

func TestStatementLogger_LogMode(t *testing.T) {
	base := NewStatementLogger(mockcore.NewPermissiveLogger(), nil, "warn")

	changed := base.LogMode(logger.Info).(*StatementLogger)

	assert.Equal(t, logger.Info, changed.level)
	assert.Equal(t, logger.Warn, base.level)
}
