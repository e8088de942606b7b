package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/tip-processor/mocks/port/usecase"
)

func TestSweeper_Defaults(t *testing.T) {
	s := NewSweeper(mockusecase.NewMockTransactionUseCase(t), 0, -1, mockcore.NewPermissiveLogger())

	assert.Equal(t, DefaultSweepInterval, s.interval)
	assert.Equal(t, DefaultSweepWindow, s.window)
}

func TestSweeper_RunOnceUsesWindow(t *testing.T) {
	uc := mockusecase.NewMockTransactionUseCase(t)
	uc.EXPECT().TimeoutStale(mock.Anything, 30*time.Minute).Return(2, nil).Once()
	s := NewSweeper(uc, time.Minute, 30*time.Minute, mockcore.NewPermissiveLogger())

	assert.Equal(t, 2, s.RunOnce(context.Background()))
}

func TestSweeper_RunOnceLogsFailure(t *testing.T) {
	uc := mockusecase.NewMockTransactionUseCase(t)
	uc.EXPECT().TimeoutStale(mock.Anything, time.Hour).Return(0, errors.New("db down")).Once()
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Error("Stale transaction sweep failed", mock.Anything).Return().Once()
	s := NewSweeper(uc, time.Minute, time.Hour, log)

	assert.Equal(t, 0, s.RunOnce(context.Background()))
}

func TestSweeper_TicksUntilStopped(t *testing.T) {
	uc := mockusecase.NewMockTransactionUseCase(t)
	swept := make(chan struct{}, 100)
	uc.EXPECT().TimeoutStale(mock.Anything, time.Hour).
		Run(func(context.Context, time.Duration) { swept <- struct{}{} }).
		Return(0, nil)
	s := NewSweeper(uc, 10*time.Millisecond, time.Hour, mockcore.NewPermissiveLogger())

	s.Start(context.Background())
	s.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper did not tick")
		}
	}

	s.Stop()
	s.Stop()

	for len(swept) > 0 {
		<-swept
	}
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, swept, 0)
}

func TestSweeper_StopsWithParentContext(t *testing.T) {
	uc := mockusecase.NewMockTransactionUseCase(t)
	uc.EXPECT().TimeoutStale(mock.Anything, mock.Anything).Maybe().Return(0, nil)
	s := NewSweeper(uc, 5*time.Millisecond, time.Hour, mockcore.NewPermissiveLogger())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit on context cancel")
	}
	s.Stop()
}
