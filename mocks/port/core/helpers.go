package core

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// NewPermissiveLogger returns a MockLogger that accepts any log call
func NewPermissiveLogger() *MockLogger {
	l := &MockLogger{}
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe().Return()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe().Return()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe().Return()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe().Return()
	l.EXPECT().Flush().Maybe().Return(nil)
	return l
}

// NewPermissiveMetrics returns a MockMetrics that accepts any call
func NewPermissiveMetrics() *MockMetrics {
	m := &MockMetrics{}
	m.EXPECT().ObserveHTTPRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.EXPECT().ObserveGatewayCall(mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.EXPECT().IncTransition(mock.Anything, mock.Anything).Maybe().Return()
	m.EXPECT().IncCallback(mock.Anything, mock.Anything).Maybe().Return()
	m.EXPECT().IncDroppedEvent(mock.Anything).Maybe().Return()
	m.EXPECT().AddSwept(mock.Anything).Maybe().Return()
	return m
}

// NewFixedTimeProvider returns a MockTimeProvider whose Now always returns at
func NewFixedTimeProvider(at time.Time) *MockTimeProvider {
	p := &MockTimeProvider{}
	p.EXPECT().Now().Return(at)
	return p
}
