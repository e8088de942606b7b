package metrics

import (
	"time"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

// NoopRecorder discards every measurement
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder for disabled metrics and tests
func NewNoopRecorder() coreport.Metrics {
	return NoopRecorder{}
}

func (NoopRecorder) ObserveHTTPRequest(string, string, int, time.Duration) {}
func (NoopRecorder) ObserveGatewayCall(string, string, time.Duration)      {}
func (NoopRecorder) IncTransition(string, string)                          {}
func (NoopRecorder) IncCallback(string, string)                            {}
func (NoopRecorder) IncDroppedEvent(string)                                {}
func (NoopRecorder) AddSwept(int)                                          {}
