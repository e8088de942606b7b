package core

import "time"

// Metrics records operational counters and latencies
type Metrics interface {
	// ObserveHTTPRequest records the latency of a served request
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
	// ObserveGatewayCall records an outbound gateway call and its outcome
	ObserveGatewayCall(operation, outcome string, elapsed time.Duration)
	// IncTransition counts a state change; kind is "transaction" or "withdrawal"
	IncTransition(kind, to string)
	// IncCallback counts an inbound webhook by outcome
	IncCallback(kind, outcome string)
	// IncDroppedEvent counts a live event that could not be delivered
	IncDroppedEvent(event string)
	// AddSwept counts transactions moved to timeout by the stale sweep
	AddSwept(n int)
}
