// Package notifier fans live events out to connected subscribers.
package notifier

import (
	"context"
	"sync"
	"sync/atomic"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/notifier"
)

const defaultBufferSize = 16

// Event is one message delivered to a subscriber
type Event struct {
	Name    string
	Payload any
}

// Subscription is a single listener on a channel
type Subscription struct {
	id      uint64
	channel string
	events  chan Event
	once    sync.Once
}

// Channel is the room this subscription listens on
func (s *Subscription) Channel() string {
	return s.channel
}

// Events is closed when the subscription leaves the hub
func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.events) })
}

// Hub is an in-process publisher keyed by channel name.
// A slow subscriber loses events rather than blocking the publisher.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]map[uint64]*Subscription
	nextID     atomic.Uint64
	bufferSize int
	closed     bool

	logger  coreport.Logger
	metrics coreport.Metrics
}

// NewHub creates a hub with per-subscriber buffers of bufferSize
func NewHub(bufferSize int, logger coreport.Logger, metrics coreport.Metrics) *Hub {
	if bufferSize < 1 {
		bufferSize = defaultBufferSize
	}
	return &Hub{
		rooms:      make(map[string]map[uint64]*Subscription),
		bufferSize: bufferSize,
		logger:     logger,
		metrics:    metrics,
	}
}

var _ notifier.Publisher = (*Hub)(nil)

// Join subscribes to channel. The caller must Leave when done.
func (h *Hub) Join(channel string) *Subscription {
	sub := &Subscription{
		id:      h.nextID.Add(1),
		channel: channel,
		events:  make(chan Event, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.close()
		return sub
	}

	room, ok := h.rooms[channel]
	if !ok {
		room = make(map[uint64]*Subscription)
		h.rooms[channel] = room
	}
	room[sub.id] = sub

	h.logger.Debug("Subscriber joined", map[string]any{
		"channel":     channel,
		"subscribers": len(room),
	})
	return sub
}

// Leave unsubscribes and closes the subscription's event channel
func (h *Hub) Leave(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	if room, ok := h.rooms[sub.channel]; ok {
		delete(room, sub.id)
		if len(room) == 0 {
			delete(h.rooms, sub.channel)
		}
	}
	h.mu.Unlock()

	sub.close()
}

// Publish delivers to every subscriber of channel without blocking
func (h *Hub) Publish(ctx context.Context, channel string, event string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered, dropped := 0, 0
	for _, sub := range h.rooms[channel] {
		select {
		case sub.events <- Event{Name: event, Payload: payload}:
			delivered++
		default:
			dropped++
			h.metrics.IncDroppedEvent(event)
		}
	}

	if dropped > 0 {
		h.logger.Warn("Live event dropped for slow subscribers", map[string]any{
			"channel":   channel,
			"event":     event,
			"delivered": delivered,
			"dropped":   dropped,
		})
	}
	return nil
}

// Subscribers returns the number of listeners on channel
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[channel])
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for channel, room := range h.rooms {
		for _, sub := range room {
			sub.close()
		}
		delete(h.rooms, channel)
	}
}
