package notifier

import (
	"context"
	"sync"
)

// Published is one recorded call to RecordingPublisher
type Published struct {
	Channel string
	Event   string
	Payload any
}

// RecordingPublisher keeps every published event in order
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Published
}

func (p *RecordingPublisher) Publish(_ context.Context, channel string, event string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Published{Channel: channel, Event: event, Payload: payload})
	return nil
}

// Events returns a copy of the recorded events
func (p *RecordingPublisher) Events() []Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Published(nil), p.events...)
}

// Count returns how many times event was published
func (p *RecordingPublisher) Count(event string) int {
	n := 0
	for _, e := range p.Events() {
		if e.Event == event {
			n++
		}
	}
	return n
}
