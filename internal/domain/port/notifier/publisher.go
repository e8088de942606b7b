package notifier

import "context"

// Publisher fans events out to live subscribers of a channel.
// Delivery is best-effort: an error is for logging only and must never
// undo the state change that triggered the event.
type Publisher interface {
	Publish(ctx context.Context, channel string, event string, payload any) error
}
