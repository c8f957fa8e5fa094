package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher sends raw payloads to a named channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NewChannelForwarder returns a handler that publishes events as JSON on channel.
func NewChannelForwarder(pub Publisher, channel string) EventHandler {
	return func(ctx context.Context, event Event) error {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", event.ID, err)
		}
		if err := pub.Publish(ctx, channel, body); err != nil {
			return fmt.Errorf("publish event %s: %w", event.ID, err)
		}
		return nil
	}
}
