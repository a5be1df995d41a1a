package domain

import "context"

type Event struct {
	Type    string
	Payload map[string]any
}

// EventBus is fire-and-forget: publishing never blocks event processing.
type EventBus interface {
	Publish(ctx context.Context, e Event)
}
