package providers

import (
	"context"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
)

// EventBus publishes and delivers escalation events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.EscalationEvent) error

	// Subscribe subscribes to events on a channel until ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.EscalationEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelEscalations carries analyses that need clinician review
const EventChannelEscalations = "triage:escalations"
