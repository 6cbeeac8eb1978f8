package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/providers"
	redisclient "github.com/gregory-bot/telecurehospital/internal/infrastructure/clients/redis"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
)

const subscriberBuffer = 100

// channelSubscription fans one Redis subscription out to local subscribers
type channelSubscription struct {
	pubsub      *redis.PubSub
	subscribers map[chan *entities.EscalationEvent]struct{}
}

// RedisEventBus implements the EventBus interface using Redis Pub/Sub
type RedisEventBus struct {
	client   *redisclient.Client
	channels map[string]*channelSubscription
	mu       sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewRedisEventBus creates a new Redis-based event bus
func NewRedisEventBus(client *redisclient.Client) providers.EventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:   client,
		channels: make(map[string]*channelSubscription),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// EncodeEvent serializes an escalation event for the wire
func EncodeEvent(event *entities.EscalationEvent) ([]byte, error) {
	if event == nil {
		return nil, errors.New("event is nil")
	}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}

// DecodeEvent parses a wire payload into an escalation event
func DecodeEvent(payload string) (*entities.EscalationEvent, error) {
	var event entities.EscalationEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.ID == "" {
		return nil, errors.New("event has no id")
	}
	return &event, nil
}

// Publish publishes an event to all subscribers
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.EscalationEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	if err := b.client.Client().Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("channel", channel).
		Str("event_id", event.ID).
		Msg("Published escalation event")
	return nil
}

// Subscribe subscribes to events on a channel. The returned channel is
// closed when ctx is done or the bus is closed.
func (b *RedisEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.EscalationEvent, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, fmt.Errorf("event bus closed: %w", err)
	}

	b.mu.Lock()
	sub, exists := b.channels[channel]
	if !exists {
		sub = &channelSubscription{
			pubsub:      b.client.Client().Subscribe(b.ctx, channel),
			subscribers: make(map[chan *entities.EscalationEvent]struct{}),
		}
		b.channels[channel] = sub
		go b.receiveMessages(channel, sub.pubsub)
	}

	eventChan := make(chan *entities.EscalationEvent, subscriberBuffer)
	sub.subscribers[eventChan] = struct{}{}
	subscriberCount := len(sub.subscribers)
	b.mu.Unlock()

	observability.LoggerFromContext(ctx).Info().
		Str("channel", channel).
		Int("subscribers", subscriberCount).
		Msg("Subscribed to channel")

	go func() {
		select {
		case <-ctx.Done():
		case <-b.ctx.Done():
		}
		b.removeSubscriber(channel, eventChan)
	}()

	return eventChan, nil
}

// receiveMessages receives messages from Redis and broadcasts them to subscribers
func (b *RedisEventBus) receiveMessages(channel string, pubsub *redis.PubSub) {
	logger := observability.GetLogger()
	defer func() {
		if err := b.cleanupChannel(channel, pubsub); err != nil {
			logger.Error().Err(err).Str("channel", channel).Msg("Failed to cleanup channel")
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-b.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			event, err := DecodeEvent(msg.Payload)
			if err != nil {
				logger.Warn().Err(err).Str("channel", channel).Msg("Dropping malformed event")
				continue
			}

			b.mu.RLock()
			if sub, ok := b.channels[channel]; ok && sub.pubsub == pubsub {
				for subscriber := range sub.subscribers {
					select {
					case subscriber <- event:
					default:
						logger.Warn().
							Str("channel", channel).
							Str("event_id", event.ID).
							Msg("Subscriber channel full, skipping event")
					}
				}
			}
			b.mu.RUnlock()
		}
	}
}

func (b *RedisEventBus) removeSubscriber(channel string, eventChan chan *entities.EscalationEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, exists := b.channels[channel]
	if !exists {
		return
	}
	if _, ok := sub.subscribers[eventChan]; !ok {
		return
	}

	delete(sub.subscribers, eventChan)
	close(eventChan)

	if len(sub.subscribers) == 0 {
		delete(b.channels, channel)
		_ = sub.pubsub.Close()
	}
}

// cleanupChannel closes every subscriber of channel. When pubsub is non-nil
// only that subscription generation is cleaned up.
func (b *RedisEventBus) cleanupChannel(channel string, pubsub *redis.PubSub) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, exists := b.channels[channel]
	if !exists || (pubsub != nil && sub.pubsub != pubsub) {
		return nil
	}

	for subscriber := range sub.subscribers {
		close(subscriber)
	}
	delete(b.channels, channel)

	if err := sub.pubsub.Close(); err != nil {
		return fmt.Errorf("failed to close subscription %s: %w", channel, err)
	}
	return nil
}

// Unsubscribe unsubscribes from a channel
func (b *RedisEventBus) Unsubscribe(ctx context.Context, channel string) error {
	if err := b.cleanupChannel(channel, nil); err != nil {
		return err
	}
	observability.LoggerFromContext(ctx).Info().Str("channel", channel).Msg("Unsubscribed from channel")
	return nil
}

// Close closes the event bus and all subscriptions
func (b *RedisEventBus) Close() error {
	b.cancel()

	b.mu.RLock()
	channels := make([]string, 0, len(b.channels))
	for channel := range b.channels {
		channels = append(channels, channel)
	}
	b.mu.RUnlock()

	var errs []error
	for _, channel := range channels {
		if err := b.cleanupChannel(channel, nil); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
