package services_test

import (
	"context"
	"errors"
	"sync"

	"github.com/gregory-bot/telecurehospital/internal/domain/entities"
	"github.com/gregory-bot/telecurehospital/internal/domain/providers"
	"github.com/gregory-bot/telecurehospital/internal/domain/repositories"
	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

// MockCacheProvider for testing
type MockCacheProvider struct {
	mu      sync.RWMutex
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
	deleted []string
}

func NewMockCacheProvider() *MockCacheProvider {
	return &MockCacheProvider{data: make(map[string][]byte)}
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return nil, providers.ErrCacheMiss
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

// MockEventBus delivers published events to in-process subscribers
type MockEventBus struct {
	mu          sync.Mutex
	published   []*entities.EscalationEvent
	subscribers map[string][]chan *entities.EscalationEvent
	publishErr  error
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{subscribers: make(map[string][]chan *entities.EscalationEvent)}
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.EscalationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, event)
	for _, ch := range m.subscribers[channel] {
		ch <- event
	}
	return nil
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.EscalationEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan *entities.EscalationEvent, 100)
	m.subscribers[channel] = append(m.subscribers[channel], ch)
	return ch, nil
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers[channel] {
		close(ch)
	}
	delete(m.subscribers, channel)
	return nil
}

func (m *MockEventBus) Close() error {
	m.mu.Lock()
	channels := make([]string, 0, len(m.subscribers))
	for channel := range m.subscribers {
		channels = append(channels, channel)
	}
	m.mu.Unlock()
	for _, channel := range channels {
		_ = m.Unsubscribe(context.Background(), channel)
	}
	return nil
}

func (m *MockEventBus) SubscriberCount(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers[channel])
}

func (m *MockEventBus) Published() []*entities.EscalationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entities.EscalationEvent(nil), m.published...)
}

// MockReviewCaseRepository keeps review cases in memory
type MockReviewCaseRepository struct {
	mu        sync.Mutex
	cases     map[string]*entities.ReviewCase
	createErr error
}

func NewMockReviewCaseRepository() *MockReviewCaseRepository {
	return &MockReviewCaseRepository{cases: make(map[string]*entities.ReviewCase)}
}

func (m *MockReviewCaseRepository) Create(ctx context.Context, reviewCase *entities.ReviewCase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.cases {
		if existing.AnalysisID == reviewCase.AnalysisID {
			return nil
		}
	}
	m.cases[reviewCase.ID] = reviewCase
	return nil
}

func (m *MockReviewCaseRepository) ListPending(ctx context.Context, filter repositories.ReviewCaseFilter) ([]*entities.ReviewCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entities.ReviewCase
	for _, c := range m.cases {
		if c.Status != entities.ReviewStatusPending {
			continue
		}
		if filter.Urgency != "" && c.Urgency != filter.Urgency {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *MockReviewCaseRepository) Resolve(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cases[id]
	if !ok || c.Status != entities.ReviewStatusPending {
		return apperrors.NewNotFoundError("review case not found")
	}
	c.Status = entities.ReviewStatusResolved
	return nil
}

func (m *MockReviewCaseRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cases)
}

var errBackend = errors.New("backend unavailable")
