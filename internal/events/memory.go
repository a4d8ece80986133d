package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// InMemoryEventPublisher records events in memory. It is the default
// publisher when no broker is configured and the double used in tests.
type InMemoryEventPublisher struct {
	mu     sync.Mutex
	logger *zap.Logger
	events []interface{}
}

func NewInMemoryEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventPublisher{logger: logger}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	p.logger.Debug("event published (in-memory)", zap.String("type", EventType(event)))
	return nil
}

func (p *InMemoryEventPublisher) Close() error { return nil }

// Events returns a copy of everything published so far.
func (p *InMemoryEventPublisher) Events() []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interface{}, len(p.events))
	copy(out, p.events)
	return out
}
