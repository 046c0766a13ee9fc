// Package pubsub implements an in-process, topic-based notification
// publisher. Delivery is best-effort and at-most-once: publishing never
// blocks, and events to subscribers with full buffers are dropped.
package pubsub

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/linkboard/internal/logging"
	"github.com/google/uuid"
)

// Domain event topics.
const (
	TopicNewLink = "NEW_LINK"
	TopicNewVote = "NEW_VOTE"
)

// subscriberBufferSize bounds how far a slow subscriber may lag before
// events are dropped.
const subscriberBufferSize = 16

// Publisher is the notification contract handlers depend on.
type Publisher interface {
	// Publish broadcasts payload to current subscribers of topic.
	// Best-effort, at-most-once, non-blocking.
	Publish(ctx context.Context, topic string, payload any)

	// Subscribe registers interest in topic. The returned cancel func must be
	// called to release the subscription; afterwards the channel is closed.
	Subscribe(topic string) (<-chan any, func())
}

// Broker is the in-memory Publisher implementation.
type Broker struct {
	logger logging.Logger

	mu   sync.RWMutex
	subs map[string]map[uuid.UUID]chan any
}

func NewBroker(logger logging.Logger) *Broker {
	return &Broker{
		logger: logger.With("module", "pubsub"),
		subs:   make(map[string]map[uuid.UUID]chan any),
	}
}

func (b *Broker) Publish(ctx context.Context, topic string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs[topic] {
		select {
		case ch <- payload:
		default:
			b.logger.Warn(ctx, "dropping event for slow subscriber", "topic", topic, "subscriber", id)
		}
	}
}

func (b *Broker) Subscribe(topic string) (<-chan any, func()) {
	id := uuid.New()
	ch := make(chan any, subscriberBufferSize)

	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uuid.UUID]chan any)
	}
	b.subs[topic][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[topic][id]; !ok {
			return
		}
		delete(b.subs[topic], id)
		close(ch)
	}

	return ch, cancel
}
