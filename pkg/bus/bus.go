package bus

import (
	"sync"

	"go.uber.org/zap"
)

// Topic identifies a broadcast channel. Notifications carry no payload;
// subscribers are expected to re-read whatever state the topic covers.
type Topic string

// Handler reacts to a notification on a topic.
type Handler func()

// Bus is a process-local publish/subscribe dispatcher. Subscriptions return
// an unsubscribe function that is safe to call more than once, so callers can
// register and deregister freely across their own lifecycle without leaking
// handlers or double-firing.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic]map[uint64]Handler
	nextID uint64
	logger *zap.Logger
}

// New constructs an empty bus.
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{subs: make(map[Topic]map[uint64]Handler), logger: logger}
}

// Subscribe registers a handler and returns its unsubscribe function.
func (b *Bus) Subscribe(topic Topic, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]Handler)
	}
	b.subs[topic][id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[topic], id)
		})
	}
}

// Publish delivers the notification to every current subscriber of the topic,
// synchronously, in unspecified order. Handlers registered or removed during
// delivery take effect on the next publish.
func (b *Bus) Publish(topic Topic) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h()
	}
}

// SubscriberCount reports the number of live subscriptions on a topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
