// Package eventbus provides in-process fan-out of planning events so
// observers (exporters, sinks, log tails) can react without coupling to the
// planner.
package eventbus

import "sync"

// Bus is a type-safe publish/subscribe bus for events of type T.
// Delivery is non-blocking: a subscriber that falls behind loses events
// rather than stalling the publisher.
type Bus[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan T
	closed bool
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[int]chan T)}
}

// Publish sends the event to every subscriber.
func (b *Bus[T]) Publish(e T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a subscriber and returns its channel together with a
// cancel function that removes the subscription and closes the channel.
func (b *Bus[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, 8)
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			if !b.closed {
				close(sub)
			}
		}
	}
}

// Close closes the bus and every subscriber channel. Further publishes are
// silently dropped.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}
