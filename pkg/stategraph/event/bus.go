package event

import (
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the per-subscriber channel buffer when none is given.
const DefaultBufferSize = 256

// Bus is an in-memory pub/sub bus for run-progress events.
//
// Publish fans events out to every subscriber's buffered channel without
// blocking: a subscriber that falls behind loses events rather than
// stalling the run. Bus is safe for concurrent use.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int64]chan Event
	buffer      int
	nextID      atomic.Int64
	closed      atomic.Bool
	dropped     atomic.Int64
}

// NewBus creates a bus with the given per-subscriber buffer size.
// Sizes <= 0 use DefaultBufferSize.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Bus{
		subscribers: make(map[int64]chan Event),
		buffer:      buffer,
	}
}

// Subscribe registers a new subscriber and returns its event channel plus
// a cancel function. The channel is closed when the subscription is
// cancelled or the bus is closed.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, b.buffer)

	b.mu.Lock()
	// Checked under the lock so a Subscribe racing Close cannot register
	// a channel after Close has drained the map.
	if b.closed.Load() {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID.Add(1)
	b.subscribers[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber whose buffer has room.
// Publishing on a closed bus is a no-op.
func (b *Bus) Publish(evt Event) {
	if b.closed.Load() {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped reports how many events were discarded because a subscriber's
// buffer was full.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close shuts the bus down and closes every subscriber channel.
// Close is idempotent.
func (b *Bus) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
