package events

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
)

// subscriberBuffer bounds each subscriber's channel. A consumer that
// falls this far behind starts losing events instead of blocking
// publishers.
const subscriberBuffer = 64

// Bus is the in-process event bus: named channels with bounded,
// non-blocking fan-out to any number of subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[int]*subscriber
	nextID int
}

// dropped is atomic: publishers on different goroutines share the
// bus's read lock, so they may count drops for the same subscriber
// concurrently.
type subscriber struct {
	ch      chan []byte
	dropped atomic.Int64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]*subscriber)}
}

// Subscribe registers a new subscriber on the channel and returns its
// receive channel plus a cancel function. Cancel closes the receive
// channel; it is safe to call more than once.
func (b *Bus) Subscribe(channel string) (<-chan []byte, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	sub := &subscriber{ch: make(chan []byte, subscriberBuffer)}
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]*subscriber)
	}
	b.subs[channel][id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if subs, ok := b.subs[channel]; ok {
				delete(subs, id)
				if len(subs) == 0 {
					delete(b.subs, channel)
				}
			}
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish marshals the payload and fans it out to every subscriber of
// the channel. Sends never block: a subscriber with a full buffer loses
// the event.
func (b *Bus) Publish(channel string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal event payload", "channel", channel, "error", err)
		return
	}
	b.publishRaw(channel, data)
}

func (b *Bus) publishRaw(channel string, data []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[channel] {
		select {
		case sub.ch <- data:
		default:
			n := sub.dropped.Add(1)
			if n == 1 || n%100 == 0 {
				slog.Warn("Dropping events for slow subscriber",
					"channel", channel, "dropped", n)
			}
		}
	}
}

// SubscriberCount returns the number of subscribers for a channel.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}
