package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus()

	ch1, cancel1 := bus.Subscribe("itinerary:a")
	defer cancel1()
	ch2, cancel2 := bus.Subscribe("itinerary:a")
	defer cancel2()
	other, cancelOther := bus.Subscribe("itinerary:b")
	defer cancelOther()

	bus.Publish("itinerary:a", map[string]string{"type": "test"})

	for _, ch := range []<-chan []byte{ch1, ch2} {
		var msg map[string]string
		require.NoError(t, json.Unmarshal(receiveOne(t, ch), &msg))
		assert.Equal(t, "test", msg["type"])
	}

	select {
	case <-other:
		t.Fatal("event leaked across channels")
	default:
	}
}

func TestBusSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("itinerary:a")
	defer cancel()

	// Overfill the buffer; publishes must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			bus.Publish("itinerary:a", map[string]int{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on slow subscriber")
	}

	// The buffer holds at most subscriberBuffer events; the rest dropped.
	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			assert.Equal(t, subscriberBuffer, received)
			return
		}
	}
}

func TestBusConcurrentPublishersCountDropsExactly(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("itinerary:a")
	defer cancel()

	// Fill the buffer so every subsequent publish is a drop.
	for i := 0; i < subscriberBuffer; i++ {
		bus.Publish("itinerary:a", map[string]int{"i": i})
	}

	// Concurrent publishers all dropping for the same subscriber, as
	// happens when a level of agents reports progress in parallel.
	const publishers = 4
	const perPublisher = 50
	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				bus.Publish("itinerary:a", map[string]int{"i": i})
			}
		}()
	}
	wg.Wait()

	bus.mu.RLock()
	var dropped int64
	for _, sub := range bus.subs["itinerary:a"] {
		dropped = sub.dropped.Load()
	}
	bus.mu.RUnlock()
	assert.Equal(t, int64(publishers*perPublisher), dropped)

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			assert.Equal(t, subscriberBuffer, received)
			return
		}
	}
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("itinerary:a")
	require.Equal(t, 1, bus.SubscriberCount("itinerary:a"))

	cancel()
	cancel() // idempotent

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, bus.SubscriberCount("itinerary:a"))

	// Publishing to a channel with no subscribers is a no-op.
	bus.Publish("itinerary:a", map[string]string{"type": "test"})
}

func TestPublisherPayloads(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(ItineraryChannel("it-1"))
	defer cancel()

	pub := NewPublisher(bus)

	pub.AgentProgress("it-1", "run-1", "activity-agent", AgentStatusRunning, 40, "filling day 2")
	var progress AgentProgressPayload
	require.NoError(t, json.Unmarshal(receiveOne(t, ch), &progress))
	assert.Equal(t, EventTypeAgentProgress, progress.Type)
	assert.Equal(t, "activity-agent", progress.Agent)
	assert.Equal(t, 40, progress.Progress)
	assert.NotEmpty(t, progress.Timestamp)

	pub.RunStatus("it-1", "run-1", "generate", RunStatusCompleted, 3, "")
	var status RunStatusPayload
	require.NoError(t, json.Unmarshal(receiveOne(t, ch), &status))
	assert.Equal(t, EventTypeRunStatus, status.Type)
	assert.Equal(t, 3, status.Version)

	pub.ItineraryCommitted("it-1", 3, 2, 1, 0, "editor-agent")
	var committed ItineraryCommittedPayload
	require.NoError(t, json.Unmarshal(receiveOne(t, ch), &committed))
	assert.Equal(t, EventTypeItineraryCommitted, committed.Type)
	assert.Equal(t, 2, committed.Added)
	assert.Equal(t, "editor-agent", committed.UpdatedBy)
}
