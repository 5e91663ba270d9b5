package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/models"
)

func testItinerary(id string) *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: id,
		Version:     1,
		Destination: "Lisbon",
		Status:      models.ItineraryStatusDraft,
		Days: []*models.Day{
			{
				DayNumber:  1,
				MaxNodeSeq: 1,
				Nodes: []*models.Node{
					{ID: "day1_node1", Title: "Alfama walk", Type: models.NodeTypeAttraction},
				},
			},
		},
	}
}

func TestMemoryStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Create(ctx, testItinerary("it-1")))

	got, err := s.Get(ctx, "it-1")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)

	// Returned document is a copy: mutations must not leak back.
	got.Destination = "Porto"
	again, err := s.Get(ctx, "it-1")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", again.Destination)

	err = s.Create(ctx, testItinerary("it-1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorePutCAS(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, testItinerary("it-1")))

	doc, err := s.Get(ctx, "it-1")
	require.NoError(t, err)
	doc.Version = 2
	doc.Destination = "Porto"
	require.NoError(t, s.Put(ctx, doc, 1))

	// A writer still holding version 1 loses the race.
	stale, err := s.GetAtVersion(ctx, "it-1", 1)
	require.NoError(t, err)
	stale.Version = 2
	err = s.Put(ctx, stale, 1)
	assert.ErrorIs(t, err, ErrVersionConflict)

	got, err := s.Get(ctx, "it-1")
	require.NoError(t, err)
	assert.Equal(t, "Porto", got.Destination)
	assert.Equal(t, 2, got.Version)

	err = s.Put(ctx, testItinerary("missing"), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRevisionLog(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, testItinerary("it-1")))

	doc, err := s.Get(ctx, "it-1")
	require.NoError(t, err)
	doc.Version = 2
	doc.Destination = "Porto"
	require.NoError(t, s.Put(ctx, doc, 1))

	v1, err := s.GetAtVersion(ctx, "it-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", v1.Destination)

	v2, err := s.GetAtVersion(ctx, "it-1", 2)
	require.NoError(t, err)
	assert.Equal(t, "Porto", v2.Destination)

	_, err = s.GetAtVersion(ctx, "it-1", 9)
	assert.ErrorIs(t, err, ErrRevisionNotFound)
}

func TestMemoryStoreChatTranscript(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, testItinerary("it-1")))

	require.NoError(t, s.AppendChat(ctx, "it-1", models.ChatEntry{Role: "user", Text: "add a beach day"}))
	require.NoError(t, s.AppendChat(ctx, "it-1", models.ChatEntry{Role: "assistant", Text: "done"}))

	got, err := s.Get(ctx, "it-1")
	require.NoError(t, err)
	require.Len(t, got.Chat, 2)
	assert.Equal(t, "user", got.Chat[0].Role)
	assert.Equal(t, "done", got.Chat[1].Text)

	// Revision snapshots never carry the transcript.
	v1, err := s.GetAtVersion(ctx, "it-1", 1)
	require.NoError(t, err)
	assert.Empty(t, v1.Chat)

	err = s.AppendChat(ctx, "missing", models.ChatEntry{Role: "user", Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLockMapSerializesPerItinerary(t *testing.T) {
	locks := NewLockMap()

	unlock := locks.Lock("it-1")

	acquired := make(chan struct{})
	go func() {
		u := locks.Lock("it-1")
		close(acquired)
		u()
	}()

	// Another itinerary's lock is independent.
	u2 := locks.Lock("it-2")
	u2()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first still held")
	default:
	}

	unlock()
	<-acquired
}
