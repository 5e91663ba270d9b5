package changeset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/store"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

// seedItinerary builds a 4-day trip; days 2 and 3 have three nodes each,
// day 4 is empty.
func seedItinerary() *models.Itinerary {
	it := &models.Itinerary{
		ItineraryID: "it-1",
		Version:     1,
		Destination: "Paris",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-04",
		Status:      models.ItineraryStatusReady,
	}
	for d := 1; d <= 4; d++ {
		it.Days = append(it.Days, &models.Day{DayNumber: d})
	}
	for d := 2; d <= 3; d++ {
		day := it.Days[d-1]
		for m := 1; m <= 3; m++ {
			day.Nodes = append(day.Nodes, &models.Node{
				ID:        itinerary.FormatNodeID(d, m),
				Type:      models.NodeTypeAttraction,
				Title:     "Stop",
				StartTime: []string{"09:00", "11:00", "14:00"}[m-1],
				EndTime:   []string{"10:30", "12:30", "16:00"}[m-1],
				Status:    models.NodeStatusPlanned,
			})
		}
		day.MaxNodeSeq = 3
	}
	return it
}

func newTestEngine(t *testing.T, it *models.Itinerary) (*Engine, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Create(context.Background(), it))
	return NewEngine(st, store.NewLockMap()), st
}

func TestApplyInsertIntoEmptyDay(t *testing.T) {
	// S1: add museum to empty day 4.
	e, _ := newTestEngine(t, seedItinerary())
	att := models.NodeTypeAttraction
	cs := &models.ChangeSet{
		Scope: models.ScopeDay,
		Day:   intPtr(4),
		Ops: []models.Operation{{
			Op:  models.OpInsert,
			Day: 4,
			Node: &models.NodePatch{
				Title:     strPtr("Museum"),
				Type:      &att,
				StartTime: strPtr("13:30"),
				EndTime:   strPtr("15:30"),
			},
		}},
	}

	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, models.CommitStateCommitted, res.State)
	assert.Equal(t, []string{"day4_node1"}, res.Diff.Added)
	assert.Empty(t, res.Diff.Removed)
	assert.Empty(t, res.Diff.Updated)
	assert.Equal(t, 1, res.Diff.FromVersion)
	assert.Equal(t, 2, res.Diff.ToVersion)

	node := res.Itinerary.Days[3].Nodes[0]
	assert.Equal(t, "Museum", node.Title)
	assert.Equal(t, models.NodeTypeAttraction, node.Type)
	assert.Equal(t, "13:30", node.StartTime)
}

func TestApplyUnknownIDFailsWithAvailable(t *testing.T) {
	// S2: LLM proposes a reference to a nonexistent id.
	e, st := newTestEngine(t, func() *models.Itinerary {
		it := seedItinerary()
		it.Days[3].Nodes = []*models.Node{
			{ID: "day4_node1"}, {ID: "day4_node2"}, {ID: "day4_node3"},
		}
		it.Days[3].MaxNodeSeq = 3
		return it
	}())

	cs := &models.ChangeSet{Ops: []models.Operation{{
		Op:   models.OpReplace,
		ID:   "day4_node9",
		Node: &models.NodePatch{StartTime: strPtr("10:00")},
	}}}

	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, models.CommitStateNoChange, res.State)
	require.Len(t, res.OpStatuses, 1)
	st0 := res.OpStatuses[0]
	assert.False(t, st0.OK)
	assert.Equal(t, models.OpErrNodeNotFound, st0.Error)
	assert.Equal(t, []string{"day4_node1", "day4_node2", "day4_node3"}, st0.Available)
	assert.Contains(t, st0.Message, "Node with ID 'day4_node9' not found.")
	assert.Contains(t, st0.Message, "Available: day4_node1, day4_node2, day4_node3")

	// Version unchanged, nothing persisted.
	cur, err := st.Get(context.Background(), "it-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cur.Version)
}

func TestApplyPartialSuccess(t *testing.T) {
	// S4: replace ok, replace unknown, delete ok.
	e, _ := newTestEngine(t, seedItinerary())
	cs := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpReplace, ID: "day2_node2", Node: &models.NodePatch{Title: strPtr("New title")}},
		{Op: models.OpReplace, ID: "day2_node99", Node: &models.NodePatch{Title: strPtr("x")}},
		{Op: models.OpDelete, ID: "day2_node3"},
	}}

	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, models.CommitStateCommitted, res.State)
	assert.True(t, res.OpStatuses[0].OK)
	assert.False(t, res.OpStatuses[1].OK)
	assert.Equal(t, models.OpErrNodeNotFound, res.OpStatuses[1].Error)
	assert.True(t, res.OpStatuses[2].OK)
	assert.Empty(t, res.Diff.Added)
	assert.Equal(t, []string{"day2_node3"}, res.Diff.Removed)
	assert.Equal(t, []string{"day2_node2"}, res.Diff.Updated)
	assert.Equal(t, 2, res.Diff.ToVersion)
}

func TestBookingLockFlow(t *testing.T) {
	// S6: booking sets bookingRef+locked with respectLocks=false; a later
	// user edit with respectLocks=true fails with Locked.
	e, st := newTestEngine(t, seedItinerary())

	booking := &models.ChangeSet{
		Preferences: models.Preferences{RespectLocks: false},
		Ops: []models.Operation{{
			Op: models.OpUpdate,
			ID: "day3_node2",
			Fields: &models.FieldPatch{
				BookingRef: strPtr("BK123"),
				Locked:     boolPtr(true),
				AddLabels:  []string{"Booked"},
			},
		}},
	}
	res, err := e.Apply(context.Background(), "it-1", booking, "booking")
	require.NoError(t, err)
	require.Equal(t, models.CommitStateCommitted, res.State)

	_, node, _ := res.Itinerary.FindNode("day3_node2")
	require.NotNil(t, node)
	assert.True(t, node.Locked)
	require.NotNil(t, node.BookingRef)
	assert.Equal(t, "BK123", *node.BookingRef)
	assert.Contains(t, node.Labels, "Booked")

	userEdit := &models.ChangeSet{
		Preferences: models.Preferences{RespectLocks: true},
		Ops: []models.Operation{{
			Op:   models.OpReplace,
			ID:   "day3_node2",
			Node: &models.NodePatch{StartTime: strPtr("18:00")},
		}},
	}
	res2, err := e.Apply(context.Background(), "it-1", userEdit, "user")
	require.NoError(t, err)
	assert.Equal(t, models.CommitStateNoChange, res2.State)
	assert.Equal(t, models.OpErrLocked, res2.OpStatuses[0].Error)

	cur, err := st.Get(context.Background(), "it-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cur.Version) // not bumped by the failed edit
}

func TestDeleteThenInsertNeverReusesSequence(t *testing.T) {
	e, _ := newTestEngine(t, seedItinerary())
	cs := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpDelete, ID: "day2_node3"},
		{Op: models.OpInsert, Day: 2, Node: &models.NodePatch{Title: strPtr("Late dinner")}},
	}}
	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, []string{"day2_node4"}, res.Diff.Added)
}

func TestMoveBetweenDays(t *testing.T) {
	e, _ := newTestEngine(t, seedItinerary())
	cs := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpMove, ID: "day2_node1", ToDay: 3, Position: intPtr(0)},
	}}
	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, []string{"day2_node1"}, res.Diff.Removed)
	assert.Equal(t, []string{"day3_node4"}, res.Diff.Added)
	assert.Equal(t, "day3_node4", res.Itinerary.Days[2].Nodes[0].ID)

	// The old id is gone for good.
	cs2 := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpReplace, ID: "day2_node1", Node: &models.NodePatch{Title: strPtr("x")}},
	}}
	res2, err := e.Apply(context.Background(), "it-1", cs2, "user")
	require.NoError(t, err)
	assert.Equal(t, models.OpErrNodeNotFound, res2.OpStatuses[0].Error)

	// And inserting into day 2 does not resurrect it.
	cs3 := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpInsert, Day: 2, Node: &models.NodePatch{Title: strPtr("y")}},
	}}
	res3, err := e.Apply(context.Background(), "it-1", cs3, "user")
	require.NoError(t, err)
	assert.Equal(t, []string{"day2_node4"}, res3.Diff.Added)
}

func TestCrossDayIDAccepted(t *testing.T) {
	// An op whose target lives in a different day than the change set's
	// day hint still resolves: the prefix is informational, not routing.
	e, _ := newTestEngine(t, seedItinerary())
	cs := &models.ChangeSet{
		Scope: models.ScopeDay,
		Day:   intPtr(3),
		Ops: []models.Operation{
			{Op: models.OpReplace, ID: "day2_node1", Node: &models.NodePatch{Title: strPtr("Renamed")}},
		},
	}
	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.True(t, res.OpStatuses[0].OK)
}

func TestPreserveTimingShiftsOverlaps(t *testing.T) {
	e, _ := newTestEngine(t, seedItinerary())
	cs := &models.ChangeSet{
		Preferences: models.Preferences{PreserveTiming: true},
		Ops: []models.Operation{{
			Op:    models.OpInsert,
			After: strPtr("day2_node1"),
			Node: &models.NodePatch{
				Title:     strPtr("Coffee"),
				StartTime: strPtr("10:30"),
				EndTime:   strPtr("11:30"),
			},
		}},
	}
	res, err := e.Apply(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)

	day := res.Itinerary.Days[1]
	require.Len(t, day.Nodes, 4)
	assert.Equal(t, "11:30", day.Nodes[2].StartTime) // was 11:00, pushed by 30m
	assert.Equal(t, "13:00", day.Nodes[2].EndTime)
	assert.Equal(t, "14:00", day.Nodes[3].StartTime) // no overlap, untouched
}

func TestProposeDoesNotPersist(t *testing.T) {
	e, st := newTestEngine(t, seedItinerary())
	cs := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpDelete, ID: "day2_node1"},
	}}
	res, err := e.Propose(context.Background(), "it-1", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, []string{"day2_node1"}, res.Diff.Removed)
	assert.Equal(t, 1, res.Diff.FromVersion)
	assert.Equal(t, 1, res.Diff.ToVersion)
	assert.Equal(t, 2, res.Diff.PreviewVersion)

	cur, err := st.Get(context.Background(), "it-1")
	require.NoError(t, err)
	assert.Equal(t, 1, cur.Version)
	_, node, _ := cur.FindNode("day2_node1")
	assert.NotNil(t, node)
}

func TestUndoRestoresPriorVersion(t *testing.T) {
	e, _ := newTestEngine(t, seedItinerary())
	ctx := context.Background()

	cs := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpDelete, ID: "day2_node2"},
		{Op: models.OpInsert, Day: 4, Node: &models.NodePatch{Title: strPtr("Museum")}},
	}}
	applied, err := e.Apply(ctx, "it-1", cs, "user")
	require.NoError(t, err)
	require.Equal(t, 2, applied.Diff.ToVersion)

	undone, err := e.Undo(ctx, "it-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, undone.Diff.ToVersion)
	assert.ElementsMatch(t, []string{"day2_node2"}, undone.Diff.Added)
	assert.ElementsMatch(t, []string{"day4_node1"}, undone.Diff.Removed)

	// Byte-equivalent to the pre-change document, ignoring version and
	// updatedAt.
	restored := undone.Itinerary.Clone()
	original := seedItinerary()
	restored.Version = original.Version
	restored.UpdatedAt = original.UpdatedAt
	assert.Equal(t, original.Days, restored.Days)
}

func TestMigrationOnLoad(t *testing.T) {
	// S3: legacy ids are rewritten on first load through the engine.
	it := &models.Itinerary{
		ItineraryID: "it-legacy",
		Version:     1,
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-01",
		Days: []*models.Day{{
			DayNumber: 1,
			Nodes: []*models.Node{
				{ID: "node_att_day1_2274_7de9e730", Title: "A"},
				{ID: "node_meal_day1_1234_abc123", Title: "B"},
			},
		}},
	}
	st := store.NewMemoryStore()
	require.NoError(t, st.Create(context.Background(), it))
	e := NewEngine(st, store.NewLockMap())

	cs := &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpReplace, ID: "day1_node1", Node: &models.NodePatch{Title: strPtr("A2")}},
	}}
	res, err := e.Apply(context.Background(), "it-legacy", cs, "user")
	require.NoError(t, err)
	assert.Equal(t, models.CommitStateCommitted, res.State)
	// Version 1 (seed) → 2 (migration) → 3 (edit).
	assert.Equal(t, 3, res.Diff.ToVersion)
	assert.Equal(t, "day1_node1", res.Itinerary.Days[0].Nodes[0].ID)
	assert.Equal(t, "day1_node2", res.Itinerary.Days[0].Nodes[1].ID)
	assert.Equal(t, "A2", res.Itinerary.Days[0].Nodes[0].Title)
}

func TestVersionConflictSurfaces(t *testing.T) {
	it := seedItinerary()
	st := store.NewMemoryStore()
	require.NoError(t, st.Create(context.Background(), it))
	e := NewEngine(st, store.NewLockMap())

	// Simulate a competing writer bumping the version between our load
	// and our put by putting through a second engine first.
	other := NewEngine(st, store.NewLockMap())
	_, err := other.Apply(context.Background(), "it-1", &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpDelete, ID: "day2_node1"},
	}}, "user")
	require.NoError(t, err)

	// Now a stale put: reproduce by direct store access.
	stale := seedItinerary()
	stale.Version = 2
	err = st.Put(context.Background(), stale, 1)
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	// The engine itself serializes via locks, so a normal Apply resolves
	// against the fresh state and succeeds.
	res, err := e.Apply(context.Background(), "it-1", &models.ChangeSet{Ops: []models.Operation{
		{Op: models.OpDelete, ID: "day2_node2"},
	}}, "user")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Diff.ToVersion)
}
