package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/models"
)

func legacyItinerary() *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: "it-legacy",
		Version:     3,
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-01",
		Days: []*models.Day{
			{
				DayNumber: 1,
				Nodes: []*models.Node{
					{ID: "node_att_day1_2274_7de9e730", Title: "Louvre"},
					{ID: "node_meal_day1_1234_abc123", Title: "Bistro"},
				},
				Edges: []models.TransitEdge{
					{FromNodeID: "node_att_day1_2274_7de9e730", ToNodeID: "node_meal_day1_1234_abc123", Mode: "walk"},
				},
			},
		},
	}
}

func TestMigrateRewritesLegacyIDs(t *testing.T) {
	it := legacyItinerary()
	out := Migrate(it)

	require.NotSame(t, it, out)
	require.Len(t, out.Days[0].Nodes, 2)
	assert.Equal(t, "day1_node1", out.Days[0].Nodes[0].ID)
	assert.Equal(t, "day1_node2", out.Days[0].Nodes[1].ID)
	// Visit order preserved.
	assert.Equal(t, "Louvre", out.Days[0].Nodes[0].Title)
	assert.Equal(t, "Bistro", out.Days[0].Nodes[1].Title)
	// Edges follow the rename.
	assert.Equal(t, "day1_node1", out.Days[0].Edges[0].FromNodeID)
	assert.Equal(t, "day1_node2", out.Days[0].Edges[0].ToNodeID)
	// Version bumped once.
	assert.Equal(t, 4, out.Version)
	assert.NotZero(t, out.UpdatedAt)

	// Original untouched.
	assert.Equal(t, "node_att_day1_2274_7de9e730", it.Days[0].Nodes[0].ID)
	assert.Equal(t, 3, it.Version)
}

func TestMigrateIdempotent(t *testing.T) {
	once := Migrate(legacyItinerary())
	twice := Migrate(once)
	// Already-canonical document passes through without another bump.
	assert.Same(t, once, twice)
	assert.Equal(t, 4, twice.Version)
}

func TestMigrateNoopWhenCanonical(t *testing.T) {
	it := &models.Itinerary{
		Version: 1,
		Days: []*models.Day{
			{DayNumber: 1, Nodes: []*models.Node{{ID: "day1_node1"}}},
		},
	}
	assert.Same(t, it, Migrate(it))
	assert.Equal(t, 1, it.Version)
}

func TestMigrateGracefulDegradation(t *testing.T) {
	it := legacyItinerary()
	it.Days[0].DayNumber = 0 // malformed document — rewrite must abort
	out := Migrate(it)
	assert.Same(t, it, out)
	assert.Equal(t, "node_att_day1_2274_7de9e730", out.Days[0].Nodes[0].ID)
	assert.Equal(t, 3, out.Version)
}

func TestValidate(t *testing.T) {
	t.Run("accepts canonical document", func(t *testing.T) {
		it := Migrate(legacyItinerary())
		assert.NoError(t, Validate(it))
	})

	t.Run("rejects id in wrong day", func(t *testing.T) {
		it := Migrate(legacyItinerary())
		it.Days[0].Nodes[0].ID = "day2_node1"
		assert.Error(t, Validate(it))
	})

	t.Run("rejects duplicate sequence", func(t *testing.T) {
		it := Migrate(legacyItinerary())
		it.Days[0].Nodes[1].ID = "day1_node1"
		assert.Error(t, Validate(it))
	})

	t.Run("rejects unordered times", func(t *testing.T) {
		it := Migrate(legacyItinerary())
		it.Days[0].Nodes[0].StartTime = "15:00"
		it.Days[0].Nodes[1].StartTime = "09:00"
		assert.Error(t, Validate(it))
	})

	t.Run("rejects bookingRef without lock", func(t *testing.T) {
		it := Migrate(legacyItinerary())
		ref := "BK-1"
		it.Days[0].Nodes[0].BookingRef = &ref
		assert.Error(t, Validate(it))
		it.Days[0].Nodes[0].Locked = true
		assert.NoError(t, Validate(it))
	})

	t.Run("rejects day count mismatch", func(t *testing.T) {
		it := Migrate(legacyItinerary())
		it.EndDate = "2026-05-03"
		assert.Error(t, Validate(it))
	})
}

func TestDateHelpers(t *testing.T) {
	n, err := DayCount("2026-05-01", "2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = DayCount("2026-05-04", "2026-05-01")
	assert.Error(t, err)

	d, err := DateForDay("2026-05-01", 3)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-03", d)
}
