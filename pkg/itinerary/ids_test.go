package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/models"
)

func TestIsCanonicalID(t *testing.T) {
	assert.True(t, IsCanonicalID("day1_node1"))
	assert.True(t, IsCanonicalID("day12_node345"))
	assert.False(t, IsCanonicalID("node_att_day1_2274_7de9e730"))
	assert.False(t, IsCanonicalID("day1_node"))
	assert.False(t, IsCanonicalID("day_node1"))
	assert.False(t, IsCanonicalID("Day1_node1"))
	assert.False(t, IsCanonicalID(""))
	assert.False(t, IsCanonicalID("xday1_node1x"))
}

func TestExtractDayAndSeq(t *testing.T) {
	day, err := ExtractDay("day4_node9")
	require.NoError(t, err)
	assert.Equal(t, 4, day)

	seq, err := ExtractSeq("day4_node9")
	require.NoError(t, err)
	assert.Equal(t, 9, seq)

	_, err = ExtractDay("banana")
	assert.ErrorIs(t, err, ErrInvalidIDFormat)
	_, err = ExtractSeq("day4node9")
	assert.ErrorIs(t, err, ErrInvalidIDFormat)
}

func TestAllocateNodeID(t *testing.T) {
	it := &models.Itinerary{
		ItineraryID: "it-1",
		Days: []*models.Day{
			{DayNumber: 1, Nodes: []*models.Node{
				{ID: "day1_node1"},
				{ID: "day1_node3"},
			}},
			{DayNumber: 2},
		},
	}

	t.Run("returns max+1 for populated day", func(t *testing.T) {
		id, err := AllocateNodeID(it, 1)
		require.NoError(t, err)
		assert.Equal(t, "day1_node4", id)
	})

	t.Run("returns node1 for empty day", func(t *testing.T) {
		id, err := AllocateNodeID(it, 2)
		require.NoError(t, err)
		assert.Equal(t, "day2_node1", id)
	})

	t.Run("fails for unknown day", func(t *testing.T) {
		_, err := AllocateNodeID(it, 7)
		assert.Error(t, err)
	})

	t.Run("does not renumber after delete", func(t *testing.T) {
		// Remove day1_node3; max ever used must still grow past 3.
		it.Days[0].Nodes = it.Days[0].Nodes[:1]
		it.Days[0].Nodes = append(it.Days[0].Nodes, &models.Node{ID: "day1_node4"})
		id, err := AllocateNodeID(it, 1)
		require.NoError(t, err)
		assert.Equal(t, "day1_node5", id)
	})

	t.Run("ignores legacy ids when scanning", func(t *testing.T) {
		it.Days[1].Nodes = []*models.Node{{ID: "node_meal_day2_legacy"}}
		id, err := AllocateNodeID(it, 2)
		require.NoError(t, err)
		assert.Equal(t, "day2_node1", id)
	})
}
