package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/models"
)

func sampleItinerary() *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: "it-1",
		Destination: "Lisbon",
		Origin:      "Berlin",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-02",
		Themes:      []string{"food", "history"},
		Days: []*models.Day{
			{
				DayNumber: 1,
				Location:  "Alfama",
				Nodes: []*models.Node{
					{
						ID: "day1_node1", Title: "Castelo de S. Jorge", Type: models.NodeTypeAttraction,
						StartTime: "09:30", EndTime: "11:30",
						Labels: []string{"view", "unesco"},
						Tips:   []string{"buy tickets online", "go early"},
					},
					{
						ID: "day1_node2", Title: "Time Out Market", Type: models.NodeTypeMeal,
						StartTime: "12:30", EndTime: "14:00", Locked: true,
					},
				},
			},
			{DayNumber: 2},
		},
	}
}

func TestSummarizeFormat(t *testing.T) {
	s := NewWithCounter(HeuristicCounter{})
	out := s.Summarize(sampleItinerary(), 0)

	assert.Contains(t, out, "Day 1:")
	assert.Contains(t, out, "Day 2:")
	assert.Contains(t, out, "  day1_node1: Castelo de S. Jorge (attraction) [09:30-11:30]")
	assert.Contains(t, out, "  day1_node2: Time Out Market (meal) [12:30-14:00] [locked]")
	assert.Contains(t, out, "  No nodes")
	assert.True(t, strings.HasSuffix(out, Directive))
	assert.Contains(t, out, "tips: buy tickets online; go early")
	assert.Contains(t, out, "labels: view, unesco")
}

func TestSummarizeBudgetTruncatesFieldsBeforeNodes(t *testing.T) {
	s := NewWithCounter(HeuristicCounter{})
	it := sampleItinerary()

	full := s.Summarize(it, 0)
	fullTokens := HeuristicCounter{}.Count(full)

	// Squeeze below the full rendering: tips must disappear first, node
	// IDs must survive.
	out := s.Summarize(it, fullTokens-5)
	assert.NotContains(t, out, "tips:")
	assert.Contains(t, out, "day1_node1")
	assert.Contains(t, out, "day1_node2")
	assert.True(t, strings.HasSuffix(out, Directive))

	// Even an absurdly small budget never loses node lines.
	tiny := s.Summarize(it, 5)
	assert.Contains(t, tiny, "day1_node1")
	assert.Contains(t, tiny, "day1_node2")
	assert.NotContains(t, tiny, "tips:")
	assert.NotContains(t, tiny, "labels:")
}

func TestSummarizeEveryIDListedResolves(t *testing.T) {
	s := NewWithCounter(HeuristicCounter{})
	it := sampleItinerary()
	out := s.Summarize(it, 0)

	for _, d := range it.Days {
		for _, n := range d.Nodes {
			require.Contains(t, out, n.ID)
		}
	}
}
