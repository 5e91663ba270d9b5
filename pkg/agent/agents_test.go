package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/models"
)

func TestSkeletonPlannerBuildsInsertChangeSet(t *testing.T) {
	gw, provider := newScriptedGateway(t, `{
		"days": [
			{"day": 1, "location": "Alfama", "nodes": [
				{"type": "attraction", "title": "Castle morning", "startTime": "09:00", "endTime": "12:00"},
				{"type": "meal", "title": "Lunch"},
				{"type": "transport", "title": "Tram to Belém"}
			]},
			{"day": 2, "nodes": [
				{"type": "attraction", "title": "Day trip"}
			]},
			{"day": 9, "nodes": [
				{"type": "attraction", "title": "Outside the trip span"}
			]}
		]
	}`)

	planner := NewSkeletonPlanner(nil, gw, testPromptBuilder())
	res, err := planner.Execute(context.Background(), &ExecContext{
		ItineraryID: "it-test",
		Request: &models.CreateItineraryRequest{
			Destination: "Lisbon",
			StartDate:   "2026-09-01",
			EndDate:     "2026-09-02",
			Themes:      []string{"history"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ExecStatusCompleted, res.Status)
	require.NotNil(t, res.ChangeSet)

	// Day 9 is outside the 2-day span and dropped.
	require.Len(t, res.ChangeSet.Ops, 4)
	for _, op := range res.ChangeSet.Ops {
		assert.Equal(t, models.OpInsert, op.Op)
		assert.NotNil(t, op.Node)
	}
	assert.Equal(t, 1, res.ChangeSet.Ops[0].Day)
	assert.Equal(t, "Castle morning", *res.ChangeSet.Ops[0].Node.Title)
	assert.Equal(t, 2, res.ChangeSet.Ops[3].Day)

	// The prompt names the destination and the day span.
	req := provider.lastRequest()
	assert.Contains(t, req.Prompt, "Lisbon")
	assert.Contains(t, req.Prompt, "2-day")
}

func TestSkeletonPlannerRejectsEmptyScaffold(t *testing.T) {
	gw, _ := newScriptedGateway(t, `{"days": [{"day": 5, "nodes": [{"type": "meal", "title": "x"}]}]}`)

	planner := NewSkeletonPlanner(nil, gw, testPromptBuilder())
	res, err := planner.Execute(context.Background(), &ExecContext{
		Request: &models.CreateItineraryRequest{
			Destination: "Lisbon",
			StartDate:   "2026-09-01",
			EndDate:     "2026-09-02",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ExecStatusFailed, res.Status)
	assert.Error(t, res.Err)
}

func TestActivityAgentFillsOnlyItsSlots(t *testing.T) {
	gw, provider := newScriptedGateway(t, `{
		"updates": [
			{"id": "day1_node1", "title": "Castelo de São Jorge",
			 "location": {"name": "Castelo de S. Jorge", "lat": 38.7139, "lng": -9.1335},
			 "startTime": "09:00", "endTime": "11:30", "cost": 15,
			 "tips": ["buy tickets online"]},
			{"id": "day2_node1", "title": "Sintra day trip"},
			{"id": "day9_node9", "title": "Hallucinated slot"}
		]
	}`)

	activity := NewActivityAgent(nil, gw, testPromptBuilder())
	res, err := activity.Execute(context.Background(), &ExecContext{
		ItineraryID: "it-test",
		Itinerary:   testItinerary(),
	})
	require.NoError(t, err)
	require.Equal(t, ExecStatusCompleted, res.Status)
	require.NotNil(t, res.ChangeSet)

	// day9_node9 is not in the allowed set and dropped.
	require.Len(t, res.ChangeSet.Ops, 2)
	assert.Equal(t, models.OpReplace, res.ChangeSet.Ops[0].Op)
	assert.Equal(t, "day1_node1", res.ChangeSet.Ops[0].ID)
	assert.Equal(t, "Castelo de São Jorge", *res.ChangeSet.Ops[0].Node.Title)
	require.NotNil(t, res.ChangeSet.Ops[0].Node.Cost)
	assert.Equal(t, 15.0, *res.ChangeSet.Ops[0].Node.Cost)

	// The prompt lists exactly the attraction/freetime IDs, not the meal
	// or transport slots.
	req := provider.lastRequest()
	assert.Contains(t, req.Prompt, "day1_node1")
	assert.Contains(t, req.Prompt, "day2_node1")
	line := findLine(req.Prompt, "Day 1 slots:")
	assert.Contains(t, line, "day1_node1")
	assert.NotContains(t, line, "day1_node2")
	assert.NotContains(t, line, "day1_node3")
}

func TestPopulatorSkipsWhenNoMatchingSlots(t *testing.T) {
	gw, provider := newScriptedGateway(t, `{"updates": []}`)

	it := testItinerary()
	for _, d := range it.Days {
		for _, n := range d.Nodes {
			n.Type = models.NodeTypeFreeTime
		}
	}

	meal := NewMealAgent(nil, gw, testPromptBuilder())
	res, err := meal.Execute(context.Background(), &ExecContext{Itinerary: it})
	require.NoError(t, err)
	assert.Equal(t, ExecStatusSkipped, res.Status)
	assert.Zero(t, provider.callCount())
}

func TestPopulatorSkipsLockedNodes(t *testing.T) {
	gw, _ := newScriptedGateway(t, `{"updates": [{"id": "day1_node2", "title": "Belcanto"}]}`)

	it := testItinerary()
	_, node, _ := it.FindNode("day1_node2")
	node.Locked = true

	meal := NewMealAgent(nil, gw, testPromptBuilder())
	res, err := meal.Execute(context.Background(), &ExecContext{Itinerary: it})
	require.NoError(t, err)

	// The only meal slot is locked, so there is nothing to populate.
	assert.Equal(t, ExecStatusSkipped, res.Status)
}

func TestEnrichmentAgentEmitsTipsAndLabels(t *testing.T) {
	gw, _ := newScriptedGateway(t, `{
		"enrichments": [
			{"id": "day1_node1", "tips": ["go early"], "labels": ["unesco"],
			 "links": ["https://example.org/castle"]},
			{"id": "day1_node3", "tips": ["should be dropped: transport"]},
			{"id": "day2_node1", "labels": ["day-trip"]}
		]
	}`)

	enrich := NewEnrichmentAgent(nil, gw, testPromptBuilder())
	res, err := enrich.Execute(context.Background(), &ExecContext{Itinerary: testItinerary()})
	require.NoError(t, err)
	require.Equal(t, ExecStatusCompleted, res.Status)
	require.NotNil(t, res.ChangeSet)

	// day1_node1 → tips replace + labels/links update; day2_node1 → one
	// update; the transport node is ineligible.
	require.Len(t, res.ChangeSet.Ops, 3)
	assert.Equal(t, models.OpReplace, res.ChangeSet.Ops[0].Op)
	assert.Equal(t, []string{"go early"}, res.ChangeSet.Ops[0].Node.Tips)
	assert.Equal(t, models.OpUpdate, res.ChangeSet.Ops[1].Op)
	assert.Equal(t, []string{"unesco"}, res.ChangeSet.Ops[1].Fields.AddLabels)
	assert.Equal(t, "day2_node1", res.ChangeSet.Ops[2].ID)
}

func TestIntentClassifierExtractsEntities(t *testing.T) {
	gw, _ := newScriptedGateway(t, `{
		"intent": "edit", "day": 2, "nodeIds": ["day2_node1"], "operation": "remove"
	}`)

	classifier := NewIntentClassifier(nil, gw, testPromptBuilder())
	res, err := classifier.Execute(context.Background(), &ExecContext{
		Itinerary: testItinerary(),
		Message:   "drop the day trip on day 2",
	})
	require.NoError(t, err)
	require.Equal(t, ExecStatusCompleted, res.Status)
	require.NotNil(t, res.Intent)
	assert.True(t, res.Intent.IsEdit())
	require.NotNil(t, res.Intent.Day)
	assert.Equal(t, 2, *res.Intent.Day)
	assert.Equal(t, []string{"day2_node1"}, res.Intent.NodeIDs)
	assert.Equal(t, "remove", res.Intent.Operation)
	assert.Nil(t, res.ChangeSet)
}

func TestEditorAgentProducesChangeSet(t *testing.T) {
	gw, provider := newScriptedGateway(t, `{
		"scope": "day", "day": 1,
		"preferences": {"respectLocks": false},
		"ops": [
			{"op": "delete", "id": "day1_node2"},
			{"op": "insert", "day": 1, "after": "day1_node1",
			 "node": {"type": "meal", "title": "Time Out Market"}}
		]
	}`)

	day := 2
	editor := NewEditorAgent(nil, gw, testPromptBuilder())
	res, err := editor.Execute(context.Background(), &ExecContext{
		Itinerary: testItinerary(),
		Message:   "swap lunch for the market",
		Prev: map[string]*Result{
			"intent-classifier": {Status: ExecStatusCompleted, Intent: &Intent{
				Kind: "edit", Day: &day, NodeIDs: []string{"day1_node2"}, Operation: "change",
			}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ExecStatusCompleted, res.Status)
	require.NotNil(t, res.ChangeSet)
	require.Len(t, res.ChangeSet.Ops, 2)
	assert.Equal(t, models.OpDelete, res.ChangeSet.Ops[0].Op)

	// Lock protection is not the model's to disable.
	assert.True(t, res.ChangeSet.Preferences.RespectLocks)

	// Classifier entities reach the prompt; the summary exposes exact IDs.
	req := provider.lastRequest()
	assert.Contains(t, req.Prompt, "day1_node2")
	assert.Contains(t, req.Prompt, "EXACT IDs")
}

func TestEditorAgentPassesThroughNonEditIntent(t *testing.T) {
	gw, provider := newScriptedGateway(t, `{"should": "never be called"}`)

	editor := NewEditorAgent(nil, gw, testPromptBuilder())
	res, err := editor.Execute(context.Background(), &ExecContext{
		Itinerary: testItinerary(),
		Message:   "how much walking is day 1?",
		Prev: map[string]*Result{
			"intent-classifier": {Status: ExecStatusCompleted, Intent: &Intent{
				Kind: "question", Reply: "Day 1 covers about 6 km on foot.",
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, ExecStatusCompleted, res.Status)
	assert.Nil(t, res.ChangeSet)
	assert.Equal(t, "Day 1 covers about 6 km on foot.", res.Analysis)
	assert.Zero(t, provider.callCount())
}

// findLine returns the first line of s containing substr.
func findLine(s, substr string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}
