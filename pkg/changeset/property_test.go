package changeset

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
)

// genOperation produces a random operation: day numbers and sequence
// numbers range past the valid bounds so both resolvable and unresolvable
// targets occur.
func genOperation() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 4), // op kind selector
		gen.IntRange(1, 6), // day (valid: 1..4)
		gen.IntRange(1, 6), // seq (valid: varies)
		gen.IntRange(1, 6), // toDay
		gen.AlphaString(),
	).Map(func(vs []interface{}) models.Operation {
		kind := vs[0].(int)
		day := vs[1].(int)
		seq := vs[2].(int)
		toDay := vs[3].(int)
		title := vs[4].(string)
		id := itinerary.FormatNodeID(day, seq)

		switch kind {
		case 0:
			return models.Operation{Op: models.OpInsert, Day: day, Node: &models.NodePatch{Title: &title}}
		case 1:
			return models.Operation{Op: models.OpReplace, ID: id, Node: &models.NodePatch{Title: &title}}
		case 2:
			return models.Operation{Op: models.OpDelete, ID: id}
		case 3:
			return models.Operation{Op: models.OpMove, ID: id, ToDay: toDay}
		default:
			locked := seq%2 == 0
			return models.Operation{Op: models.OpUpdate, ID: id, Fields: &models.FieldPatch{Locked: &locked}}
		}
	})
}

func propItinerary() *models.Itinerary {
	it := seedItinerary()
	// One locked, booked node for the lock property.
	ref := "BK-PROP"
	it.Days[2].Nodes[1].Locked = true
	it.Days[2].Nodes[1].BookingRef = &ref
	return it
}

func TestChangeSetProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("node ids stay canonical and day-consistent", prop.ForAll(
		func(ops []models.Operation) bool {
			it := propItinerary()
			applyOps(it, &models.ChangeSet{Ops: ops}, "user")
			for _, d := range it.Days {
				for _, n := range d.Nodes {
					dayNum, err := itinerary.ExtractDay(n.ID)
					if err != nil || dayNum != d.DayNumber {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(genOperation()),
	))

	properties.Property("sequences stay distinct and the watermark never shrinks", prop.ForAll(
		func(ops []models.Operation) bool {
			it := propItinerary()
			before := make(map[int]int)
			for _, d := range it.Days {
				w := d.MaxNodeSeq
				if m := itinerary.MaxSeq(d); m > w {
					w = m
				}
				before[d.DayNumber] = w
			}
			applyOps(it, &models.ChangeSet{Ops: ops}, "user")
			for _, d := range it.Days {
				seen := make(map[int]bool)
				for _, n := range d.Nodes {
					seq, err := itinerary.ExtractSeq(n.ID)
					if err != nil || seen[seq] {
						return false
					}
					seen[seq] = true
					if seq > d.MaxNodeSeq && d.MaxNodeSeq != 0 {
						return false
					}
				}
				w := d.MaxNodeSeq
				if m := itinerary.MaxSeq(d); m > w {
					w = m
				}
				if w < before[d.DayNumber] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genOperation()),
	))

	properties.Property("the structural validator passes after any op sequence", prop.ForAll(
		func(ops []models.Operation) bool {
			it := propItinerary()
			// Times are caller-supplied and only shifted under
			// preserveTiming; drop them so the validator exercises the
			// invariants the engine itself maintains.
			for _, d := range it.Days {
				for _, n := range d.Nodes {
					n.StartTime, n.EndTime = "", ""
				}
			}
			applyOps(it, &models.ChangeSet{Ops: ops}, "user")
			return itinerary.Validate(it) == nil
		},
		gen.SliceOf(genOperation()),
	))

	properties.Property("locked nodes never change under respectLocks", prop.ForAll(
		func(ops []models.Operation) bool {
			it := propItinerary()
			_, lockedBefore, _ := it.FindNode("day3_node2")
			snap, _ := json.Marshal(lockedBefore)

			applyOps(it, &models.ChangeSet{
				Preferences: models.Preferences{RespectLocks: true},
				Ops:         ops,
			}, "user")

			_, lockedAfter, _ := it.FindNode("day3_node2")
			if lockedAfter == nil {
				return false
			}
			after, _ := json.Marshal(lockedAfter)
			return string(snap) == string(after)
		},
		gen.SliceOf(genOperation()),
	))

	properties.TestingRun(t)
}
