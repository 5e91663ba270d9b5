package changeset

import (
	"time"

	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
)

// applyOps executes the change set's operations in order against the
// working document. Each operation resolves its own target by exact ID
// anywhere in the document; the change set's scope/day are advisory.
// Failed operations are recorded and skipped; later operations see the
// state left by the last success.
func applyOps(it *models.Itinerary, cs *models.ChangeSet, updatedBy string) ([]models.OpStatus, models.Diff) {
	statuses := make([]models.OpStatus, 0, len(cs.Ops))
	acc := newDiffAccumulator()
	now := time.Now().UnixMilli()

	for i, op := range cs.Ops {
		var st models.OpStatus
		switch op.Op {
		case models.OpInsert:
			st = applyInsert(it, i, op, cs.Preferences, updatedBy, now)
			if st.OK {
				acc.added(st.NodeID)
			}
		case models.OpReplace:
			st = applyReplace(it, i, op, cs.Preferences, updatedBy, now)
			if st.OK {
				acc.updated(st.NodeID)
			}
		case models.OpDelete:
			st = applyDelete(it, i, op, cs.Preferences)
			if st.OK {
				acc.removed(st.NodeID)
			}
		case models.OpMove:
			st = applyMove(it, i, op, cs.Preferences, updatedBy, now)
			if st.OK {
				acc.removed(op.ID)
				acc.added(st.NodeID)
			}
		case models.OpUpdate:
			st = applyUpdate(it, i, op, cs.Preferences, updatedBy, now)
			if st.OK {
				acc.updated(st.NodeID)
			}
		default:
			st = invalidShapeStatus(i, op.Op, "unknown operation kind")
		}
		statuses = append(statuses, st)
	}
	return statuses, acc.diff()
}

func applyInsert(it *models.Itinerary, idx int, op models.Operation, prefs models.Preferences, updatedBy string, now int64) models.OpStatus {
	if op.Node == nil {
		return invalidShapeStatus(idx, op.Op, "insert requires a node payload")
	}

	var day *models.Day
	insertAt := -1 // -1 = end of day

	if op.After != nil && *op.After != "" {
		afterDay, _, afterIdx := it.FindNode(*op.After)
		if afterDay == nil {
			return notFoundStatus(idx, op.Op, it, *op.After)
		}
		day = afterDay
		insertAt = afterIdx + 1
	} else {
		if op.Day < 1 {
			return invalidShapeStatus(idx, op.Op, "insert requires either 'after' or a target 'day'")
		}
		day = it.DayByNumber(op.Day)
		if day == nil {
			return dayOutOfRangeStatus(idx, op.Op, op.Day, len(it.Days))
		}
		if op.Position != nil {
			insertAt = clamp(*op.Position, 0, len(day.Nodes))
		}
	}

	id, err := itinerary.AllocateNodeID(it, day.DayNumber)
	if err != nil {
		return invalidShapeStatus(idx, op.Op, err.Error())
	}

	node := &models.Node{
		ID:        id,
		Type:      models.NodeTypeFreeTime,
		Status:    models.NodeStatusPlanned,
		UpdatedBy: updatedBy,
		UpdatedAt: now,
	}
	overlayNodePatch(node, op.Node)

	if insertAt < 0 || insertAt > len(day.Nodes) {
		insertAt = len(day.Nodes)
	}
	day.Nodes = append(day.Nodes, nil)
	copy(day.Nodes[insertAt+1:], day.Nodes[insertAt:])
	day.Nodes[insertAt] = node

	if prefs.PreserveTiming {
		shiftTimesFrom(day, insertAt)
	}

	return models.OpStatus{Index: idx, Op: op.Op, OK: true, NodeID: id}
}

func applyReplace(it *models.Itinerary, idx int, op models.Operation, prefs models.Preferences, updatedBy string, now int64) models.OpStatus {
	if op.ID == "" {
		return invalidShapeStatus(idx, op.Op, "replace requires an id")
	}
	if op.Node == nil {
		return invalidShapeStatus(idx, op.Op, "replace requires a node payload")
	}
	_, node, _ := it.FindNode(op.ID)
	if node == nil {
		return notFoundStatus(idx, op.Op, it, op.ID)
	}
	if prefs.RespectLocks && node.Locked {
		return lockedStatus(idx, op.Op, op.ID)
	}

	// userFirst: an agent-side replace must not clobber fields the user
	// already set by hand; it may only fill what is still empty.
	fillOnly := prefs.UserFirst && updatedBy != "user" && node.UpdatedBy == "user"
	overlayNodePatchGuarded(node, op.Node, fillOnly)
	node.UpdatedBy = updatedBy
	node.UpdatedAt = now

	return models.OpStatus{Index: idx, Op: op.Op, OK: true, NodeID: op.ID}
}

func applyDelete(it *models.Itinerary, idx int, op models.Operation, prefs models.Preferences) models.OpStatus {
	if op.ID == "" {
		return invalidShapeStatus(idx, op.Op, "delete requires an id")
	}
	day, node, pos := it.FindNode(op.ID)
	if node == nil {
		return notFoundStatus(idx, op.Op, it, op.ID)
	}
	if prefs.RespectLocks && node.Locked {
		return lockedStatus(idx, op.Op, op.ID)
	}

	removeNodeAt(day, pos)
	return models.OpStatus{Index: idx, Op: op.Op, OK: true, NodeID: op.ID}
}

func applyMove(it *models.Itinerary, idx int, op models.Operation, prefs models.Preferences, updatedBy string, now int64) models.OpStatus {
	if op.ID == "" {
		return invalidShapeStatus(idx, op.Op, "move requires an id")
	}
	if op.ToDay < 1 {
		return invalidShapeStatus(idx, op.Op, "move requires a toDay")
	}
	srcDay, node, pos := it.FindNode(op.ID)
	if node == nil {
		return notFoundStatus(idx, op.Op, it, op.ID)
	}
	if prefs.RespectLocks && node.Locked {
		return lockedStatus(idx, op.Op, op.ID)
	}
	destDay := it.DayByNumber(op.ToDay)
	if destDay == nil {
		return dayOutOfRangeStatus(idx, op.Op, op.ToDay, len(it.Days))
	}

	// Remove from the source day first; the source sequence is burned,
	// never reclaimed.
	moved := node.Clone()
	removeNodeAt(srcDay, pos)

	newID, err := itinerary.AllocateNodeID(it, destDay.DayNumber)
	if err != nil {
		return invalidShapeStatus(idx, op.Op, err.Error())
	}
	moved.ID = newID
	moved.UpdatedBy = updatedBy
	moved.UpdatedAt = now

	insertAt := len(destDay.Nodes)
	if op.Position != nil {
		insertAt = clamp(*op.Position, 0, len(destDay.Nodes))
	}
	destDay.Nodes = append(destDay.Nodes, nil)
	copy(destDay.Nodes[insertAt+1:], destDay.Nodes[insertAt:])
	destDay.Nodes[insertAt] = moved

	return models.OpStatus{Index: idx, Op: op.Op, OK: true, NodeID: newID}
}

func applyUpdate(it *models.Itinerary, idx int, op models.Operation, prefs models.Preferences, updatedBy string, now int64) models.OpStatus {
	if op.ID == "" {
		return invalidShapeStatus(idx, op.Op, "update requires an id")
	}
	if op.Fields == nil {
		return invalidShapeStatus(idx, op.Op, "update requires a fields diff")
	}
	_, node, _ := it.FindNode(op.ID)
	if node == nil {
		return notFoundStatus(idx, op.Op, it, op.ID)
	}
	if prefs.RespectLocks && node.Locked {
		return lockedStatus(idx, op.Op, op.ID)
	}

	f := op.Fields
	if f.Labels != nil {
		node.Labels = append([]string(nil), f.Labels...)
	}
	for _, l := range f.AddLabels {
		if !containsString(node.Labels, l) {
			node.Labels = append(node.Labels, l)
		}
	}
	if f.Links != nil {
		node.Links = append([]string(nil), f.Links...)
	}
	if f.Status != nil {
		node.Status = *f.Status
	}
	if f.Cost != nil {
		node.Cost = *f.Cost
	}
	if f.BookingRef != nil {
		if *f.BookingRef == "" {
			node.BookingRef = nil
		} else {
			ref := *f.BookingRef
			node.BookingRef = &ref
		}
	}
	if f.Locked != nil {
		node.Locked = *f.Locked
	}
	// A booking reference always implies a locked node.
	if node.BookingRef != nil && *node.BookingRef != "" {
		node.Locked = true
	}
	node.UpdatedBy = updatedBy
	node.UpdatedAt = now

	return models.OpStatus{Index: idx, Op: op.Op, OK: true, NodeID: op.ID}
}

// removeNodeAt deletes the node at pos from the day, burns its sequence
// number in the watermark, and drops transit edges touching it.
func removeNodeAt(day *models.Day, pos int) {
	id := day.Nodes[pos].ID
	itinerary.BumpWatermark(day)
	day.Nodes = append(day.Nodes[:pos], day.Nodes[pos+1:]...)
	if len(day.Edges) > 0 {
		kept := day.Edges[:0]
		for _, e := range day.Edges {
			if e.FromNodeID != id && e.ToNodeID != id {
				kept = append(kept, e)
			}
		}
		day.Edges = kept
	}
}

// overlayNodePatch copies every provided patch field onto the node.
func overlayNodePatch(node *models.Node, p *models.NodePatch) {
	overlayNodePatchGuarded(node, p, false)
}

// overlayNodePatchGuarded copies patch fields onto the node. With fillOnly
// set, a field is only written when the node's current value is empty.
func overlayNodePatchGuarded(node *models.Node, p *models.NodePatch, fillOnly bool) {
	if p.Type != nil && (!fillOnly || node.Type == "") {
		node.Type = *p.Type
	}
	if p.Title != nil && (!fillOnly || node.Title == "") {
		node.Title = *p.Title
	}
	if p.Location != nil && (!fillOnly || node.Location == nil) {
		loc := *p.Location
		node.Location = &loc
	}
	if p.StartTime != nil && (!fillOnly || node.StartTime == "") {
		node.StartTime = *p.StartTime
	}
	if p.EndTime != nil && (!fillOnly || node.EndTime == "") {
		node.EndTime = *p.EndTime
	}
	if p.Cost != nil && (!fillOnly || node.Cost == 0) {
		node.Cost = *p.Cost
	}
	if p.Tips != nil && (!fillOnly || len(node.Tips) == 0) {
		node.Tips = append([]string(nil), p.Tips...)
	}
	if p.Links != nil && (!fillOnly || len(node.Links) == 0) {
		node.Links = append([]string(nil), p.Links...)
	}
	if p.Status != nil && (!fillOnly || node.Status == "") {
		node.Status = *p.Status
	}
}

// diffAccumulator builds the change set diff with order-preserving
// deduplication. A node inserted and then updated in the same change set
// counts only as added; one inserted and then deleted cancels out.
type diffAccumulator struct {
	addedIDs, removedIDs, updatedIDs []string
	addedSet                         map[string]bool
}

func newDiffAccumulator() *diffAccumulator {
	return &diffAccumulator{addedSet: make(map[string]bool)}
}

func (a *diffAccumulator) added(id string) {
	if !a.addedSet[id] {
		a.addedSet[id] = true
		a.addedIDs = append(a.addedIDs, id)
	}
}

func (a *diffAccumulator) removed(id string) {
	if a.addedSet[id] {
		delete(a.addedSet, id)
		a.addedIDs = deleteString(a.addedIDs, id)
		a.updatedIDs = deleteString(a.updatedIDs, id)
		return
	}
	if !containsString(a.removedIDs, id) {
		a.removedIDs = append(a.removedIDs, id)
	}
	a.updatedIDs = deleteString(a.updatedIDs, id)
}

func (a *diffAccumulator) updated(id string) {
	if a.addedSet[id] || containsString(a.updatedIDs, id) {
		return
	}
	a.updatedIDs = append(a.updatedIDs, id)
}

func (a *diffAccumulator) diff() models.Diff {
	d := models.Diff{Added: []string{}, Removed: []string{}, Updated: []string{}}
	d.Added = append(d.Added, a.addedIDs...)
	d.Removed = append(d.Removed, a.removedIDs...)
	d.Updated = append(d.Updated, a.updatedIDs...)
	return d
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func deleteString(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
