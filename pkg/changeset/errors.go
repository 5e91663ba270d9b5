// Package changeset implements the change engine: validation and
// application of ordered edit operations against an itinerary, with strict
// ID resolution, per-operation statuses, diff computation, propose mode,
// and version-restore undo.
package changeset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
)

var (
	// ErrLoadFailed aborts a commit: the document could not be loaded.
	ErrLoadFailed = errors.New("itinerary load failed")

	// ErrPersistFailed aborts a commit: the document could not be saved.
	// Version conflicts are NOT wrapped in this; they surface as
	// store.ErrVersionConflict so the orchestrator can retry.
	ErrPersistFailed = errors.New("itinerary persist failed")
)

// notFoundStatus builds the failed OpStatus for an unresolvable node ID.
// The message names the failing ID and lists the valid IDs in scope, per
// the user-visible message contract.
func notFoundStatus(idx int, op models.OpKind, it *models.Itinerary, id string) models.OpStatus {
	available := availableIDs(it, id)
	msg := fmt.Sprintf("Node with ID '%s' not found.", id)
	if len(available) > 0 {
		msg += " Available: " + strings.Join(available, ", ")
	}
	return models.OpStatus{
		Index:     idx,
		Op:        op,
		Error:     models.OpErrNodeNotFound,
		Message:   msg,
		Available: available,
	}
}

// availableIDs returns the node IDs a failed reference should be diagnosed
// against: the day named by the ID's day{N}_ prefix when that day exists,
// otherwise every node ID in the document.
func availableIDs(it *models.Itinerary, id string) []string {
	if dayNum, err := itinerary.ExtractDay(id); err == nil {
		if day := it.DayByNumber(dayNum); day != nil {
			return day.NodeIDs()
		}
	}
	var all []string
	for _, d := range it.Days {
		all = append(all, d.NodeIDs()...)
	}
	return all
}

func lockedStatus(idx int, op models.OpKind, id string) models.OpStatus {
	return models.OpStatus{
		Index:   idx,
		Op:      op,
		Error:   models.OpErrLocked,
		Message: fmt.Sprintf("Node '%s' is locked. Set respectLocks=false to modify booked items.", id),
		NodeID:  id,
	}
}

func invalidShapeStatus(idx int, op models.OpKind, reason string) models.OpStatus {
	return models.OpStatus{
		Index:   idx,
		Op:      op,
		Error:   models.OpErrInvalidShape,
		Message: reason,
	}
}

func dayOutOfRangeStatus(idx int, op models.OpKind, day, max int) models.OpStatus {
	return models.OpStatus{
		Index:   idx,
		Op:      op,
		Error:   models.OpErrDayOutOfRange,
		Message: fmt.Sprintf("Day %d is out of range (itinerary has %d days).", day, max),
	}
}
