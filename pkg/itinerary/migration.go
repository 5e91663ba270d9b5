package itinerary

import (
	"log/slog"

	"github.com/wayplan/wayplan/pkg/models"
)

// NeedsMigration reports whether any node in the document carries a
// non-canonical (legacy) ID.
func NeedsMigration(it *models.Itinerary) bool {
	for _, day := range it.Days {
		for _, n := range day.Nodes {
			if !IsCanonicalID(n.ID) {
				return true
			}
		}
	}
	return false
}

// Migrate rewrites legacy node IDs to the canonical sequential scheme.
//
// For each day in document order, nodes are renumbered in their stored
// order: the k-th node receives day{dayNumber}_node{k}. Visit order is
// preserved; edges referencing renamed nodes are rewritten alongside.
// Version and updatedAt are bumped so the rewrite persists as a new
// revision.
//
// Migration degrades gracefully: if anything about the document prevents a
// clean rewrite, the ORIGINAL document is returned untouched. External
// references to legacy IDs become dangling either way; the system treats
// them as not-found from this point.
//
// Migrate is idempotent: a document with only canonical IDs is returned
// unchanged (same pointer, no version bump).
func Migrate(it *models.Itinerary) *models.Itinerary {
	if it == nil || !NeedsMigration(it) {
		return it
	}

	migrated := it.Clone()
	for _, day := range migrated.Days {
		if day.DayNumber < 1 {
			slog.Warn("Abandoning node ID migration: day with non-positive dayNumber",
				"itinerary_id", it.ItineraryID, "day_number", day.DayNumber)
			return it
		}
		rename := make(map[string]string, len(day.Nodes))
		for i, n := range day.Nodes {
			newID := FormatNodeID(day.DayNumber, i+1)
			rename[n.ID] = newID
			n.ID = newID
		}
		if len(day.Nodes) > day.MaxNodeSeq {
			day.MaxNodeSeq = len(day.Nodes)
		}
		for i := range day.Edges {
			if to, ok := rename[day.Edges[i].FromNodeID]; ok {
				day.Edges[i].FromNodeID = to
			}
			if to, ok := rename[day.Edges[i].ToNodeID]; ok {
				day.Edges[i].ToNodeID = to
			}
		}
	}

	migrated.Version++
	migrated.Touch()

	slog.Info("Migrated legacy node IDs",
		"itinerary_id", migrated.ItineraryID,
		"version", migrated.Version)
	return migrated
}
