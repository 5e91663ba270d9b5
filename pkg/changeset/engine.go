package changeset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/store"
)

// Engine applies change sets to itineraries. All mutating entry points
// take the per-itinerary lock; Propose operates on an immutable snapshot
// and needs no lock.
type Engine struct {
	store store.DocumentStore
	locks *store.LockMap
}

// NewEngine creates a change engine backed by the given document store.
func NewEngine(st store.DocumentStore, locks *store.LockMap) *Engine {
	return &Engine{store: st, locks: locks}
}

// Apply loads the itinerary, applies the change set in order, and persists
// the result when at least one operation succeeded.
//
// Per-operation failures are recorded in the result and skipped; later
// operations continue against the post-previous-success state. When every
// operation fails the document is neither persisted nor version-bumped
// (state no_change). Load failures and persist failures abort the commit;
// a version conflict is returned as store.ErrVersionConflict for the
// caller to reload and retry.
func (e *Engine) Apply(ctx context.Context, itineraryID string, cs *models.ChangeSet, updatedBy string) (*models.ApplyResult, error) {
	unlock := e.locks.Lock(itineraryID)
	defer unlock()

	it, err := e.load(ctx, itineraryID)
	if err != nil {
		return &models.ApplyResult{State: models.CommitStateLoadFailed}, err
	}

	working := it.Clone()
	statuses, diff := applyOps(working, cs, updatedBy)
	diff.FromVersion = it.Version
	diff.ToVersion = it.Version

	result := &models.ApplyResult{
		State:      models.CommitStateNoChange,
		Diff:       diff,
		OpStatuses: statuses,
		Itinerary:  it,
	}
	if !anySucceeded(statuses) {
		return result, nil
	}

	working.Version = it.Version + 1
	working.Touch()
	if err := e.store.Put(ctx, working, it.Version); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return result, err
		}
		return result, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	result.State = models.CommitStateCommitted
	result.Diff.ToVersion = working.Version
	result.Itinerary = working

	slog.Info("Change set committed",
		"itinerary_id", itineraryID,
		"from_version", it.Version,
		"to_version", working.Version,
		"added", len(result.Diff.Added),
		"removed", len(result.Diff.Removed),
		"updated", len(result.Diff.Updated))
	return result, nil
}

// Propose runs the change set against a snapshot without persisting.
// The diff carries previewVersion = currentVersion+1 and toVersion equal
// to fromVersion, signalling that nothing was committed.
func (e *Engine) Propose(ctx context.Context, itineraryID string, cs *models.ChangeSet, updatedBy string) (*models.ApplyResult, error) {
	it, err := e.load(ctx, itineraryID)
	if err != nil {
		return &models.ApplyResult{State: models.CommitStateLoadFailed}, err
	}

	working := it.Clone()
	statuses, diff := applyOps(working, cs, updatedBy)
	diff.FromVersion = it.Version
	diff.ToVersion = it.Version
	diff.PreviewVersion = it.Version + 1

	state := models.CommitStateNoChange
	return &models.ApplyResult{
		State:      state,
		Diff:       diff,
		OpStatuses: statuses,
		Itinerary:  working,
	}, nil
}

// Undo restores the document to a prior version by full-snapshot restore:
// the revision at toVersion is loaded from the revision log and committed
// as a new version. Operations are never inverted algebraically.
func (e *Engine) Undo(ctx context.Context, itineraryID string, toVersion int) (*models.ApplyResult, error) {
	unlock := e.locks.Lock(itineraryID)
	defer unlock()

	cur, err := e.store.Get(ctx, itineraryID)
	if err != nil {
		return &models.ApplyResult{State: models.CommitStateLoadFailed}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	snap, err := e.store.GetAtVersion(ctx, itineraryID, toVersion)
	if err != nil {
		return &models.ApplyResult{State: models.CommitStateLoadFailed}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	restored := snap.Clone()
	restored.Version = cur.Version + 1
	restored.Touch()
	if err := e.store.Put(ctx, restored, cur.Version); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	diff := diffDocuments(cur, restored)
	diff.FromVersion = cur.Version
	diff.ToVersion = restored.Version

	slog.Info("Itinerary restored",
		"itinerary_id", itineraryID,
		"restored_from", toVersion,
		"new_version", restored.Version)
	return &models.ApplyResult{
		State:     models.CommitStateCommitted,
		Diff:      diff,
		Itinerary: restored,
	}, nil
}

// load fetches the document and runs legacy-ID migration. A migrated
// document is persisted immediately so later compare-and-set writes see a
// consistent version; if that persist fails the migrated copy is still
// used in memory and migration will simply run again on the next load.
func (e *Engine) load(ctx context.Context, itineraryID string) (*models.Itinerary, error) {
	it, err := e.store.Get(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	migrated := itinerary.Migrate(it)
	if migrated != it {
		if err := e.store.Put(ctx, migrated, it.Version); err != nil {
			slog.Warn("Failed to persist node ID migration; continuing with in-memory copy",
				"itinerary_id", itineraryID, "error", err)
			migrated.Version = it.Version
		}
	}
	return migrated, nil
}

func anySucceeded(statuses []models.OpStatus) bool {
	for _, s := range statuses {
		if s.OK {
			return true
		}
	}
	return false
}

// diffDocuments computes added/removed/updated node ID sets between two
// document snapshots. Used by undo, where no per-op trail exists.
func diffDocuments(before, after *models.Itinerary) models.Diff {
	beforeNodes := nodeJSONByID(before)
	afterNodes := nodeJSONByID(after)

	diff := models.Diff{Added: []string{}, Removed: []string{}, Updated: []string{}}
	for _, d := range after.Days {
		for _, n := range d.Nodes {
			prev, existed := beforeNodes[n.ID]
			if !existed {
				diff.Added = append(diff.Added, n.ID)
				continue
			}
			if prev != afterNodes[n.ID] {
				diff.Updated = append(diff.Updated, n.ID)
			}
		}
	}
	for _, d := range before.Days {
		for _, n := range d.Nodes {
			if _, exists := afterNodes[n.ID]; !exists {
				diff.Removed = append(diff.Removed, n.ID)
			}
		}
	}
	return diff
}

func nodeJSONByID(it *models.Itinerary) map[string]string {
	out := make(map[string]string)
	for _, d := range it.Days {
		for _, n := range d.Nodes {
			c := n.Clone()
			c.UpdatedAt = 0
			b, err := json.Marshal(c)
			if err != nil {
				continue
			}
			out[n.ID] = string(b)
		}
	}
	return out
}
