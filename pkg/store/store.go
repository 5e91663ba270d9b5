// Package store implements the document store gateway: load/save of
// normalized itineraries with optimistic concurrency, a per-version
// revision log for undo, and per-itinerary mutation locks.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/wayplan/wayplan/pkg/models"
)

var (
	// ErrNotFound is returned when no itinerary exists for the given ID.
	ErrNotFound = errors.New("itinerary not found")

	// ErrVersionConflict is returned by Put when the stored version does
	// not match the caller's expected version (lost update detected).
	// Callers reload, re-resolve, and retry a bounded number of times.
	ErrVersionConflict = errors.New("itinerary version conflict")

	// ErrRevisionNotFound is returned by GetAtVersion when no snapshot
	// exists for the requested version.
	ErrRevisionNotFound = errors.New("itinerary revision not found")

	// ErrAlreadyExists is returned by Create for a duplicate itinerary ID.
	ErrAlreadyExists = errors.New("itinerary already exists")
)

// DocumentStore is the persistence contract the mutation core requires.
// Implementations: EntStore (Postgres) and MemoryStore (tests).
type DocumentStore interface {
	// Get loads the latest persisted itinerary.
	Get(ctx context.Context, itineraryID string) (*models.Itinerary, error)

	// Create persists a brand-new itinerary and its first revision.
	Create(ctx context.Context, it *models.Itinerary) error

	// Put persists the document compare-and-set style: it succeeds only
	// when the stored version still equals expectedVersion, and records a
	// revision snapshot at the document's (already incremented) version.
	Put(ctx context.Context, it *models.Itinerary, expectedVersion int) error

	// GetAtVersion loads the revision snapshot persisted at the given
	// version. Used by undo.
	GetAtVersion(ctx context.Context, itineraryID string, version int) (*models.Itinerary, error)

	// AppendChat appends one entry to the itinerary's chat transcript.
	// The transcript is append-only and read-only to the mutation core.
	AppendChat(ctx context.Context, itineraryID string, entry models.ChatEntry) error
}

// LockMap serializes mutations per itinerary. All mutating paths (change
// engine apply, ID allocation, migration-on-load) take the itinerary's
// lock; reads on immutable snapshots proceed without it.
type LockMap struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockMap creates an empty lock map.
func NewLockMap() *LockMap {
	return &LockMap{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given itinerary, creating it on first
// use, and returns the unlock function.
func (l *LockMap) Lock(itineraryID string) func() {
	l.mu.Lock()
	m, ok := l.locks[itineraryID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[itineraryID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
