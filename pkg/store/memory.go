package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wayplan/wayplan/pkg/models"
)

// MemoryStore is an in-memory DocumentStore used by unit tests and local
// development. Documents are deep-copied on the way in and out so callers
// never share mutable state with the store.
type MemoryStore struct {
	mu        sync.RWMutex
	docs      map[string]*models.Itinerary
	revisions map[string]map[int]*models.Itinerary
	chats     map[string][]models.ChatEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:      make(map[string]*models.Itinerary),
		revisions: make(map[string]map[int]*models.Itinerary),
		chats:     make(map[string][]models.ChatEntry),
	}
}

// Get implements DocumentStore.
func (s *MemoryStore) Get(_ context.Context, itineraryID string) (*models.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[itineraryID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, itineraryID)
	}
	out := doc.Clone()
	out.Chat = append([]models.ChatEntry(nil), s.chats[itineraryID]...)
	return out, nil
}

// Create implements DocumentStore.
func (s *MemoryStore) Create(_ context.Context, it *models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[it.ItineraryID]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, it.ItineraryID)
	}
	s.saveLocked(it)
	return nil
}

// Put implements DocumentStore. Compare-and-set on the stored version.
func (s *MemoryStore) Put(_ context.Context, it *models.Itinerary, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.docs[it.ItineraryID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, it.ItineraryID)
	}
	if cur.Version != expectedVersion {
		return fmt.Errorf("%w: expected %d, stored %d", ErrVersionConflict, expectedVersion, cur.Version)
	}
	s.saveLocked(it)
	return nil
}

// GetAtVersion implements DocumentStore.
func (s *MemoryStore) GetAtVersion(_ context.Context, itineraryID string, version int) (*models.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	revs, ok := s.revisions[itineraryID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, itineraryID)
	}
	snap, ok := revs[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s@%d", ErrRevisionNotFound, itineraryID, version)
	}
	return snap.Clone(), nil
}

// AppendChat implements DocumentStore.
func (s *MemoryStore) AppendChat(_ context.Context, itineraryID string, entry models.ChatEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[itineraryID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, itineraryID)
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().UnixMilli()
	}
	s.chats[itineraryID] = append(s.chats[itineraryID], entry)
	return nil
}

func (s *MemoryStore) saveLocked(it *models.Itinerary) {
	snap := it.Clone()
	snap.Chat = nil // transcript lives in its own table, not in snapshots
	s.docs[it.ItineraryID] = snap
	revs, ok := s.revisions[it.ItineraryID]
	if !ok {
		revs = make(map[int]*models.Itinerary)
		s.revisions[it.ItineraryID] = revs
	}
	revs[it.Version] = snap
}
