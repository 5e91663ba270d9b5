package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wayplan/wayplan/ent"
	"github.com/wayplan/wayplan/ent/chatmessage"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
	"github.com/wayplan/wayplan/ent/revision"
	"github.com/wayplan/wayplan/pkg/models"
)

// EntStore is the Postgres-backed DocumentStore. The document is stored
// as one JSONB blob; the version column mirrors document.version so the
// compare-and-set happens in a single UPDATE ... WHERE version = $n.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates an EntStore on the given ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// Get implements DocumentStore.
func (s *EntStore) Get(ctx context.Context, itineraryID string) (*models.Itinerary, error) {
	doc, err := s.client.ItineraryDoc.Query().
		Where(itinerarydoc.ID(itineraryID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, itineraryID)
		}
		return nil, fmt.Errorf("query itinerary %s: %w", itineraryID, err)
	}

	it, err := decodeDocument(doc.Document)
	if err != nil {
		return nil, fmt.Errorf("decode itinerary %s: %w", itineraryID, err)
	}

	chat, err := s.loadChat(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	it.Chat = chat

	return it, nil
}

// Create implements DocumentStore.
func (s *EntStore) Create(ctx context.Context, it *models.Itinerary) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode itinerary %s: %w", it.ItineraryID, err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin create tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ItineraryDoc.Create().
		SetID(it.ItineraryID).
		SetDocument(raw).
		SetVersion(it.Version).
		SetStatus(itinerarydoc.Status(it.Status)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, it.ItineraryID)
		}
		return fmt.Errorf("create itinerary %s: %w", it.ItineraryID, err)
	}

	if err := createRevision(ctx, tx, it, raw); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create tx: %w", err)
	}
	return nil
}

// Put implements DocumentStore. The UPDATE is guarded by the version
// column: zero rows affected means a concurrent writer won the race.
func (s *EntStore) Put(ctx context.Context, it *models.Itinerary, expectedVersion int) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode itinerary %s: %w", it.ItineraryID, err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin put tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.ItineraryDoc.Update().
		Where(
			itinerarydoc.ID(it.ItineraryID),
			itinerarydoc.Version(expectedVersion),
		).
		SetDocument(raw).
		SetVersion(it.Version).
		SetStatus(itinerarydoc.Status(it.Status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update itinerary %s: %w", it.ItineraryID, err)
	}
	if n == 0 {
		// Distinguish a missing row from a lost race.
		exists, err := tx.ItineraryDoc.Query().
			Where(itinerarydoc.ID(it.ItineraryID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check itinerary %s: %w", it.ItineraryID, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrNotFound, it.ItineraryID)
		}
		return fmt.Errorf("%w: %s expected version %d", ErrVersionConflict, it.ItineraryID, expectedVersion)
	}

	if err := createRevision(ctx, tx, it, raw); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put tx: %w", err)
	}
	return nil
}

// GetAtVersion implements DocumentStore.
func (s *EntStore) GetAtVersion(ctx context.Context, itineraryID string, version int) (*models.Itinerary, error) {
	rev, err := s.client.Revision.Query().
		Where(
			revision.ItineraryID(itineraryID),
			revision.Version(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s version %d", ErrRevisionNotFound, itineraryID, version)
		}
		return nil, fmt.Errorf("query revision %s@%d: %w", itineraryID, version, err)
	}

	it, err := decodeDocument(rev.Document)
	if err != nil {
		return nil, fmt.Errorf("decode revision %s@%d: %w", itineraryID, version, err)
	}
	return it, nil
}

// AppendChat implements DocumentStore.
func (s *EntStore) AppendChat(ctx context.Context, itineraryID string, entry models.ChatEntry) error {
	createdAt := time.UnixMilli(entry.CreatedAt)
	if entry.CreatedAt == 0 {
		createdAt = time.Now()
	}

	_, err := s.client.ChatMessage.Create().
		SetItineraryID(itineraryID).
		SetRole(chatmessage.Role(entry.Role)).
		SetContent(entry.Text).
		SetCreatedAt(createdAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, itineraryID)
		}
		return fmt.Errorf("append chat for %s: %w", itineraryID, err)
	}
	return nil
}

func (s *EntStore) loadChat(ctx context.Context, itineraryID string) ([]models.ChatEntry, error) {
	rows, err := s.client.ChatMessage.Query().
		Where(chatmessage.ItineraryID(itineraryID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat for %s: %w", itineraryID, err)
	}

	entries := make([]models.ChatEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ChatEntry{
			Role:      string(row.Role),
			Text:      row.Content,
			CreatedAt: row.CreatedAt.UnixMilli(),
		})
	}
	return entries, nil
}

// createRevision snapshots the document at its current version inside tx.
// Chat is stripped: the transcript lives in its own table and replaying
// it through undo would duplicate messages.
func createRevision(ctx context.Context, tx *ent.Tx, it *models.Itinerary, raw json.RawMessage) error {
	snapshot := raw
	if len(it.Chat) > 0 {
		stripped := *it
		stripped.Chat = nil
		var err error
		snapshot, err = json.Marshal(&stripped)
		if err != nil {
			return fmt.Errorf("encode revision %s@%d: %w", it.ItineraryID, it.Version, err)
		}
	}

	updatedBy := ""
	note := ""
	if len(it.Revisions) > 0 {
		last := it.Revisions[len(it.Revisions)-1]
		if last.Version == it.Version {
			updatedBy = last.Author
			note = last.Note
		}
	}

	_, err := tx.Revision.Create().
		SetItineraryID(it.ItineraryID).
		SetVersion(it.Version).
		SetDocument(snapshot).
		SetSummary(note).
		SetUpdatedBy(updatedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create revision %s@%d: %w", it.ItineraryID, it.Version, err)
	}
	return nil
}

func decodeDocument(raw json.RawMessage) (*models.Itinerary, error) {
	var it models.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
