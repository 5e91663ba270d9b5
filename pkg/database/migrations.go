package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateDocumentIndexes creates JSONB GIN indexes for PostgreSQL.
// These indexes speed up containment queries on the itinerary document
// (e.g. finding itineraries whose document references a node ID or label).
func CreateDocumentIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_itinerary_docs_document_gin
		ON itinerary_docs USING gin(document jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create document GIN index: %w", err)
	}

	return nil
}
