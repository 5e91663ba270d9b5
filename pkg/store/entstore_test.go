package store

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wayplan/wayplan/ent"
	"github.com/wayplan/wayplan/pkg/models"
)

// newTestEntStore creates an EntStore with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestEntStore(t *testing.T) *EntStore {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		_ = entClient.Close()
	})

	return NewEntStore(entClient)
}

func TestEntStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	require.NoError(t, s.Create(ctx, testItinerary("it-ent-1")))

	got, err := s.Get(ctx, "it-ent-1")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)
	assert.Equal(t, 1, got.Version)
	require.Len(t, got.Days, 1)
	assert.Equal(t, "day1_node1", got.Days[0].Nodes[0].ID)

	err = s.Create(ctx, testItinerary("it-ent-1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.Get(ctx, "it-ent-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStorePutCASAndRevisions(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	require.NoError(t, s.Create(ctx, testItinerary("it-ent-2")))

	doc, err := s.Get(ctx, "it-ent-2")
	require.NoError(t, err)
	doc.Version = 2
	doc.Destination = "Porto"
	require.NoError(t, s.Put(ctx, doc, 1))

	// Stale writer loses.
	stale, err := s.GetAtVersion(ctx, "it-ent-2", 1)
	require.NoError(t, err)
	stale.Version = 2
	err = s.Put(ctx, stale, 1)
	assert.ErrorIs(t, err, ErrVersionConflict)

	// Revision log holds both versions.
	v1, err := s.GetAtVersion(ctx, "it-ent-2", 1)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", v1.Destination)

	v2, err := s.GetAtVersion(ctx, "it-ent-2", 2)
	require.NoError(t, err)
	assert.Equal(t, "Porto", v2.Destination)

	_, err = s.GetAtVersion(ctx, "it-ent-2", 9)
	assert.ErrorIs(t, err, ErrRevisionNotFound)

	err = s.Put(ctx, testItinerary("it-ent-missing"), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStoreChat(t *testing.T) {
	ctx := context.Background()
	s := newTestEntStore(t)

	require.NoError(t, s.Create(ctx, testItinerary("it-ent-3")))

	require.NoError(t, s.AppendChat(ctx, "it-ent-3", models.ChatEntry{Role: "user", Text: "swap day 2 and 3"}))
	require.NoError(t, s.AppendChat(ctx, "it-ent-3", models.ChatEntry{Role: "assistant", Text: "swapped"}))

	got, err := s.Get(ctx, "it-ent-3")
	require.NoError(t, err)
	require.Len(t, got.Chat, 2)
	assert.Equal(t, "swap day 2 and 3", got.Chat[0].Text)
	assert.Equal(t, "assistant", got.Chat[1].Role)

	// Snapshots exclude the transcript.
	v1, err := s.GetAtVersion(ctx, "it-ent-3", 1)
	require.NoError(t, err)
	assert.Empty(t, v1.Chat)
}
