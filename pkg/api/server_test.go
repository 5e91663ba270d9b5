package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/changeset"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/events"
	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/store"
)

// stubOrch returns a canned orchestration result.
type stubOrch struct {
	result   *orchestrator.Result
	err      error
	requests []orchestrator.Request
}

func (o *stubOrch) Execute(_ context.Context, req orchestrator.Request) (*orchestrator.Result, error) {
	o.requests = append(o.requests, req)
	if o.err != nil {
		return nil, o.err
	}
	return o.result, nil
}

// stubSubmitter records submissions; err simulates a saturated queue.
type stubSubmitter struct {
	requests []orchestrator.Request
	err      error
}

func (s *stubSubmitter) Submit(req orchestrator.Request) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.requests = append(s.requests, req)
	return "run-test-1", nil
}

type apiEnv struct {
	server    *Server
	store     store.DocumentStore
	orch      *stubOrch
	submitter *stubSubmitter
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	st := store.NewMemoryStore()
	engine := changeset.NewEngine(st, store.NewLockMap())
	orch := &stubOrch{result: &orchestrator.Result{Status: orchestrator.StatusCompleted}}
	submitter := &stubSubmitter{}

	srv := NewServer(Deps{
		Config:     cfg,
		Store:      st,
		Engine:     engine,
		Orch:       orch,
		Dispatcher: submitter,
		Publisher:  events.NewPublisher(events.NewBus()),
	})
	return &apiEnv{server: srv, store: st, orch: orch, submitter: submitter}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedDoc(t *testing.T, st store.DocumentStore) *models.Itinerary {
	t.Helper()
	it := &models.Itinerary{
		ItineraryID: "it-api",
		Version:     1,
		Destination: "Seville",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-11",
		Status:      models.ItineraryStatusReady,
		Days: []*models.Day{
			{DayNumber: 1, Date: "2026-09-10", Nodes: []*models.Node{
				{ID: "day1_node1", Type: models.NodeTypeAttraction, Title: "Alcázar"},
			}, MaxNodeSeq: 1},
			{DayNumber: 2, Date: "2026-09-11", Nodes: []*models.Node{}},
		},
	}
	require.NoError(t, st.Create(context.Background(), it))
	return it
}

func TestCreateItinerary(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries", models.CreateItineraryRequest{
		Destination: "Lisbon",
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-12",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	resp := decode[CreateItineraryResponse](t, rec)
	assert.NotEmpty(t, resp.ItineraryID)
	assert.Equal(t, "run-test-1", resp.RunID)
	assert.Equal(t, 1, resp.Version)
	assert.Equal(t, string(models.ItineraryStatusGenerating), resp.Status)

	it, err := env.store.Get(context.Background(), resp.ItineraryID)
	require.NoError(t, err)
	require.Len(t, it.Days, 3)
	assert.Equal(t, "2026-09-11", it.Days[1].Date)
	assert.Equal(t, "EUR", it.Currency)

	require.Len(t, env.submitter.requests, 1)
	assert.Equal(t, resp.ItineraryID, env.submitter.requests[0].ItineraryID)
	assert.Equal(t, "generate", string(env.submitter.requests[0].Task))
}

func TestCreateItineraryValidation(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries", models.CreateItineraryRequest{
		StartDate: "2026-09-10", EndDate: "2026-09-12",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/itineraries", models.CreateItineraryRequest{
		Destination: "Lisbon", StartDate: "2026-09-12", EndDate: "2026-09-10",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateItinerarySheddedWhenQueueFull(t *testing.T) {
	env := newAPIEnv(t)
	env.submitter.err = assert.AnError

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries", models.CreateItineraryRequest{
		Destination: "Lisbon", StartDate: "2026-09-10", EndDate: "2026-09-12",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetItinerary(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)

	rec := env.do(t, http.MethodGet, "/api/v1/itineraries/it-api", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	it := decode[models.Itinerary](t, rec)
	assert.Equal(t, "Seville", it.Destination)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	rec = env.do(t, http.MethodGet, "/api/v1/itineraries/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRevision(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)

	rec := env.do(t, http.MethodGet, "/api/v1/itineraries/it-api/revisions/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[models.Itinerary](t, rec)
	assert.Equal(t, 1, snap.Version)

	rec = env.do(t, http.MethodGet, "/api/v1/itineraries/it-api/revisions/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/itineraries/it-api/revisions/zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProposeDoesNotPersist(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)

	title := "Flamenco show"
	typ := models.NodeTypeAttraction
	cs := models.ChangeSet{
		Scope: models.ScopeTrip,
		Ops: []models.Operation{{
			Op: models.OpInsert, Day: 2,
			Node: &models.NodePatch{Type: &typ, Title: &title},
		}},
	}

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/propose", cs)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[models.ApplyResult](t, rec)
	assert.Equal(t, []string{"day2_node1"}, res.Diff.Added)
	assert.Equal(t, 2, res.Diff.PreviewVersion)

	it, err := env.store.Get(context.Background(), "it-api")
	require.NoError(t, err)
	assert.Equal(t, 1, it.Version)
	assert.Empty(t, it.DayByNumber(2).Nodes)
}

func TestApplyCommitsChangeSet(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)

	title := "Flamenco show"
	typ := models.NodeTypeAttraction
	cs := models.ChangeSet{
		Scope: models.ScopeTrip,
		Ops: []models.Operation{{
			Op: models.OpInsert, Day: 2,
			Node: &models.NodePatch{Type: &typ, Title: &title},
		}},
	}

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/apply", cs)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[models.ApplyResult](t, rec)
	assert.Equal(t, models.CommitStateCommitted, res.State)
	assert.Equal(t, 2, res.Diff.ToVersion)

	it, err := env.store.Get(context.Background(), "it-api")
	require.NoError(t, err)
	assert.Equal(t, 2, it.Version)
	require.Len(t, it.DayByNumber(2).Nodes, 1)
	assert.Equal(t, "user", it.DayByNumber(2).Nodes[0].UpdatedBy)
}

func TestUndoRestoresPriorVersion(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)

	title := "Flamenco show"
	typ := models.NodeTypeAttraction
	cs := models.ChangeSet{
		Scope: models.ScopeTrip,
		Ops: []models.Operation{{
			Op: models.OpInsert, Day: 2,
			Node: &models.NodePatch{Type: &typ, Title: &title},
		}},
	}
	rec := env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/apply", cs)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/undo", models.UndoRequest{ToVersion: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[models.ApplyResult](t, rec)
	assert.Equal(t, 3, res.Diff.ToVersion)

	it, err := env.store.Get(context.Background(), "it-api")
	require.NoError(t, err)
	assert.Equal(t, 3, it.Version)
	assert.Empty(t, it.DayByNumber(2).Nodes)

	rec = env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/undo", models.UndoRequest{ToVersion: 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatRunsEditPipeline(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)
	env.orch.result = &orchestrator.Result{
		Status:   orchestrator.StatusCompleted,
		Version:  2,
		Analysis: "Moved the Alcázar visit to the morning.",
		Diff:     models.Diff{Updated: []string{"day1_node1"}, FromVersion: 1, ToVersion: 2},
	}

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/chat", models.ChatRequest{
		Message: "visit the Alcázar in the morning",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[models.ChatResponse](t, rec)
	assert.Equal(t, "applied", resp.Status)
	assert.Equal(t, 2, resp.Version)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "Moved the Alcázar visit to the morning.", resp.Messages[0].Text)
	require.NotNil(t, resp.Diff)
	assert.Equal(t, []string{"day1_node1"}, resp.Diff.Updated)

	require.Len(t, env.orch.requests, 1)
	assert.Equal(t, "edit", string(env.orch.requests[0].Task))
	assert.Equal(t, "it-api", env.orch.requests[0].ItineraryID)

	it, err := env.store.Get(context.Background(), "it-api")
	require.NoError(t, err)
	require.Len(t, it.Chat, 2)
	assert.Equal(t, "user", it.Chat[0].Role)
	assert.Equal(t, "assistant", it.Chat[1].Role)
}

func TestChatValidation(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/chat", models.ChatRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/itineraries/missing/chat", models.ChatRequest{Message: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, env.orch.requests)
}

func TestChatFailedRunStillReplies(t *testing.T) {
	env := newAPIEnv(t)
	seedDoc(t, env.store)
	env.orch.result = &orchestrator.Result{Status: orchestrator.StatusFailed, Version: 1}

	rec := env.do(t, http.MethodPost, "/api/v1/itineraries/it-api/chat", models.ChatRequest{
		Message: "do something impossible",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.ChatResponse](t, rec)
	assert.Equal(t, "failed", resp.Status)
	require.Len(t, resp.Messages, 1)
	assert.NotEmpty(t, resp.Messages[0].Text)
	assert.Nil(t, resp.Diff)
}

func TestHealthWithoutDatabase(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestWebSocketUnavailableWithoutManager(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodGet, "/ws", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
