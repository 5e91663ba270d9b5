package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/agent"
	"github.com/wayplan/wayplan/pkg/changeset"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/events"
	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/store"
)

// stub is a scriptable agent for plan and execution tests.
type stub struct {
	name     string
	tasks    []agent.Task
	priority int
	deps     []string
	required bool
	execute  func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error)

	mu    sync.Mutex
	calls int
}

func (s *stub) Name() string        { return s.name }
func (s *stub) Tasks() []agent.Task { return s.tasks }
func (s *stub) Priority() int       { return s.priority }
func (s *stub) DependsOn() []string { return s.deps }
func (s *stub) Required() bool      { return s.required }

func (s *stub) Execute(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.execute != nil {
		return s.execute(ctx, ec)
	}
	return &agent.Result{Status: agent.ExecStatusCompleted}, nil
}

func (s *stub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type testEnv struct {
	cfg    *config.Config
	reg    *agent.Registry
	store  store.DocumentStore
	engine *changeset.Engine
	bus    *events.Bus
	orch   *Orchestrator
}

func newTestEnv(t *testing.T, st store.DocumentStore) *testEnv {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	if st == nil {
		st = store.NewMemoryStore()
	}
	locks := store.NewLockMap()
	engine := changeset.NewEngine(st, locks)
	bus := events.NewBus()
	reg := agent.NewRegistry()
	return &testEnv{
		cfg:    cfg,
		reg:    reg,
		store:  st,
		engine: engine,
		bus:    bus,
		orch:   New(cfg, reg, st, engine, events.NewPublisher(bus)),
	}
}

func seedItinerary(t *testing.T, st store.DocumentStore) *models.Itinerary {
	t.Helper()
	it := &models.Itinerary{
		ItineraryID: "it-orch",
		Version:     1,
		Destination: "Porto",
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-02",
		Status:      models.ItineraryStatusDraft,
		Days: []*models.Day{
			{DayNumber: 1, Date: "2026-10-01", Nodes: []*models.Node{}},
			{DayNumber: 2, Date: "2026-10-02", Nodes: []*models.Node{}},
		},
	}
	require.NoError(t, st.Create(context.Background(), it))
	return it
}

func insertOp(day int, title string) models.Operation {
	typ := models.NodeTypeAttraction
	return models.Operation{
		Op:   models.OpInsert,
		Day:  day,
		Node: &models.NodePatch{Type: &typ, Title: &title},
	}
}

func TestBuildPlanLevels(t *testing.T) {
	reg := agent.NewRegistry()
	require.NoError(t, reg.Register(&stub{name: "a", tasks: []agent.Task{agent.TaskGenerate}, priority: 10}))
	require.NoError(t, reg.Register(&stub{name: "b", tasks: []agent.Task{agent.TaskGenerate}, priority: 20, deps: []string{"a"}}))
	require.NoError(t, reg.Register(&stub{name: "c", tasks: []agent.Task{agent.TaskGenerate}, priority: 21, deps: []string{"a"}}))
	require.NoError(t, reg.Register(&stub{name: "d", tasks: []agent.Task{agent.TaskGenerate}, priority: 30, deps: []string{"b", "c"}}))

	plan, err := buildPlan(reg, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	require.Len(t, plan.Levels, 3)
	assert.Equal(t, []string{"a"}, levelNames(plan.Levels[0]))
	assert.Equal(t, []string{"b", "c"}, levelNames(plan.Levels[1]))
	assert.Equal(t, []string{"d"}, levelNames(plan.Levels[2]))
	assert.Equal(t, 4, plan.AgentCount())
}

func TestBuildPlanBuiltinGeneratePipeline(t *testing.T) {
	// The shipped generate pipeline: skeleton first, then the three
	// populators in parallel over the committed skeleton, then
	// enrichment over everything they produced.
	builtin := config.GetBuiltinConfig()
	reg := agent.NewRegistry()
	pipeline := builtin.Pipelines[config.PipelineGenerate]
	for _, name := range pipeline.Agents {
		ac := builtin.Agents[name]
		require.NoError(t, reg.Register(&stub{
			name:     name,
			tasks:    []agent.Task{agent.TaskGenerate},
			priority: ac.Priority,
			deps:     ac.DependsOn,
			required: ac.Required,
		}))
	}

	plan, err := buildPlan(reg, pipeline.Agents)
	require.NoError(t, err)
	require.Len(t, plan.Levels, 3)
	assert.Equal(t, []string{config.AgentSkeletonPlanner}, levelNames(plan.Levels[0]))
	assert.Equal(t, []string{config.AgentActivity, config.AgentMeal, config.AgentTransport},
		levelNames(plan.Levels[1]))
	assert.Equal(t, []string{config.AgentEnrichment}, levelNames(plan.Levels[2]))
}

func TestBuildPlanIgnoresDisabledDependencies(t *testing.T) {
	reg := agent.NewRegistry()
	require.NoError(t, reg.Register(&stub{name: "a", tasks: []agent.Task{agent.TaskGenerate}, priority: 10}))
	require.NoError(t, reg.Register(&stub{name: "b", tasks: []agent.Task{agent.TaskGenerate}, priority: 20, deps: []string{"a"}}))
	require.NoError(t, reg.Register(&stub{name: "c", tasks: []agent.Task{agent.TaskGenerate}, priority: 30, deps: []string{"b"}}))
	require.NoError(t, reg.Disable("b"))

	// c depends on b, but b is disabled: the edge is dropped rather than
	// wedging c forever.
	plan, err := buildPlan(reg, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, plan.Levels, 2)
	assert.Equal(t, []string{"a"}, levelNames(plan.Levels[0]))
	assert.Equal(t, []string{"c"}, levelNames(plan.Levels[1]))
}

func TestExecuteGenerateCommitsLevelByLevel(t *testing.T) {
	env := newTestEnv(t, nil)
	seedItinerary(t, env.store)

	skeleton := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				ChangeSet: &models.ChangeSet{
					Scope: models.ScopeTrip,
					Ops:   []models.Operation{insertOp(1, "Sight A"), insertOp(2, "Sight B")},
				},
			}, nil
		},
	}
	var sawNodes []string
	activity := &stub{
		name: config.AgentActivity, tasks: []agent.Task{agent.TaskGenerate},
		priority: 20, deps: []string{config.AgentSkeletonPlanner}, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			// The second level sees the committed skeleton with engine
			// assigned canonical IDs.
			for _, d := range ec.Itinerary.Days {
				sawNodes = append(sawNodes, d.NodeIDs()...)
			}
			title := "Livraria Lello"
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				ChangeSet: &models.ChangeSet{
					Scope: models.ScopeTrip,
					Ops: []models.Operation{{
						Op: models.OpReplace, ID: "day1_node1",
						Node: &models.NodePatch{Title: &title},
					}},
				},
			}, nil
		},
	}
	require.NoError(t, env.reg.Register(skeleton))
	require.NoError(t, env.reg.Register(activity))

	res, err := env.orch.Execute(context.Background(), Request{
		ItineraryID: "it-orch",
		Task:        agent.TaskGenerate,
		Create:      &models.CreateItineraryRequest{Destination: "Porto", StartDate: "2026-10-01", EndDate: "2026-10-02"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 3, res.Version) // two commits on top of version 1
	assert.Equal(t, []string{"day1_node1", "day2_node1"}, sawNodes)
	assert.ElementsMatch(t, []string{"day1_node1", "day2_node1"}, res.Diff.Added)
	assert.Equal(t, []string{"day1_node1"}, res.Diff.Updated)

	final, err := env.store.Get(context.Background(), "it-orch")
	require.NoError(t, err)
	assert.Equal(t, 3, final.Version)
	_, node, _ := final.FindNode("day1_node1")
	require.NotNil(t, node)
	assert.Equal(t, "Livraria Lello", node.Title)
	assert.Equal(t, config.AgentActivity, node.UpdatedBy)
}

func TestRequiredAgentFailureAbortsPlan(t *testing.T) {
	env := newTestEnv(t, nil)
	seedItinerary(t, env.store)

	ch, cancel := env.bus.Subscribe(events.ItineraryChannel("it-orch"))
	defer cancel()

	skeleton := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			return &agent.Result{Status: agent.ExecStatusFailed, Err: assert.AnError}, nil
		},
	}
	activity := &stub{
		name: config.AgentActivity, tasks: []agent.Task{agent.TaskGenerate},
		priority: 20, deps: []string{config.AgentSkeletonPlanner},
	}
	require.NoError(t, env.reg.Register(skeleton))
	require.NoError(t, env.reg.Register(activity))

	res, err := env.orch.Execute(context.Background(), Request{ItineraryID: "it-orch", Task: agent.TaskGenerate})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorContains(t, res.Err, config.AgentSkeletonPlanner)
	assert.Equal(t, 1, res.Version)
	assert.Zero(t, activity.callCount())

	// Event stream ends with a failed run status.
	var last string
	drain := true
	for drain {
		select {
		case data := <-ch:
			last = string(data)
		default:
			drain = false
		}
	}
	assert.Contains(t, last, `"status":"failed"`)
}

func TestOptionalAgentFailureContinues(t *testing.T) {
	env := newTestEnv(t, nil)
	seedItinerary(t, env.store)

	skeleton := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				ChangeSet: &models.ChangeSet{
					Scope: models.ScopeTrip,
					Ops:   []models.Operation{insertOp(1, "Sight A")},
				},
			}, nil
		},
	}
	flaky := &stub{
		name: config.AgentMeal, tasks: []agent.Task{agent.TaskGenerate},
		priority: 21, deps: []string{config.AgentSkeletonPlanner},
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			return nil, assert.AnError // infrastructure failure
		},
	}
	require.NoError(t, env.reg.Register(skeleton))
	require.NoError(t, env.reg.Register(flaky))

	res, err := env.orch.Execute(context.Background(), Request{ItineraryID: "it-orch", Task: agent.TaskGenerate})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 2, res.Version)
	assert.Equal(t, agent.ExecStatusFailed, res.Agents[config.AgentMeal].Status)
}

func TestDeadlineMarksRunPartial(t *testing.T) {
	env := newTestEnv(t, nil)
	seedItinerary(t, env.store)

	slow := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	require.NoError(t, env.reg.Register(slow))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := env.orch.Execute(ctx, Request{ItineraryID: "it-orch", Task: agent.TaskGenerate})
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, 1, res.Version)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestCancellationMarksRunCancelled(t *testing.T) {
	env := newTestEnv(t, nil)
	seedItinerary(t, env.store)

	ctx, cancel := context.WithCancel(context.Background())
	slow := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			cancel()
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	require.NoError(t, env.reg.Register(slow))

	res, err := env.orch.Execute(ctx, Request{ItineraryID: "it-orch", Task: agent.TaskGenerate})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, res.Status)
	assert.Equal(t, 1, res.Version)
}

// conflictStore injects version conflicts into the first n Put calls.
type conflictStore struct {
	store.DocumentStore
	mu        sync.Mutex
	conflicts int
}

func (s *conflictStore) Put(ctx context.Context, it *models.Itinerary, expectedVersion int) error {
	s.mu.Lock()
	inject := s.conflicts > 0
	if inject {
		s.conflicts--
	}
	s.mu.Unlock()
	if inject {
		return store.ErrVersionConflict
	}
	return s.DocumentStore.Put(ctx, it, expectedVersion)
}

func TestCommitRetriesVersionConflicts(t *testing.T) {
	cs := &conflictStore{DocumentStore: store.NewMemoryStore(), conflicts: 2}
	env := newTestEnv(t, cs)
	seedItinerary(t, env.store)

	skeleton := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				ChangeSet: &models.ChangeSet{
					Scope: models.ScopeTrip,
					Ops:   []models.Operation{insertOp(1, "Sight A")},
				},
			}, nil
		},
	}
	require.NoError(t, env.reg.Register(skeleton))

	res, err := env.orch.Execute(context.Background(), Request{ItineraryID: "it-orch", Task: agent.TaskGenerate})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 2, res.Version)
}

func TestCommitGivesUpAfterBoundedConflicts(t *testing.T) {
	cs := &conflictStore{DocumentStore: store.NewMemoryStore(), conflicts: 100}
	env := newTestEnv(t, cs)
	seedItinerary(t, env.store)

	skeleton := &stub{
		name: config.AgentSkeletonPlanner, tasks: []agent.Task{agent.TaskGenerate},
		priority: 10, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				ChangeSet: &models.ChangeSet{
					Scope: models.ScopeTrip,
					Ops:   []models.Operation{insertOp(1, "Sight A")},
				},
			}, nil
		},
	}
	require.NoError(t, env.reg.Register(skeleton))

	res, err := env.orch.Execute(context.Background(), Request{ItineraryID: "it-orch", Task: agent.TaskGenerate})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorContains(t, res.Err, "version conflict")
	assert.Equal(t, 1, res.Version)
}

func TestEditPipelinePassesIntentDownstream(t *testing.T) {
	env := newTestEnv(t, nil)
	seedItinerary(t, env.store)

	day := 1
	classifier := &stub{
		name: config.AgentIntentClassifier, tasks: []agent.Task{agent.TaskEdit},
		priority: 10,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			assert.Equal(t, "make day 1 cheaper", ec.Message)
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				Intent: &agent.Intent{Kind: "edit", Day: &day, Operation: "change"},
			}, nil
		},
	}
	editor := &stub{
		name: config.AgentEditor, tasks: []agent.Task{agent.TaskEdit},
		priority: 20, deps: []string{config.AgentIntentClassifier}, required: true,
		execute: func(ctx context.Context, ec *agent.ExecContext) (*agent.Result, error) {
			intent := ec.PrevIntent()
			require.NotNil(t, intent)
			assert.True(t, intent.IsEdit())
			return &agent.Result{
				Status: agent.ExecStatusCompleted,
				ChangeSet: &models.ChangeSet{
					Scope: models.ScopeDay, Day: &day,
					Ops: []models.Operation{insertOp(1, "Free walking tour")},
				},
				Analysis: "Swapped in a free option.",
			}, nil
		},
	}
	require.NoError(t, env.reg.Register(classifier))
	require.NoError(t, env.reg.Register(editor))

	res, err := env.orch.Execute(context.Background(), Request{
		ItineraryID: "it-orch",
		Task:        agent.TaskEdit,
		Message:     "make day 1 cheaper",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 2, res.Version)
	require.NotNil(t, res.Intent)
	assert.True(t, res.Intent.IsEdit())
	assert.Equal(t, "Swapped in a free option.", res.Analysis)
}

func TestExecuteUnknownTaskFails(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.orch.Execute(context.Background(), Request{ItineraryID: "x", Task: agent.Task("nope")})
	assert.Error(t, err)
}

func levelNames(level []agent.Agent) []string {
	names := make([]string, len(level))
	for i, a := range level {
		names[i] = a.Name()
	}
	return names
}
