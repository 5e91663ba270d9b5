// Package orchestrator executes agent plans: it selects the agents for a
// task, layers them by dependency, fans each layer out in parallel, and
// commits the resulting patches through the change engine — emitting
// progress events at every transition.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/wayplan/wayplan/pkg/agent"
	"github.com/wayplan/wayplan/pkg/changeset"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/events"
	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
	"github.com/wayplan/wayplan/pkg/store"
)

// Status is the terminal status of one orchestration.
type Status string

const (
	// StatusCompleted means every planned agent ran to a terminal state
	// under the success policy.
	StatusCompleted Status = "completed"
	// StatusPartial means the deadline expired mid-plan; the latest
	// committed version is in the result.
	StatusPartial Status = "partial"
	// StatusFailed means a required agent failed (or the policy demanded
	// all agents succeed and one did not).
	StatusFailed Status = "failed"
	// StatusCancelled means the run's context was cancelled.
	StatusCancelled Status = "cancelled"
)

// Request describes one orchestration.
type Request struct {
	// RunID identifies the run in events; generated when empty.
	RunID       string
	ItineraryID string
	Task        agent.Task

	// Message is the user utterance for edit tasks.
	Message string

	// Create is the generation payload for generate tasks.
	Create *models.CreateItineraryRequest
}

// Result is the outcome of one orchestration.
type Result struct {
	RunID   string
	Status  Status
	Version int

	// Agents holds every executed agent's result by name.
	Agents map[string]*agent.Result

	// Intent is the classifier extraction, when the plan included one.
	Intent *agent.Intent

	// Analysis is assistant-facing text from the last agent that produced
	// any (typically the editor).
	Analysis string

	// Diff aggregates node changes across all commits of the run.
	Diff models.Diff

	// Err carries the abort reason for failed runs.
	Err error
}

// Orchestrator executes agent plans against one document store.
type Orchestrator struct {
	cfg      *config.Config
	registry *agent.Registry
	store    store.DocumentStore
	engine   *changeset.Engine
	pub      *events.Publisher
}

// New creates an orchestrator.
func New(cfg *config.Config, registry *agent.Registry, st store.DocumentStore, engine *changeset.Engine, pub *events.Publisher) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		registry: registry,
		store:    st,
		engine:   engine,
		pub:      pub,
	}
}

// Execute runs the plan for the request's task. Agent-level failures are
// folded into the result per the pipeline's success policy; only
// orchestrator-level failures (unknown pipeline, document missing)
// return an error.
func (o *Orchestrator) Execute(ctx context.Context, req Request) (*Result, error) {
	pipeline, err := o.cfg.GetPipeline(string(req.Task))
	if err != nil {
		return nil, fmt.Errorf("no pipeline for task %q: %w", req.Task, err)
	}
	plan, err := buildPlan(o.registry, pipeline.Agents)
	if err != nil {
		return nil, fmt.Errorf("cannot plan %q: %w", req.Task, err)
	}

	if req.RunID == "" {
		req.RunID = uuid.New().String()
	}
	result := &Result{
		RunID:  req.RunID,
		Status: StatusCompleted,
		Agents: make(map[string]*agent.Result),
		Diff:   models.Diff{Added: []string{}, Removed: []string{}, Updated: []string{}},
	}

	snapshot, err := o.loadSnapshot(ctx, req.ItineraryID)
	if err != nil {
		return nil, err
	}
	result.Version = snapshot.Version
	result.Diff.FromVersion = snapshot.Version
	result.Diff.ToVersion = snapshot.Version

	o.pub.RunStatus(req.ItineraryID, req.RunID, string(req.Task), events.RunStatusStarted, snapshot.Version, "")
	slog.Info("Orchestration started",
		"run_id", req.RunID,
		"itinerary_id", req.ItineraryID,
		"task", req.Task,
		"levels", len(plan.Levels),
		"agents", plan.AgentCount())

	policy := o.successPolicy(pipeline)
	for li, level := range plan.Levels {
		outcomes := o.runLevel(ctx, &req, snapshot, level, result.Agents)

		for i, a := range level {
			result.Agents[a.Name()] = outcomes[i]
		}

		// A cancelled or expired context ends the run here: in-flight
		// results are already terminal, nothing further is committed
		// beyond what earlier levels persisted.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return o.finishInterrupted(req, result, ctxErr), nil
		}

		for i, a := range level {
			res := outcomes[i]
			if res.Status == agent.ExecStatusCompleted && res.ChangeSet != nil {
				if err := o.commit(ctx, &req, a.Name(), res.ChangeSet, result); err != nil {
					if ctxErr := ctx.Err(); ctxErr != nil {
						return o.finishInterrupted(req, result, ctxErr), nil
					}
					res.Status = agent.ExecStatusFailed
					res.Err = err
				}
			}
			if aborted := o.checkAbort(a, res, policy); aborted != nil {
				result.Status = StatusFailed
				result.Err = aborted
				o.pub.RunStatus(req.ItineraryID, req.RunID, string(req.Task),
					events.RunStatusFailed, result.Version, aborted.Error())
				return result, nil
			}
		}

		// Later levels must see what this level committed.
		if li < len(plan.Levels)-1 {
			snapshot, err = o.loadSnapshot(ctx, req.ItineraryID)
			if err != nil {
				return nil, err
			}
		}
	}

	o.collectNarrative(result)
	o.pub.RunStatus(req.ItineraryID, req.RunID, string(req.Task),
		events.RunStatusCompleted, result.Version, "")
	slog.Info("Orchestration completed",
		"run_id", req.RunID,
		"itinerary_id", req.ItineraryID,
		"version", result.Version)
	return result, nil
}

// runLevel executes one plan level in parallel and returns the results
// in level order. Infrastructure errors are folded into failed results
// so the caller has one path.
func (o *Orchestrator) runLevel(ctx context.Context, req *Request, snapshot *models.Itinerary, level []agent.Agent, prev map[string]*agent.Result) []*agent.Result {
	outcomes := make([]*agent.Result, len(level))
	var wg sync.WaitGroup
	for i, a := range level {
		wg.Add(1)
		go func(i int, a agent.Agent) {
			defer wg.Done()
			outcomes[i] = o.runAgent(ctx, req, snapshot, a, prev)
		}(i, a)
	}
	wg.Wait()
	return outcomes
}

func (o *Orchestrator) runAgent(ctx context.Context, req *Request, snapshot *models.Itinerary, a agent.Agent, prev map[string]*agent.Result) *agent.Result {
	name := a.Name()
	o.pub.AgentProgress(req.ItineraryID, req.RunID, name, events.AgentStatusRunning, 0, "")

	ec := &agent.ExecContext{
		ItineraryID: req.ItineraryID,
		RunID:       req.RunID,
		Itinerary:   snapshot,
		Message:     req.Message,
		Request:     req.Create,
		Prev:        prev,
		Report: func(progress int, message string) {
			o.pub.AgentProgress(req.ItineraryID, req.RunID, name, events.AgentStatusRunning, progress, message)
		},
	}

	res, err := a.Execute(ctx, ec)
	if err != nil {
		// Infrastructure failure: attribute it to the agent so the plan
		// can continue when the agent is optional.
		res = &agent.Result{Status: agent.ExecStatusFailed, Err: err}
	}
	if res == nil {
		res = &agent.Result{Status: agent.ExecStatusFailed, Err: fmt.Errorf("agent %s returned no result", name)}
	}

	switch res.Status {
	case agent.ExecStatusCompleted:
		o.pub.AgentProgress(req.ItineraryID, req.RunID, name, events.AgentStatusSucceeded, 100, res.Analysis)
	case agent.ExecStatusSkipped:
		o.pub.AgentProgress(req.ItineraryID, req.RunID, name, events.AgentStatusSkipped, 100, res.Analysis)
	default:
		msg := ""
		if res.Err != nil {
			msg = res.Err.Error()
		}
		o.pub.AgentProgress(req.ItineraryID, req.RunID, name, events.AgentStatusFailed, 100, msg)
		slog.Warn("Agent failed",
			"run_id", req.RunID,
			"agent", name,
			"status", res.Status,
			"error", res.Err)
	}
	return res
}

// commit applies one agent's change set through the engine, retrying a
// bounded number of times on version conflict. The engine reloads and
// re-resolves operations against the fresh document on every attempt, so
// a retry is a full re-resolution, not a blind replay.
func (o *Orchestrator) commit(ctx context.Context, req *Request, agentName string, cs *models.ChangeSet, result *Result) error {
	attempts := o.cfg.Dispatch.CommitRetries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		applied, err := o.engine.Apply(ctx, req.ItineraryID, cs, agentName)
		if err == nil {
			o.recordCommit(req, agentName, applied, result)
			return nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return err
		}
		lastErr = err
		slog.Warn("Commit hit a version conflict; reloading and retrying",
			"run_id", req.RunID,
			"agent", agentName,
			"attempt", attempt,
			"max_attempts", attempts)
	}
	return fmt.Errorf("commit for %s gave up after %d version conflicts: %w", agentName, attempts, lastErr)
}

func (o *Orchestrator) recordCommit(req *Request, agentName string, applied *models.ApplyResult, result *Result) {
	if applied.State != models.CommitStateCommitted {
		return
	}
	result.Version = applied.Diff.ToVersion
	result.Diff.ToVersion = applied.Diff.ToVersion
	result.Diff.Added = append(result.Diff.Added, applied.Diff.Added...)
	result.Diff.Removed = append(result.Diff.Removed, applied.Diff.Removed...)
	result.Diff.Updated = append(result.Diff.Updated, applied.Diff.Updated...)
	o.pub.ItineraryCommitted(req.ItineraryID, applied.Diff.ToVersion,
		len(applied.Diff.Added), len(applied.Diff.Removed), len(applied.Diff.Updated), agentName)
}

// checkAbort decides whether an agent outcome aborts the plan.
func (o *Orchestrator) checkAbort(a agent.Agent, res *agent.Result, policy config.SuccessPolicy) error {
	failed := res.Status == agent.ExecStatusFailed ||
		res.Status == agent.ExecStatusTimedOut ||
		res.Status == agent.ExecStatusCancelled
	if !failed {
		return nil
	}
	if a.Required() || policy == config.SuccessPolicyAll {
		if res.Err != nil {
			return fmt.Errorf("required agent %s failed: %w", a.Name(), res.Err)
		}
		return fmt.Errorf("required agent %s failed", a.Name())
	}
	return nil
}

// finishInterrupted marks the run after deadline exhaustion or
// cancellation. Partial runs keep the latest committed version; nothing
// uncommitted is persisted.
func (o *Orchestrator) finishInterrupted(req Request, result *Result, ctxErr error) *Result {
	o.collectNarrative(result)
	result.Err = ctxErr
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		result.Status = StatusPartial
		o.pub.RunStatus(req.ItineraryID, req.RunID, string(req.Task),
			events.RunStatusTimedOut, result.Version, "deadline exceeded")
	} else {
		result.Status = StatusCancelled
		o.pub.RunStatus(req.ItineraryID, req.RunID, string(req.Task),
			events.RunStatusCancelled, result.Version, "cancelled")
	}
	slog.Warn("Orchestration interrupted",
		"run_id", req.RunID,
		"itinerary_id", req.ItineraryID,
		"status", result.Status,
		"version", result.Version)
	return result
}

// collectNarrative lifts the classifier intent and any completed agent's
// assistant text onto the result. Skipped agents carry diagnostic notes,
// not user-facing text, so they are left out.
func (o *Orchestrator) collectNarrative(result *Result) {
	for _, res := range result.Agents {
		if res.Intent != nil {
			result.Intent = res.Intent
		}
		if res.Status == agent.ExecStatusCompleted && res.Analysis != "" {
			result.Analysis = res.Analysis
		}
	}
}

func (o *Orchestrator) successPolicy(pipeline *config.PipelineConfig) config.SuccessPolicy {
	if pipeline.SuccessPolicy.IsValid() {
		return pipeline.SuccessPolicy
	}
	if o.cfg.Defaults.SuccessPolicy.IsValid() {
		return o.cfg.Defaults.SuccessPolicy
	}
	return config.SuccessPolicyRequired
}

// loadSnapshot fetches the latest committed document and migrates legacy
// node IDs in memory. The migrated form is what agents and prompts see;
// the engine persists migration on its own first write.
func (o *Orchestrator) loadSnapshot(ctx context.Context, itineraryID string) (*models.Itinerary, error) {
	it, err := o.store.Get(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load itinerary %s: %w", itineraryID, err)
	}
	return itinerary.Migrate(it), nil
}
