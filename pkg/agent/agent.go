// Package agent defines the agent abstraction, the runtime registry, and
// the built-in planning and editing agents. Each agent produces a partial
// patch (a change set) that the orchestrator commits through the change
// engine; agents never write to the store themselves.
package agent

import (
	"context"
	"errors"

	"github.com/wayplan/wayplan/pkg/llm"
	"github.com/wayplan/wayplan/pkg/models"
)

// Task tags the kind of work an orchestration performs. Tasks map 1:1 to
// the built-in pipeline IDs in pkg/config.
type Task string

const (
	// TaskGenerate is full trip generation from an empty itinerary.
	TaskGenerate Task = "generate"
	// TaskEdit is a chat-driven edit of an existing itinerary.
	TaskEdit Task = "edit"
)

// ExecStatus is the terminal status of one agent execution.
type ExecStatus string

const (
	ExecStatusCompleted ExecStatus = "completed"
	ExecStatusFailed    ExecStatus = "failed"
	ExecStatusSkipped   ExecStatus = "skipped"
	ExecStatusTimedOut  ExecStatus = "timed_out"
	ExecStatusCancelled ExecStatus = "cancelled"
)

// ExecContext carries everything an agent needs for one execution. The
// itinerary is an immutable snapshot: agents read it to learn the node
// IDs they may reference but mutate nothing.
type ExecContext struct {
	ItineraryID string
	RunID       string

	// Itinerary is the committed document snapshot for this phase.
	Itinerary *models.Itinerary

	// Message is the user utterance for edit tasks.
	Message string

	// Request is the generation payload for generate tasks.
	Request *models.CreateItineraryRequest

	// Prev holds the results of agents from earlier plan levels, keyed by
	// agent name.
	Prev map[string]*Result

	// Report, when non-nil, lets the agent stream intermediate progress
	// (0–100) to the event bus.
	Report func(progress int, message string)
}

// PrevIntent returns the intent produced by an earlier agent in the plan,
// or nil when none classified this run.
func (ec *ExecContext) PrevIntent() *Intent {
	for _, res := range ec.Prev {
		if res != nil && res.Intent != nil {
			return res.Intent
		}
	}
	return nil
}

// Intent is the classified meaning of a chat utterance.
type Intent struct {
	// Kind is one of "edit", "question", "chatter".
	Kind string `json:"intent"`
	// Day is the day the user referred to, when one was named.
	Day *int `json:"day,omitempty"`
	// NodeIDs are canonical node IDs the utterance references.
	NodeIDs []string `json:"nodeIds,omitempty"`
	// Operation is the edit verb the classifier extracted (add, remove,
	// move, change, ...); advisory only.
	Operation string `json:"operation,omitempty"`
	// Reply is a direct conversational answer for non-edit intents.
	Reply string `json:"reply,omitempty"`
}

// IsEdit reports whether the utterance asks for an itinerary change.
func (i *Intent) IsEdit() bool {
	return i != nil && i.Kind == "edit"
}

// Result is the outcome of one agent execution. By convention agents
// return (*Result, nil) for agent-level failures — check Status and Err —
// and (nil, error) only for infrastructure failures the orchestrator
// cannot attribute to the agent.
type Result struct {
	Status ExecStatus

	// ChangeSet is the partial patch the agent wants committed. Nil when
	// the agent had nothing to contribute.
	ChangeSet *models.ChangeSet

	// Intent is set by the intent classifier only.
	Intent *Intent

	// Analysis is user-facing assistant text accompanying the patch.
	Analysis string

	// Err is the agent-level failure when Status is failed.
	Err error

	Usage llm.Usage
}

// Agent is a named unit of work producing a partial itinerary patch,
// usually via an LLM call. Metadata drives plan computation; Execute does
// the work.
type Agent interface {
	Name() string
	Tasks() []Task
	Priority() int
	DependsOn() []string
	Required() bool

	Execute(ctx context.Context, execCtx *ExecContext) (*Result, error)
}

// meta is the declarative half of an agent, shared by all built-ins.
type meta struct {
	name      string
	tasks     []Task
	priority  int
	dependsOn []string
	required  bool
}

func (m meta) Name() string        { return m.name }
func (m meta) Tasks() []Task       { return append([]Task(nil), m.tasks...) }
func (m meta) Priority() int       { return m.priority }
func (m meta) DependsOn() []string { return append([]string(nil), m.dependsOn...) }
func (m meta) Required() bool      { return m.required }

// resultFromError folds an execution error into a terminal result,
// classifying deadline and cancellation. errors.Is runs on the returned
// error rather than ctx.Err() so a concurrent expiration does not
// misclassify an unrelated failure.
func resultFromError(err error, usage llm.Usage) *Result {
	status := ExecStatusFailed
	if errors.Is(err, context.DeadlineExceeded) {
		status = ExecStatusTimedOut
	} else if errors.Is(err, context.Canceled) {
		status = ExecStatusCancelled
	}
	return &Result{Status: status, Err: err, Usage: usage}
}
