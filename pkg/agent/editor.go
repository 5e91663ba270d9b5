package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/llm"
	"github.com/wayplan/wayplan/pkg/models"
)

// EditorAgent turns a chat message into a change set. It embeds the
// summarized itinerary in the prompt so the model sees every valid node
// ID, and emits operations in the exact wire form the change engine
// consumes. Strict ID resolution stays with the engine: the editor never
// repairs or remaps IDs the model produced.
type EditorAgent struct {
	meta
	gw      *llm.Gateway
	prompts *prompt.Builder
}

// NewEditorAgent creates the editor from its config entry.
func NewEditorAgent(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) *EditorAgent {
	return &EditorAgent{
		meta:    metaFromConfig(config.AgentEditor, []Task{TaskEdit}, cfg),
		gw:      gw,
		prompts: prompts,
	}
}

func (a *EditorAgent) Execute(ctx context.Context, ec *ExecContext) (*Result, error) {
	if ec.Itinerary == nil {
		return nil, fmt.Errorf("editor needs an itinerary snapshot")
	}
	if ec.Message == "" {
		return nil, fmt.Errorf("editor needs a chat message")
	}

	// Non-edit turns carry the classifier's conversational reply straight
	// through; no second model call.
	intent := ec.PrevIntent()
	if intent != nil && !intent.IsEdit() {
		reply := intent.Reply
		if reply == "" {
			reply = "Nothing to change — let me know what you'd like to adjust."
		}
		return &Result{Status: ExecStatusCompleted, Analysis: reply}, nil
	}

	var promptIntent *prompt.Intent
	if intent != nil {
		promptIntent = &prompt.Intent{
			Day:       intent.Day,
			NodeIDs:   intent.NodeIDs,
			Operation: intent.Operation,
		}
	}

	system, user := a.prompts.Editor(ec.Itinerary, ec.Message, promptIntent)
	raw, usage, err := a.gw.GenerateJSON(ctx, config.LLMTaskEdit, llm.Request{
		System: system,
		Prompt: user,
	}, prompt.ChangeSetSchema)
	if err != nil {
		return resultFromError(err, usage), nil
	}

	var cs models.ChangeSet
	if err := json.Unmarshal(raw, &cs); err != nil {
		return resultFromError(fmt.Errorf("malformed change set: %w", err), usage), nil
	}
	if len(cs.Ops) == 0 {
		return &Result{
			Status:   ExecStatusCompleted,
			Analysis: "I couldn't map that request onto the itinerary; nothing was changed.",
			Usage:    usage,
		}, nil
	}

	// Edits honor locks unless the model was explicitly told otherwise;
	// booking flows go through their own path with respectLocks=false.
	cs.Preferences.RespectLocks = true

	if ec.Report != nil {
		ec.Report(100, fmt.Sprintf("prepared %d operations", len(cs.Ops)))
	}
	return &Result{
		Status:    ExecStatusCompleted,
		ChangeSet: &cs,
		Usage:     usage,
	}, nil
}
