package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/llm"
)

// IntentClassifier turns one chat utterance into a typed intent: an edit
// request with extracted entities, a question, or plain chatter. It
// produces no patch; the editor consumes its output downstream. Routed to
// a small, fast model via the classify task.
type IntentClassifier struct {
	meta
	gw      *llm.Gateway
	prompts *prompt.Builder
}

// NewIntentClassifier creates the classifier from its config entry.
func NewIntentClassifier(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) *IntentClassifier {
	return &IntentClassifier{
		meta:    metaFromConfig(config.AgentIntentClassifier, []Task{TaskEdit}, cfg),
		gw:      gw,
		prompts: prompts,
	}
}

func (a *IntentClassifier) Execute(ctx context.Context, ec *ExecContext) (*Result, error) {
	if ec.Message == "" {
		return nil, fmt.Errorf("intent classifier needs a chat message")
	}

	system, user := a.prompts.Classify(ec.Itinerary, ec.Message)
	raw, usage, err := a.gw.GenerateJSON(ctx, config.LLMTaskClassify, llm.Request{
		System: system,
		Prompt: user,
	}, prompt.ClassifySchema)
	if err != nil {
		return resultFromError(err, usage), nil
	}

	var intent Intent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return resultFromError(fmt.Errorf("malformed intent payload: %w", err), usage), nil
	}

	return &Result{
		Status: ExecStatusCompleted,
		Intent: &intent,
		Usage:  usage,
	}, nil
}
