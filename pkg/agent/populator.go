package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/llm"
	"github.com/wayplan/wayplan/pkg/models"
)

// populator is the shared implementation of the Phase-A fill agents.
// Each instance owns a set of node types: it walks the committed
// skeleton, collects the IDs of matching placeholder nodes, and asks the
// LLM to fill exactly those. Updates for any other ID are discarded
// before the patch ever reaches the change engine.
type populator struct {
	meta
	gw        *llm.Gateway
	prompts   *prompt.Builder
	task      config.LLMTask
	subject   string
	nodeTypes map[models.NodeType]bool
}

// NewActivityAgent fills attraction and free-time slots.
func NewActivityAgent(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) Agent {
	return &populator{
		meta:    metaFromConfig(config.AgentActivity, []Task{TaskGenerate}, cfg),
		gw:      gw,
		prompts: prompts,
		task:    config.LLMTaskActivities,
		subject: "attraction and free-time",
		nodeTypes: map[models.NodeType]bool{
			models.NodeTypeAttraction: true,
			models.NodeTypeFreeTime:   true,
		},
	}
}

// NewMealAgent fills meal slots.
func NewMealAgent(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) Agent {
	return &populator{
		meta:    metaFromConfig(config.AgentMeal, []Task{TaskGenerate}, cfg),
		gw:      gw,
		prompts: prompts,
		task:    config.LLMTaskMeals,
		subject: "meal",
		nodeTypes: map[models.NodeType]bool{
			models.NodeTypeMeal: true,
		},
	}
}

// NewTransportAgent fills transit legs between the already-populated
// surrounding nodes.
func NewTransportAgent(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) Agent {
	return &populator{
		meta:    metaFromConfig(config.AgentTransport, []Task{TaskGenerate}, cfg),
		gw:      gw,
		prompts: prompts,
		task:    config.LLMTaskTransport,
		subject: "transport",
		nodeTypes: map[models.NodeType]bool{
			models.NodeTypeTransport: true,
		},
	}
}

type populatorResponse struct {
	Updates []populatorUpdate `json:"updates"`
}

type populatorUpdate struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Location  *models.Location `json:"location,omitempty"`
	StartTime string           `json:"startTime,omitempty"`
	EndTime   string           `json:"endTime,omitempty"`
	Cost      *float64         `json:"cost,omitempty"`
	Tips      []string         `json:"tips,omitempty"`
}

func (a *populator) Execute(ctx context.Context, ec *ExecContext) (*Result, error) {
	if ec.Itinerary == nil {
		return nil, fmt.Errorf("%s needs an itinerary snapshot", a.name)
	}

	allowed := make(map[int][]string)
	allowedSet := make(map[string]bool)
	for _, d := range ec.Itinerary.Days {
		for _, n := range d.Nodes {
			if a.nodeTypes[n.Type] && !n.Locked {
				allowed[d.DayNumber] = append(allowed[d.DayNumber], n.ID)
				allowedSet[n.ID] = true
			}
		}
	}
	if len(allowedSet) == 0 {
		return &Result{Status: ExecStatusSkipped, Analysis: "no matching slots"}, nil
	}

	system, user := a.prompts.Populator(ec.Itinerary, a.subject, allowed)
	raw, usage, err := a.gw.GenerateJSON(ctx, a.task, llm.Request{
		System: system,
		Prompt: user,
	}, prompt.PopulatorSchema)
	if err != nil {
		return resultFromError(err, usage), nil
	}

	var resp populatorResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resultFromError(fmt.Errorf("malformed populator payload: %w", err), usage), nil
	}

	cs := &models.ChangeSet{
		Scope:       models.ScopeTrip,
		Preferences: models.Preferences{RespectLocks: true},
	}
	for _, u := range resp.Updates {
		if !allowedSet[u.ID] {
			slog.Warn("Populator returned an update outside its slot set; dropping",
				"agent", a.name, "node_id", u.ID)
			continue
		}
		u := u
		cs.Ops = append(cs.Ops, models.Operation{
			Op: models.OpReplace,
			ID: u.ID,
			Node: &models.NodePatch{
				Title:     optString(u.Title),
				Location:  u.Location,
				StartTime: optString(u.StartTime),
				EndTime:   optString(u.EndTime),
				Cost:      u.Cost,
				Tips:      u.Tips,
			},
		})
	}
	if len(cs.Ops) == 0 {
		return resultFromError(fmt.Errorf("no usable updates for %d slots", len(allowedSet)), usage), nil
	}

	if ec.Report != nil {
		ec.Report(100, fmt.Sprintf("filled %d of %d slots", len(cs.Ops), len(allowedSet)))
	}
	return &Result{
		Status:    ExecStatusCompleted,
		ChangeSet: cs,
		Usage:     usage,
	}, nil
}
