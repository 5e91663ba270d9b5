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

// EnrichmentAgent adds tips, classification labels, and links to nodes
// that earlier agents populated. It only ever appends metadata; titles,
// times, and costs are left untouched.
type EnrichmentAgent struct {
	meta
	gw      *llm.Gateway
	prompts *prompt.Builder
}

// NewEnrichmentAgent creates the enrichment agent from its config entry.
func NewEnrichmentAgent(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) *EnrichmentAgent {
	return &EnrichmentAgent{
		meta:    metaFromConfig(config.AgentEnrichment, []Task{TaskGenerate}, cfg),
		gw:      gw,
		prompts: prompts,
	}
}

type enrichmentResponse struct {
	Enrichments []enrichment `json:"enrichments"`
}

type enrichment struct {
	ID     string   `json:"id"`
	Tips   []string `json:"tips,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Links  []string `json:"links,omitempty"`
}

func (a *EnrichmentAgent) Execute(ctx context.Context, ec *ExecContext) (*Result, error) {
	if ec.Itinerary == nil {
		return nil, fmt.Errorf("enrichment agent needs an itinerary snapshot")
	}

	// Transit legs and free time gain nothing from tips and links.
	eligible := make(map[string]bool)
	var ids []string
	for _, d := range ec.Itinerary.Days {
		for _, n := range d.Nodes {
			switch n.Type {
			case models.NodeTypeAttraction, models.NodeTypeMeal, models.NodeTypeHotel:
				eligible[n.ID] = true
				ids = append(ids, n.ID)
			}
		}
	}
	if len(ids) == 0 {
		return &Result{Status: ExecStatusSkipped, Analysis: "nothing to enrich"}, nil
	}

	system, user := a.prompts.Enrichment(ec.Itinerary, ids)
	raw, usage, err := a.gw.GenerateJSON(ctx, config.LLMTaskEnrich, llm.Request{
		System: system,
		Prompt: user,
	}, prompt.EnrichmentSchema)
	if err != nil {
		return resultFromError(err, usage), nil
	}

	var resp enrichmentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resultFromError(fmt.Errorf("malformed enrichment payload: %w", err), usage), nil
	}

	cs := &models.ChangeSet{
		Scope:       models.ScopeTrip,
		Preferences: models.Preferences{RespectLocks: true},
	}
	for _, e := range resp.Enrichments {
		if !eligible[e.ID] {
			slog.Warn("Enrichment returned an unknown or ineligible node id; dropping",
				"node_id", e.ID)
			continue
		}
		if len(e.Tips) == 0 && len(e.Labels) == 0 && len(e.Links) == 0 {
			continue
		}
		if len(e.Tips) > 0 {
			cs.Ops = append(cs.Ops, models.Operation{
				Op:   models.OpReplace,
				ID:   e.ID,
				Node: &models.NodePatch{Tips: e.Tips},
			})
		}
		if len(e.Labels) > 0 || len(e.Links) > 0 {
			cs.Ops = append(cs.Ops, models.Operation{
				Op: models.OpUpdate,
				ID: e.ID,
				Fields: &models.FieldPatch{
					AddLabels: e.Labels,
					Links:     e.Links,
				},
			})
		}
	}
	if len(cs.Ops) == 0 {
		return &Result{Status: ExecStatusCompleted, Analysis: "no enrichments returned", Usage: usage}, nil
	}

	if ec.Report != nil {
		ec.Report(100, fmt.Sprintf("enriched %d nodes", len(resp.Enrichments)))
	}
	return &Result{
		Status:    ExecStatusCompleted,
		ChangeSet: cs,
		Usage:     usage,
	}, nil
}
