package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/llm"
	"github.com/wayplan/wayplan/pkg/models"
)

// SkeletonPlanner produces the day scaffold for a new trip: one ordered
// sequence of placeholder nodes per calendar day, committed as inserts.
// The canonical IDs the change engine assigns to those inserts are the
// contract every later agent operates against.
type SkeletonPlanner struct {
	meta
	gw      *llm.Gateway
	prompts *prompt.Builder
}

// NewSkeletonPlanner creates the skeleton planner from its config entry.
func NewSkeletonPlanner(cfg *config.AgentConfig, gw *llm.Gateway, prompts *prompt.Builder) *SkeletonPlanner {
	return &SkeletonPlanner{
		meta:    metaFromConfig(config.AgentSkeletonPlanner, []Task{TaskGenerate}, cfg),
		gw:      gw,
		prompts: prompts,
	}
}

type skeletonResponse struct {
	Days []skeletonDay `json:"days"`
}

type skeletonDay struct {
	Day             int            `json:"day"`
	Location        string         `json:"location,omitempty"`
	Pace            string         `json:"pace,omitempty"`
	TimeWindowStart string         `json:"timeWindowStart,omitempty"`
	TimeWindowEnd   string         `json:"timeWindowEnd,omitempty"`
	Nodes           []skeletonNode `json:"nodes"`
}

type skeletonNode struct {
	Type      models.NodeType `json:"type"`
	Title     string          `json:"title"`
	StartTime string          `json:"startTime,omitempty"`
	EndTime   string          `json:"endTime,omitempty"`
}

// Execute asks the LLM for the scaffold and converts it into an ordered
// insert change set. Scaffold entries for days outside the trip span are
// dropped rather than failing the whole plan.
func (a *SkeletonPlanner) Execute(ctx context.Context, ec *ExecContext) (*Result, error) {
	if ec.Request == nil {
		return nil, fmt.Errorf("skeleton planner needs a generation request")
	}
	dayCount, err := itinerary.DayCount(ec.Request.StartDate, ec.Request.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid trip dates: %w", err)
	}

	system, user := a.prompts.Skeleton(ec.Request, dayCount)
	raw, usage, err := a.gw.GenerateJSON(ctx, config.LLMTaskSkeleton, llm.Request{
		System: system,
		Prompt: user,
	}, prompt.SkeletonSchema)
	if err != nil {
		return resultFromError(err, usage), nil
	}

	var resp skeletonResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return resultFromError(fmt.Errorf("malformed skeleton payload: %w", err), usage), nil
	}

	cs := &models.ChangeSet{
		Scope:       models.ScopeTrip,
		Preferences: models.Preferences{RespectLocks: true},
	}
	for _, day := range resp.Days {
		if day.Day < 1 || day.Day > dayCount {
			continue
		}
		for _, n := range day.Nodes {
			n := n
			cs.Ops = append(cs.Ops, models.Operation{
				Op:  models.OpInsert,
				Day: day.Day,
				Node: &models.NodePatch{
					Type:      &n.Type,
					Title:     &n.Title,
					StartTime: optString(n.StartTime),
					EndTime:   optString(n.EndTime),
				},
			})
		}
	}
	if len(cs.Ops) == 0 {
		return resultFromError(fmt.Errorf("skeleton produced no usable slots"), usage), nil
	}

	if ec.Report != nil {
		ec.Report(100, fmt.Sprintf("planned %d slots across %d days", len(cs.Ops), dayCount))
	}
	return &Result{
		Status:    ExecStatusCompleted,
		ChangeSet: cs,
		Usage:     usage,
	}, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
