package orchestrator

import (
	"fmt"
	"sort"

	"github.com/wayplan/wayplan/pkg/agent"
)

// Plan is the execution order for one run: topological levels over the
// selected agents' dependsOn edges. Agents within a level have no
// dependency relation and run in parallel; levels run strictly in
// sequence. Within a level, agents are ordered by priority then name so
// commit order is deterministic.
type Plan struct {
	Levels [][]agent.Agent
}

// AgentCount returns the total number of agents across all levels.
func (p *Plan) AgentCount() int {
	n := 0
	for _, level := range p.Levels {
		n += len(level)
	}
	return n
}

// buildPlan selects the enabled registered agents named by the pipeline
// and layers them by dependsOn. Dependencies pointing outside the
// selected set are ignored: a disabled optional agent must not wedge its
// dependents. Config validation already rejects cycles, but an
// inconsistent runtime registration still surfaces as an error here
// rather than an infinite loop.
func buildPlan(reg *agent.Registry, agentNames []string) (*Plan, error) {
	selected := make(map[string]agent.Agent)
	for _, name := range agentNames {
		if !reg.IsEnabled(name) {
			continue
		}
		a, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		selected[name] = a
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no enabled agents for pipeline agents %v", agentNames)
	}

	placed := make(map[string]bool)
	plan := &Plan{}
	for len(placed) < len(selected) {
		var level []agent.Agent
		for name, a := range selected {
			if placed[name] {
				continue
			}
			ready := true
			for _, dep := range a.DependsOn() {
				if _, inSet := selected[dep]; inSet && !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, a)
			}
		}
		if len(level) == 0 {
			return nil, fmt.Errorf("dependency cycle among agents %v", unplaced(selected, placed))
		}
		sort.Slice(level, func(i, j int) bool {
			if level[i].Priority() != level[j].Priority() {
				return level[i].Priority() < level[j].Priority()
			}
			return level[i].Name() < level[j].Name()
		})
		for _, a := range level {
			placed[a.Name()] = true
		}
		plan.Levels = append(plan.Levels, level)
	}
	return plan, nil
}

func unplaced(selected map[string]agent.Agent, placed map[string]bool) []string {
	var out []string
	for name := range selected {
		if !placed[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
