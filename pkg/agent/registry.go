package agent

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	ErrDuplicateAgent  = errors.New("agent already registered")
	ErrAgentNotFound   = errors.New("agent not found")
	ErrPriorityOverlap = errors.New("another enabled agent holds the same priority for this task")
)

// Registry is the process-wide agent table. It is the only mutable
// shared structure in the agent layer: agents may be enabled and
// disabled at runtime, so all access goes through this guarded API and
// tests can swap agents deterministically.
//
// Invariant: for any task tag, at most one enabled agent per priority
// level. Register and Enable reject violations.
type Registry struct {
	mu      sync.RWMutex
	agents  map[string]Agent
	enabled map[string]bool
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{
		agents:  make(map[string]Agent),
		enabled: make(map[string]bool),
	}
}

// Register adds an agent in the enabled state. Fails on duplicate name
// or when an already-enabled agent covers one of the same tasks at the
// same priority.
func (r *Registry) Register(a Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if _, exists := r.agents[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAgent, name)
	}
	if conflict := r.findOverlap(a); conflict != "" {
		return fmt.Errorf("%w: %s conflicts with %s at priority %d",
			ErrPriorityOverlap, name, conflict, a.Priority())
	}

	r.agents[name] = a
	r.enabled[name] = true
	return nil
}

// Get returns the agent with the given name, enabled or not.
func (r *Registry) Get(name string) (Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return a, nil
}

// IsEnabled reports whether the named agent is registered and enabled.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[name]
}

// Enable re-enables a disabled agent, re-checking the per-task priority
// invariant against the currently enabled set.
func (r *Registry) Enable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.agents[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	if r.enabled[name] {
		return nil
	}
	if conflict := r.findOverlap(a); conflict != "" {
		return fmt.Errorf("%w: %s conflicts with %s at priority %d",
			ErrPriorityOverlap, name, conflict, a.Priority())
	}
	r.enabled[name] = true
	return nil
}

// Disable takes an agent out of plan computation without unregistering it.
func (r *Registry) Disable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agents[name]; !ok {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	r.enabled[name] = false
	return nil
}

// ForTask returns the enabled agents supporting a task, ordered by
// priority then name. The slice is a fresh copy.
func (r *Registry) ForTask(task Task) []Agent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Agent
	for name, a := range r.agents {
		if !r.enabled[name] {
			continue
		}
		if supportsTask(a, task) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority() != out[j].Priority() {
			return out[i].Priority() < out[j].Priority()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Len returns the number of registered agents, enabled or not.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// findOverlap looks for an enabled agent sharing a task tag with a at
// the same priority. Caller holds r.mu.
func (r *Registry) findOverlap(a Agent) string {
	for name, other := range r.agents {
		if name == a.Name() || !r.enabled[name] {
			continue
		}
		if other.Priority() != a.Priority() {
			continue
		}
		for _, t := range a.Tasks() {
			if supportsTask(other, t) {
				return name
			}
		}
	}
	return ""
}

func supportsTask(a Agent, task Task) bool {
	for _, t := range a.Tasks() {
		if t == task {
			return true
		}
	}
	return false
}
