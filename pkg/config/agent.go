// Package config provides configuration management for the wayplan system,
// including agent, pipeline, and LLM provider configurations.
package config

import (
	"fmt"
	"sync"
)

// AgentConfig defines agent configuration (metadata only — see
// agent.Registry for runtime instantiation).
type AgentConfig struct {
	// Human-readable description
	Description string `yaml:"description,omitempty"`

	// Enabled toggles the agent without removing its definition.
	// Nil means enabled.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Priority orders agents within an orchestration phase (lower runs
	// earlier when phases are serialized; informational for parallel phases)
	Priority int `yaml:"priority,omitempty"`

	// DependsOn lists agent names whose output this agent consumes.
	// The orchestrator schedules dependencies in earlier phases.
	DependsOn []string `yaml:"depends_on,omitempty"`

	// Required marks the agent's success as mandatory for the run
	Required bool `yaml:"required,omitempty"`

	// LLM provider override for this agent (falls back to task routing,
	// then to Defaults.LLMProvider)
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Custom instructions appended to the agent's prompt
	CustomInstructions string `yaml:"custom_instructions,omitempty"`
}

// IsEnabled reports whether the agent should run.
func (a *AgentConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{
		agents: copied,
	}
}

// Get retrieves an agent configuration by name (thread-safe)
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe)
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Len returns the number of agents in the registry (thread-safe)
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
