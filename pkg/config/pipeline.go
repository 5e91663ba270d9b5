package config

import (
	"fmt"
	"sync"
)

// PipelineConfig names the agents that serve one kind of run. The
// orchestrator derives phases from the agents' depends_on edges; the
// order here only breaks ties between unrelated agents.
type PipelineConfig struct {
	Description string `yaml:"description,omitempty"`

	// Agents participating in the pipeline, by registry name
	Agents []string `yaml:"agents" validate:"required,min=1"`

	// SuccessPolicy for the run (default: required)
	SuccessPolicy SuccessPolicy `yaml:"success_policy,omitempty"`
}

// PipelineRegistry stores pipeline configurations in memory with thread-safe access
type PipelineRegistry struct {
	pipelines map[string]*PipelineConfig
	mu        sync.RWMutex
}

// NewPipelineRegistry creates a new pipeline registry
func NewPipelineRegistry(pipelines map[string]*PipelineConfig) *PipelineRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*PipelineConfig, len(pipelines))
	for k, v := range pipelines {
		copied[k] = v
	}
	return &PipelineRegistry{
		pipelines: copied,
	}
}

// Get retrieves a pipeline configuration by ID (thread-safe)
func (r *PipelineRegistry) Get(id string) (*PipelineConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.pipelines[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPipelineNotFound, id)
	}
	return p, nil
}

// GetAll returns all pipeline configurations (thread-safe, returns copy)
func (r *PipelineRegistry) GetAll() map[string]*PipelineConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*PipelineConfig, len(r.pipelines))
	for k, v := range r.pipelines {
		result[k] = v
	}
	return result
}

// Has checks if a pipeline exists in the registry (thread-safe)
func (r *PipelineRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.pipelines[id]
	return exists
}

// Len returns the number of pipelines in the registry (thread-safe)
func (r *PipelineRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pipelines)
}
