package config

import (
	"fmt"
	"log/slog"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: LLM providers → agents → pipelines → routing.
	// This ensures dependencies are validated before dependents.

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validatePipelines(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateRouting(); err != nil {
		return fmt.Errorf("routing validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateDispatch(); err != nil {
		return fmt.Errorf("dispatch validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.MaxOutputTokens < 0 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must not be negative"))
		}
		if provider.MaxAttempts < 0 {
			return NewValidationError("llm_provider", name, "max_attempts", fmt.Errorf("must not be negative"))
		}

		// Warn (don't fail) when the API key variable is unset: tests and
		// propose-only deployments run without live providers.
		if provider.APIKeyEnv != "" {
			if _, ok := os.LookupEnv(provider.APIKeyEnv); !ok {
				slog.Warn("LLM provider API key variable is not set",
					"provider", name, "env", provider.APIKeyEnv)
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	agents := v.cfg.AgentRegistry.GetAll()

	for name, agent := range agents {
		for _, dep := range agent.DependsOn {
			if dep == name {
				return NewValidationError("agent", name, "depends_on", fmt.Errorf("agent cannot depend on itself"))
			}
			if _, ok := agents[dep]; !ok {
				return NewValidationError("agent", name, "depends_on", fmt.Errorf("%w: agent '%s' not found", ErrInvalidReference, dep))
			}
		}

		if agent.Priority < 0 {
			return NewValidationError("agent", name, "priority", fmt.Errorf("must not be negative"))
		}

		if agent.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(agent.LLMProvider) {
			return NewValidationError("agent", name, "llm_provider", fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, agent.LLMProvider))
		}
	}

	// Dependency edges must form a DAG or the orchestrator cannot phase them.
	if cycle := findDependencyCycle(agents); cycle != "" {
		return NewValidationError("agent", cycle, "depends_on", fmt.Errorf("dependency cycle detected"))
	}

	return nil
}

func (v *ConfigValidator) validatePipelines() error {
	for id, pipeline := range v.cfg.PipelineRegistry.GetAll() {
		if len(pipeline.Agents) == 0 {
			return NewValidationError("pipeline", id, "agents", fmt.Errorf("at least one agent required"))
		}

		for _, agentName := range pipeline.Agents {
			if !v.cfg.AgentRegistry.Has(agentName) {
				return NewValidationError("pipeline", id, "agents", fmt.Errorf("%w: agent '%s' not found", ErrInvalidReference, agentName))
			}
		}

		if pipeline.SuccessPolicy != "" && !pipeline.SuccessPolicy.IsValid() {
			return NewValidationError("pipeline", id, "success_policy", fmt.Errorf("%w: %s", ErrInvalidValue, pipeline.SuccessPolicy))
		}
	}

	return nil
}

func (v *ConfigValidator) validateRouting() error {
	for task, providerName := range v.cfg.Routing {
		if !task.IsValid() {
			return NewValidationError("routing", string(task), "", fmt.Errorf("%w: unknown task", ErrInvalidValue))
		}
		if !v.cfg.LLMProviderRegistry.Has(providerName) {
			return NewValidationError("routing", string(task), "", fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, providerName))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if d.LLMProvider == "" {
		return NewValidationError("defaults", "defaults", "llm_provider", ErrMissingRequiredField)
	}
	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, d.LLMProvider))
	}
	if d.SummaryTokenBudget != nil && *d.SummaryTokenBudget < 1 {
		return NewValidationError("defaults", "defaults", "summary_token_budget", fmt.Errorf("must be at least 1"))
	}
	if d.SuccessPolicy != "" && !d.SuccessPolicy.IsValid() {
		return NewValidationError("defaults", "defaults", "success_policy", fmt.Errorf("%w: %s", ErrInvalidValue, d.SuccessPolicy))
	}

	return nil
}

func (v *ConfigValidator) validateDispatch() error {
	d := v.cfg.Dispatch

	if d.WorkerCount < 1 {
		return NewValidationError("dispatch", "dispatch", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if d.MaxConcurrentRuns < 1 {
		return NewValidationError("dispatch", "dispatch", "max_concurrent_runs", fmt.Errorf("must be at least 1"))
	}
	if d.RunTimeout <= 0 {
		return NewValidationError("dispatch", "dispatch", "run_timeout", fmt.Errorf("must be positive"))
	}
	if d.HeartbeatInterval <= 0 {
		return NewValidationError("dispatch", "dispatch", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if d.CommitRetries < 0 {
		return NewValidationError("dispatch", "dispatch", "commit_retries", fmt.Errorf("must not be negative"))
	}

	return nil
}

// findDependencyCycle returns the name of an agent on a depends_on cycle,
// or "" when the graph is acyclic.
func findDependencyCycle(agents map[string]*AgentConfig) string {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(agents))

	var visit func(name string) string
	visit = func(name string) string {
		switch state[name] {
		case visiting:
			return name
		case done:
			return ""
		}
		state[name] = visiting
		agent, ok := agents[name]
		if ok {
			for _, dep := range agent.DependsOn {
				if offender := visit(dep); offender != "" {
					return offender
				}
			}
		}
		state[name] = done
		return ""
	}

	for name := range agents {
		if offender := visit(name); offender != "" {
			return offender
		}
	}
	return ""
}
