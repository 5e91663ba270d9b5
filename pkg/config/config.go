package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Dispatcher and worker pool configuration
	Dispatch *DispatchConfig

	// Task → provider routing for LLM calls
	Routing LLMRouting

	// Component registries
	AgentRegistry       *AgentRegistry
	PipelineRegistry    *PipelineRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents       int
	Pipelines    int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.PipelineRegistry != nil {
		s.Pipelines = c.PipelineRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetPipeline retrieves a pipeline configuration by ID.
// This is a convenience method that wraps PipelineRegistry.Get().
func (c *Config) GetPipeline(id string) (*PipelineConfig, error) {
	return c.PipelineRegistry.Get(id)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ProviderForTask resolves the provider name for a task: explicit
// routing first, then the system default.
func (c *Config) ProviderForTask(task LLMTask) string {
	if name, ok := c.Routing[task]; ok && name != "" {
		return name
	}
	return c.Defaults.LLMProvider
}
