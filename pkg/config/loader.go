package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// WayplanYAMLConfig represents the complete wayplan.yaml file structure
type WayplanYAMLConfig struct {
	Agents    map[string]AgentConfig    `yaml:"agents"`
	Pipelines map[string]PipelineConfig `yaml:"pipelines"`
	Routing   LLMRouting                `yaml:"llm_routing"`
	Defaults  *Defaults                 `yaml:"defaults"`
	Dispatch  *DispatchConfig           `yaml:"dispatch"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"pipelines", stats.Pipelines,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load wayplan.yaml (contains agents, pipelines, routing, defaults)
	wayplanConfig, err := loader.loadWayplanYAML()
	if err != nil {
		return nil, NewLoadError("wayplan.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, wayplanConfig.Agents)
	pipelines := mergePipelines(builtin.Pipelines, wayplanConfig.Pipelines)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	routing := mergeRouting(builtin.Routing, wayplanConfig.Routing)

	// 5. Build registries
	agentRegistry := NewAgentRegistry(agents)
	pipelineRegistry := NewPipelineRegistry(pipelines)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := wayplanConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = builtin.DefaultLLMProvider
	}
	if defaults.Currency == "" {
		defaults.Currency = builtin.DefaultCurrency
	}
	if defaults.SummaryTokenBudget == nil {
		budget := builtin.DefaultSummaryTokenBudget
		defaults.SummaryTokenBudget = &budget
	}
	if defaults.SuccessPolicy == "" {
		defaults.SuccessPolicy = SuccessPolicyRequired
	}

	// Resolve dispatch config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	dispatchConfig := DefaultDispatchConfig()
	if wayplanConfig.Dispatch != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(dispatchConfig, wayplanConfig.Dispatch, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge dispatch config: %w", err)
		}
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Dispatch:            dispatchConfig,
		Routing:             routing,
		AgentRegistry:       agentRegistry,
		PipelineRegistry:    pipelineRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadWayplanYAML loads wayplan.yaml. A missing file is not an error:
// built-in agents and pipelines cover the default deployment.
func (l *configLoader) loadWayplanYAML() (*WayplanYAMLConfig, error) {
	var config WayplanYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentConfig)
	config.Pipelines = make(map[string]PipelineConfig)
	config.Routing = make(LLMRouting)

	if err := l.loadYAML("wayplan.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("wayplan.yaml not found, using built-in configuration")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadLLMProvidersYAML loads llm-providers.yaml. A missing file falls
// back to the built-in providers.
func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("llm-providers.yaml not found, using built-in providers")
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}
