package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig builds a minimal valid Config for validator tests.
func testConfig(mutate func(*Config)) *Config {
	budget := 1000
	cfg := &Config{
		Defaults: &Defaults{
			LLMProvider:        "p1",
			SummaryTokenBudget: &budget,
			SuccessPolicy:      SuccessPolicyRequired,
		},
		Dispatch: DefaultDispatchConfig(),
		Routing:  LLMRouting{},
		AgentRegistry: NewAgentRegistry(map[string]*AgentConfig{
			"a": {Priority: 1},
			"b": {Priority: 2, DependsOn: []string{"a"}},
		}),
		PipelineRegistry: NewPipelineRegistry(map[string]*PipelineConfig{
			"run": {Agents: []string{"a", "b"}},
		}),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"p1": {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
		}),
	}
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func TestValidatorAcceptsValidConfig(t *testing.T) {
	require.NoError(t, NewValidator(testConfig(nil)).ValidateAll())
}

func TestValidatorRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errIs  error
	}{
		{
			name: "provider missing model",
			mutate: func(c *Config) {
				c.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"p1": {Type: LLMProviderTypeOpenAI},
				})
			},
			errIs: ErrMissingRequiredField,
		},
		{
			name: "provider bad type",
			mutate: func(c *Config) {
				c.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"p1": {Type: "gemini", Model: "m"},
				})
			},
			errIs: ErrInvalidValue,
		},
		{
			name: "agent depends on unknown agent",
			mutate: func(c *Config) {
				c.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
					"a": {DependsOn: []string{"ghost"}},
				})
				c.PipelineRegistry = NewPipelineRegistry(map[string]*PipelineConfig{
					"run": {Agents: []string{"a"}},
				})
			},
			errIs: ErrInvalidReference,
		},
		{
			name: "pipeline references unknown agent",
			mutate: func(c *Config) {
				c.PipelineRegistry = NewPipelineRegistry(map[string]*PipelineConfig{
					"run": {Agents: []string{"ghost"}},
				})
			},
			errIs: ErrInvalidReference,
		},
		{
			name: "routing references unknown provider",
			mutate: func(c *Config) {
				c.Routing = LLMRouting{LLMTaskEdit: "ghost"}
			},
			errIs: ErrInvalidReference,
		},
		{
			name: "routing references unknown task",
			mutate: func(c *Config) {
				c.Routing = LLMRouting{"banana": "p1"}
			},
			errIs: ErrInvalidValue,
		},
		{
			name: "default provider unknown",
			mutate: func(c *Config) {
				c.Defaults.LLMProvider = "ghost"
			},
			errIs: ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator(testConfig(tt.mutate)).ValidateAll()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errIs)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestValidatorDetectsDependencyCycle(t *testing.T) {
	cfg := testConfig(func(c *Config) {
		c.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
			"a": {DependsOn: []string{"b"}},
			"b": {DependsOn: []string{"c"}},
			"c": {DependsOn: []string{"a"}},
		})
		c.PipelineRegistry = NewPipelineRegistry(map[string]*PipelineConfig{
			"run": {Agents: []string{"a"}},
		})
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency cycle")
}

func TestValidatorSelfDependency(t *testing.T) {
	cfg := testConfig(func(c *Config) {
		c.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{
			"a": {DependsOn: []string{"a"}},
		})
		c.PipelineRegistry = NewPipelineRegistry(map[string]*PipelineConfig{
			"run": {Agents: []string{"a"}},
		})
	})

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot depend on itself")
}
