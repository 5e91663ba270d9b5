package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitializeBuiltinOnly(t *testing.T) {
	// Empty config dir: everything comes from built-ins.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 7, stats.Agents)
	assert.Equal(t, 2, stats.Pipelines)
	assert.Equal(t, 3, stats.LLMProviders)

	assert.Equal(t, "openai-default", cfg.Defaults.LLMProvider)
	assert.Equal(t, "EUR", cfg.Defaults.Currency)
	require.NotNil(t, cfg.Defaults.SummaryTokenBudget)
	assert.Equal(t, 2000, *cfg.Defaults.SummaryTokenBudget)

	// Classification routes to the cheap model, everything else defaults.
	assert.Equal(t, "openai-mini", cfg.ProviderForTask(LLMTaskClassify))
	assert.Equal(t, "openai-default", cfg.ProviderForTask(LLMTaskEdit))

	generate, err := cfg.GetPipeline(PipelineGenerate)
	require.NoError(t, err)
	assert.Contains(t, generate.Agents, AgentSkeletonPlanner)

	assert.Equal(t, 30*time.Second, cfg.Dispatch.HeartbeatInterval)
}

func TestInitializeUserOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "wayplan.yaml", `
agents:
  editor-agent:
    description: "Custom editor"
    priority: 5
    depends_on: [intent-classifier]
    required: true
    llm_provider: anthropic-default
llm_routing:
  edit: anthropic-default
defaults:
  currency: USD
dispatch:
  worker_count: 2
  run_timeout: 90s
`)
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  anthropic-default:
    type: anthropic
    model: claude-sonnet-4-5
    api_key_env: ANTHROPIC_API_KEY
    max_output_tokens: 2048
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	editor, err := cfg.GetAgent(AgentEditor)
	require.NoError(t, err)
	assert.Equal(t, "Custom editor", editor.Description)
	assert.Equal(t, 5, editor.Priority)
	assert.Equal(t, "anthropic-default", editor.LLMProvider)

	// Provider override replaced the built-in entry wholesale.
	anthropic, err := cfg.GetLLMProvider("anthropic-default")
	require.NoError(t, err)
	assert.Equal(t, 2048, anthropic.MaxOutputTokens)

	assert.Equal(t, "anthropic-default", cfg.ProviderForTask(LLMTaskEdit))
	assert.Equal(t, "USD", cfg.Defaults.Currency)

	// Partial dispatch YAML merges over defaults.
	assert.Equal(t, 2, cfg.Dispatch.WorkerCount)
	assert.Equal(t, 90*time.Second, cfg.Dispatch.RunTimeout)
	assert.Equal(t, 8, cfg.Dispatch.MaxConcurrentRuns)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("WAYPLAN_TEST_MODEL", "gpt-4.1")

	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  custom:
    type: openai
    model: "{{.WAYPLAN_TEST_MODEL}}"
    api_key_env: OPENAI_API_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	custom, err := cfg.GetLLMProvider("custom")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", custom.Model)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "wayplan.yaml", "agents: [not: a: map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "wayplan.yaml", loadErr.File)
}

func TestInitializeUnknownReferenceFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "wayplan.yaml", `
pipelines:
  generate:
    agents: [no-such-agent]
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestAgentRegistryAccess(t *testing.T) {
	reg := NewAgentRegistry(map[string]*AgentConfig{
		"a": {Priority: 1},
	})

	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("b"))
	assert.Equal(t, 1, reg.Len())

	_, err := reg.Get("b")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	// GetAll returns a copy: mutating it must not affect the registry.
	all := reg.GetAll()
	delete(all, "a")
	assert.True(t, reg.Has("a"))
}
