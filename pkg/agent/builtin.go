package agent

import (
	"fmt"

	"github.com/wayplan/wayplan/pkg/agent/prompt"
	"github.com/wayplan/wayplan/pkg/config"
	"github.com/wayplan/wayplan/pkg/llm"
)

// metaFromConfig builds agent metadata from a config entry. A nil entry
// falls back to the built-in defaults for that agent name, so tests can
// construct agents without a full config load.
func metaFromConfig(name string, tasks []Task, cfg *config.AgentConfig) meta {
	if cfg == nil {
		builtin := config.GetBuiltinConfig().Agents[name]
		cfg = &builtin
	}
	return meta{
		name:      name,
		tasks:     tasks,
		priority:  cfg.Priority,
		dependsOn: append([]string(nil), cfg.DependsOn...),
		required:  cfg.Required,
	}
}

// RegisterBuiltins constructs the seven built-in agents from the loaded
// configuration and registers the enabled ones. Agents disabled in config
// are not registered at all; runtime enable/disable still works through
// the registry afterwards.
func RegisterBuiltins(reg *Registry, cfg *config.Config, gw *llm.Gateway, prompts *prompt.Builder) error {
	builders := []struct {
		name  string
		build func(ac *config.AgentConfig) Agent
	}{
		{config.AgentSkeletonPlanner, func(ac *config.AgentConfig) Agent { return NewSkeletonPlanner(ac, gw, prompts) }},
		{config.AgentActivity, func(ac *config.AgentConfig) Agent { return NewActivityAgent(ac, gw, prompts) }},
		{config.AgentMeal, func(ac *config.AgentConfig) Agent { return NewMealAgent(ac, gw, prompts) }},
		{config.AgentTransport, func(ac *config.AgentConfig) Agent { return NewTransportAgent(ac, gw, prompts) }},
		{config.AgentEnrichment, func(ac *config.AgentConfig) Agent { return NewEnrichmentAgent(ac, gw, prompts) }},
		{config.AgentIntentClassifier, func(ac *config.AgentConfig) Agent { return NewIntentClassifier(ac, gw, prompts) }},
		{config.AgentEditor, func(ac *config.AgentConfig) Agent { return NewEditorAgent(ac, gw, prompts) }},
	}

	for _, b := range builders {
		ac, err := cfg.GetAgent(b.name)
		if err != nil {
			return fmt.Errorf("missing config for built-in agent %s: %w", b.name, err)
		}
		if !ac.IsEnabled() {
			continue
		}
		if err := reg.Register(b.build(ac)); err != nil {
			return fmt.Errorf("failed to register %s: %w", b.name, err)
		}
	}
	return nil
}
