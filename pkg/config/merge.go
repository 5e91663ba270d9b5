package config

// mergeAgents merges built-in and user-defined agent configurations.
// User-defined agents override built-in agents with the same name.
func mergeAgents(builtinAgents map[string]AgentConfig, userAgents map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig)

	for name, builtin := range builtinAgents {
		// Defensive copy of DependsOn slice to prevent shared state
		depsCopy := make([]string, len(builtin.DependsOn))
		copy(depsCopy, builtin.DependsOn)
		agentCopy := builtin
		agentCopy.DependsOn = depsCopy
		result[name] = &agentCopy
	}

	// Then, override with user-defined agents (or add new ones)
	for name, userAgent := range userAgents {
		agentCopy := userAgent
		result[name] = &agentCopy
	}

	return result
}

// mergePipelines merges built-in and user-defined pipeline configurations.
// User-defined pipelines override built-in pipelines with the same ID.
func mergePipelines(builtinPipelines map[string]PipelineConfig, userPipelines map[string]PipelineConfig) map[string]*PipelineConfig {
	result := make(map[string]*PipelineConfig)

	for id, p := range builtinPipelines {
		pCopy := p
		agentsCopy := make([]string, len(p.Agents))
		copy(agentsCopy, p.Agents)
		pCopy.Agents = agentsCopy
		result[id] = &pCopy
	}

	// Then, override with user-defined pipelines (or add new ones)
	for id, userPipeline := range userPipelines {
		pCopy := userPipeline
		result[id] = &pCopy
	}

	return result
}

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeRouting merges built-in and user-defined task routing.
// User entries override built-in entries per task.
func mergeRouting(builtin LLMRouting, user LLMRouting) LLMRouting {
	result := make(LLMRouting, len(builtin)+len(user))
	for task, provider := range builtin {
		result[task] = provider
	}
	for task, provider := range user {
		result[task] = provider
	}
	return result
}
