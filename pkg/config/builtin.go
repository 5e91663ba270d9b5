package config

// BuiltinConfig holds the configuration shipped with the binary. User
// YAML overrides these entries by name; anything not overridden works
// out of the box with just API keys in the environment.
type BuiltinConfig struct {
	Agents       map[string]AgentConfig
	Pipelines    map[string]PipelineConfig
	LLMProviders map[string]LLMProviderConfig
	Routing      LLMRouting

	DefaultLLMProvider        string
	DefaultCurrency           string
	DefaultSummaryTokenBudget int
}

// Built-in agent names. Runtime implementations register under the
// same names (see pkg/agent).
const (
	AgentIntentClassifier = "intent-classifier"
	AgentSkeletonPlanner  = "skeleton-planner"
	AgentActivity         = "activity-agent"
	AgentMeal             = "meal-agent"
	AgentTransport        = "transport-agent"
	AgentEnrichment       = "enrichment-agent"
	AgentEditor           = "editor-agent"
)

// Built-in pipeline IDs.
const (
	PipelineGenerate = "generate"
	PipelineEdit     = "edit"
)

// GetBuiltinConfig returns the built-in configuration.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Agents: map[string]AgentConfig{
			AgentIntentClassifier: {
				Description: "Classifies a chat turn as an edit request, a question, or chatter",
				Priority:    10,
			},
			AgentSkeletonPlanner: {
				Description: "Lays out day structure and pre-assigned node slots for a new trip",
				Priority:    10,
				Required:    true,
			},
			AgentActivity: {
				Description: "Fills attraction and free-time slots",
				Priority:    20,
				DependsOn:   []string{AgentSkeletonPlanner},
				Required:    true,
			},
			AgentMeal: {
				Description: "Fills meal slots near surrounding activities",
				// Distinct priorities: the runtime registry allows one
				// agent per (task, priority) pair. The three populators
				// still share a plan level via dependsOn.
				Priority:  21,
				DependsOn: []string{AgentSkeletonPlanner},
			},
			AgentTransport: {
				Description: "Plans transit between consecutive nodes",
				Priority:    30,
				DependsOn:   []string{AgentSkeletonPlanner},
			},
			AgentEnrichment: {
				Description: "Adds tips, labels, and links to planned nodes",
				Priority:    40,
				DependsOn:   []string{AgentActivity, AgentMeal, AgentTransport},
			},
			AgentEditor: {
				Description: "Turns a chat message into itinerary operations",
				Priority:    20,
				DependsOn:   []string{AgentIntentClassifier},
				Required:    true,
			},
		},
		Pipelines: map[string]PipelineConfig{
			PipelineGenerate: {
				Description: "Full trip generation from an empty itinerary",
				Agents: []string{
					AgentSkeletonPlanner,
					AgentActivity,
					AgentMeal,
					AgentTransport,
					AgentEnrichment,
				},
			},
			PipelineEdit: {
				Description: "Conversational editing of an existing itinerary",
				Agents: []string{
					AgentIntentClassifier,
					AgentEditor,
				},
			},
		},
		LLMProviders: map[string]LLMProviderConfig{
			"openai-default": {
				Type:            LLMProviderTypeOpenAI,
				Model:           "gpt-4o",
				APIKeyEnv:       "OPENAI_API_KEY",
				MaxOutputTokens: 4096,
				MaxAttempts:     3,
			},
			"openai-mini": {
				Type:            LLMProviderTypeOpenAI,
				Model:           "gpt-4o-mini",
				APIKeyEnv:       "OPENAI_API_KEY",
				MaxOutputTokens: 1024,
				MaxAttempts:     3,
			},
			"anthropic-default": {
				Type:            LLMProviderTypeAnthropic,
				Model:           "claude-sonnet-4-5",
				APIKeyEnv:       "ANTHROPIC_API_KEY",
				MaxOutputTokens: 4096,
				MaxAttempts:     3,
			},
		},
		Routing: LLMRouting{
			// Classification is cheap and latency-sensitive.
			LLMTaskClassify: "openai-mini",
		},

		DefaultLLMProvider:        "openai-default",
		DefaultCurrency:           "EUR",
		DefaultSummaryTokenBudget: 2000,
	}
}
