package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// LLM provider default for all agents/tasks
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Token budget for itinerary summaries fed to the LLM
	SummaryTokenBudget *int `yaml:"summary_token_budget,omitempty" validate:"omitempty,min=1"`

	// Success policy default for pipelines
	SuccessPolicy SuccessPolicy `yaml:"success_policy,omitempty"`

	// Default currency for new itineraries
	Currency string `yaml:"currency,omitempty"`

	// Default trip pace hint passed to planning prompts
	Pace string `yaml:"pace,omitempty"`
}
