package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	return t == LLMProviderTypeOpenAI || t == LLMProviderTypeAnthropic
}

// LLMTask identifies a planning task for per-task provider routing.
// Cheap tasks (classification) can route to a small model while
// generation tasks route to a stronger one.
type LLMTask string

const (
	// LLMTaskClassify is user intent classification for chat turns
	LLMTaskClassify LLMTask = "classify"
	// LLMTaskSkeleton is day skeleton generation for a new trip
	LLMTaskSkeleton LLMTask = "skeleton"
	// LLMTaskActivities is attraction/free-time suggestion
	LLMTaskActivities LLMTask = "activities"
	// LLMTaskMeals is restaurant/meal suggestion
	LLMTaskMeals LLMTask = "meals"
	// LLMTaskTransport is inter-node transit planning
	LLMTaskTransport LLMTask = "transport"
	// LLMTaskEnrich is tips/labels/links enrichment of existing nodes
	LLMTaskEnrich LLMTask = "enrich"
	// LLMTaskEdit is conversational itinerary editing
	LLMTaskEdit LLMTask = "edit"
)

// IsValid checks if the LLM task is valid
func (t LLMTask) IsValid() bool {
	switch t {
	case LLMTaskClassify,
		LLMTaskSkeleton,
		LLMTaskActivities,
		LLMTaskMeals,
		LLMTaskTransport,
		LLMTaskEnrich,
		LLMTaskEdit:
		return true
	default:
		return false
	}
}

// SuccessPolicy defines success criteria for a parallel agent phase
type SuccessPolicy string

const (
	// SuccessPolicyAll requires all agents in the phase to succeed
	SuccessPolicyAll SuccessPolicy = "all"
	// SuccessPolicyRequired requires only agents marked required to succeed (default)
	SuccessPolicyRequired SuccessPolicy = "required"
)

// IsValid checks if the success policy is valid
func (p SuccessPolicy) IsValid() bool {
	return p == SuccessPolicyAll || p == SuccessPolicyRequired
}
