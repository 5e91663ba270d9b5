package events

// AgentProgressPayload is the payload for agent.progress events.
// Published as agents start, advance, and finish inside a planning run.
type AgentProgressPayload struct {
	Type        string `json:"type"`               // always EventTypeAgentProgress
	ItineraryID string `json:"itinerary_id"`       // owning itinerary
	RunID       string `json:"run_id"`             // owning planning run UUID
	Agent       string `json:"agent"`              // agent registry name
	Status      string `json:"status"`             // running, succeeded, failed, skipped
	Progress    int    `json:"progress"`           // 0-100
	Message     string `json:"message,omitempty"`  // human-readable progress note
	Timestamp   string `json:"timestamp"`          // RFC3339Nano
}

// RunStatusPayload is the payload for run.status events.
// Single event type for all run lifecycle transitions.
type RunStatusPayload struct {
	Type        string `json:"type"`              // always EventTypeRunStatus
	ItineraryID string `json:"itinerary_id"`      // owning itinerary
	RunID       string `json:"run_id"`            // planning run UUID
	Pipeline    string `json:"pipeline"`          // pipeline ID (generate, edit)
	Status      string `json:"status"`            // started, completed, failed, timed_out, cancelled
	Version     int    `json:"version,omitempty"` // committed document version on completed
	Error       string `json:"error,omitempty"`   // failure reason on failed/timed_out
	Timestamp   string `json:"timestamp"`         // RFC3339Nano
}

// ItineraryCommittedPayload is the payload for itinerary.committed events.
// Published after every persisted version bump so open clients refetch.
type ItineraryCommittedPayload struct {
	Type        string `json:"type"`         // always EventTypeItineraryCommitted
	ItineraryID string `json:"itinerary_id"` // itinerary
	Version     int    `json:"version"`      // new document version
	Added       int    `json:"added"`        // node IDs added by this version
	Removed     int    `json:"removed"`      // node IDs removed
	Updated     int    `json:"updated"`      // node IDs updated in place
	UpdatedBy   string `json:"updated_by"`   // "user" or agent name
	Timestamp   string `json:"timestamp"`    // RFC3339Nano
}

// ChatUserMessagePayload is the payload for chat.user_message events.
type ChatUserMessagePayload struct {
	Type        string `json:"type"`         // always EventTypeChatUserMessage
	ItineraryID string `json:"itinerary_id"` // owning itinerary
	Content     string `json:"content"`      // message text
	Author      string `json:"author"`       // who sent the message
	Timestamp   string `json:"timestamp"`    // RFC3339Nano
}
