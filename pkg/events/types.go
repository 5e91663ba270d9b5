// Package events provides real-time event delivery: an in-process bus
// with per-channel fan-out, and a WebSocket connection manager that
// forwards bus events to subscribed clients.
//
// Delivery is best-effort. Subscriber channels are bounded; a consumer
// that falls behind has events dropped rather than stalling planners.
// Clients reconcile by reloading the itinerary through the REST API —
// every terminal event carries the committed version to diff against.
package events

// Event types published on itinerary channels.
const (
	// EventTypeAgentProgress reports one agent's progress inside a run.
	EventTypeAgentProgress = "agent.progress"

	// EventTypeRunStatus reports planning run lifecycle transitions.
	EventTypeRunStatus = "run.status"

	// EventTypeItineraryCommitted fires after a new document version is
	// persisted, whatever produced it (agent run, chat edit, undo).
	EventTypeItineraryCommitted = "itinerary.committed"

	// EventTypeChatUserMessage echoes a user chat message to other
	// clients viewing the same itinerary.
	EventTypeChatUserMessage = "chat.user_message"
)

// Agent progress status values (used in AgentProgressPayload.Status).
const (
	AgentStatusRunning   = "running"
	AgentStatusSucceeded = "succeeded"
	AgentStatusFailed    = "failed"
	AgentStatusSkipped   = "skipped"
)

// Run lifecycle status values (used in RunStatusPayload.Status).
const (
	RunStatusStarted   = "started"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
	RunStatusTimedOut  = "timed_out"
	RunStatusCancelled = "cancelled"
)

// ItineraryChannel returns the channel name for one itinerary's events.
// Format: "itinerary:{itinerary_id}"
func ItineraryChannel(itineraryID string) string {
	return "itinerary:" + itineraryID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // Channel name (e.g., "itinerary:abc-123")
}
