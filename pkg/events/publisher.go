package events

import "time"

// Publisher emits typed payloads on the bus. All events for an
// itinerary go to its channel; timestamps are stamped here so callers
// never fabricate them.
type Publisher struct {
	bus *Bus
}

// NewPublisher creates a publisher on the given bus.
func NewPublisher(bus *Bus) *Publisher {
	return &Publisher{bus: bus}
}

// Bus returns the underlying bus (for wiring the WebSocket manager).
func (p *Publisher) Bus() *Bus {
	return p.bus
}

// AgentProgress publishes an agent.progress event.
func (p *Publisher) AgentProgress(itineraryID, runID, agent, status string, progress int, message string) {
	p.bus.Publish(ItineraryChannel(itineraryID), AgentProgressPayload{
		Type:        EventTypeAgentProgress,
		ItineraryID: itineraryID,
		RunID:       runID,
		Agent:       agent,
		Status:      status,
		Progress:    progress,
		Message:     message,
		Timestamp:   now(),
	})
}

// RunStatus publishes a run.status event.
func (p *Publisher) RunStatus(itineraryID, runID, pipeline, status string, version int, errMsg string) {
	p.bus.Publish(ItineraryChannel(itineraryID), RunStatusPayload{
		Type:        EventTypeRunStatus,
		ItineraryID: itineraryID,
		RunID:       runID,
		Pipeline:    pipeline,
		Status:      status,
		Version:     version,
		Error:       errMsg,
		Timestamp:   now(),
	})
}

// ItineraryCommitted publishes an itinerary.committed event.
func (p *Publisher) ItineraryCommitted(itineraryID string, version, added, removed, updated int, updatedBy string) {
	p.bus.Publish(ItineraryChannel(itineraryID), ItineraryCommittedPayload{
		Type:        EventTypeItineraryCommitted,
		ItineraryID: itineraryID,
		Version:     version,
		Added:       added,
		Removed:     removed,
		Updated:     updated,
		UpdatedBy:   updatedBy,
		Timestamp:   now(),
	})
}

// ChatUserMessage publishes a chat.user_message event.
func (p *Publisher) ChatUserMessage(itineraryID, content, author string) {
	p.bus.Publish(ItineraryChannel(itineraryID), ChatUserMessagePayload{
		Type:        EventTypeChatUserMessage,
		ItineraryID: itineraryID,
		Content:     content,
		Author:      author,
		Timestamp:   now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
