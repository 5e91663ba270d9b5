package models

// ChatRequest is a chat-driven edit request addressed to the orchestrator.
type ChatRequest struct {
	ItineraryID string `json:"itineraryId"`
	Message     string `json:"message"`
	UserID      string `json:"userId,omitempty"`
	DeadlineMs  int64  `json:"deadlineMs,omitempty"`
}

// ChatMessage is one message of a chat response.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatResponse is the orchestrator's answer to a chat-driven edit.
type ChatResponse struct {
	Version   int           `json:"version"`
	ChangeSet *ChangeSet    `json:"changeSet,omitempty"`
	Diff      *Diff         `json:"diff,omitempty"`
	Messages  []ChatMessage `json:"messages"`
	Status    string        `json:"status"` // applied, proposed, partial, failed
}

// CreateItineraryRequest starts the initial generation pipeline.
type CreateItineraryRequest struct {
	Origin      string   `json:"origin,omitempty"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Currency    string   `json:"currency,omitempty"`
	Themes      []string `json:"themes,omitempty"`
	UserID      string   `json:"userId,omitempty"`
}

// UndoRequest restores the itinerary to a prior version.
type UndoRequest struct {
	ToVersion int `json:"toVersion"`
}
