// Package models defines the itinerary document model and the wire types
// shared between the change engine, the agents, and the HTTP API.
package models

import (
	"encoding/json"
	"time"
)

// ItineraryStatus represents the lifecycle state of an itinerary document.
type ItineraryStatus string

const (
	ItineraryStatusDraft      ItineraryStatus = "draft"
	ItineraryStatusGenerating ItineraryStatus = "generating"
	ItineraryStatusReady      ItineraryStatus = "ready"
	ItineraryStatusFailed     ItineraryStatus = "failed"
)

// NodeType classifies what a node represents within a day.
type NodeType string

const (
	NodeTypeAttraction NodeType = "attraction"
	NodeTypeMeal       NodeType = "meal"
	NodeTypeTransport  NodeType = "transport"
	NodeTypeHotel      NodeType = "hotel"
	NodeTypeFreeTime   NodeType = "freetime"
)

// NodeStatus represents the completion state of a single node.
type NodeStatus string

const (
	NodeStatusPlanned    NodeStatus = "planned"
	NodeStatusInProgress NodeStatus = "in_progress"
	NodeStatusCompleted  NodeStatus = "completed"
)

// Itinerary is the root aggregate: a versioned travel plan spanning
// consecutive calendar days. All mutations go through the change engine;
// version increases strictly on every committed change.
type Itinerary struct {
	ItineraryID string          `json:"itineraryId"`
	Version     int             `json:"version"`
	UpdatedAt   int64           `json:"updatedAt"` // epoch milliseconds
	Origin      string          `json:"origin,omitempty"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"` // ISO date (2006-01-02)
	EndDate     string          `json:"endDate"`
	Currency    string          `json:"currency,omitempty"`
	Themes      []string        `json:"themes,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	Status      ItineraryStatus `json:"status"`
	Days        []*Day          `json:"days"`

	// AgentData holds opaque per-agent payloads keyed by agent name.
	AgentData map[string]json.RawMessage `json:"agentData,omitempty"`

	// Revisions and Chat are append-only and read-only to the core;
	// they are maintained by the store layer.
	Revisions []RevisionMeta `json:"revisions,omitempty"`
	Chat      []ChatEntry    `json:"chat,omitempty"`
}

// RevisionMeta describes one persisted revision of the document.
type RevisionMeta struct {
	Version   int    `json:"version"`
	CreatedAt int64  `json:"createdAt"`
	Author    string `json:"author,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ChatEntry is one message of the itinerary's chat transcript.
type ChatEntry struct {
	Role      string `json:"role"` // "user" or "assistant"
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Day holds the ordered visit plan for one calendar day.
// Node order IS the visit order.
type Day struct {
	DayNumber       int     `json:"dayNumber"` // 1-based, contiguous
	Date            string  `json:"date"`
	Location        string  `json:"location,omitempty"`
	Pace            string  `json:"pace,omitempty"`
	TotalDistanceKm float64 `json:"totalDistanceKm,omitempty"`
	TotalCost       float64 `json:"totalCost,omitempty"`
	TotalDurationM  int     `json:"totalDurationMinutes,omitempty"`
	TimeWindowStart string  `json:"timeWindowStart,omitempty"` // "09:00"
	TimeWindowEnd   string  `json:"timeWindowEnd,omitempty"`
	TimeZone        string  `json:"timeZone,omitempty"`

	// MaxNodeSeq is the highest node sequence number ever allocated in
	// this day. Persisted so deleted sequence numbers are never reused.
	MaxNodeSeq int `json:"maxNodeSeq,omitempty"`

	Nodes []*Node       `json:"nodes"`
	Edges []TransitEdge `json:"edges,omitempty"`
}

// Node is a single visit, meal, transit leg, hotel stay, or free-time slot.
type Node struct {
	ID        string     `json:"id"` // canonical form day{N}_node{M}
	Type      NodeType   `json:"type"`
	Title     string     `json:"title"`
	Location  *Location  `json:"location,omitempty"`
	StartTime string     `json:"startTime,omitempty"` // "13:30"
	EndTime   string     `json:"endTime,omitempty"`
	Cost      float64    `json:"cost,omitempty"`
	Labels    []string   `json:"labels,omitempty"`
	Tips      []string   `json:"tips,omitempty"`
	Links     []string   `json:"links,omitempty"`
	BookingRef *string   `json:"bookingRef,omitempty"`
	Locked    bool       `json:"locked,omitempty"`
	Status    NodeStatus `json:"status,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"` // "user" or agent name
	UpdatedAt int64      `json:"updatedAt,omitempty"`
}

// Location identifies a place a node refers to.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"lat,omitempty"`
	Longitude float64 `json:"lng,omitempty"`
	PlaceID   string  `json:"placeId,omitempty"`
}

// TransitEdge is an optional transit hop between two nodes of a day.
// Edges are stored flat, keyed by node IDs; nodes hold no back-references.
type TransitEdge struct {
	FromNodeID  string  `json:"fromNodeId"`
	ToNodeID    string  `json:"toNodeId"`
	Mode        string  `json:"mode,omitempty"`
	DistanceKm  float64 `json:"distanceKm,omitempty"`
	DurationMin int     `json:"durationMinutes,omitempty"`
}

// DayByNumber returns the day with the given dayNumber, or nil.
func (it *Itinerary) DayByNumber(n int) *Day {
	for _, d := range it.Days {
		if d.DayNumber == n {
			return d
		}
	}
	return nil
}

// FindNode locates a node by exact ID anywhere in the document.
// Returns the owning day, the node, and the node's index within the day,
// or (nil, nil, -1) when the ID does not resolve.
func (it *Itinerary) FindNode(id string) (*Day, *Node, int) {
	for _, d := range it.Days {
		for i, n := range d.Nodes {
			if n.ID == id {
				return d, n, i
			}
		}
	}
	return nil, nil, -1
}

// NodeIDs returns the IDs of all nodes in a day, in visit order.
func (d *Day) NodeIDs() []string {
	ids := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Touch updates the document timestamp to now.
func (it *Itinerary) Touch() {
	it.UpdatedAt = time.Now().UnixMilli()
}

// Clone returns a deep copy of the itinerary. Used for propose mode and
// for snapshots handed to readers outside the per-itinerary lock.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := *it
	out.Themes = append([]string(nil), it.Themes...)
	out.Revisions = append([]RevisionMeta(nil), it.Revisions...)
	out.Chat = append([]ChatEntry(nil), it.Chat...)
	if it.AgentData != nil {
		out.AgentData = make(map[string]json.RawMessage, len(it.AgentData))
		for k, v := range it.AgentData {
			out.AgentData[k] = append(json.RawMessage(nil), v...)
		}
	}
	out.Days = make([]*Day, len(it.Days))
	for i, d := range it.Days {
		out.Days[i] = d.Clone()
	}
	return &out
}

// Clone returns a deep copy of the day.
func (d *Day) Clone() *Day {
	if d == nil {
		return nil
	}
	out := *d
	out.Nodes = make([]*Node, len(d.Nodes))
	for i, n := range d.Nodes {
		out.Nodes[i] = n.Clone()
	}
	out.Edges = append([]TransitEdge(nil), d.Edges...)
	return &out
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := *n
	out.Labels = append([]string(nil), n.Labels...)
	out.Tips = append([]string(nil), n.Tips...)
	out.Links = append([]string(nil), n.Links...)
	if n.Location != nil {
		loc := *n.Location
		out.Location = &loc
	}
	if n.BookingRef != nil {
		ref := *n.BookingRef
		out.BookingRef = &ref
	}
	return &out
}
