package models

// ChangeScope declares what a change set is about. Scope is advisory:
// operations resolve their own targets by exact ID; the scope and day hint
// only inform prompt construction and diagnostics.
type ChangeScope string

const (
	ScopeDay  ChangeScope = "day"
	ScopeTrip ChangeScope = "trip"
)

// OpKind identifies an operation variant within a change set.
type OpKind string

const (
	OpInsert  OpKind = "insert"
	OpReplace OpKind = "replace"
	OpDelete  OpKind = "delete"
	OpMove    OpKind = "move"
	OpUpdate  OpKind = "update"
)

// Preferences control conflict and safety behavior during apply.
type Preferences struct {
	// UserFirst prefers user-supplied field values over agent-supplied
	// ones when both touch the same node.
	UserFirst bool `json:"userFirst"`
	// RespectLocks makes any operation touching a locked node fail with
	// Locked. Booking flows set this to false deliberately.
	RespectLocks bool `json:"respectLocks"`
	// PreserveTiming shifts subsequent node times on insert to avoid
	// overlaps instead of leaving them as provided.
	PreserveTiming bool `json:"preserveTiming"`
}

// Operation is one tagged edit within a change set. Exactly the fields
// required by its kind are consulted; the rest are ignored.
type Operation struct {
	Op OpKind `json:"op"`

	// insert: After is the node to insert behind (nil/empty = end of day),
	// Day the target day, Node the payload (ID is assigned by the engine).
	After    *string `json:"after,omitempty"`
	Day      int     `json:"day,omitempty"`
	Position *int    `json:"position,omitempty"`

	// replace / delete / move / update target an existing node by exact ID.
	ID    string `json:"id,omitempty"`
	ToDay int    `json:"toDay,omitempty"`

	// Node carries partial node fields for insert and replace.
	Node *NodePatch `json:"node,omitempty"`

	// Fields carries a metadata field diff for update.
	Fields *FieldPatch `json:"fields,omitempty"`
}

// NodePatch is a partial node: nil pointers mean "leave unchanged".
type NodePatch struct {
	Type      *NodeType  `json:"type,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Location  *Location  `json:"location,omitempty"`
	StartTime *string    `json:"startTime,omitempty"`
	EndTime   *string    `json:"endTime,omitempty"`
	Cost      *float64   `json:"cost,omitempty"`
	Tips      []string   `json:"tips,omitempty"`
	Links     []string   `json:"links,omitempty"`
	Status    *NodeStatus `json:"status,omitempty"`
}

// FieldPatch is a metadata-level diff for the update operation.
type FieldPatch struct {
	Labels       []string    `json:"labels,omitempty"`       // replaces label set
	AddLabels    []string    `json:"addLabels,omitempty"`    // appends, dedup
	Locked       *bool       `json:"locked,omitempty"`
	BookingRef   *string     `json:"bookingRef,omitempty"`
	Status       *NodeStatus `json:"status,omitempty"`
	Cost         *float64    `json:"cost,omitempty"`
	Links        []string    `json:"links,omitempty"`
}

// ChangeSet is an ordered list of operations plus preferences.
// This is the wire shape used both between LLM and orchestrator and at the
// external API.
type ChangeSet struct {
	Scope       ChangeScope `json:"scope"`
	Day         *int        `json:"day,omitempty"`
	Preferences Preferences `json:"preferences"`
	Ops         []Operation `json:"ops"`
}

// OpErrorKind is the per-operation failure taxonomy.
type OpErrorKind string

const (
	OpErrNodeNotFound     OpErrorKind = "NodeNotFound"
	OpErrLocked           OpErrorKind = "Locked"
	OpErrInvalidShape     OpErrorKind = "InvalidShape"
	OpErrDayOutOfRange    OpErrorKind = "DayOutOfRange"
	OpErrIDFormatConflict OpErrorKind = "IdFormatConflict"
)

// OpStatus reports the outcome of a single operation within a change set.
type OpStatus struct {
	Index   int         `json:"index"`
	Op      OpKind      `json:"op"`
	OK      bool        `json:"ok"`
	Error   OpErrorKind `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	// Available lists the valid node IDs in the relevant day when the
	// target ID did not resolve. Aids diagnosis of LLM hallucinations.
	Available []string `json:"available,omitempty"`
	// NodeID is the ID the op affected (for insert/move: the new ID).
	NodeID string `json:"nodeId,omitempty"`
}

// Diff summarizes what an applied (or proposed) change set did.
type Diff struct {
	Added          []string `json:"added"`
	Removed        []string `json:"removed"`
	Updated        []string `json:"updated"`
	PreviewVersion int      `json:"previewVersion,omitempty"`
	FromVersion    int      `json:"fromVersion"`
	ToVersion      int      `json:"toVersion"`
}

// CommitState is the terminal state of one commit attempt.
type CommitState string

const (
	CommitStateCommitted  CommitState = "committed"
	CommitStateNoChange   CommitState = "no_change"
	CommitStateLoadFailed CommitState = "load_failed"
)

// ApplyResult is returned by the change engine for apply and propose.
type ApplyResult struct {
	State      CommitState `json:"state"`
	Diff       Diff        `json:"diff"`
	OpStatuses []OpStatus  `json:"opStatuses"`
	// Itinerary is the post-apply document (post-resolution snapshot in
	// propose mode; never persisted in that case).
	Itinerary *Itinerary `json:"-"`
}
