// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wayplan/wayplan/ent/chatmessage"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
	"github.com/wayplan/wayplan/ent/predicate"
	"github.com/wayplan/wayplan/ent/revision"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage  = "ChatMessage"
	TypeItineraryDoc = "ItineraryDoc"
	TypeRevision     = "Revision"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op               Op
	typ              string
	id               *int
	role             *chatmessage.Role
	content          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	itinerary        *string
	cleareditinerary bool
	done             bool
	oldValue         func(context.Context) (*ChatMessage, error)
	predicates       []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id int) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItineraryID sets the "itinerary_id" field.
func (m *ChatMessageMutation) SetItineraryID(s string) {
	m.itinerary = &s
}

// ItineraryID returns the value of the "itinerary_id" field in the mutation.
func (m *ChatMessageMutation) ItineraryID() (r string, exists bool) {
	v := m.itinerary
	if v == nil {
		return
	}
	return *v, true
}

// OldItineraryID returns the old "itinerary_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldItineraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItineraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItineraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItineraryID: %w", err)
	}
	return oldValue.ItineraryID, nil
}

// ResetItineraryID resets all changes to the "itinerary_id" field.
func (m *ChatMessageMutation) ResetItineraryID() {
	m.itinerary = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItinerary clears the "itinerary" edge to the ItineraryDoc entity.
func (m *ChatMessageMutation) ClearItinerary() {
	m.cleareditinerary = true
	m.clearedFields[chatmessage.FieldItineraryID] = struct{}{}
}

// ItineraryCleared reports if the "itinerary" edge to the ItineraryDoc entity was cleared.
func (m *ChatMessageMutation) ItineraryCleared() bool {
	return m.cleareditinerary
}

// ItineraryIDs returns the "itinerary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItineraryID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ItineraryIDs() (ids []string) {
	if id := m.itinerary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItinerary resets all changes to the "itinerary" edge.
func (m *ChatMessageMutation) ResetItinerary() {
	m.itinerary = nil
	m.cleareditinerary = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.itinerary != nil {
		fields = append(fields, chatmessage.FieldItineraryID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldItineraryID:
		return m.ItineraryID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldItineraryID:
		return m.OldItineraryID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldItineraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItineraryID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldItineraryID:
		m.ResetItineraryID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.itinerary != nil {
		edges = append(edges, chatmessage.EdgeItinerary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeItinerary:
		if id := m.itinerary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditinerary {
		edges = append(edges, chatmessage.EdgeItinerary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeItinerary:
		return m.cleareditinerary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeItinerary:
		m.ClearItinerary()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeItinerary:
		m.ResetItinerary()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ItineraryDocMutation represents an operation that mutates the ItineraryDoc nodes in the graph.
type ItineraryDocMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	document             *json.RawMessage
	appenddocument       json.RawMessage
	version              *int
	addversion           *int
	status               *itinerarydoc.Status
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	revisions            map[int]struct{}
	removedrevisions     map[int]struct{}
	clearedrevisions     bool
	chat_messages        map[int]struct{}
	removedchat_messages map[int]struct{}
	clearedchat_messages bool
	done                 bool
	oldValue             func(context.Context) (*ItineraryDoc, error)
	predicates           []predicate.ItineraryDoc
}

var _ ent.Mutation = (*ItineraryDocMutation)(nil)

// itinerarydocOption allows management of the mutation configuration using functional options.
type itinerarydocOption func(*ItineraryDocMutation)

// newItineraryDocMutation creates new mutation for the ItineraryDoc entity.
func newItineraryDocMutation(c config, op Op, opts ...itinerarydocOption) *ItineraryDocMutation {
	m := &ItineraryDocMutation{
		config:        c,
		op:            op,
		typ:           TypeItineraryDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItineraryDocID sets the ID field of the mutation.
func withItineraryDocID(id string) itinerarydocOption {
	return func(m *ItineraryDocMutation) {
		var (
			err   error
			once  sync.Once
			value *ItineraryDoc
		)
		m.oldValue = func(ctx context.Context) (*ItineraryDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItineraryDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItineraryDoc sets the old ItineraryDoc of the mutation.
func withItineraryDoc(node *ItineraryDoc) itinerarydocOption {
	return func(m *ItineraryDocMutation) {
		m.oldValue = func(context.Context) (*ItineraryDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItineraryDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItineraryDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ItineraryDoc entities.
func (m *ItineraryDocMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItineraryDocMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItineraryDocMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItineraryDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocument sets the "document" field.
func (m *ItineraryDocMutation) SetDocument(jm json.RawMessage) {
	m.document = &jm
	m.appenddocument = nil
}

// Document returns the value of the "document" field in the mutation.
func (m *ItineraryDocMutation) Document() (r json.RawMessage, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the ItineraryDoc entity.
// If the ItineraryDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryDocMutation) OldDocument(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// AppendDocument adds jm to the "document" field.
func (m *ItineraryDocMutation) AppendDocument(jm json.RawMessage) {
	m.appenddocument = append(m.appenddocument, jm...)
}

// AppendedDocument returns the list of values that were appended to the "document" field in this mutation.
func (m *ItineraryDocMutation) AppendedDocument() (json.RawMessage, bool) {
	if len(m.appenddocument) == 0 {
		return nil, false
	}
	return m.appenddocument, true
}

// ResetDocument resets all changes to the "document" field.
func (m *ItineraryDocMutation) ResetDocument() {
	m.document = nil
	m.appenddocument = nil
}

// SetVersion sets the "version" field.
func (m *ItineraryDocMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ItineraryDocMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ItineraryDoc entity.
// If the ItineraryDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryDocMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ItineraryDocMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ItineraryDocMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ItineraryDocMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *ItineraryDocMutation) SetStatus(i itinerarydoc.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *ItineraryDocMutation) Status() (r itinerarydoc.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ItineraryDoc entity.
// If the ItineraryDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryDocMutation) OldStatus(ctx context.Context) (v itinerarydoc.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ItineraryDocMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ItineraryDocMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItineraryDocMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ItineraryDoc entity.
// If the ItineraryDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryDocMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItineraryDocMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItineraryDocMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItineraryDocMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ItineraryDoc entity.
// If the ItineraryDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItineraryDocMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItineraryDocMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by ids.
func (m *ItineraryDocMutation) AddRevisionIDs(ids ...int) {
	if m.revisions == nil {
		m.revisions = make(map[int]struct{})
	}
	for i := range ids {
		m.revisions[ids[i]] = struct{}{}
	}
}

// ClearRevisions clears the "revisions" edge to the Revision entity.
func (m *ItineraryDocMutation) ClearRevisions() {
	m.clearedrevisions = true
}

// RevisionsCleared reports if the "revisions" edge to the Revision entity was cleared.
func (m *ItineraryDocMutation) RevisionsCleared() bool {
	return m.clearedrevisions
}

// RemoveRevisionIDs removes the "revisions" edge to the Revision entity by IDs.
func (m *ItineraryDocMutation) RemoveRevisionIDs(ids ...int) {
	if m.removedrevisions == nil {
		m.removedrevisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.revisions, ids[i])
		m.removedrevisions[ids[i]] = struct{}{}
	}
}

// RemovedRevisions returns the removed IDs of the "revisions" edge to the Revision entity.
func (m *ItineraryDocMutation) RemovedRevisionsIDs() (ids []int) {
	for id := range m.removedrevisions {
		ids = append(ids, id)
	}
	return
}

// RevisionsIDs returns the "revisions" edge IDs in the mutation.
func (m *ItineraryDocMutation) RevisionsIDs() (ids []int) {
	for id := range m.revisions {
		ids = append(ids, id)
	}
	return
}

// ResetRevisions resets all changes to the "revisions" edge.
func (m *ItineraryDocMutation) ResetRevisions() {
	m.revisions = nil
	m.clearedrevisions = false
	m.removedrevisions = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *ItineraryDocMutation) AddChatMessageIDs(ids ...int) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[int]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *ItineraryDocMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *ItineraryDocMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *ItineraryDocMutation) RemoveChatMessageIDs(ids ...int) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *ItineraryDocMutation) RemovedChatMessagesIDs() (ids []int) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *ItineraryDocMutation) ChatMessagesIDs() (ids []int) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *ItineraryDocMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// Where appends a list predicates to the ItineraryDocMutation builder.
func (m *ItineraryDocMutation) Where(ps ...predicate.ItineraryDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItineraryDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItineraryDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItineraryDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItineraryDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItineraryDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItineraryDoc).
func (m *ItineraryDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItineraryDocMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, itinerarydoc.FieldDocument)
	}
	if m.version != nil {
		fields = append(fields, itinerarydoc.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, itinerarydoc.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, itinerarydoc.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, itinerarydoc.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItineraryDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itinerarydoc.FieldDocument:
		return m.Document()
	case itinerarydoc.FieldVersion:
		return m.Version()
	case itinerarydoc.FieldStatus:
		return m.Status()
	case itinerarydoc.FieldCreatedAt:
		return m.CreatedAt()
	case itinerarydoc.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItineraryDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itinerarydoc.FieldDocument:
		return m.OldDocument(ctx)
	case itinerarydoc.FieldVersion:
		return m.OldVersion(ctx)
	case itinerarydoc.FieldStatus:
		return m.OldStatus(ctx)
	case itinerarydoc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case itinerarydoc.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ItineraryDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItineraryDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itinerarydoc.FieldDocument:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case itinerarydoc.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case itinerarydoc.FieldStatus:
		v, ok := value.(itinerarydoc.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case itinerarydoc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case itinerarydoc.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ItineraryDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItineraryDocMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, itinerarydoc.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItineraryDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itinerarydoc.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItineraryDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itinerarydoc.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ItineraryDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItineraryDocMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItineraryDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItineraryDocMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ItineraryDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItineraryDocMutation) ResetField(name string) error {
	switch name {
	case itinerarydoc.FieldDocument:
		m.ResetDocument()
		return nil
	case itinerarydoc.FieldVersion:
		m.ResetVersion()
		return nil
	case itinerarydoc.FieldStatus:
		m.ResetStatus()
		return nil
	case itinerarydoc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case itinerarydoc.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ItineraryDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItineraryDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.revisions != nil {
		edges = append(edges, itinerarydoc.EdgeRevisions)
	}
	if m.chat_messages != nil {
		edges = append(edges, itinerarydoc.EdgeChatMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItineraryDocMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case itinerarydoc.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.revisions))
		for id := range m.revisions {
			ids = append(ids, id)
		}
		return ids
	case itinerarydoc.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItineraryDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrevisions != nil {
		edges = append(edges, itinerarydoc.EdgeRevisions)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, itinerarydoc.EdgeChatMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItineraryDocMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case itinerarydoc.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.removedrevisions))
		for id := range m.removedrevisions {
			ids = append(ids, id)
		}
		return ids
	case itinerarydoc.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItineraryDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrevisions {
		edges = append(edges, itinerarydoc.EdgeRevisions)
	}
	if m.clearedchat_messages {
		edges = append(edges, itinerarydoc.EdgeChatMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItineraryDocMutation) EdgeCleared(name string) bool {
	switch name {
	case itinerarydoc.EdgeRevisions:
		return m.clearedrevisions
	case itinerarydoc.EdgeChatMessages:
		return m.clearedchat_messages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItineraryDocMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ItineraryDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItineraryDocMutation) ResetEdge(name string) error {
	switch name {
	case itinerarydoc.EdgeRevisions:
		m.ResetRevisions()
		return nil
	case itinerarydoc.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	}
	return fmt.Errorf("unknown ItineraryDoc edge %s", name)
}

// RevisionMutation represents an operation that mutates the Revision nodes in the graph.
type RevisionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	version          *int
	addversion       *int
	document         *json.RawMessage
	appenddocument   json.RawMessage
	summary          *string
	updated_by       *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	itinerary        *string
	cleareditinerary bool
	done             bool
	oldValue         func(context.Context) (*Revision, error)
	predicates       []predicate.Revision
}

var _ ent.Mutation = (*RevisionMutation)(nil)

// revisionOption allows management of the mutation configuration using functional options.
type revisionOption func(*RevisionMutation)

// newRevisionMutation creates new mutation for the Revision entity.
func newRevisionMutation(c config, op Op, opts ...revisionOption) *RevisionMutation {
	m := &RevisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRevision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRevisionID sets the ID field of the mutation.
func withRevisionID(id int) revisionOption {
	return func(m *RevisionMutation) {
		var (
			err   error
			once  sync.Once
			value *Revision
		)
		m.oldValue = func(ctx context.Context) (*Revision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Revision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRevision sets the old Revision of the mutation.
func withRevision(node *Revision) revisionOption {
	return func(m *RevisionMutation) {
		m.oldValue = func(context.Context) (*Revision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RevisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RevisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RevisionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RevisionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Revision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItineraryID sets the "itinerary_id" field.
func (m *RevisionMutation) SetItineraryID(s string) {
	m.itinerary = &s
}

// ItineraryID returns the value of the "itinerary_id" field in the mutation.
func (m *RevisionMutation) ItineraryID() (r string, exists bool) {
	v := m.itinerary
	if v == nil {
		return
	}
	return *v, true
}

// OldItineraryID returns the old "itinerary_id" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldItineraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItineraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItineraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItineraryID: %w", err)
	}
	return oldValue.ItineraryID, nil
}

// ResetItineraryID resets all changes to the "itinerary_id" field.
func (m *RevisionMutation) ResetItineraryID() {
	m.itinerary = nil
}

// SetVersion sets the "version" field.
func (m *RevisionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RevisionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RevisionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RevisionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RevisionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetDocument sets the "document" field.
func (m *RevisionMutation) SetDocument(jm json.RawMessage) {
	m.document = &jm
	m.appenddocument = nil
}

// Document returns the value of the "document" field in the mutation.
func (m *RevisionMutation) Document() (r json.RawMessage, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldDocument(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// AppendDocument adds jm to the "document" field.
func (m *RevisionMutation) AppendDocument(jm json.RawMessage) {
	m.appenddocument = append(m.appenddocument, jm...)
}

// AppendedDocument returns the list of values that were appended to the "document" field in this mutation.
func (m *RevisionMutation) AppendedDocument() (json.RawMessage, bool) {
	if len(m.appenddocument) == 0 {
		return nil, false
	}
	return m.appenddocument, true
}

// ResetDocument resets all changes to the "document" field.
func (m *RevisionMutation) ResetDocument() {
	m.document = nil
	m.appenddocument = nil
}

// SetSummary sets the "summary" field.
func (m *RevisionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *RevisionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *RevisionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[revision.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *RevisionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[revision.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *RevisionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, revision.FieldSummary)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *RevisionMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *RevisionMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *RevisionMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[revision.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *RevisionMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[revision.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *RevisionMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, revision.FieldUpdatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *RevisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RevisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Revision entity.
// If the Revision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RevisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RevisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearItinerary clears the "itinerary" edge to the ItineraryDoc entity.
func (m *RevisionMutation) ClearItinerary() {
	m.cleareditinerary = true
	m.clearedFields[revision.FieldItineraryID] = struct{}{}
}

// ItineraryCleared reports if the "itinerary" edge to the ItineraryDoc entity was cleared.
func (m *RevisionMutation) ItineraryCleared() bool {
	return m.cleareditinerary
}

// ItineraryIDs returns the "itinerary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItineraryID instead. It exists only for internal usage by the builders.
func (m *RevisionMutation) ItineraryIDs() (ids []string) {
	if id := m.itinerary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItinerary resets all changes to the "itinerary" edge.
func (m *RevisionMutation) ResetItinerary() {
	m.itinerary = nil
	m.cleareditinerary = false
}

// Where appends a list predicates to the RevisionMutation builder.
func (m *RevisionMutation) Where(ps ...predicate.Revision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RevisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RevisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Revision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RevisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RevisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Revision).
func (m *RevisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RevisionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.itinerary != nil {
		fields = append(fields, revision.FieldItineraryID)
	}
	if m.version != nil {
		fields = append(fields, revision.FieldVersion)
	}
	if m.document != nil {
		fields = append(fields, revision.FieldDocument)
	}
	if m.summary != nil {
		fields = append(fields, revision.FieldSummary)
	}
	if m.updated_by != nil {
		fields = append(fields, revision.FieldUpdatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, revision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RevisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldItineraryID:
		return m.ItineraryID()
	case revision.FieldVersion:
		return m.Version()
	case revision.FieldDocument:
		return m.Document()
	case revision.FieldSummary:
		return m.Summary()
	case revision.FieldUpdatedBy:
		return m.UpdatedBy()
	case revision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RevisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case revision.FieldItineraryID:
		return m.OldItineraryID(ctx)
	case revision.FieldVersion:
		return m.OldVersion(ctx)
	case revision.FieldDocument:
		return m.OldDocument(ctx)
	case revision.FieldSummary:
		return m.OldSummary(ctx)
	case revision.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case revision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Revision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case revision.FieldItineraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItineraryID(v)
		return nil
	case revision.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case revision.FieldDocument:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case revision.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case revision.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case revision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RevisionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, revision.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RevisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case revision.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RevisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case revision.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Revision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RevisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(revision.FieldSummary) {
		fields = append(fields, revision.FieldSummary)
	}
	if m.FieldCleared(revision.FieldUpdatedBy) {
		fields = append(fields, revision.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RevisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RevisionMutation) ClearField(name string) error {
	switch name {
	case revision.FieldSummary:
		m.ClearSummary()
		return nil
	case revision.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown Revision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RevisionMutation) ResetField(name string) error {
	switch name {
	case revision.FieldItineraryID:
		m.ResetItineraryID()
		return nil
	case revision.FieldVersion:
		m.ResetVersion()
		return nil
	case revision.FieldDocument:
		m.ResetDocument()
		return nil
	case revision.FieldSummary:
		m.ResetSummary()
		return nil
	case revision.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case revision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Revision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RevisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.itinerary != nil {
		edges = append(edges, revision.EdgeItinerary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RevisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case revision.EdgeItinerary:
		if id := m.itinerary; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RevisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RevisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RevisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditinerary {
		edges = append(edges, revision.EdgeItinerary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RevisionMutation) EdgeCleared(name string) bool {
	switch name {
	case revision.EdgeItinerary:
		return m.cleareditinerary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RevisionMutation) ClearEdge(name string) error {
	switch name {
	case revision.EdgeItinerary:
		m.ClearItinerary()
		return nil
	}
	return fmt.Errorf("unknown Revision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RevisionMutation) ResetEdge(name string) error {
	switch name {
	case revision.EdgeItinerary:
		m.ResetItinerary()
		return nil
	}
	return fmt.Errorf("unknown Revision edge %s", name)
}
