// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wayplan/wayplan/ent/chatmessage"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
	"github.com/wayplan/wayplan/ent/predicate"
	"github.com/wayplan/wayplan/ent/revision"
)

// ItineraryDocUpdate is the builder for updating ItineraryDoc entities.
type ItineraryDocUpdate struct {
	config
	hooks    []Hook
	mutation *ItineraryDocMutation
}

// Where appends a list predicates to the ItineraryDocUpdate builder.
func (_u *ItineraryDocUpdate) Where(ps ...predicate.ItineraryDoc) *ItineraryDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocument sets the "document" field.
func (_u *ItineraryDocUpdate) SetDocument(v json.RawMessage) *ItineraryDocUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// AppendDocument appends value to the "document" field.
func (_u *ItineraryDocUpdate) AppendDocument(v json.RawMessage) *ItineraryDocUpdate {
	_u.mutation.AppendDocument(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ItineraryDocUpdate) SetVersion(v int) *ItineraryDocUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ItineraryDocUpdate) SetNillableVersion(v *int) *ItineraryDocUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ItineraryDocUpdate) AddVersion(v int) *ItineraryDocUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItineraryDocUpdate) SetStatus(v itinerarydoc.Status) *ItineraryDocUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItineraryDocUpdate) SetNillableStatus(v *itinerarydoc.Status) *ItineraryDocUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItineraryDocUpdate) SetUpdatedAt(v time.Time) *ItineraryDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_u *ItineraryDocUpdate) AddRevisionIDs(ids ...int) *ItineraryDocUpdate {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_u *ItineraryDocUpdate) AddRevisions(v ...*Revision) *ItineraryDocUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *ItineraryDocUpdate) AddChatMessageIDs(ids ...int) *ItineraryDocUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryDocUpdate) AddChatMessages(v ...*ChatMessage) *ItineraryDocUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the ItineraryDocMutation object of the builder.
func (_u *ItineraryDocUpdate) Mutation() *ItineraryDocMutation {
	return _u.mutation
}

// ClearRevisions clears all "revisions" edges to the Revision entity.
func (_u *ItineraryDocUpdate) ClearRevisions() *ItineraryDocUpdate {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Revision entities by IDs.
func (_u *ItineraryDocUpdate) RemoveRevisionIDs(ids ...int) *ItineraryDocUpdate {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Revision entities.
func (_u *ItineraryDocUpdate) RemoveRevisions(v ...*Revision) *ItineraryDocUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryDocUpdate) ClearChatMessages() *ItineraryDocUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *ItineraryDocUpdate) RemoveChatMessageIDs(ids ...int) *ItineraryDocUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *ItineraryDocUpdate) RemoveChatMessages(v ...*ChatMessage) *ItineraryDocUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItineraryDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItineraryDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItineraryDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItineraryDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItineraryDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itinerarydoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItineraryDocUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := itinerarydoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ItineraryDoc.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ItineraryDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itinerarydoc.Table, itinerarydoc.Columns, sqlgraph.NewFieldSpec(itinerarydoc.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(itinerarydoc.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocument(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, itinerarydoc.FieldDocument, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(itinerarydoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(itinerarydoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(itinerarydoc.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itinerarydoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.RevisionsTable,
			Columns: []string{itinerarydoc.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.RevisionsTable,
			Columns: []string{itinerarydoc.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.RevisionsTable,
			Columns: []string{itinerarydoc.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.ChatMessagesTable,
			Columns: []string{itinerarydoc.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.ChatMessagesTable,
			Columns: []string{itinerarydoc.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.ChatMessagesTable,
			Columns: []string{itinerarydoc.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itinerarydoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItineraryDocUpdateOne is the builder for updating a single ItineraryDoc entity.
type ItineraryDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItineraryDocMutation
}

// SetDocument sets the "document" field.
func (_u *ItineraryDocUpdateOne) SetDocument(v json.RawMessage) *ItineraryDocUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// AppendDocument appends value to the "document" field.
func (_u *ItineraryDocUpdateOne) AppendDocument(v json.RawMessage) *ItineraryDocUpdateOne {
	_u.mutation.AppendDocument(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ItineraryDocUpdateOne) SetVersion(v int) *ItineraryDocUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ItineraryDocUpdateOne) SetNillableVersion(v *int) *ItineraryDocUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ItineraryDocUpdateOne) AddVersion(v int) *ItineraryDocUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItineraryDocUpdateOne) SetStatus(v itinerarydoc.Status) *ItineraryDocUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItineraryDocUpdateOne) SetNillableStatus(v *itinerarydoc.Status) *ItineraryDocUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItineraryDocUpdateOne) SetUpdatedAt(v time.Time) *ItineraryDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRevisionIDs adds the "revisions" edge to the Revision entity by IDs.
func (_u *ItineraryDocUpdateOne) AddRevisionIDs(ids ...int) *ItineraryDocUpdateOne {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Revision entity.
func (_u *ItineraryDocUpdateOne) AddRevisions(v ...*Revision) *ItineraryDocUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *ItineraryDocUpdateOne) AddChatMessageIDs(ids ...int) *ItineraryDocUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryDocUpdateOne) AddChatMessages(v ...*ChatMessage) *ItineraryDocUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the ItineraryDocMutation object of the builder.
func (_u *ItineraryDocUpdateOne) Mutation() *ItineraryDocMutation {
	return _u.mutation
}

// ClearRevisions clears all "revisions" edges to the Revision entity.
func (_u *ItineraryDocUpdateOne) ClearRevisions() *ItineraryDocUpdateOne {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Revision entities by IDs.
func (_u *ItineraryDocUpdateOne) RemoveRevisionIDs(ids ...int) *ItineraryDocUpdateOne {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Revision entities.
func (_u *ItineraryDocUpdateOne) RemoveRevisions(v ...*Revision) *ItineraryDocUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *ItineraryDocUpdateOne) ClearChatMessages() *ItineraryDocUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *ItineraryDocUpdateOne) RemoveChatMessageIDs(ids ...int) *ItineraryDocUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *ItineraryDocUpdateOne) RemoveChatMessages(v ...*ChatMessage) *ItineraryDocUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Where appends a list predicates to the ItineraryDocUpdate builder.
func (_u *ItineraryDocUpdateOne) Where(ps ...predicate.ItineraryDoc) *ItineraryDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItineraryDocUpdateOne) Select(field string, fields ...string) *ItineraryDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItineraryDoc entity.
func (_u *ItineraryDocUpdateOne) Save(ctx context.Context) (*ItineraryDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItineraryDocUpdateOne) SaveX(ctx context.Context) *ItineraryDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItineraryDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItineraryDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItineraryDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itinerarydoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItineraryDocUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := itinerarydoc.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ItineraryDoc.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ItineraryDocUpdateOne) sqlSave(ctx context.Context) (_node *ItineraryDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itinerarydoc.Table, itinerarydoc.Columns, sqlgraph.NewFieldSpec(itinerarydoc.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItineraryDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itinerarydoc.FieldID)
		for _, f := range fields {
			if !itinerarydoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itinerarydoc.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(itinerarydoc.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocument(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, itinerarydoc.FieldDocument, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(itinerarydoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(itinerarydoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(itinerarydoc.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itinerarydoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.RevisionsTable,
			Columns: []string{itinerarydoc.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.RevisionsTable,
			Columns: []string{itinerarydoc.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.RevisionsTable,
			Columns: []string{itinerarydoc.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(revision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.ChatMessagesTable,
			Columns: []string{itinerarydoc.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.ChatMessagesTable,
			Columns: []string{itinerarydoc.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   itinerarydoc.ChatMessagesTable,
			Columns: []string{itinerarydoc.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ItineraryDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itinerarydoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
