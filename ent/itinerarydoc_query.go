// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wayplan/wayplan/ent/chatmessage"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
	"github.com/wayplan/wayplan/ent/predicate"
	"github.com/wayplan/wayplan/ent/revision"
)

// ItineraryDocQuery is the builder for querying ItineraryDoc entities.
type ItineraryDocQuery struct {
	config
	ctx              *QueryContext
	order            []itinerarydoc.OrderOption
	inters           []Interceptor
	predicates       []predicate.ItineraryDoc
	withRevisions    *RevisionQuery
	withChatMessages *ChatMessageQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ItineraryDocQuery builder.
func (_q *ItineraryDocQuery) Where(ps ...predicate.ItineraryDoc) *ItineraryDocQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ItineraryDocQuery) Limit(limit int) *ItineraryDocQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ItineraryDocQuery) Offset(offset int) *ItineraryDocQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ItineraryDocQuery) Unique(unique bool) *ItineraryDocQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ItineraryDocQuery) Order(o ...itinerarydoc.OrderOption) *ItineraryDocQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRevisions chains the current query on the "revisions" edge.
func (_q *ItineraryDocQuery) QueryRevisions() *RevisionQuery {
	query := (&RevisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itinerarydoc.Table, itinerarydoc.FieldID, selector),
			sqlgraph.To(revision.Table, revision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, itinerarydoc.RevisionsTable, itinerarydoc.RevisionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChatMessages chains the current query on the "chat_messages" edge.
func (_q *ItineraryDocQuery) QueryChatMessages() *ChatMessageQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(itinerarydoc.Table, itinerarydoc.FieldID, selector),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, itinerarydoc.ChatMessagesTable, itinerarydoc.ChatMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ItineraryDoc entity from the query.
// Returns a *NotFoundError when no ItineraryDoc was found.
func (_q *ItineraryDocQuery) First(ctx context.Context) (*ItineraryDoc, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{itinerarydoc.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ItineraryDocQuery) FirstX(ctx context.Context) *ItineraryDoc {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ItineraryDoc ID from the query.
// Returns a *NotFoundError when no ItineraryDoc ID was found.
func (_q *ItineraryDocQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{itinerarydoc.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ItineraryDocQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ItineraryDoc entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ItineraryDoc entity is found.
// Returns a *NotFoundError when no ItineraryDoc entities are found.
func (_q *ItineraryDocQuery) Only(ctx context.Context) (*ItineraryDoc, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{itinerarydoc.Label}
	default:
		return nil, &NotSingularError{itinerarydoc.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ItineraryDocQuery) OnlyX(ctx context.Context) *ItineraryDoc {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ItineraryDoc ID in the query.
// Returns a *NotSingularError when more than one ItineraryDoc ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ItineraryDocQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{itinerarydoc.Label}
	default:
		err = &NotSingularError{itinerarydoc.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ItineraryDocQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ItineraryDocs.
func (_q *ItineraryDocQuery) All(ctx context.Context) ([]*ItineraryDoc, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ItineraryDoc, *ItineraryDocQuery]()
	return withInterceptors[[]*ItineraryDoc](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ItineraryDocQuery) AllX(ctx context.Context) []*ItineraryDoc {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ItineraryDoc IDs.
func (_q *ItineraryDocQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(itinerarydoc.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ItineraryDocQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ItineraryDocQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ItineraryDocQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ItineraryDocQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ItineraryDocQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ItineraryDocQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ItineraryDocQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ItineraryDocQuery) Clone() *ItineraryDocQuery {
	if _q == nil {
		return nil
	}
	return &ItineraryDocQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]itinerarydoc.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.ItineraryDoc{}, _q.predicates...),
		withRevisions:    _q.withRevisions.Clone(),
		withChatMessages: _q.withChatMessages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRevisions tells the query-builder to eager-load the nodes that are connected to
// the "revisions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ItineraryDocQuery) WithRevisions(opts ...func(*RevisionQuery)) *ItineraryDocQuery {
	query := (&RevisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRevisions = query
	return _q
}

// WithChatMessages tells the query-builder to eager-load the nodes that are connected to
// the "chat_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ItineraryDocQuery) WithChatMessages(opts ...func(*ChatMessageQuery)) *ItineraryDocQuery {
	query := (&ChatMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChatMessages = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Document json.RawMessage `json:"document,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ItineraryDoc.Query().
//		GroupBy(itinerarydoc.FieldDocument).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ItineraryDocQuery) GroupBy(field string, fields ...string) *ItineraryDocGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ItineraryDocGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = itinerarydoc.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Document json.RawMessage `json:"document,omitempty"`
//	}
//
//	client.ItineraryDoc.Query().
//		Select(itinerarydoc.FieldDocument).
//		Scan(ctx, &v)
func (_q *ItineraryDocQuery) Select(fields ...string) *ItineraryDocSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ItineraryDocSelect{ItineraryDocQuery: _q}
	sbuild.label = itinerarydoc.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ItineraryDocSelect configured with the given aggregations.
func (_q *ItineraryDocQuery) Aggregate(fns ...AggregateFunc) *ItineraryDocSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ItineraryDocQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !itinerarydoc.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ItineraryDocQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ItineraryDoc, error) {
	var (
		nodes       = []*ItineraryDoc{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRevisions != nil,
			_q.withChatMessages != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ItineraryDoc).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ItineraryDoc{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRevisions; query != nil {
		if err := _q.loadRevisions(ctx, query, nodes,
			func(n *ItineraryDoc) { n.Edges.Revisions = []*Revision{} },
			func(n *ItineraryDoc, e *Revision) { n.Edges.Revisions = append(n.Edges.Revisions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChatMessages; query != nil {
		if err := _q.loadChatMessages(ctx, query, nodes,
			func(n *ItineraryDoc) { n.Edges.ChatMessages = []*ChatMessage{} },
			func(n *ItineraryDoc, e *ChatMessage) { n.Edges.ChatMessages = append(n.Edges.ChatMessages, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ItineraryDocQuery) loadRevisions(ctx context.Context, query *RevisionQuery, nodes []*ItineraryDoc, init func(*ItineraryDoc), assign func(*ItineraryDoc, *Revision)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ItineraryDoc)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(revision.FieldItineraryID)
	}
	query.Where(predicate.Revision(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(itinerarydoc.RevisionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItineraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "itinerary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ItineraryDocQuery) loadChatMessages(ctx context.Context, query *ChatMessageQuery, nodes []*ItineraryDoc, init func(*ItineraryDoc), assign func(*ItineraryDoc, *ChatMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ItineraryDoc)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chatmessage.FieldItineraryID)
	}
	query.Where(predicate.ChatMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(itinerarydoc.ChatMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ItineraryID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "itinerary_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ItineraryDocQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ItineraryDocQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(itinerarydoc.Table, itinerarydoc.Columns, sqlgraph.NewFieldSpec(itinerarydoc.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itinerarydoc.FieldID)
		for i := range fields {
			if fields[i] != itinerarydoc.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ItineraryDocQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(itinerarydoc.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = itinerarydoc.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ItineraryDocGroupBy is the group-by builder for ItineraryDoc entities.
type ItineraryDocGroupBy struct {
	selector
	build *ItineraryDocQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ItineraryDocGroupBy) Aggregate(fns ...AggregateFunc) *ItineraryDocGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ItineraryDocGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItineraryDocQuery, *ItineraryDocGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ItineraryDocGroupBy) sqlScan(ctx context.Context, root *ItineraryDocQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ItineraryDocSelect is the builder for selecting fields of ItineraryDoc entities.
type ItineraryDocSelect struct {
	*ItineraryDocQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ItineraryDocSelect) Aggregate(fns ...AggregateFunc) *ItineraryDocSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ItineraryDocSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ItineraryDocQuery, *ItineraryDocSelect](ctx, _s.ItineraryDocQuery, _s, _s.inters, v)
}

func (_s *ItineraryDocSelect) sqlScan(ctx context.Context, root *ItineraryDocQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
