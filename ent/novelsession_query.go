// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/ent/predicate"
)

// NovelSessionQuery is the builder for querying NovelSession entities.
type NovelSessionQuery struct {
	config
	ctx          *QueryContext
	order        []novelsession.OrderOption
	inters       []Interceptor
	predicates   []predicate.NovelSession
	withChapters *ChapterQuery
	withTasks    *GenerationTaskQuery
	withShares   *BookShareQuery
	modifiers    []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the NovelSessionQuery builder.
func (_q *NovelSessionQuery) Where(ps ...predicate.NovelSession) *NovelSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *NovelSessionQuery) Limit(limit int) *NovelSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *NovelSessionQuery) Offset(offset int) *NovelSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *NovelSessionQuery) Unique(unique bool) *NovelSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *NovelSessionQuery) Order(o ...novelsession.OrderOption) *NovelSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryChapters chains the current query on the "chapters" edge.
func (_q *NovelSessionQuery) QueryChapters() *ChapterQuery {
	query := (&ChapterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(novelsession.Table, novelsession.FieldID, selector),
			sqlgraph.To(chapter.Table, chapter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, novelsession.ChaptersTable, novelsession.ChaptersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTasks chains the current query on the "tasks" edge.
func (_q *NovelSessionQuery) QueryTasks() *GenerationTaskQuery {
	query := (&GenerationTaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(novelsession.Table, novelsession.FieldID, selector),
			sqlgraph.To(generationtask.Table, generationtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, novelsession.TasksTable, novelsession.TasksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryShares chains the current query on the "shares" edge.
func (_q *NovelSessionQuery) QueryShares() *BookShareQuery {
	query := (&BookShareClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(novelsession.Table, novelsession.FieldID, selector),
			sqlgraph.To(bookshare.Table, bookshare.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, novelsession.SharesTable, novelsession.SharesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first NovelSession entity from the query.
// Returns a *NotFoundError when no NovelSession was found.
func (_q *NovelSessionQuery) First(ctx context.Context) (*NovelSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{novelsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *NovelSessionQuery) FirstX(ctx context.Context) *NovelSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first NovelSession ID from the query.
// Returns a *NotFoundError when no NovelSession ID was found.
func (_q *NovelSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{novelsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *NovelSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single NovelSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one NovelSession entity is found.
// Returns a *NotFoundError when no NovelSession entities are found.
func (_q *NovelSessionQuery) Only(ctx context.Context) (*NovelSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{novelsession.Label}
	default:
		return nil, &NotSingularError{novelsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *NovelSessionQuery) OnlyX(ctx context.Context) *NovelSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only NovelSession ID in the query.
// Returns a *NotSingularError when more than one NovelSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *NovelSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{novelsession.Label}
	default:
		err = &NotSingularError{novelsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *NovelSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of NovelSessions.
func (_q *NovelSessionQuery) All(ctx context.Context) ([]*NovelSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*NovelSession, *NovelSessionQuery]()
	return withInterceptors[[]*NovelSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *NovelSessionQuery) AllX(ctx context.Context) []*NovelSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of NovelSession IDs.
func (_q *NovelSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(novelsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *NovelSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *NovelSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*NovelSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *NovelSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *NovelSessionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *NovelSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the NovelSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *NovelSessionQuery) Clone() *NovelSessionQuery {
	if _q == nil {
		return nil
	}
	return &NovelSessionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]novelsession.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.NovelSession{}, _q.predicates...),
		withChapters: _q.withChapters.Clone(),
		withTasks:    _q.withTasks.Clone(),
		withShares:   _q.withShares.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithChapters tells the query-builder to eager-load the nodes that are connected to
// the "chapters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NovelSessionQuery) WithChapters(opts ...func(*ChapterQuery)) *NovelSessionQuery {
	query := (&ChapterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChapters = query
	return _q
}

// WithTasks tells the query-builder to eager-load the nodes that are connected to
// the "tasks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NovelSessionQuery) WithTasks(opts ...func(*GenerationTaskQuery)) *NovelSessionQuery {
	query := (&GenerationTaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTasks = query
	return _q
}

// WithShares tells the query-builder to eager-load the nodes that are connected to
// the "shares" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *NovelSessionQuery) WithShares(opts ...func(*BookShareQuery)) *NovelSessionQuery {
	query := (&BookShareClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withShares = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.NovelSession.Query().
//		GroupBy(novelsession.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *NovelSessionQuery) GroupBy(field string, fields ...string) *NovelSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &NovelSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = novelsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.NovelSession.Query().
//		Select(novelsession.FieldUserID).
//		Scan(ctx, &v)
func (_q *NovelSessionQuery) Select(fields ...string) *NovelSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &NovelSessionSelect{NovelSessionQuery: _q}
	sbuild.label = novelsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a NovelSessionSelect configured with the given aggregations.
func (_q *NovelSessionQuery) Aggregate(fns ...AggregateFunc) *NovelSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *NovelSessionQuery) prepareQuery(ctx context.Context) error {
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
		if !novelsession.ValidColumn(f) {
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

func (_q *NovelSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*NovelSession, error) {
	var (
		nodes       = []*NovelSession{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withChapters != nil,
			_q.withTasks != nil,
			_q.withShares != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*NovelSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &NovelSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withChapters; query != nil {
		if err := _q.loadChapters(ctx, query, nodes,
			func(n *NovelSession) { n.Edges.Chapters = []*Chapter{} },
			func(n *NovelSession, e *Chapter) { n.Edges.Chapters = append(n.Edges.Chapters, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTasks; query != nil {
		if err := _q.loadTasks(ctx, query, nodes,
			func(n *NovelSession) { n.Edges.Tasks = []*GenerationTask{} },
			func(n *NovelSession, e *GenerationTask) { n.Edges.Tasks = append(n.Edges.Tasks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withShares; query != nil {
		if err := _q.loadShares(ctx, query, nodes,
			func(n *NovelSession) { n.Edges.Shares = []*BookShare{} },
			func(n *NovelSession, e *BookShare) { n.Edges.Shares = append(n.Edges.Shares, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *NovelSessionQuery) loadChapters(ctx context.Context, query *ChapterQuery, nodes []*NovelSession, init func(*NovelSession), assign func(*NovelSession, *Chapter)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*NovelSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chapter.FieldSessionID)
	}
	query.Where(predicate.Chapter(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(novelsession.ChaptersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *NovelSessionQuery) loadTasks(ctx context.Context, query *GenerationTaskQuery, nodes []*NovelSession, init func(*NovelSession), assign func(*NovelSession, *GenerationTask)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*NovelSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(generationtask.FieldSessionID)
	}
	query.Where(predicate.GenerationTask(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(novelsession.TasksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *NovelSessionQuery) loadShares(ctx context.Context, query *BookShareQuery, nodes []*NovelSession, init func(*NovelSession), assign func(*NovelSession, *BookShare)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*NovelSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(bookshare.FieldSessionID)
	}
	query.Where(predicate.BookShare(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(novelsession.SharesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *NovelSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *NovelSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(novelsession.Table, novelsession.Columns, sqlgraph.NewFieldSpec(novelsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, novelsession.FieldID)
		for i := range fields {
			if fields[i] != novelsession.FieldID {
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

func (_q *NovelSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(novelsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = novelsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *NovelSessionQuery) ForUpdate(opts ...sql.LockOption) *NovelSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *NovelSessionQuery) ForShare(opts ...sql.LockOption) *NovelSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// NovelSessionGroupBy is the group-by builder for NovelSession entities.
type NovelSessionGroupBy struct {
	selector
	build *NovelSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *NovelSessionGroupBy) Aggregate(fns ...AggregateFunc) *NovelSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *NovelSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NovelSessionQuery, *NovelSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *NovelSessionGroupBy) sqlScan(ctx context.Context, root *NovelSessionQuery, v any) error {
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

// NovelSessionSelect is the builder for selecting fields of NovelSession entities.
type NovelSessionSelect struct {
	*NovelSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *NovelSessionSelect) Aggregate(fns ...AggregateFunc) *NovelSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *NovelSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*NovelSessionQuery, *NovelSessionSelect](ctx, _s.NovelSessionQuery, _s, _s.inters, v)
}

func (_s *NovelSessionSelect) sqlScan(ctx context.Context, root *NovelSessionQuery, v any) error {
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
