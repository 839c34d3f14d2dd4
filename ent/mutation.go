// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/notification"
	"github.com/fabula-ai/fabula/ent/novelsession"
	"github.com/fabula-ai/fabula/ent/predicate"
	"github.com/fabula-ai/fabula/ent/user"
	"github.com/fabula-ai/fabula/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBookShare      = "BookShare"
	TypeChapter        = "Chapter"
	TypeGenerationTask = "GenerationTask"
	TypeNotification   = "Notification"
	TypeNovelSession   = "NovelSession"
	TypeUser           = "User"
)

// BookShareMutation represents an operation that mutates the BookShare nodes in the graph.
type BookShareMutation struct {
	config
	op             Op
	typ            string
	id             *string
	owner_id       *string
	recipient_id   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*BookShare, error)
	predicates     []predicate.BookShare
}

var _ ent.Mutation = (*BookShareMutation)(nil)

// bookshareOption allows management of the mutation configuration using functional options.
type bookshareOption func(*BookShareMutation)

// newBookShareMutation creates new mutation for the BookShare entity.
func newBookShareMutation(c config, op Op, opts ...bookshareOption) *BookShareMutation {
	m := &BookShareMutation{
		config:        c,
		op:            op,
		typ:           TypeBookShare,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookShareID sets the ID field of the mutation.
func withBookShareID(id string) bookshareOption {
	return func(m *BookShareMutation) {
		var (
			err   error
			once  sync.Once
			value *BookShare
		)
		m.oldValue = func(ctx context.Context) (*BookShare, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BookShare.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBookShare sets the old BookShare of the mutation.
func withBookShare(node *BookShare) bookshareOption {
	return func(m *BookShareMutation) {
		m.oldValue = func(context.Context) (*BookShare, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookShareMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookShareMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BookShare entities.
func (m *BookShareMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookShareMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookShareMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BookShare.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *BookShareMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BookShareMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the BookShare entity.
// If the BookShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookShareMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BookShareMutation) ResetSessionID() {
	m.session = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *BookShareMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *BookShareMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the BookShare entity.
// If the BookShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookShareMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *BookShareMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *BookShareMutation) SetRecipientID(s string) {
	m.recipient_id = &s
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *BookShareMutation) RecipientID() (r string, exists bool) {
	v := m.recipient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the BookShare entity.
// If the BookShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookShareMutation) OldRecipientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *BookShareMutation) ResetRecipientID() {
	m.recipient_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BookShareMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookShareMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BookShare entity.
// If the BookShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookShareMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BookShareMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the NovelSession entity.
func (m *BookShareMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[bookshare.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the NovelSession entity was cleared.
func (m *BookShareMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *BookShareMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *BookShareMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the BookShareMutation builder.
func (m *BookShareMutation) Where(ps ...predicate.BookShare) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookShareMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookShareMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BookShare, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookShareMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookShareMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BookShare).
func (m *BookShareMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookShareMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, bookshare.FieldSessionID)
	}
	if m.owner_id != nil {
		fields = append(fields, bookshare.FieldOwnerID)
	}
	if m.recipient_id != nil {
		fields = append(fields, bookshare.FieldRecipientID)
	}
	if m.created_at != nil {
		fields = append(fields, bookshare.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookShareMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bookshare.FieldSessionID:
		return m.SessionID()
	case bookshare.FieldOwnerID:
		return m.OwnerID()
	case bookshare.FieldRecipientID:
		return m.RecipientID()
	case bookshare.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookShareMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bookshare.FieldSessionID:
		return m.OldSessionID(ctx)
	case bookshare.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case bookshare.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case bookshare.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BookShare field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookShareMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bookshare.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case bookshare.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case bookshare.FieldRecipientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case bookshare.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BookShare field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookShareMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookShareMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookShareMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BookShare numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookShareMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookShareMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookShareMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BookShare nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookShareMutation) ResetField(name string) error {
	switch name {
	case bookshare.FieldSessionID:
		m.ResetSessionID()
		return nil
	case bookshare.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case bookshare.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case bookshare.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BookShare field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookShareMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, bookshare.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookShareMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bookshare.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookShareMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookShareMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookShareMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, bookshare.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookShareMutation) EdgeCleared(name string) bool {
	switch name {
	case bookshare.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookShareMutation) ClearEdge(name string) error {
	switch name {
	case bookshare.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown BookShare unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookShareMutation) ResetEdge(name string) error {
	switch name {
	case bookshare.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown BookShare edge %s", name)
}

// ChapterMutation represents an operation that mutates the Chapter nodes in the graph.
type ChapterMutation struct {
	config
	op               Op
	typ              string
	id               *string
	section_index    *int
	addsection_index *int
	title            *string
	content          *string
	word_count       *int
	addword_count    *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*Chapter, error)
	predicates       []predicate.Chapter
}

var _ ent.Mutation = (*ChapterMutation)(nil)

// chapterOption allows management of the mutation configuration using functional options.
type chapterOption func(*ChapterMutation)

// newChapterMutation creates new mutation for the Chapter entity.
func newChapterMutation(c config, op Op, opts ...chapterOption) *ChapterMutation {
	m := &ChapterMutation{
		config:        c,
		op:            op,
		typ:           TypeChapter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChapterID sets the ID field of the mutation.
func withChapterID(id string) chapterOption {
	return func(m *ChapterMutation) {
		var (
			err   error
			once  sync.Once
			value *Chapter
		)
		m.oldValue = func(ctx context.Context) (*Chapter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chapter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChapter sets the old Chapter of the mutation.
func withChapter(node *Chapter) chapterOption {
	return func(m *ChapterMutation) {
		m.oldValue = func(context.Context) (*Chapter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChapterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChapterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chapter entities.
func (m *ChapterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChapterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChapterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chapter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChapterMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChapterMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChapterMutation) ResetSessionID() {
	m.session = nil
}

// SetSectionIndex sets the "section_index" field.
func (m *ChapterMutation) SetSectionIndex(i int) {
	m.section_index = &i
	m.addsection_index = nil
}

// SectionIndex returns the value of the "section_index" field in the mutation.
func (m *ChapterMutation) SectionIndex() (r int, exists bool) {
	v := m.section_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionIndex returns the old "section_index" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldSectionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionIndex: %w", err)
	}
	return oldValue.SectionIndex, nil
}

// AddSectionIndex adds i to the "section_index" field.
func (m *ChapterMutation) AddSectionIndex(i int) {
	if m.addsection_index != nil {
		*m.addsection_index += i
	} else {
		m.addsection_index = &i
	}
}

// AddedSectionIndex returns the value that was added to the "section_index" field in this mutation.
func (m *ChapterMutation) AddedSectionIndex() (r int, exists bool) {
	v := m.addsection_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSectionIndex resets all changes to the "section_index" field.
func (m *ChapterMutation) ResetSectionIndex() {
	m.section_index = nil
	m.addsection_index = nil
}

// SetTitle sets the "title" field.
func (m *ChapterMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChapterMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChapterMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *ChapterMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChapterMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *ChapterMutation) ResetContent() {
	m.content = nil
}

// SetWordCount sets the "word_count" field.
func (m *ChapterMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ChapterMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ChapterMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ChapterMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ChapterMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChapterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChapterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ChapterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChapterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChapterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ChapterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the NovelSession entity.
func (m *ChapterMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[chapter.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the NovelSession entity was cleared.
func (m *ChapterMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ChapterMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ChapterMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ChapterMutation builder.
func (m *ChapterMutation) Where(ps ...predicate.Chapter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChapterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChapterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chapter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChapterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChapterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chapter).
func (m *ChapterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChapterMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, chapter.FieldSessionID)
	}
	if m.section_index != nil {
		fields = append(fields, chapter.FieldSectionIndex)
	}
	if m.title != nil {
		fields = append(fields, chapter.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, chapter.FieldContent)
	}
	if m.word_count != nil {
		fields = append(fields, chapter.FieldWordCount)
	}
	if m.created_at != nil {
		fields = append(fields, chapter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chapter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChapterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldSessionID:
		return m.SessionID()
	case chapter.FieldSectionIndex:
		return m.SectionIndex()
	case chapter.FieldTitle:
		return m.Title()
	case chapter.FieldContent:
		return m.Content()
	case chapter.FieldWordCount:
		return m.WordCount()
	case chapter.FieldCreatedAt:
		return m.CreatedAt()
	case chapter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChapterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chapter.FieldSessionID:
		return m.OldSessionID(ctx)
	case chapter.FieldSectionIndex:
		return m.OldSectionIndex(ctx)
	case chapter.FieldTitle:
		return m.OldTitle(ctx)
	case chapter.FieldContent:
		return m.OldContent(ctx)
	case chapter.FieldWordCount:
		return m.OldWordCount(ctx)
	case chapter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chapter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chapter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chapter.FieldSectionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionIndex(v)
		return nil
	case chapter.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chapter.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chapter.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case chapter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chapter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChapterMutation) AddedFields() []string {
	var fields []string
	if m.addsection_index != nil {
		fields = append(fields, chapter.FieldSectionIndex)
	}
	if m.addword_count != nil {
		fields = append(fields, chapter.FieldWordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChapterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldSectionIndex:
		return m.AddedSectionIndex()
	case chapter.FieldWordCount:
		return m.AddedWordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldSectionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSectionIndex(v)
		return nil
	case chapter.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChapterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChapterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChapterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Chapter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChapterMutation) ResetField(name string) error {
	switch name {
	case chapter.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chapter.FieldSectionIndex:
		m.ResetSectionIndex()
		return nil
	case chapter.FieldTitle:
		m.ResetTitle()
		return nil
	case chapter.FieldContent:
		m.ResetContent()
		return nil
	case chapter.FieldWordCount:
		m.ResetWordCount()
		return nil
	case chapter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chapter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChapterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, chapter.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChapterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChapterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChapterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChapterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, chapter.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChapterMutation) EdgeCleared(name string) bool {
	switch name {
	case chapter.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChapterMutation) ClearEdge(name string) error {
	switch name {
	case chapter.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Chapter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChapterMutation) ResetEdge(name string) error {
	switch name {
	case chapter.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Chapter edge %s", name)
}

// GenerationTaskMutation represents an operation that mutates the GenerationTask nodes in the graph.
type GenerationTaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *generationtask.Kind
	status              *generationtask.Status
	attempt             *int
	addattempt          *int
	error               *string
	pod_id              *string
	last_interaction_at *time.Time
	claimed_at          *time.Time
	finished_at         *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*GenerationTask, error)
	predicates          []predicate.GenerationTask
}

var _ ent.Mutation = (*GenerationTaskMutation)(nil)

// generationtaskOption allows management of the mutation configuration using functional options.
type generationtaskOption func(*GenerationTaskMutation)

// newGenerationTaskMutation creates new mutation for the GenerationTask entity.
func newGenerationTaskMutation(c config, op Op, opts ...generationtaskOption) *GenerationTaskMutation {
	m := &GenerationTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationTaskID sets the ID field of the mutation.
func withGenerationTaskID(id string) generationtaskOption {
	return func(m *GenerationTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationTask
		)
		m.oldValue = func(ctx context.Context) (*GenerationTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationTask sets the old GenerationTask of the mutation.
func withGenerationTask(node *GenerationTask) generationtaskOption {
	return func(m *GenerationTaskMutation) {
		m.oldValue = func(context.Context) (*GenerationTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GenerationTask entities.
func (m *GenerationTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *GenerationTaskMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GenerationTaskMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GenerationTaskMutation) ResetSessionID() {
	m.session = nil
}

// SetKind sets the "kind" field.
func (m *GenerationTaskMutation) SetKind(ge generationtask.Kind) {
	m.kind = &ge
}

// Kind returns the value of the "kind" field in the mutation.
func (m *GenerationTaskMutation) Kind() (r generationtask.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldKind(ctx context.Context) (v generationtask.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *GenerationTaskMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *GenerationTaskMutation) SetStatus(ge generationtask.Status) {
	m.status = &ge
}

// Status returns the value of the "status" field in the mutation.
func (m *GenerationTaskMutation) Status() (r generationtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldStatus(ctx context.Context) (v generationtask.Status, err error) {
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
func (m *GenerationTaskMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *GenerationTaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *GenerationTaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *GenerationTaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *GenerationTaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *GenerationTaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetError sets the "error" field.
func (m *GenerationTaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *GenerationTaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *GenerationTaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[generationtask.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *GenerationTaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[generationtask.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *GenerationTaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, generationtask.FieldError)
}

// SetPodID sets the "pod_id" field.
func (m *GenerationTaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *GenerationTaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *GenerationTaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[generationtask.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *GenerationTaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[generationtask.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *GenerationTaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, generationtask.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *GenerationTaskMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *GenerationTaskMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *GenerationTaskMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[generationtask.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *GenerationTaskMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[generationtask.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *GenerationTaskMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, generationtask.FieldLastInteractionAt)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *GenerationTaskMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *GenerationTaskMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *GenerationTaskMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[generationtask.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *GenerationTaskMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[generationtask.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *GenerationTaskMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, generationtask.FieldClaimedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *GenerationTaskMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *GenerationTaskMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *GenerationTaskMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[generationtask.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *GenerationTaskMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[generationtask.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *GenerationTaskMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, generationtask.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *GenerationTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GenerationTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GenerationTask entity.
// If the GenerationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *GenerationTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the NovelSession entity.
func (m *GenerationTaskMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[generationtask.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the NovelSession entity was cleared.
func (m *GenerationTaskMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *GenerationTaskMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *GenerationTaskMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the GenerationTaskMutation builder.
func (m *GenerationTaskMutation) Where(ps ...predicate.GenerationTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationTask).
func (m *GenerationTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationTaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, generationtask.FieldSessionID)
	}
	if m.kind != nil {
		fields = append(fields, generationtask.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, generationtask.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, generationtask.FieldAttempt)
	}
	if m.error != nil {
		fields = append(fields, generationtask.FieldError)
	}
	if m.pod_id != nil {
		fields = append(fields, generationtask.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, generationtask.FieldLastInteractionAt)
	}
	if m.claimed_at != nil {
		fields = append(fields, generationtask.FieldClaimedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, generationtask.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, generationtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationtask.FieldSessionID:
		return m.SessionID()
	case generationtask.FieldKind:
		return m.Kind()
	case generationtask.FieldStatus:
		return m.Status()
	case generationtask.FieldAttempt:
		return m.Attempt()
	case generationtask.FieldError:
		return m.Error()
	case generationtask.FieldPodID:
		return m.PodID()
	case generationtask.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case generationtask.FieldClaimedAt:
		return m.ClaimedAt()
	case generationtask.FieldFinishedAt:
		return m.FinishedAt()
	case generationtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationtask.FieldSessionID:
		return m.OldSessionID(ctx)
	case generationtask.FieldKind:
		return m.OldKind(ctx)
	case generationtask.FieldStatus:
		return m.OldStatus(ctx)
	case generationtask.FieldAttempt:
		return m.OldAttempt(ctx)
	case generationtask.FieldError:
		return m.OldError(ctx)
	case generationtask.FieldPodID:
		return m.OldPodID(ctx)
	case generationtask.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case generationtask.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case generationtask.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case generationtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationtask.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case generationtask.FieldKind:
		v, ok := value.(generationtask.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case generationtask.FieldStatus:
		v, ok := value.(generationtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case generationtask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case generationtask.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case generationtask.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case generationtask.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case generationtask.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case generationtask.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case generationtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationTaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, generationtask.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationtask.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationtask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationtask.FieldError) {
		fields = append(fields, generationtask.FieldError)
	}
	if m.FieldCleared(generationtask.FieldPodID) {
		fields = append(fields, generationtask.FieldPodID)
	}
	if m.FieldCleared(generationtask.FieldLastInteractionAt) {
		fields = append(fields, generationtask.FieldLastInteractionAt)
	}
	if m.FieldCleared(generationtask.FieldClaimedAt) {
		fields = append(fields, generationtask.FieldClaimedAt)
	}
	if m.FieldCleared(generationtask.FieldFinishedAt) {
		fields = append(fields, generationtask.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationTaskMutation) ClearField(name string) error {
	switch name {
	case generationtask.FieldError:
		m.ClearError()
		return nil
	case generationtask.FieldPodID:
		m.ClearPodID()
		return nil
	case generationtask.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case generationtask.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case generationtask.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationTaskMutation) ResetField(name string) error {
	switch name {
	case generationtask.FieldSessionID:
		m.ResetSessionID()
		return nil
	case generationtask.FieldKind:
		m.ResetKind()
		return nil
	case generationtask.FieldStatus:
		m.ResetStatus()
		return nil
	case generationtask.FieldAttempt:
		m.ResetAttempt()
		return nil
	case generationtask.FieldError:
		m.ResetError()
		return nil
	case generationtask.FieldPodID:
		m.ResetPodID()
		return nil
	case generationtask.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case generationtask.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case generationtask.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case generationtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, generationtask.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case generationtask.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, generationtask.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case generationtask.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationTaskMutation) ClearEdge(name string) error {
	switch name {
	case generationtask.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown GenerationTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationTaskMutation) ResetEdge(name string) error {
	switch name {
	case generationtask.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown GenerationTask edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	kind          *string
	title         *string
	body          *string
	session_id    *string
	read          *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *NotificationMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *NotificationMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *NotificationMutation) ResetKind() {
	m.kind = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetSessionID sets the "session_id" field.
func (m *NotificationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *NotificationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *NotificationMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[notification.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *NotificationMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *NotificationMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, notification.FieldSessionID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, notification.FieldKind)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.session_id != nil {
		fields = append(fields, notification.FieldSessionID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldKind:
		return m.Kind()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldSessionID:
		return m.SessionID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldKind:
		return m.OldKind(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldSessionID:
		return m.OldSessionID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	if m.FieldCleared(notification.FieldSessionID) {
		fields = append(fields, notification.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	case notification.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldKind:
		m.ResetKind()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldSessionID:
		m.ResetSessionID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// NovelSessionMutation represents an operation that mutates the NovelSession nodes in the graph.
type NovelSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	user_id                    *string
	llm_model                  *string
	genre                      *string
	form_data                  *map[string]interface{}
	generated_questions        *[]models.Question
	appendgenerated_questions  []models.Question
	question_answers           *map[string]string
	draft                      *models.Draft
	outline                    *models.Outline
	questions_progress         *models.PhaseProgress
	draft_progress             *models.PhaseProgress
	outline_progress           *models.PhaseProgress
	writing_progress           *models.WritingProgress
	token_usage                *models.TokenUsage
	critique                   *models.Critique
	critique_status            *novelsession.CritiqueStatus
	critique_error             *string
	cover_image_path           *string
	pdf_path                   *string
	real_cost_eur              *float64
	addreal_cost_eur           *float64
	estimated_cost_eur         *float64
	addestimated_cost_eur      *float64
	writing_time_minutes       *[]float64
	appendwriting_time_minutes []float64
	chapter_timings            *[]float64
	appendchapter_timings      []float64
	writing_start_time         *time.Time
	writing_end_time           *time.Time
	chapter_start_time         *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	deleted_at                 *time.Time
	clearedFields              map[string]struct{}
	chapters                   map[string]struct{}
	removedchapters            map[string]struct{}
	clearedchapters            bool
	tasks                      map[string]struct{}
	removedtasks               map[string]struct{}
	clearedtasks               bool
	shares                     map[string]struct{}
	removedshares              map[string]struct{}
	clearedshares              bool
	done                       bool
	oldValue                   func(context.Context) (*NovelSession, error)
	predicates                 []predicate.NovelSession
}

var _ ent.Mutation = (*NovelSessionMutation)(nil)

// novelsessionOption allows management of the mutation configuration using functional options.
type novelsessionOption func(*NovelSessionMutation)

// newNovelSessionMutation creates new mutation for the NovelSession entity.
func newNovelSessionMutation(c config, op Op, opts ...novelsessionOption) *NovelSessionMutation {
	m := &NovelSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeNovelSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNovelSessionID sets the ID field of the mutation.
func withNovelSessionID(id string) novelsessionOption {
	return func(m *NovelSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *NovelSession
		)
		m.oldValue = func(ctx context.Context) (*NovelSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NovelSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNovelSession sets the old NovelSession of the mutation.
func withNovelSession(node *NovelSession) novelsessionOption {
	return func(m *NovelSessionMutation) {
		m.oldValue = func(context.Context) (*NovelSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NovelSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NovelSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NovelSession entities.
func (m *NovelSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NovelSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NovelSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NovelSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *NovelSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NovelSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *NovelSessionMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[novelsession.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *NovelSessionMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NovelSessionMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, novelsession.FieldUserID)
}

// SetLlmModel sets the "llm_model" field.
func (m *NovelSessionMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *NovelSessionMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldLlmModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *NovelSessionMutation) ResetLlmModel() {
	m.llm_model = nil
}

// SetGenre sets the "genre" field.
func (m *NovelSessionMutation) SetGenre(s string) {
	m.genre = &s
}

// Genre returns the value of the "genre" field in the mutation.
func (m *NovelSessionMutation) Genre() (r string, exists bool) {
	v := m.genre
	if v == nil {
		return
	}
	return *v, true
}

// OldGenre returns the old "genre" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldGenre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenre: %w", err)
	}
	return oldValue.Genre, nil
}

// ClearGenre clears the value of the "genre" field.
func (m *NovelSessionMutation) ClearGenre() {
	m.genre = nil
	m.clearedFields[novelsession.FieldGenre] = struct{}{}
}

// GenreCleared returns if the "genre" field was cleared in this mutation.
func (m *NovelSessionMutation) GenreCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldGenre]
	return ok
}

// ResetGenre resets all changes to the "genre" field.
func (m *NovelSessionMutation) ResetGenre() {
	m.genre = nil
	delete(m.clearedFields, novelsession.FieldGenre)
}

// SetFormData sets the "form_data" field.
func (m *NovelSessionMutation) SetFormData(value map[string]interface{}) {
	m.form_data = &value
}

// FormData returns the value of the "form_data" field in the mutation.
func (m *NovelSessionMutation) FormData() (r map[string]interface{}, exists bool) {
	v := m.form_data
	if v == nil {
		return
	}
	return *v, true
}

// OldFormData returns the old "form_data" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldFormData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormData: %w", err)
	}
	return oldValue.FormData, nil
}

// ResetFormData resets all changes to the "form_data" field.
func (m *NovelSessionMutation) ResetFormData() {
	m.form_data = nil
}

// SetGeneratedQuestions sets the "generated_questions" field.
func (m *NovelSessionMutation) SetGeneratedQuestions(value []models.Question) {
	m.generated_questions = &value
	m.appendgenerated_questions = nil
}

// GeneratedQuestions returns the value of the "generated_questions" field in the mutation.
func (m *NovelSessionMutation) GeneratedQuestions() (r []models.Question, exists bool) {
	v := m.generated_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedQuestions returns the old "generated_questions" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldGeneratedQuestions(ctx context.Context) (v []models.Question, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedQuestions: %w", err)
	}
	return oldValue.GeneratedQuestions, nil
}

// AppendGeneratedQuestions adds value to the "generated_questions" field.
func (m *NovelSessionMutation) AppendGeneratedQuestions(value []models.Question) {
	m.appendgenerated_questions = append(m.appendgenerated_questions, value...)
}

// AppendedGeneratedQuestions returns the list of values that were appended to the "generated_questions" field in this mutation.
func (m *NovelSessionMutation) AppendedGeneratedQuestions() ([]models.Question, bool) {
	if len(m.appendgenerated_questions) == 0 {
		return nil, false
	}
	return m.appendgenerated_questions, true
}

// ClearGeneratedQuestions clears the value of the "generated_questions" field.
func (m *NovelSessionMutation) ClearGeneratedQuestions() {
	m.generated_questions = nil
	m.appendgenerated_questions = nil
	m.clearedFields[novelsession.FieldGeneratedQuestions] = struct{}{}
}

// GeneratedQuestionsCleared returns if the "generated_questions" field was cleared in this mutation.
func (m *NovelSessionMutation) GeneratedQuestionsCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldGeneratedQuestions]
	return ok
}

// ResetGeneratedQuestions resets all changes to the "generated_questions" field.
func (m *NovelSessionMutation) ResetGeneratedQuestions() {
	m.generated_questions = nil
	m.appendgenerated_questions = nil
	delete(m.clearedFields, novelsession.FieldGeneratedQuestions)
}

// SetQuestionAnswers sets the "question_answers" field.
func (m *NovelSessionMutation) SetQuestionAnswers(value map[string]string) {
	m.question_answers = &value
}

// QuestionAnswers returns the value of the "question_answers" field in the mutation.
func (m *NovelSessionMutation) QuestionAnswers() (r map[string]string, exists bool) {
	v := m.question_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionAnswers returns the old "question_answers" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldQuestionAnswers(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionAnswers: %w", err)
	}
	return oldValue.QuestionAnswers, nil
}

// ClearQuestionAnswers clears the value of the "question_answers" field.
func (m *NovelSessionMutation) ClearQuestionAnswers() {
	m.question_answers = nil
	m.clearedFields[novelsession.FieldQuestionAnswers] = struct{}{}
}

// QuestionAnswersCleared returns if the "question_answers" field was cleared in this mutation.
func (m *NovelSessionMutation) QuestionAnswersCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldQuestionAnswers]
	return ok
}

// ResetQuestionAnswers resets all changes to the "question_answers" field.
func (m *NovelSessionMutation) ResetQuestionAnswers() {
	m.question_answers = nil
	delete(m.clearedFields, novelsession.FieldQuestionAnswers)
}

// SetDraft sets the "draft" field.
func (m *NovelSessionMutation) SetDraft(value models.Draft) {
	m.draft = &value
}

// Draft returns the value of the "draft" field in the mutation.
func (m *NovelSessionMutation) Draft() (r models.Draft, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldDraft(ctx context.Context) (v models.Draft, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ClearDraft clears the value of the "draft" field.
func (m *NovelSessionMutation) ClearDraft() {
	m.draft = nil
	m.clearedFields[novelsession.FieldDraft] = struct{}{}
}

// DraftCleared returns if the "draft" field was cleared in this mutation.
func (m *NovelSessionMutation) DraftCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldDraft]
	return ok
}

// ResetDraft resets all changes to the "draft" field.
func (m *NovelSessionMutation) ResetDraft() {
	m.draft = nil
	delete(m.clearedFields, novelsession.FieldDraft)
}

// SetOutline sets the "outline" field.
func (m *NovelSessionMutation) SetOutline(value models.Outline) {
	m.outline = &value
}

// Outline returns the value of the "outline" field in the mutation.
func (m *NovelSessionMutation) Outline() (r models.Outline, exists bool) {
	v := m.outline
	if v == nil {
		return
	}
	return *v, true
}

// OldOutline returns the old "outline" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldOutline(ctx context.Context) (v models.Outline, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutline: %w", err)
	}
	return oldValue.Outline, nil
}

// ClearOutline clears the value of the "outline" field.
func (m *NovelSessionMutation) ClearOutline() {
	m.outline = nil
	m.clearedFields[novelsession.FieldOutline] = struct{}{}
}

// OutlineCleared returns if the "outline" field was cleared in this mutation.
func (m *NovelSessionMutation) OutlineCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldOutline]
	return ok
}

// ResetOutline resets all changes to the "outline" field.
func (m *NovelSessionMutation) ResetOutline() {
	m.outline = nil
	delete(m.clearedFields, novelsession.FieldOutline)
}

// SetQuestionsProgress sets the "questions_progress" field.
func (m *NovelSessionMutation) SetQuestionsProgress(mp models.PhaseProgress) {
	m.questions_progress = &mp
}

// QuestionsProgress returns the value of the "questions_progress" field in the mutation.
func (m *NovelSessionMutation) QuestionsProgress() (r models.PhaseProgress, exists bool) {
	v := m.questions_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsProgress returns the old "questions_progress" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldQuestionsProgress(ctx context.Context) (v models.PhaseProgress, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsProgress: %w", err)
	}
	return oldValue.QuestionsProgress, nil
}

// ClearQuestionsProgress clears the value of the "questions_progress" field.
func (m *NovelSessionMutation) ClearQuestionsProgress() {
	m.questions_progress = nil
	m.clearedFields[novelsession.FieldQuestionsProgress] = struct{}{}
}

// QuestionsProgressCleared returns if the "questions_progress" field was cleared in this mutation.
func (m *NovelSessionMutation) QuestionsProgressCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldQuestionsProgress]
	return ok
}

// ResetQuestionsProgress resets all changes to the "questions_progress" field.
func (m *NovelSessionMutation) ResetQuestionsProgress() {
	m.questions_progress = nil
	delete(m.clearedFields, novelsession.FieldQuestionsProgress)
}

// SetDraftProgress sets the "draft_progress" field.
func (m *NovelSessionMutation) SetDraftProgress(mp models.PhaseProgress) {
	m.draft_progress = &mp
}

// DraftProgress returns the value of the "draft_progress" field in the mutation.
func (m *NovelSessionMutation) DraftProgress() (r models.PhaseProgress, exists bool) {
	v := m.draft_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftProgress returns the old "draft_progress" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldDraftProgress(ctx context.Context) (v models.PhaseProgress, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftProgress: %w", err)
	}
	return oldValue.DraftProgress, nil
}

// ClearDraftProgress clears the value of the "draft_progress" field.
func (m *NovelSessionMutation) ClearDraftProgress() {
	m.draft_progress = nil
	m.clearedFields[novelsession.FieldDraftProgress] = struct{}{}
}

// DraftProgressCleared returns if the "draft_progress" field was cleared in this mutation.
func (m *NovelSessionMutation) DraftProgressCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldDraftProgress]
	return ok
}

// ResetDraftProgress resets all changes to the "draft_progress" field.
func (m *NovelSessionMutation) ResetDraftProgress() {
	m.draft_progress = nil
	delete(m.clearedFields, novelsession.FieldDraftProgress)
}

// SetOutlineProgress sets the "outline_progress" field.
func (m *NovelSessionMutation) SetOutlineProgress(mp models.PhaseProgress) {
	m.outline_progress = &mp
}

// OutlineProgress returns the value of the "outline_progress" field in the mutation.
func (m *NovelSessionMutation) OutlineProgress() (r models.PhaseProgress, exists bool) {
	v := m.outline_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldOutlineProgress returns the old "outline_progress" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldOutlineProgress(ctx context.Context) (v models.PhaseProgress, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutlineProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutlineProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutlineProgress: %w", err)
	}
	return oldValue.OutlineProgress, nil
}

// ClearOutlineProgress clears the value of the "outline_progress" field.
func (m *NovelSessionMutation) ClearOutlineProgress() {
	m.outline_progress = nil
	m.clearedFields[novelsession.FieldOutlineProgress] = struct{}{}
}

// OutlineProgressCleared returns if the "outline_progress" field was cleared in this mutation.
func (m *NovelSessionMutation) OutlineProgressCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldOutlineProgress]
	return ok
}

// ResetOutlineProgress resets all changes to the "outline_progress" field.
func (m *NovelSessionMutation) ResetOutlineProgress() {
	m.outline_progress = nil
	delete(m.clearedFields, novelsession.FieldOutlineProgress)
}

// SetWritingProgress sets the "writing_progress" field.
func (m *NovelSessionMutation) SetWritingProgress(mp models.WritingProgress) {
	m.writing_progress = &mp
}

// WritingProgress returns the value of the "writing_progress" field in the mutation.
func (m *NovelSessionMutation) WritingProgress() (r models.WritingProgress, exists bool) {
	v := m.writing_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldWritingProgress returns the old "writing_progress" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldWritingProgress(ctx context.Context) (v models.WritingProgress, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWritingProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWritingProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWritingProgress: %w", err)
	}
	return oldValue.WritingProgress, nil
}

// ClearWritingProgress clears the value of the "writing_progress" field.
func (m *NovelSessionMutation) ClearWritingProgress() {
	m.writing_progress = nil
	m.clearedFields[novelsession.FieldWritingProgress] = struct{}{}
}

// WritingProgressCleared returns if the "writing_progress" field was cleared in this mutation.
func (m *NovelSessionMutation) WritingProgressCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldWritingProgress]
	return ok
}

// ResetWritingProgress resets all changes to the "writing_progress" field.
func (m *NovelSessionMutation) ResetWritingProgress() {
	m.writing_progress = nil
	delete(m.clearedFields, novelsession.FieldWritingProgress)
}

// SetTokenUsage sets the "token_usage" field.
func (m *NovelSessionMutation) SetTokenUsage(mu models.TokenUsage) {
	m.token_usage = &mu
}

// TokenUsage returns the value of the "token_usage" field in the mutation.
func (m *NovelSessionMutation) TokenUsage() (r models.TokenUsage, exists bool) {
	v := m.token_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenUsage returns the old "token_usage" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldTokenUsage(ctx context.Context) (v models.TokenUsage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenUsage: %w", err)
	}
	return oldValue.TokenUsage, nil
}

// ClearTokenUsage clears the value of the "token_usage" field.
func (m *NovelSessionMutation) ClearTokenUsage() {
	m.token_usage = nil
	m.clearedFields[novelsession.FieldTokenUsage] = struct{}{}
}

// TokenUsageCleared returns if the "token_usage" field was cleared in this mutation.
func (m *NovelSessionMutation) TokenUsageCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldTokenUsage]
	return ok
}

// ResetTokenUsage resets all changes to the "token_usage" field.
func (m *NovelSessionMutation) ResetTokenUsage() {
	m.token_usage = nil
	delete(m.clearedFields, novelsession.FieldTokenUsage)
}

// SetCritique sets the "critique" field.
func (m *NovelSessionMutation) SetCritique(value models.Critique) {
	m.critique = &value
}

// Critique returns the value of the "critique" field in the mutation.
func (m *NovelSessionMutation) Critique() (r models.Critique, exists bool) {
	v := m.critique
	if v == nil {
		return
	}
	return *v, true
}

// OldCritique returns the old "critique" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldCritique(ctx context.Context) (v models.Critique, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCritique is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCritique requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCritique: %w", err)
	}
	return oldValue.Critique, nil
}

// ClearCritique clears the value of the "critique" field.
func (m *NovelSessionMutation) ClearCritique() {
	m.critique = nil
	m.clearedFields[novelsession.FieldCritique] = struct{}{}
}

// CritiqueCleared returns if the "critique" field was cleared in this mutation.
func (m *NovelSessionMutation) CritiqueCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldCritique]
	return ok
}

// ResetCritique resets all changes to the "critique" field.
func (m *NovelSessionMutation) ResetCritique() {
	m.critique = nil
	delete(m.clearedFields, novelsession.FieldCritique)
}

// SetCritiqueStatus sets the "critique_status" field.
func (m *NovelSessionMutation) SetCritiqueStatus(ns novelsession.CritiqueStatus) {
	m.critique_status = &ns
}

// CritiqueStatus returns the value of the "critique_status" field in the mutation.
func (m *NovelSessionMutation) CritiqueStatus() (r novelsession.CritiqueStatus, exists bool) {
	v := m.critique_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCritiqueStatus returns the old "critique_status" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldCritiqueStatus(ctx context.Context) (v novelsession.CritiqueStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCritiqueStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCritiqueStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCritiqueStatus: %w", err)
	}
	return oldValue.CritiqueStatus, nil
}

// ResetCritiqueStatus resets all changes to the "critique_status" field.
func (m *NovelSessionMutation) ResetCritiqueStatus() {
	m.critique_status = nil
}

// SetCritiqueError sets the "critique_error" field.
func (m *NovelSessionMutation) SetCritiqueError(s string) {
	m.critique_error = &s
}

// CritiqueError returns the value of the "critique_error" field in the mutation.
func (m *NovelSessionMutation) CritiqueError() (r string, exists bool) {
	v := m.critique_error
	if v == nil {
		return
	}
	return *v, true
}

// OldCritiqueError returns the old "critique_error" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldCritiqueError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCritiqueError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCritiqueError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCritiqueError: %w", err)
	}
	return oldValue.CritiqueError, nil
}

// ClearCritiqueError clears the value of the "critique_error" field.
func (m *NovelSessionMutation) ClearCritiqueError() {
	m.critique_error = nil
	m.clearedFields[novelsession.FieldCritiqueError] = struct{}{}
}

// CritiqueErrorCleared returns if the "critique_error" field was cleared in this mutation.
func (m *NovelSessionMutation) CritiqueErrorCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldCritiqueError]
	return ok
}

// ResetCritiqueError resets all changes to the "critique_error" field.
func (m *NovelSessionMutation) ResetCritiqueError() {
	m.critique_error = nil
	delete(m.clearedFields, novelsession.FieldCritiqueError)
}

// SetCoverImagePath sets the "cover_image_path" field.
func (m *NovelSessionMutation) SetCoverImagePath(s string) {
	m.cover_image_path = &s
}

// CoverImagePath returns the value of the "cover_image_path" field in the mutation.
func (m *NovelSessionMutation) CoverImagePath() (r string, exists bool) {
	v := m.cover_image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverImagePath returns the old "cover_image_path" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldCoverImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverImagePath: %w", err)
	}
	return oldValue.CoverImagePath, nil
}

// ClearCoverImagePath clears the value of the "cover_image_path" field.
func (m *NovelSessionMutation) ClearCoverImagePath() {
	m.cover_image_path = nil
	m.clearedFields[novelsession.FieldCoverImagePath] = struct{}{}
}

// CoverImagePathCleared returns if the "cover_image_path" field was cleared in this mutation.
func (m *NovelSessionMutation) CoverImagePathCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldCoverImagePath]
	return ok
}

// ResetCoverImagePath resets all changes to the "cover_image_path" field.
func (m *NovelSessionMutation) ResetCoverImagePath() {
	m.cover_image_path = nil
	delete(m.clearedFields, novelsession.FieldCoverImagePath)
}

// SetPdfPath sets the "pdf_path" field.
func (m *NovelSessionMutation) SetPdfPath(s string) {
	m.pdf_path = &s
}

// PdfPath returns the value of the "pdf_path" field in the mutation.
func (m *NovelSessionMutation) PdfPath() (r string, exists bool) {
	v := m.pdf_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfPath returns the old "pdf_path" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldPdfPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfPath: %w", err)
	}
	return oldValue.PdfPath, nil
}

// ClearPdfPath clears the value of the "pdf_path" field.
func (m *NovelSessionMutation) ClearPdfPath() {
	m.pdf_path = nil
	m.clearedFields[novelsession.FieldPdfPath] = struct{}{}
}

// PdfPathCleared returns if the "pdf_path" field was cleared in this mutation.
func (m *NovelSessionMutation) PdfPathCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldPdfPath]
	return ok
}

// ResetPdfPath resets all changes to the "pdf_path" field.
func (m *NovelSessionMutation) ResetPdfPath() {
	m.pdf_path = nil
	delete(m.clearedFields, novelsession.FieldPdfPath)
}

// SetRealCostEur sets the "real_cost_eur" field.
func (m *NovelSessionMutation) SetRealCostEur(f float64) {
	m.real_cost_eur = &f
	m.addreal_cost_eur = nil
}

// RealCostEur returns the value of the "real_cost_eur" field in the mutation.
func (m *NovelSessionMutation) RealCostEur() (r float64, exists bool) {
	v := m.real_cost_eur
	if v == nil {
		return
	}
	return *v, true
}

// OldRealCostEur returns the old "real_cost_eur" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldRealCostEur(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealCostEur is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealCostEur requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealCostEur: %w", err)
	}
	return oldValue.RealCostEur, nil
}

// AddRealCostEur adds f to the "real_cost_eur" field.
func (m *NovelSessionMutation) AddRealCostEur(f float64) {
	if m.addreal_cost_eur != nil {
		*m.addreal_cost_eur += f
	} else {
		m.addreal_cost_eur = &f
	}
}

// AddedRealCostEur returns the value that was added to the "real_cost_eur" field in this mutation.
func (m *NovelSessionMutation) AddedRealCostEur() (r float64, exists bool) {
	v := m.addreal_cost_eur
	if v == nil {
		return
	}
	return *v, true
}

// ResetRealCostEur resets all changes to the "real_cost_eur" field.
func (m *NovelSessionMutation) ResetRealCostEur() {
	m.real_cost_eur = nil
	m.addreal_cost_eur = nil
}

// SetEstimatedCostEur sets the "estimated_cost_eur" field.
func (m *NovelSessionMutation) SetEstimatedCostEur(f float64) {
	m.estimated_cost_eur = &f
	m.addestimated_cost_eur = nil
}

// EstimatedCostEur returns the value of the "estimated_cost_eur" field in the mutation.
func (m *NovelSessionMutation) EstimatedCostEur() (r float64, exists bool) {
	v := m.estimated_cost_eur
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostEur returns the old "estimated_cost_eur" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldEstimatedCostEur(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostEur is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostEur requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostEur: %w", err)
	}
	return oldValue.EstimatedCostEur, nil
}

// AddEstimatedCostEur adds f to the "estimated_cost_eur" field.
func (m *NovelSessionMutation) AddEstimatedCostEur(f float64) {
	if m.addestimated_cost_eur != nil {
		*m.addestimated_cost_eur += f
	} else {
		m.addestimated_cost_eur = &f
	}
}

// AddedEstimatedCostEur returns the value that was added to the "estimated_cost_eur" field in this mutation.
func (m *NovelSessionMutation) AddedEstimatedCostEur() (r float64, exists bool) {
	v := m.addestimated_cost_eur
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCostEur clears the value of the "estimated_cost_eur" field.
func (m *NovelSessionMutation) ClearEstimatedCostEur() {
	m.estimated_cost_eur = nil
	m.addestimated_cost_eur = nil
	m.clearedFields[novelsession.FieldEstimatedCostEur] = struct{}{}
}

// EstimatedCostEurCleared returns if the "estimated_cost_eur" field was cleared in this mutation.
func (m *NovelSessionMutation) EstimatedCostEurCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldEstimatedCostEur]
	return ok
}

// ResetEstimatedCostEur resets all changes to the "estimated_cost_eur" field.
func (m *NovelSessionMutation) ResetEstimatedCostEur() {
	m.estimated_cost_eur = nil
	m.addestimated_cost_eur = nil
	delete(m.clearedFields, novelsession.FieldEstimatedCostEur)
}

// SetWritingTimeMinutes sets the "writing_time_minutes" field.
func (m *NovelSessionMutation) SetWritingTimeMinutes(f []float64) {
	m.writing_time_minutes = &f
	m.appendwriting_time_minutes = nil
}

// WritingTimeMinutes returns the value of the "writing_time_minutes" field in the mutation.
func (m *NovelSessionMutation) WritingTimeMinutes() (r []float64, exists bool) {
	v := m.writing_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldWritingTimeMinutes returns the old "writing_time_minutes" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldWritingTimeMinutes(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWritingTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWritingTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWritingTimeMinutes: %w", err)
	}
	return oldValue.WritingTimeMinutes, nil
}

// AppendWritingTimeMinutes adds f to the "writing_time_minutes" field.
func (m *NovelSessionMutation) AppendWritingTimeMinutes(f []float64) {
	m.appendwriting_time_minutes = append(m.appendwriting_time_minutes, f...)
}

// AppendedWritingTimeMinutes returns the list of values that were appended to the "writing_time_minutes" field in this mutation.
func (m *NovelSessionMutation) AppendedWritingTimeMinutes() ([]float64, bool) {
	if len(m.appendwriting_time_minutes) == 0 {
		return nil, false
	}
	return m.appendwriting_time_minutes, true
}

// ClearWritingTimeMinutes clears the value of the "writing_time_minutes" field.
func (m *NovelSessionMutation) ClearWritingTimeMinutes() {
	m.writing_time_minutes = nil
	m.appendwriting_time_minutes = nil
	m.clearedFields[novelsession.FieldWritingTimeMinutes] = struct{}{}
}

// WritingTimeMinutesCleared returns if the "writing_time_minutes" field was cleared in this mutation.
func (m *NovelSessionMutation) WritingTimeMinutesCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldWritingTimeMinutes]
	return ok
}

// ResetWritingTimeMinutes resets all changes to the "writing_time_minutes" field.
func (m *NovelSessionMutation) ResetWritingTimeMinutes() {
	m.writing_time_minutes = nil
	m.appendwriting_time_minutes = nil
	delete(m.clearedFields, novelsession.FieldWritingTimeMinutes)
}

// SetChapterTimings sets the "chapter_timings" field.
func (m *NovelSessionMutation) SetChapterTimings(f []float64) {
	m.chapter_timings = &f
	m.appendchapter_timings = nil
}

// ChapterTimings returns the value of the "chapter_timings" field in the mutation.
func (m *NovelSessionMutation) ChapterTimings() (r []float64, exists bool) {
	v := m.chapter_timings
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterTimings returns the old "chapter_timings" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldChapterTimings(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterTimings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterTimings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterTimings: %w", err)
	}
	return oldValue.ChapterTimings, nil
}

// AppendChapterTimings adds f to the "chapter_timings" field.
func (m *NovelSessionMutation) AppendChapterTimings(f []float64) {
	m.appendchapter_timings = append(m.appendchapter_timings, f...)
}

// AppendedChapterTimings returns the list of values that were appended to the "chapter_timings" field in this mutation.
func (m *NovelSessionMutation) AppendedChapterTimings() ([]float64, bool) {
	if len(m.appendchapter_timings) == 0 {
		return nil, false
	}
	return m.appendchapter_timings, true
}

// ClearChapterTimings clears the value of the "chapter_timings" field.
func (m *NovelSessionMutation) ClearChapterTimings() {
	m.chapter_timings = nil
	m.appendchapter_timings = nil
	m.clearedFields[novelsession.FieldChapterTimings] = struct{}{}
}

// ChapterTimingsCleared returns if the "chapter_timings" field was cleared in this mutation.
func (m *NovelSessionMutation) ChapterTimingsCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldChapterTimings]
	return ok
}

// ResetChapterTimings resets all changes to the "chapter_timings" field.
func (m *NovelSessionMutation) ResetChapterTimings() {
	m.chapter_timings = nil
	m.appendchapter_timings = nil
	delete(m.clearedFields, novelsession.FieldChapterTimings)
}

// SetWritingStartTime sets the "writing_start_time" field.
func (m *NovelSessionMutation) SetWritingStartTime(t time.Time) {
	m.writing_start_time = &t
}

// WritingStartTime returns the value of the "writing_start_time" field in the mutation.
func (m *NovelSessionMutation) WritingStartTime() (r time.Time, exists bool) {
	v := m.writing_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldWritingStartTime returns the old "writing_start_time" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldWritingStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWritingStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWritingStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWritingStartTime: %w", err)
	}
	return oldValue.WritingStartTime, nil
}

// ClearWritingStartTime clears the value of the "writing_start_time" field.
func (m *NovelSessionMutation) ClearWritingStartTime() {
	m.writing_start_time = nil
	m.clearedFields[novelsession.FieldWritingStartTime] = struct{}{}
}

// WritingStartTimeCleared returns if the "writing_start_time" field was cleared in this mutation.
func (m *NovelSessionMutation) WritingStartTimeCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldWritingStartTime]
	return ok
}

// ResetWritingStartTime resets all changes to the "writing_start_time" field.
func (m *NovelSessionMutation) ResetWritingStartTime() {
	m.writing_start_time = nil
	delete(m.clearedFields, novelsession.FieldWritingStartTime)
}

// SetWritingEndTime sets the "writing_end_time" field.
func (m *NovelSessionMutation) SetWritingEndTime(t time.Time) {
	m.writing_end_time = &t
}

// WritingEndTime returns the value of the "writing_end_time" field in the mutation.
func (m *NovelSessionMutation) WritingEndTime() (r time.Time, exists bool) {
	v := m.writing_end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldWritingEndTime returns the old "writing_end_time" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldWritingEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWritingEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWritingEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWritingEndTime: %w", err)
	}
	return oldValue.WritingEndTime, nil
}

// ClearWritingEndTime clears the value of the "writing_end_time" field.
func (m *NovelSessionMutation) ClearWritingEndTime() {
	m.writing_end_time = nil
	m.clearedFields[novelsession.FieldWritingEndTime] = struct{}{}
}

// WritingEndTimeCleared returns if the "writing_end_time" field was cleared in this mutation.
func (m *NovelSessionMutation) WritingEndTimeCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldWritingEndTime]
	return ok
}

// ResetWritingEndTime resets all changes to the "writing_end_time" field.
func (m *NovelSessionMutation) ResetWritingEndTime() {
	m.writing_end_time = nil
	delete(m.clearedFields, novelsession.FieldWritingEndTime)
}

// SetChapterStartTime sets the "chapter_start_time" field.
func (m *NovelSessionMutation) SetChapterStartTime(t time.Time) {
	m.chapter_start_time = &t
}

// ChapterStartTime returns the value of the "chapter_start_time" field in the mutation.
func (m *NovelSessionMutation) ChapterStartTime() (r time.Time, exists bool) {
	v := m.chapter_start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterStartTime returns the old "chapter_start_time" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldChapterStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterStartTime: %w", err)
	}
	return oldValue.ChapterStartTime, nil
}

// ClearChapterStartTime clears the value of the "chapter_start_time" field.
func (m *NovelSessionMutation) ClearChapterStartTime() {
	m.chapter_start_time = nil
	m.clearedFields[novelsession.FieldChapterStartTime] = struct{}{}
}

// ChapterStartTimeCleared returns if the "chapter_start_time" field was cleared in this mutation.
func (m *NovelSessionMutation) ChapterStartTimeCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldChapterStartTime]
	return ok
}

// ResetChapterStartTime resets all changes to the "chapter_start_time" field.
func (m *NovelSessionMutation) ResetChapterStartTime() {
	m.chapter_start_time = nil
	delete(m.clearedFields, novelsession.FieldChapterStartTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *NovelSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NovelSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NovelSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NovelSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NovelSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NovelSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *NovelSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *NovelSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the NovelSession entity.
// If the NovelSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NovelSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *NovelSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[novelsession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *NovelSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[novelsession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *NovelSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, novelsession.FieldDeletedAt)
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by ids.
func (m *NovelSessionMutation) AddChapterIDs(ids ...string) {
	if m.chapters == nil {
		m.chapters = make(map[string]struct{})
	}
	for i := range ids {
		m.chapters[ids[i]] = struct{}{}
	}
}

// ClearChapters clears the "chapters" edge to the Chapter entity.
func (m *NovelSessionMutation) ClearChapters() {
	m.clearedchapters = true
}

// ChaptersCleared reports if the "chapters" edge to the Chapter entity was cleared.
func (m *NovelSessionMutation) ChaptersCleared() bool {
	return m.clearedchapters
}

// RemoveChapterIDs removes the "chapters" edge to the Chapter entity by IDs.
func (m *NovelSessionMutation) RemoveChapterIDs(ids ...string) {
	if m.removedchapters == nil {
		m.removedchapters = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chapters, ids[i])
		m.removedchapters[ids[i]] = struct{}{}
	}
}

// RemovedChapters returns the removed IDs of the "chapters" edge to the Chapter entity.
func (m *NovelSessionMutation) RemovedChaptersIDs() (ids []string) {
	for id := range m.removedchapters {
		ids = append(ids, id)
	}
	return
}

// ChaptersIDs returns the "chapters" edge IDs in the mutation.
func (m *NovelSessionMutation) ChaptersIDs() (ids []string) {
	for id := range m.chapters {
		ids = append(ids, id)
	}
	return
}

// ResetChapters resets all changes to the "chapters" edge.
func (m *NovelSessionMutation) ResetChapters() {
	m.chapters = nil
	m.clearedchapters = false
	m.removedchapters = nil
}

// AddTaskIDs adds the "tasks" edge to the GenerationTask entity by ids.
func (m *NovelSessionMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the GenerationTask entity.
func (m *NovelSessionMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the GenerationTask entity was cleared.
func (m *NovelSessionMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the GenerationTask entity by IDs.
func (m *NovelSessionMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the GenerationTask entity.
func (m *NovelSessionMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *NovelSessionMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *NovelSessionMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddShareIDs adds the "shares" edge to the BookShare entity by ids.
func (m *NovelSessionMutation) AddShareIDs(ids ...string) {
	if m.shares == nil {
		m.shares = make(map[string]struct{})
	}
	for i := range ids {
		m.shares[ids[i]] = struct{}{}
	}
}

// ClearShares clears the "shares" edge to the BookShare entity.
func (m *NovelSessionMutation) ClearShares() {
	m.clearedshares = true
}

// SharesCleared reports if the "shares" edge to the BookShare entity was cleared.
func (m *NovelSessionMutation) SharesCleared() bool {
	return m.clearedshares
}

// RemoveShareIDs removes the "shares" edge to the BookShare entity by IDs.
func (m *NovelSessionMutation) RemoveShareIDs(ids ...string) {
	if m.removedshares == nil {
		m.removedshares = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.shares, ids[i])
		m.removedshares[ids[i]] = struct{}{}
	}
}

// RemovedShares returns the removed IDs of the "shares" edge to the BookShare entity.
func (m *NovelSessionMutation) RemovedSharesIDs() (ids []string) {
	for id := range m.removedshares {
		ids = append(ids, id)
	}
	return
}

// SharesIDs returns the "shares" edge IDs in the mutation.
func (m *NovelSessionMutation) SharesIDs() (ids []string) {
	for id := range m.shares {
		ids = append(ids, id)
	}
	return
}

// ResetShares resets all changes to the "shares" edge.
func (m *NovelSessionMutation) ResetShares() {
	m.shares = nil
	m.clearedshares = false
	m.removedshares = nil
}

// Where appends a list predicates to the NovelSessionMutation builder.
func (m *NovelSessionMutation) Where(ps ...predicate.NovelSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NovelSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NovelSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NovelSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NovelSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NovelSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NovelSession).
func (m *NovelSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NovelSessionMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.user_id != nil {
		fields = append(fields, novelsession.FieldUserID)
	}
	if m.llm_model != nil {
		fields = append(fields, novelsession.FieldLlmModel)
	}
	if m.genre != nil {
		fields = append(fields, novelsession.FieldGenre)
	}
	if m.form_data != nil {
		fields = append(fields, novelsession.FieldFormData)
	}
	if m.generated_questions != nil {
		fields = append(fields, novelsession.FieldGeneratedQuestions)
	}
	if m.question_answers != nil {
		fields = append(fields, novelsession.FieldQuestionAnswers)
	}
	if m.draft != nil {
		fields = append(fields, novelsession.FieldDraft)
	}
	if m.outline != nil {
		fields = append(fields, novelsession.FieldOutline)
	}
	if m.questions_progress != nil {
		fields = append(fields, novelsession.FieldQuestionsProgress)
	}
	if m.draft_progress != nil {
		fields = append(fields, novelsession.FieldDraftProgress)
	}
	if m.outline_progress != nil {
		fields = append(fields, novelsession.FieldOutlineProgress)
	}
	if m.writing_progress != nil {
		fields = append(fields, novelsession.FieldWritingProgress)
	}
	if m.token_usage != nil {
		fields = append(fields, novelsession.FieldTokenUsage)
	}
	if m.critique != nil {
		fields = append(fields, novelsession.FieldCritique)
	}
	if m.critique_status != nil {
		fields = append(fields, novelsession.FieldCritiqueStatus)
	}
	if m.critique_error != nil {
		fields = append(fields, novelsession.FieldCritiqueError)
	}
	if m.cover_image_path != nil {
		fields = append(fields, novelsession.FieldCoverImagePath)
	}
	if m.pdf_path != nil {
		fields = append(fields, novelsession.FieldPdfPath)
	}
	if m.real_cost_eur != nil {
		fields = append(fields, novelsession.FieldRealCostEur)
	}
	if m.estimated_cost_eur != nil {
		fields = append(fields, novelsession.FieldEstimatedCostEur)
	}
	if m.writing_time_minutes != nil {
		fields = append(fields, novelsession.FieldWritingTimeMinutes)
	}
	if m.chapter_timings != nil {
		fields = append(fields, novelsession.FieldChapterTimings)
	}
	if m.writing_start_time != nil {
		fields = append(fields, novelsession.FieldWritingStartTime)
	}
	if m.writing_end_time != nil {
		fields = append(fields, novelsession.FieldWritingEndTime)
	}
	if m.chapter_start_time != nil {
		fields = append(fields, novelsession.FieldChapterStartTime)
	}
	if m.created_at != nil {
		fields = append(fields, novelsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, novelsession.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, novelsession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NovelSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case novelsession.FieldUserID:
		return m.UserID()
	case novelsession.FieldLlmModel:
		return m.LlmModel()
	case novelsession.FieldGenre:
		return m.Genre()
	case novelsession.FieldFormData:
		return m.FormData()
	case novelsession.FieldGeneratedQuestions:
		return m.GeneratedQuestions()
	case novelsession.FieldQuestionAnswers:
		return m.QuestionAnswers()
	case novelsession.FieldDraft:
		return m.Draft()
	case novelsession.FieldOutline:
		return m.Outline()
	case novelsession.FieldQuestionsProgress:
		return m.QuestionsProgress()
	case novelsession.FieldDraftProgress:
		return m.DraftProgress()
	case novelsession.FieldOutlineProgress:
		return m.OutlineProgress()
	case novelsession.FieldWritingProgress:
		return m.WritingProgress()
	case novelsession.FieldTokenUsage:
		return m.TokenUsage()
	case novelsession.FieldCritique:
		return m.Critique()
	case novelsession.FieldCritiqueStatus:
		return m.CritiqueStatus()
	case novelsession.FieldCritiqueError:
		return m.CritiqueError()
	case novelsession.FieldCoverImagePath:
		return m.CoverImagePath()
	case novelsession.FieldPdfPath:
		return m.PdfPath()
	case novelsession.FieldRealCostEur:
		return m.RealCostEur()
	case novelsession.FieldEstimatedCostEur:
		return m.EstimatedCostEur()
	case novelsession.FieldWritingTimeMinutes:
		return m.WritingTimeMinutes()
	case novelsession.FieldChapterTimings:
		return m.ChapterTimings()
	case novelsession.FieldWritingStartTime:
		return m.WritingStartTime()
	case novelsession.FieldWritingEndTime:
		return m.WritingEndTime()
	case novelsession.FieldChapterStartTime:
		return m.ChapterStartTime()
	case novelsession.FieldCreatedAt:
		return m.CreatedAt()
	case novelsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case novelsession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NovelSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case novelsession.FieldUserID:
		return m.OldUserID(ctx)
	case novelsession.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case novelsession.FieldGenre:
		return m.OldGenre(ctx)
	case novelsession.FieldFormData:
		return m.OldFormData(ctx)
	case novelsession.FieldGeneratedQuestions:
		return m.OldGeneratedQuestions(ctx)
	case novelsession.FieldQuestionAnswers:
		return m.OldQuestionAnswers(ctx)
	case novelsession.FieldDraft:
		return m.OldDraft(ctx)
	case novelsession.FieldOutline:
		return m.OldOutline(ctx)
	case novelsession.FieldQuestionsProgress:
		return m.OldQuestionsProgress(ctx)
	case novelsession.FieldDraftProgress:
		return m.OldDraftProgress(ctx)
	case novelsession.FieldOutlineProgress:
		return m.OldOutlineProgress(ctx)
	case novelsession.FieldWritingProgress:
		return m.OldWritingProgress(ctx)
	case novelsession.FieldTokenUsage:
		return m.OldTokenUsage(ctx)
	case novelsession.FieldCritique:
		return m.OldCritique(ctx)
	case novelsession.FieldCritiqueStatus:
		return m.OldCritiqueStatus(ctx)
	case novelsession.FieldCritiqueError:
		return m.OldCritiqueError(ctx)
	case novelsession.FieldCoverImagePath:
		return m.OldCoverImagePath(ctx)
	case novelsession.FieldPdfPath:
		return m.OldPdfPath(ctx)
	case novelsession.FieldRealCostEur:
		return m.OldRealCostEur(ctx)
	case novelsession.FieldEstimatedCostEur:
		return m.OldEstimatedCostEur(ctx)
	case novelsession.FieldWritingTimeMinutes:
		return m.OldWritingTimeMinutes(ctx)
	case novelsession.FieldChapterTimings:
		return m.OldChapterTimings(ctx)
	case novelsession.FieldWritingStartTime:
		return m.OldWritingStartTime(ctx)
	case novelsession.FieldWritingEndTime:
		return m.OldWritingEndTime(ctx)
	case novelsession.FieldChapterStartTime:
		return m.OldChapterStartTime(ctx)
	case novelsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case novelsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case novelsession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NovelSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NovelSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case novelsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case novelsession.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case novelsession.FieldGenre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenre(v)
		return nil
	case novelsession.FieldFormData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormData(v)
		return nil
	case novelsession.FieldGeneratedQuestions:
		v, ok := value.([]models.Question)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedQuestions(v)
		return nil
	case novelsession.FieldQuestionAnswers:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionAnswers(v)
		return nil
	case novelsession.FieldDraft:
		v, ok := value.(models.Draft)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case novelsession.FieldOutline:
		v, ok := value.(models.Outline)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutline(v)
		return nil
	case novelsession.FieldQuestionsProgress:
		v, ok := value.(models.PhaseProgress)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsProgress(v)
		return nil
	case novelsession.FieldDraftProgress:
		v, ok := value.(models.PhaseProgress)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftProgress(v)
		return nil
	case novelsession.FieldOutlineProgress:
		v, ok := value.(models.PhaseProgress)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutlineProgress(v)
		return nil
	case novelsession.FieldWritingProgress:
		v, ok := value.(models.WritingProgress)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWritingProgress(v)
		return nil
	case novelsession.FieldTokenUsage:
		v, ok := value.(models.TokenUsage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenUsage(v)
		return nil
	case novelsession.FieldCritique:
		v, ok := value.(models.Critique)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCritique(v)
		return nil
	case novelsession.FieldCritiqueStatus:
		v, ok := value.(novelsession.CritiqueStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCritiqueStatus(v)
		return nil
	case novelsession.FieldCritiqueError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCritiqueError(v)
		return nil
	case novelsession.FieldCoverImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverImagePath(v)
		return nil
	case novelsession.FieldPdfPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfPath(v)
		return nil
	case novelsession.FieldRealCostEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealCostEur(v)
		return nil
	case novelsession.FieldEstimatedCostEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostEur(v)
		return nil
	case novelsession.FieldWritingTimeMinutes:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWritingTimeMinutes(v)
		return nil
	case novelsession.FieldChapterTimings:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterTimings(v)
		return nil
	case novelsession.FieldWritingStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWritingStartTime(v)
		return nil
	case novelsession.FieldWritingEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWritingEndTime(v)
		return nil
	case novelsession.FieldChapterStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterStartTime(v)
		return nil
	case novelsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case novelsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case novelsession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NovelSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NovelSessionMutation) AddedFields() []string {
	var fields []string
	if m.addreal_cost_eur != nil {
		fields = append(fields, novelsession.FieldRealCostEur)
	}
	if m.addestimated_cost_eur != nil {
		fields = append(fields, novelsession.FieldEstimatedCostEur)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NovelSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case novelsession.FieldRealCostEur:
		return m.AddedRealCostEur()
	case novelsession.FieldEstimatedCostEur:
		return m.AddedEstimatedCostEur()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NovelSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case novelsession.FieldRealCostEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRealCostEur(v)
		return nil
	case novelsession.FieldEstimatedCostEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostEur(v)
		return nil
	}
	return fmt.Errorf("unknown NovelSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NovelSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(novelsession.FieldUserID) {
		fields = append(fields, novelsession.FieldUserID)
	}
	if m.FieldCleared(novelsession.FieldGenre) {
		fields = append(fields, novelsession.FieldGenre)
	}
	if m.FieldCleared(novelsession.FieldGeneratedQuestions) {
		fields = append(fields, novelsession.FieldGeneratedQuestions)
	}
	if m.FieldCleared(novelsession.FieldQuestionAnswers) {
		fields = append(fields, novelsession.FieldQuestionAnswers)
	}
	if m.FieldCleared(novelsession.FieldDraft) {
		fields = append(fields, novelsession.FieldDraft)
	}
	if m.FieldCleared(novelsession.FieldOutline) {
		fields = append(fields, novelsession.FieldOutline)
	}
	if m.FieldCleared(novelsession.FieldQuestionsProgress) {
		fields = append(fields, novelsession.FieldQuestionsProgress)
	}
	if m.FieldCleared(novelsession.FieldDraftProgress) {
		fields = append(fields, novelsession.FieldDraftProgress)
	}
	if m.FieldCleared(novelsession.FieldOutlineProgress) {
		fields = append(fields, novelsession.FieldOutlineProgress)
	}
	if m.FieldCleared(novelsession.FieldWritingProgress) {
		fields = append(fields, novelsession.FieldWritingProgress)
	}
	if m.FieldCleared(novelsession.FieldTokenUsage) {
		fields = append(fields, novelsession.FieldTokenUsage)
	}
	if m.FieldCleared(novelsession.FieldCritique) {
		fields = append(fields, novelsession.FieldCritique)
	}
	if m.FieldCleared(novelsession.FieldCritiqueError) {
		fields = append(fields, novelsession.FieldCritiqueError)
	}
	if m.FieldCleared(novelsession.FieldCoverImagePath) {
		fields = append(fields, novelsession.FieldCoverImagePath)
	}
	if m.FieldCleared(novelsession.FieldPdfPath) {
		fields = append(fields, novelsession.FieldPdfPath)
	}
	if m.FieldCleared(novelsession.FieldEstimatedCostEur) {
		fields = append(fields, novelsession.FieldEstimatedCostEur)
	}
	if m.FieldCleared(novelsession.FieldWritingTimeMinutes) {
		fields = append(fields, novelsession.FieldWritingTimeMinutes)
	}
	if m.FieldCleared(novelsession.FieldChapterTimings) {
		fields = append(fields, novelsession.FieldChapterTimings)
	}
	if m.FieldCleared(novelsession.FieldWritingStartTime) {
		fields = append(fields, novelsession.FieldWritingStartTime)
	}
	if m.FieldCleared(novelsession.FieldWritingEndTime) {
		fields = append(fields, novelsession.FieldWritingEndTime)
	}
	if m.FieldCleared(novelsession.FieldChapterStartTime) {
		fields = append(fields, novelsession.FieldChapterStartTime)
	}
	if m.FieldCleared(novelsession.FieldDeletedAt) {
		fields = append(fields, novelsession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NovelSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NovelSessionMutation) ClearField(name string) error {
	switch name {
	case novelsession.FieldUserID:
		m.ClearUserID()
		return nil
	case novelsession.FieldGenre:
		m.ClearGenre()
		return nil
	case novelsession.FieldGeneratedQuestions:
		m.ClearGeneratedQuestions()
		return nil
	case novelsession.FieldQuestionAnswers:
		m.ClearQuestionAnswers()
		return nil
	case novelsession.FieldDraft:
		m.ClearDraft()
		return nil
	case novelsession.FieldOutline:
		m.ClearOutline()
		return nil
	case novelsession.FieldQuestionsProgress:
		m.ClearQuestionsProgress()
		return nil
	case novelsession.FieldDraftProgress:
		m.ClearDraftProgress()
		return nil
	case novelsession.FieldOutlineProgress:
		m.ClearOutlineProgress()
		return nil
	case novelsession.FieldWritingProgress:
		m.ClearWritingProgress()
		return nil
	case novelsession.FieldTokenUsage:
		m.ClearTokenUsage()
		return nil
	case novelsession.FieldCritique:
		m.ClearCritique()
		return nil
	case novelsession.FieldCritiqueError:
		m.ClearCritiqueError()
		return nil
	case novelsession.FieldCoverImagePath:
		m.ClearCoverImagePath()
		return nil
	case novelsession.FieldPdfPath:
		m.ClearPdfPath()
		return nil
	case novelsession.FieldEstimatedCostEur:
		m.ClearEstimatedCostEur()
		return nil
	case novelsession.FieldWritingTimeMinutes:
		m.ClearWritingTimeMinutes()
		return nil
	case novelsession.FieldChapterTimings:
		m.ClearChapterTimings()
		return nil
	case novelsession.FieldWritingStartTime:
		m.ClearWritingStartTime()
		return nil
	case novelsession.FieldWritingEndTime:
		m.ClearWritingEndTime()
		return nil
	case novelsession.FieldChapterStartTime:
		m.ClearChapterStartTime()
		return nil
	case novelsession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown NovelSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NovelSessionMutation) ResetField(name string) error {
	switch name {
	case novelsession.FieldUserID:
		m.ResetUserID()
		return nil
	case novelsession.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case novelsession.FieldGenre:
		m.ResetGenre()
		return nil
	case novelsession.FieldFormData:
		m.ResetFormData()
		return nil
	case novelsession.FieldGeneratedQuestions:
		m.ResetGeneratedQuestions()
		return nil
	case novelsession.FieldQuestionAnswers:
		m.ResetQuestionAnswers()
		return nil
	case novelsession.FieldDraft:
		m.ResetDraft()
		return nil
	case novelsession.FieldOutline:
		m.ResetOutline()
		return nil
	case novelsession.FieldQuestionsProgress:
		m.ResetQuestionsProgress()
		return nil
	case novelsession.FieldDraftProgress:
		m.ResetDraftProgress()
		return nil
	case novelsession.FieldOutlineProgress:
		m.ResetOutlineProgress()
		return nil
	case novelsession.FieldWritingProgress:
		m.ResetWritingProgress()
		return nil
	case novelsession.FieldTokenUsage:
		m.ResetTokenUsage()
		return nil
	case novelsession.FieldCritique:
		m.ResetCritique()
		return nil
	case novelsession.FieldCritiqueStatus:
		m.ResetCritiqueStatus()
		return nil
	case novelsession.FieldCritiqueError:
		m.ResetCritiqueError()
		return nil
	case novelsession.FieldCoverImagePath:
		m.ResetCoverImagePath()
		return nil
	case novelsession.FieldPdfPath:
		m.ResetPdfPath()
		return nil
	case novelsession.FieldRealCostEur:
		m.ResetRealCostEur()
		return nil
	case novelsession.FieldEstimatedCostEur:
		m.ResetEstimatedCostEur()
		return nil
	case novelsession.FieldWritingTimeMinutes:
		m.ResetWritingTimeMinutes()
		return nil
	case novelsession.FieldChapterTimings:
		m.ResetChapterTimings()
		return nil
	case novelsession.FieldWritingStartTime:
		m.ResetWritingStartTime()
		return nil
	case novelsession.FieldWritingEndTime:
		m.ResetWritingEndTime()
		return nil
	case novelsession.FieldChapterStartTime:
		m.ResetChapterStartTime()
		return nil
	case novelsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case novelsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case novelsession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown NovelSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NovelSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.chapters != nil {
		edges = append(edges, novelsession.EdgeChapters)
	}
	if m.tasks != nil {
		edges = append(edges, novelsession.EdgeTasks)
	}
	if m.shares != nil {
		edges = append(edges, novelsession.EdgeShares)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NovelSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case novelsession.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.chapters))
		for id := range m.chapters {
			ids = append(ids, id)
		}
		return ids
	case novelsession.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case novelsession.EdgeShares:
		ids := make([]ent.Value, 0, len(m.shares))
		for id := range m.shares {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NovelSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedchapters != nil {
		edges = append(edges, novelsession.EdgeChapters)
	}
	if m.removedtasks != nil {
		edges = append(edges, novelsession.EdgeTasks)
	}
	if m.removedshares != nil {
		edges = append(edges, novelsession.EdgeShares)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NovelSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case novelsession.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.removedchapters))
		for id := range m.removedchapters {
			ids = append(ids, id)
		}
		return ids
	case novelsession.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case novelsession.EdgeShares:
		ids := make([]ent.Value, 0, len(m.removedshares))
		for id := range m.removedshares {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NovelSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedchapters {
		edges = append(edges, novelsession.EdgeChapters)
	}
	if m.clearedtasks {
		edges = append(edges, novelsession.EdgeTasks)
	}
	if m.clearedshares {
		edges = append(edges, novelsession.EdgeShares)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NovelSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case novelsession.EdgeChapters:
		return m.clearedchapters
	case novelsession.EdgeTasks:
		return m.clearedtasks
	case novelsession.EdgeShares:
		return m.clearedshares
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NovelSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown NovelSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NovelSessionMutation) ResetEdge(name string) error {
	switch name {
	case novelsession.EdgeChapters:
		m.ResetChapters()
		return nil
	case novelsession.EdgeTasks:
		m.ResetTasks()
		return nil
	case novelsession.EdgeShares:
		m.ResetShares()
		return nil
	}
	return fmt.Errorf("unknown NovelSession edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op               Op
	typ              string
	id               *string
	email            *string
	hashed_password  *string
	display_name     *string
	role             *user.Role
	is_verified      *bool
	api_token        *string
	credits_flash    *int
	addcredits_flash *int
	credits_pro      *int
	addcredits_pro   *int
	credits_ultra    *int
	addcredits_ultra *int
	credits_reset_at *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	deleted_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*User, error)
	predicates       []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetHashedPassword sets the "hashed_password" field.
func (m *UserMutation) SetHashedPassword(s string) {
	m.hashed_password = &s
}

// HashedPassword returns the value of the "hashed_password" field in the mutation.
func (m *UserMutation) HashedPassword() (r string, exists bool) {
	v := m.hashed_password
	if v == nil {
		return
	}
	return *v, true
}

// OldHashedPassword returns the old "hashed_password" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldHashedPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashedPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashedPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashedPassword: %w", err)
	}
	return oldValue.HashedPassword, nil
}

// ResetHashedPassword resets all changes to the "hashed_password" field.
func (m *UserMutation) ResetHashedPassword() {
	m.hashed_password = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
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
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *UserMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *UserMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *UserMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetAPIToken sets the "api_token" field.
func (m *UserMutation) SetAPIToken(s string) {
	m.api_token = &s
}

// APIToken returns the value of the "api_token" field in the mutation.
func (m *UserMutation) APIToken() (r string, exists bool) {
	v := m.api_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIToken returns the old "api_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAPIToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIToken: %w", err)
	}
	return oldValue.APIToken, nil
}

// ClearAPIToken clears the value of the "api_token" field.
func (m *UserMutation) ClearAPIToken() {
	m.api_token = nil
	m.clearedFields[user.FieldAPIToken] = struct{}{}
}

// APITokenCleared returns if the "api_token" field was cleared in this mutation.
func (m *UserMutation) APITokenCleared() bool {
	_, ok := m.clearedFields[user.FieldAPIToken]
	return ok
}

// ResetAPIToken resets all changes to the "api_token" field.
func (m *UserMutation) ResetAPIToken() {
	m.api_token = nil
	delete(m.clearedFields, user.FieldAPIToken)
}

// SetCreditsFlash sets the "credits_flash" field.
func (m *UserMutation) SetCreditsFlash(i int) {
	m.credits_flash = &i
	m.addcredits_flash = nil
}

// CreditsFlash returns the value of the "credits_flash" field in the mutation.
func (m *UserMutation) CreditsFlash() (r int, exists bool) {
	v := m.credits_flash
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsFlash returns the old "credits_flash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreditsFlash(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsFlash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsFlash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsFlash: %w", err)
	}
	return oldValue.CreditsFlash, nil
}

// AddCreditsFlash adds i to the "credits_flash" field.
func (m *UserMutation) AddCreditsFlash(i int) {
	if m.addcredits_flash != nil {
		*m.addcredits_flash += i
	} else {
		m.addcredits_flash = &i
	}
}

// AddedCreditsFlash returns the value that was added to the "credits_flash" field in this mutation.
func (m *UserMutation) AddedCreditsFlash() (r int, exists bool) {
	v := m.addcredits_flash
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsFlash resets all changes to the "credits_flash" field.
func (m *UserMutation) ResetCreditsFlash() {
	m.credits_flash = nil
	m.addcredits_flash = nil
}

// SetCreditsPro sets the "credits_pro" field.
func (m *UserMutation) SetCreditsPro(i int) {
	m.credits_pro = &i
	m.addcredits_pro = nil
}

// CreditsPro returns the value of the "credits_pro" field in the mutation.
func (m *UserMutation) CreditsPro() (r int, exists bool) {
	v := m.credits_pro
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsPro returns the old "credits_pro" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreditsPro(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsPro is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsPro requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsPro: %w", err)
	}
	return oldValue.CreditsPro, nil
}

// AddCreditsPro adds i to the "credits_pro" field.
func (m *UserMutation) AddCreditsPro(i int) {
	if m.addcredits_pro != nil {
		*m.addcredits_pro += i
	} else {
		m.addcredits_pro = &i
	}
}

// AddedCreditsPro returns the value that was added to the "credits_pro" field in this mutation.
func (m *UserMutation) AddedCreditsPro() (r int, exists bool) {
	v := m.addcredits_pro
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsPro resets all changes to the "credits_pro" field.
func (m *UserMutation) ResetCreditsPro() {
	m.credits_pro = nil
	m.addcredits_pro = nil
}

// SetCreditsUltra sets the "credits_ultra" field.
func (m *UserMutation) SetCreditsUltra(i int) {
	m.credits_ultra = &i
	m.addcredits_ultra = nil
}

// CreditsUltra returns the value of the "credits_ultra" field in the mutation.
func (m *UserMutation) CreditsUltra() (r int, exists bool) {
	v := m.credits_ultra
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsUltra returns the old "credits_ultra" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreditsUltra(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsUltra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsUltra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsUltra: %w", err)
	}
	return oldValue.CreditsUltra, nil
}

// AddCreditsUltra adds i to the "credits_ultra" field.
func (m *UserMutation) AddCreditsUltra(i int) {
	if m.addcredits_ultra != nil {
		*m.addcredits_ultra += i
	} else {
		m.addcredits_ultra = &i
	}
}

// AddedCreditsUltra returns the value that was added to the "credits_ultra" field in this mutation.
func (m *UserMutation) AddedCreditsUltra() (r int, exists bool) {
	v := m.addcredits_ultra
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsUltra resets all changes to the "credits_ultra" field.
func (m *UserMutation) ResetCreditsUltra() {
	m.credits_ultra = nil
	m.addcredits_ultra = nil
}

// SetCreditsResetAt sets the "credits_reset_at" field.
func (m *UserMutation) SetCreditsResetAt(t time.Time) {
	m.credits_reset_at = &t
}

// CreditsResetAt returns the value of the "credits_reset_at" field in the mutation.
func (m *UserMutation) CreditsResetAt() (r time.Time, exists bool) {
	v := m.credits_reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsResetAt returns the old "credits_reset_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreditsResetAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsResetAt: %w", err)
	}
	return oldValue.CreditsResetAt, nil
}

// ResetCreditsResetAt resets all changes to the "credits_reset_at" field.
func (m *UserMutation) ResetCreditsResetAt() {
	m.credits_reset_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.hashed_password != nil {
		fields = append(fields, user.FieldHashedPassword)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.is_verified != nil {
		fields = append(fields, user.FieldIsVerified)
	}
	if m.api_token != nil {
		fields = append(fields, user.FieldAPIToken)
	}
	if m.credits_flash != nil {
		fields = append(fields, user.FieldCreditsFlash)
	}
	if m.credits_pro != nil {
		fields = append(fields, user.FieldCreditsPro)
	}
	if m.credits_ultra != nil {
		fields = append(fields, user.FieldCreditsUltra)
	}
	if m.credits_reset_at != nil {
		fields = append(fields, user.FieldCreditsResetAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldHashedPassword:
		return m.HashedPassword()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldRole:
		return m.Role()
	case user.FieldIsVerified:
		return m.IsVerified()
	case user.FieldAPIToken:
		return m.APIToken()
	case user.FieldCreditsFlash:
		return m.CreditsFlash()
	case user.FieldCreditsPro:
		return m.CreditsPro()
	case user.FieldCreditsUltra:
		return m.CreditsUltra()
	case user.FieldCreditsResetAt:
		return m.CreditsResetAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldHashedPassword:
		return m.OldHashedPassword(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case user.FieldAPIToken:
		return m.OldAPIToken(ctx)
	case user.FieldCreditsFlash:
		return m.OldCreditsFlash(ctx)
	case user.FieldCreditsPro:
		return m.OldCreditsPro(ctx)
	case user.FieldCreditsUltra:
		return m.OldCreditsUltra(ctx)
	case user.FieldCreditsResetAt:
		return m.OldCreditsResetAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldHashedPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashedPassword(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case user.FieldAPIToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIToken(v)
		return nil
	case user.FieldCreditsFlash:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsFlash(v)
		return nil
	case user.FieldCreditsPro:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsPro(v)
		return nil
	case user.FieldCreditsUltra:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsUltra(v)
		return nil
	case user.FieldCreditsResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsResetAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addcredits_flash != nil {
		fields = append(fields, user.FieldCreditsFlash)
	}
	if m.addcredits_pro != nil {
		fields = append(fields, user.FieldCreditsPro)
	}
	if m.addcredits_ultra != nil {
		fields = append(fields, user.FieldCreditsUltra)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreditsFlash:
		return m.AddedCreditsFlash()
	case user.FieldCreditsPro:
		return m.AddedCreditsPro()
	case user.FieldCreditsUltra:
		return m.AddedCreditsUltra()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreditsFlash:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsFlash(v)
		return nil
	case user.FieldCreditsPro:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsPro(v)
		return nil
	case user.FieldCreditsUltra:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsUltra(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldAPIToken) {
		fields = append(fields, user.FieldAPIToken)
	}
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldAPIToken:
		m.ClearAPIToken()
		return nil
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldHashedPassword:
		m.ResetHashedPassword()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case user.FieldAPIToken:
		m.ResetAPIToken()
		return nil
	case user.FieldCreditsFlash:
		m.ResetCreditsFlash()
		return nil
	case user.FieldCreditsPro:
		m.ResetCreditsPro()
		return nil
	case user.FieldCreditsUltra:
		m.ResetCreditsUltra()
		return nil
	case user.FieldCreditsResetAt:
		m.ResetCreditsResetAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
