// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabula-ai/fabula/ent/chapter"
	"github.com/fabula-ai/fabula/ent/predicate"
)

// ChapterUpdate is the builder for updating Chapter entities.
type ChapterUpdate struct {
	config
	hooks    []Hook
	mutation *ChapterMutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdate) Where(ps ...predicate.Chapter) *ChapterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionIndex sets the "section_index" field.
func (_u *ChapterUpdate) SetSectionIndex(v int) *ChapterUpdate {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableSectionIndex(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *ChapterUpdate) AddSectionIndex(v int) *ChapterUpdate {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChapterUpdate) SetTitle(v string) *ChapterUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableTitle(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChapterUpdate) SetContent(v string) *ChapterUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableContent(v *string) *ChapterUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ChapterUpdate) SetWordCount(v int) *ChapterUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ChapterUpdate) SetNillableWordCount(v *int) *ChapterUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ChapterUpdate) AddWordCount(v int) *ChapterUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChapterUpdate) SetUpdatedAt(v time.Time) *ChapterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdate) Mutation() *ChapterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChapterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChapterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChapterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.session"`)
	}
	return nil
}

func (_u *ChapterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(chapter.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(chapter.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chapter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chapter.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(chapter.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(chapter.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChapterUpdateOne is the builder for updating a single Chapter entity.
type ChapterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChapterMutation
}

// SetSectionIndex sets the "section_index" field.
func (_u *ChapterUpdateOne) SetSectionIndex(v int) *ChapterUpdateOne {
	_u.mutation.ResetSectionIndex()
	_u.mutation.SetSectionIndex(v)
	return _u
}

// SetNillableSectionIndex sets the "section_index" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableSectionIndex(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetSectionIndex(*v)
	}
	return _u
}

// AddSectionIndex adds value to the "section_index" field.
func (_u *ChapterUpdateOne) AddSectionIndex(v int) *ChapterUpdateOne {
	_u.mutation.AddSectionIndex(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChapterUpdateOne) SetTitle(v string) *ChapterUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableTitle(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChapterUpdateOne) SetContent(v string) *ChapterUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableContent(v *string) *ChapterUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *ChapterUpdateOne) SetWordCount(v int) *ChapterUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *ChapterUpdateOne) SetNillableWordCount(v *int) *ChapterUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *ChapterUpdateOne) AddWordCount(v int) *ChapterUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChapterUpdateOne) SetUpdatedAt(v time.Time) *ChapterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChapterMutation object of the builder.
func (_u *ChapterUpdateOne) Mutation() *ChapterMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChapterUpdate builder.
func (_u *ChapterUpdateOne) Where(ps ...predicate.Chapter) *ChapterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChapterUpdateOne) Select(field string, fields ...string) *ChapterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chapter entity.
func (_u *ChapterUpdateOne) Save(ctx context.Context) (*Chapter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChapterUpdateOne) SaveX(ctx context.Context) *Chapter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChapterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChapterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChapterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChapterUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chapter.session"`)
	}
	return nil
}

func (_u *ChapterUpdateOne) sqlSave(ctx context.Context) (_node *Chapter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chapter.Table, chapter.Columns, sqlgraph.NewFieldSpec(chapter.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chapter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chapter.FieldID)
		for _, f := range fields {
			if !chapter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chapter.FieldID {
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
	if value, ok := _u.mutation.SectionIndex(); ok {
		_spec.SetField(chapter.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionIndex(); ok {
		_spec.AddField(chapter.FieldSectionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(chapter.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chapter.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(chapter.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(chapter.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chapter.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Chapter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
