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
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/predicate"
)

// GenerationTaskUpdate is the builder for updating GenerationTask entities.
type GenerationTaskUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationTaskMutation
}

// Where appends a list predicates to the GenerationTaskUpdate builder.
func (_u *GenerationTaskUpdate) Where(ps ...predicate.GenerationTask) *GenerationTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *GenerationTaskUpdate) SetKind(v generationtask.Kind) *GenerationTaskUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableKind(v *generationtask.Kind) *GenerationTaskUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationTaskUpdate) SetStatus(v generationtask.Status) *GenerationTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableStatus(v *generationtask.Status) *GenerationTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GenerationTaskUpdate) SetAttempt(v int) *GenerationTaskUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableAttempt(v *int) *GenerationTaskUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GenerationTaskUpdate) AddAttempt(v int) *GenerationTaskUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetError sets the "error" field.
func (_u *GenerationTaskUpdate) SetError(v string) *GenerationTaskUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableError(v *string) *GenerationTaskUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *GenerationTaskUpdate) ClearError() *GenerationTaskUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *GenerationTaskUpdate) SetPodID(v string) *GenerationTaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillablePodID(v *string) *GenerationTaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *GenerationTaskUpdate) ClearPodID() *GenerationTaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *GenerationTaskUpdate) SetLastInteractionAt(v time.Time) *GenerationTaskUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableLastInteractionAt(v *time.Time) *GenerationTaskUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *GenerationTaskUpdate) ClearLastInteractionAt() *GenerationTaskUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *GenerationTaskUpdate) SetClaimedAt(v time.Time) *GenerationTaskUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableClaimedAt(v *time.Time) *GenerationTaskUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *GenerationTaskUpdate) ClearClaimedAt() *GenerationTaskUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GenerationTaskUpdate) SetFinishedAt(v time.Time) *GenerationTaskUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GenerationTaskUpdate) SetNillableFinishedAt(v *time.Time) *GenerationTaskUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GenerationTaskUpdate) ClearFinishedAt() *GenerationTaskUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the GenerationTaskMutation object of the builder.
func (_u *GenerationTaskUpdate) Mutation() *GenerationTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationTaskUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := generationtask.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationTask.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationTask.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GenerationTask.session"`)
	}
	return nil
}

func (_u *GenerationTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationtask.Table, generationtask.Columns, sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(generationtask.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(generationtask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(generationtask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(generationtask.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(generationtask.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(generationtask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(generationtask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(generationtask.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(generationtask.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(generationtask.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(generationtask.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(generationtask.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(generationtask.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationTaskUpdateOne is the builder for updating a single GenerationTask entity.
type GenerationTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationTaskMutation
}

// SetKind sets the "kind" field.
func (_u *GenerationTaskUpdateOne) SetKind(v generationtask.Kind) *GenerationTaskUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableKind(v *generationtask.Kind) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GenerationTaskUpdateOne) SetStatus(v generationtask.Status) *GenerationTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableStatus(v *generationtask.Status) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GenerationTaskUpdateOne) SetAttempt(v int) *GenerationTaskUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableAttempt(v *int) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GenerationTaskUpdateOne) AddAttempt(v int) *GenerationTaskUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetError sets the "error" field.
func (_u *GenerationTaskUpdateOne) SetError(v string) *GenerationTaskUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableError(v *string) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *GenerationTaskUpdateOne) ClearError() *GenerationTaskUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *GenerationTaskUpdateOne) SetPodID(v string) *GenerationTaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillablePodID(v *string) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *GenerationTaskUpdateOne) ClearPodID() *GenerationTaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *GenerationTaskUpdateOne) SetLastInteractionAt(v time.Time) *GenerationTaskUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableLastInteractionAt(v *time.Time) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *GenerationTaskUpdateOne) ClearLastInteractionAt() *GenerationTaskUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *GenerationTaskUpdateOne) SetClaimedAt(v time.Time) *GenerationTaskUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableClaimedAt(v *time.Time) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *GenerationTaskUpdateOne) ClearClaimedAt() *GenerationTaskUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GenerationTaskUpdateOne) SetFinishedAt(v time.Time) *GenerationTaskUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GenerationTaskUpdateOne) SetNillableFinishedAt(v *time.Time) *GenerationTaskUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GenerationTaskUpdateOne) ClearFinishedAt() *GenerationTaskUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the GenerationTaskMutation object of the builder.
func (_u *GenerationTaskUpdateOne) Mutation() *GenerationTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationTaskUpdate builder.
func (_u *GenerationTaskUpdateOne) Where(ps ...predicate.GenerationTask) *GenerationTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationTaskUpdateOne) Select(field string, fields ...string) *GenerationTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationTask entity.
func (_u *GenerationTaskUpdateOne) Save(ctx context.Context) (*GenerationTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationTaskUpdateOne) SaveX(ctx context.Context) *GenerationTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := generationtask.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationTask.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := generationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationTask.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GenerationTask.session"`)
	}
	return nil
}

func (_u *GenerationTaskUpdateOne) sqlSave(ctx context.Context) (_node *GenerationTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationtask.Table, generationtask.Columns, sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationtask.FieldID)
		for _, f := range fields {
			if !generationtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationtask.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(generationtask.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generationtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(generationtask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(generationtask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(generationtask.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(generationtask.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(generationtask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(generationtask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(generationtask.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(generationtask.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(generationtask.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(generationtask.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(generationtask.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(generationtask.FieldFinishedAt, field.TypeTime)
	}
	_node = &GenerationTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
