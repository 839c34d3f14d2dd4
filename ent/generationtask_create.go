// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabula-ai/fabula/ent/generationtask"
	"github.com/fabula-ai/fabula/ent/novelsession"
)

// GenerationTaskCreate is the builder for creating a GenerationTask entity.
type GenerationTaskCreate struct {
	config
	mutation *GenerationTaskMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *GenerationTaskCreate) SetSessionID(v string) *GenerationTaskCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *GenerationTaskCreate) SetKind(v generationtask.Kind) *GenerationTaskCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GenerationTaskCreate) SetStatus(v generationtask.Status) *GenerationTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableStatus(v *generationtask.Status) *GenerationTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *GenerationTaskCreate) SetAttempt(v int) *GenerationTaskCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableAttempt(v *int) *GenerationTaskCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *GenerationTaskCreate) SetError(v string) *GenerationTaskCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableError(v *string) *GenerationTaskCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *GenerationTaskCreate) SetPodID(v string) *GenerationTaskCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillablePodID(v *string) *GenerationTaskCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *GenerationTaskCreate) SetLastInteractionAt(v time.Time) *GenerationTaskCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableLastInteractionAt(v *time.Time) *GenerationTaskCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *GenerationTaskCreate) SetClaimedAt(v time.Time) *GenerationTaskCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableClaimedAt(v *time.Time) *GenerationTaskCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *GenerationTaskCreate) SetFinishedAt(v time.Time) *GenerationTaskCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableFinishedAt(v *time.Time) *GenerationTaskCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GenerationTaskCreate) SetCreatedAt(v time.Time) *GenerationTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GenerationTaskCreate) SetNillableCreatedAt(v *time.Time) *GenerationTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GenerationTaskCreate) SetID(v string) *GenerationTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the NovelSession entity.
func (_c *GenerationTaskCreate) SetSession(v *NovelSession) *GenerationTaskCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the GenerationTaskMutation object of the builder.
func (_c *GenerationTaskCreate) Mutation() *GenerationTaskMutation {
	return _c.mutation
}

// Save creates the GenerationTask in the database.
func (_c *GenerationTaskCreate) Save(ctx context.Context) (*GenerationTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationTaskCreate) SaveX(ctx context.Context) *GenerationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := generationtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := generationtask.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generationtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationTaskCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GenerationTask.session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "GenerationTask.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := generationtask.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GenerationTask.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GenerationTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GenerationTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "GenerationTask.attempt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GenerationTask.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "GenerationTask.session"`)}
	}
	return nil
}

func (_c *GenerationTaskCreate) sqlSave(ctx context.Context) (*GenerationTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected GenerationTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GenerationTaskCreate) createSpec() (*GenerationTask, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationtask.Table, sqlgraph.NewFieldSpec(generationtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(generationtask.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generationtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(generationtask.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(generationtask.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(generationtask.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(generationtask.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(generationtask.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(generationtask.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generationtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   generationtask.SessionTable,
			Columns: []string{generationtask.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(novelsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GenerationTaskCreateBulk is the builder for creating many GenerationTask entities in bulk.
type GenerationTaskCreateBulk struct {
	config
	err      error
	builders []*GenerationTaskCreate
}

// Save creates the GenerationTask entities in the database.
func (_c *GenerationTaskCreateBulk) Save(ctx context.Context) ([]*GenerationTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GenerationTaskCreateBulk) SaveX(ctx context.Context) []*GenerationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
