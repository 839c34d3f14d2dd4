// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabula-ai/fabula/ent/bookshare"
	"github.com/fabula-ai/fabula/ent/novelsession"
)

// BookShareCreate is the builder for creating a BookShare entity.
type BookShareCreate struct {
	config
	mutation *BookShareMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *BookShareCreate) SetSessionID(v string) *BookShareCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *BookShareCreate) SetOwnerID(v string) *BookShareCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetRecipientID sets the "recipient_id" field.
func (_c *BookShareCreate) SetRecipientID(v string) *BookShareCreate {
	_c.mutation.SetRecipientID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookShareCreate) SetCreatedAt(v time.Time) *BookShareCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookShareCreate) SetNillableCreatedAt(v *time.Time) *BookShareCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BookShareCreate) SetID(v string) *BookShareCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the NovelSession entity.
func (_c *BookShareCreate) SetSession(v *NovelSession) *BookShareCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the BookShareMutation object of the builder.
func (_c *BookShareCreate) Mutation() *BookShareMutation {
	return _c.mutation
}

// Save creates the BookShare in the database.
func (_c *BookShareCreate) Save(ctx context.Context) (*BookShare, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookShareCreate) SaveX(ctx context.Context) *BookShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookShareCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookShareCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookShareCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bookshare.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookShareCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BookShare.session_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BookShare.owner_id"`)}
	}
	if _, ok := _c.mutation.RecipientID(); !ok {
		return &ValidationError{Name: "recipient_id", err: errors.New(`ent: missing required field "BookShare.recipient_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BookShare.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "BookShare.session"`)}
	}
	return nil
}

func (_c *BookShareCreate) sqlSave(ctx context.Context) (*BookShare, error) {
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
			return nil, fmt.Errorf("unexpected BookShare.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BookShareCreate) createSpec() (*BookShare, *sqlgraph.CreateSpec) {
	var (
		_node = &BookShare{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bookshare.Table, sqlgraph.NewFieldSpec(bookshare.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(bookshare.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.RecipientID(); ok {
		_spec.SetField(bookshare.FieldRecipientID, field.TypeString, value)
		_node.RecipientID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bookshare.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bookshare.SessionTable,
			Columns: []string{bookshare.SessionColumn},
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

// BookShareCreateBulk is the builder for creating many BookShare entities in bulk.
type BookShareCreateBulk struct {
	config
	err      error
	builders []*BookShareCreate
}

// Save creates the BookShare entities in the database.
func (_c *BookShareCreateBulk) Save(ctx context.Context) ([]*BookShare, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BookShare, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookShareMutation)
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
func (_c *BookShareCreateBulk) SaveX(ctx context.Context) []*BookShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookShareCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookShareCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
