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
	"github.com/fabula-ai/fabula/ent/predicate"
	"github.com/fabula-ai/fabula/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetHashedPassword sets the "hashed_password" field.
func (_u *UserUpdate) SetHashedPassword(v string) *UserUpdate {
	_u.mutation.SetHashedPassword(v)
	return _u
}

// SetNillableHashedPassword sets the "hashed_password" field if the given value is not nil.
func (_u *UserUpdate) SetNillableHashedPassword(v *string) *UserUpdate {
	if v != nil {
		_u.SetHashedPassword(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdate) SetDisplayName(v string) *UserUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDisplayName(v *string) *UserUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *UserUpdate) SetIsVerified(v bool) *UserUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetAPIToken sets the "api_token" field.
func (_u *UserUpdate) SetAPIToken(v string) *UserUpdate {
	_u.mutation.SetAPIToken(v)
	return _u
}

// SetNillableAPIToken sets the "api_token" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAPIToken(v *string) *UserUpdate {
	if v != nil {
		_u.SetAPIToken(*v)
	}
	return _u
}

// ClearAPIToken clears the value of the "api_token" field.
func (_u *UserUpdate) ClearAPIToken() *UserUpdate {
	_u.mutation.ClearAPIToken()
	return _u
}

// SetCreditsFlash sets the "credits_flash" field.
func (_u *UserUpdate) SetCreditsFlash(v int) *UserUpdate {
	_u.mutation.ResetCreditsFlash()
	_u.mutation.SetCreditsFlash(v)
	return _u
}

// SetNillableCreditsFlash sets the "credits_flash" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreditsFlash(v *int) *UserUpdate {
	if v != nil {
		_u.SetCreditsFlash(*v)
	}
	return _u
}

// AddCreditsFlash adds value to the "credits_flash" field.
func (_u *UserUpdate) AddCreditsFlash(v int) *UserUpdate {
	_u.mutation.AddCreditsFlash(v)
	return _u
}

// SetCreditsPro sets the "credits_pro" field.
func (_u *UserUpdate) SetCreditsPro(v int) *UserUpdate {
	_u.mutation.ResetCreditsPro()
	_u.mutation.SetCreditsPro(v)
	return _u
}

// SetNillableCreditsPro sets the "credits_pro" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreditsPro(v *int) *UserUpdate {
	if v != nil {
		_u.SetCreditsPro(*v)
	}
	return _u
}

// AddCreditsPro adds value to the "credits_pro" field.
func (_u *UserUpdate) AddCreditsPro(v int) *UserUpdate {
	_u.mutation.AddCreditsPro(v)
	return _u
}

// SetCreditsUltra sets the "credits_ultra" field.
func (_u *UserUpdate) SetCreditsUltra(v int) *UserUpdate {
	_u.mutation.ResetCreditsUltra()
	_u.mutation.SetCreditsUltra(v)
	return _u
}

// SetNillableCreditsUltra sets the "credits_ultra" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreditsUltra(v *int) *UserUpdate {
	if v != nil {
		_u.SetCreditsUltra(*v)
	}
	return _u
}

// AddCreditsUltra adds value to the "credits_ultra" field.
func (_u *UserUpdate) AddCreditsUltra(v int) *UserUpdate {
	_u.mutation.AddCreditsUltra(v)
	return _u
}

// SetCreditsResetAt sets the "credits_reset_at" field.
func (_u *UserUpdate) SetCreditsResetAt(v time.Time) *UserUpdate {
	_u.mutation.SetCreditsResetAt(v)
	return _u
}

// SetNillableCreditsResetAt sets the "credits_reset_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCreditsResetAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetCreditsResetAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdate) SetDeletedAt(v time.Time) *UserUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDeletedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdate) ClearDeletedAt() *UserUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashedPassword(); ok {
		_spec.SetField(user.FieldHashedPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(user.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.APIToken(); ok {
		_spec.SetField(user.FieldAPIToken, field.TypeString, value)
	}
	if _u.mutation.APITokenCleared() {
		_spec.ClearField(user.FieldAPIToken, field.TypeString)
	}
	if value, ok := _u.mutation.CreditsFlash(); ok {
		_spec.SetField(user.FieldCreditsFlash, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsFlash(); ok {
		_spec.AddField(user.FieldCreditsFlash, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsPro(); ok {
		_spec.SetField(user.FieldCreditsPro, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsPro(); ok {
		_spec.AddField(user.FieldCreditsPro, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsUltra(); ok {
		_spec.SetField(user.FieldCreditsUltra, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsUltra(); ok {
		_spec.AddField(user.FieldCreditsUltra, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsResetAt(); ok {
		_spec.SetField(user.FieldCreditsResetAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetHashedPassword sets the "hashed_password" field.
func (_u *UserUpdateOne) SetHashedPassword(v string) *UserUpdateOne {
	_u.mutation.SetHashedPassword(v)
	return _u
}

// SetNillableHashedPassword sets the "hashed_password" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableHashedPassword(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetHashedPassword(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdateOne) SetDisplayName(v string) *UserUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDisplayName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *UserUpdateOne) SetIsVerified(v bool) *UserUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetAPIToken sets the "api_token" field.
func (_u *UserUpdateOne) SetAPIToken(v string) *UserUpdateOne {
	_u.mutation.SetAPIToken(v)
	return _u
}

// SetNillableAPIToken sets the "api_token" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAPIToken(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAPIToken(*v)
	}
	return _u
}

// ClearAPIToken clears the value of the "api_token" field.
func (_u *UserUpdateOne) ClearAPIToken() *UserUpdateOne {
	_u.mutation.ClearAPIToken()
	return _u
}

// SetCreditsFlash sets the "credits_flash" field.
func (_u *UserUpdateOne) SetCreditsFlash(v int) *UserUpdateOne {
	_u.mutation.ResetCreditsFlash()
	_u.mutation.SetCreditsFlash(v)
	return _u
}

// SetNillableCreditsFlash sets the "credits_flash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreditsFlash(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCreditsFlash(*v)
	}
	return _u
}

// AddCreditsFlash adds value to the "credits_flash" field.
func (_u *UserUpdateOne) AddCreditsFlash(v int) *UserUpdateOne {
	_u.mutation.AddCreditsFlash(v)
	return _u
}

// SetCreditsPro sets the "credits_pro" field.
func (_u *UserUpdateOne) SetCreditsPro(v int) *UserUpdateOne {
	_u.mutation.ResetCreditsPro()
	_u.mutation.SetCreditsPro(v)
	return _u
}

// SetNillableCreditsPro sets the "credits_pro" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreditsPro(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCreditsPro(*v)
	}
	return _u
}

// AddCreditsPro adds value to the "credits_pro" field.
func (_u *UserUpdateOne) AddCreditsPro(v int) *UserUpdateOne {
	_u.mutation.AddCreditsPro(v)
	return _u
}

// SetCreditsUltra sets the "credits_ultra" field.
func (_u *UserUpdateOne) SetCreditsUltra(v int) *UserUpdateOne {
	_u.mutation.ResetCreditsUltra()
	_u.mutation.SetCreditsUltra(v)
	return _u
}

// SetNillableCreditsUltra sets the "credits_ultra" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreditsUltra(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCreditsUltra(*v)
	}
	return _u
}

// AddCreditsUltra adds value to the "credits_ultra" field.
func (_u *UserUpdateOne) AddCreditsUltra(v int) *UserUpdateOne {
	_u.mutation.AddCreditsUltra(v)
	return _u
}

// SetCreditsResetAt sets the "credits_reset_at" field.
func (_u *UserUpdateOne) SetCreditsResetAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetCreditsResetAt(v)
	return _u
}

// SetNillableCreditsResetAt sets the "credits_reset_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCreditsResetAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetCreditsResetAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdateOne) SetDeletedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDeletedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdateOne) ClearDeletedAt() *UserUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashedPassword(); ok {
		_spec.SetField(user.FieldHashedPassword, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(user.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.APIToken(); ok {
		_spec.SetField(user.FieldAPIToken, field.TypeString, value)
	}
	if _u.mutation.APITokenCleared() {
		_spec.ClearField(user.FieldAPIToken, field.TypeString)
	}
	if value, ok := _u.mutation.CreditsFlash(); ok {
		_spec.SetField(user.FieldCreditsFlash, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsFlash(); ok {
		_spec.AddField(user.FieldCreditsFlash, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsPro(); ok {
		_spec.SetField(user.FieldCreditsPro, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsPro(); ok {
		_spec.AddField(user.FieldCreditsPro, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsUltra(); ok {
		_spec.SetField(user.FieldCreditsUltra, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditsUltra(); ok {
		_spec.AddField(user.FieldCreditsUltra, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreditsResetAt(); ok {
		_spec.SetField(user.FieldCreditsResetAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
