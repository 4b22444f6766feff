// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/predicate"
	"github.com/abhisek/prepdeck/ent/schema"
	"github.com/abhisek/prepdeck/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFocusMode sets the "focus_mode" field.
func (_u *SessionEventUpdate) SetFocusMode(v string) *SessionEventUpdate {
	_u.mutation.SetFocusMode(v)
	return _u
}

// SetNillableFocusMode sets the "focus_mode" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableFocusMode(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetFocusMode(*v)
	}
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *SessionEventUpdate) SetTotalMinutes(v int) *SessionEventUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTotalMinutes(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *SessionEventUpdate) AddTotalMinutes(v int) *SessionEventUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetSlots sets the "slots" field.
func (_u *SessionEventUpdate) SetSlots(v []schema.SlotSummary) *SessionEventUpdate {
	_u.mutation.SetSlots(v)
	return _u
}

// AppendSlots appends value to the "slots" field.
func (_u *SessionEventUpdate) AppendSlots(v []schema.SlotSummary) *SessionEventUpdate {
	_u.mutation.AppendSlots(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FocusMode(); ok {
		if err := sessionevent.FocusModeValidator(v); err != nil {
			return &ValidationError{Name: "focus_mode", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.focus_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusMode(); ok {
		_spec.SetField(sessionevent.FieldFocusMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(sessionevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(sessionevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Slots(); ok {
		_spec.SetField(sessionevent.FieldSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldSlots, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFocusMode sets the "focus_mode" field.
func (_u *SessionEventUpdateOne) SetFocusMode(v string) *SessionEventUpdateOne {
	_u.mutation.SetFocusMode(v)
	return _u
}

// SetNillableFocusMode sets the "focus_mode" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableFocusMode(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetFocusMode(*v)
	}
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *SessionEventUpdateOne) SetTotalMinutes(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTotalMinutes(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *SessionEventUpdateOne) AddTotalMinutes(v int) *SessionEventUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetSlots sets the "slots" field.
func (_u *SessionEventUpdateOne) SetSlots(v []schema.SlotSummary) *SessionEventUpdateOne {
	_u.mutation.SetSlots(v)
	return _u
}

// AppendSlots appends value to the "slots" field.
func (_u *SessionEventUpdateOne) AppendSlots(v []schema.SlotSummary) *SessionEventUpdateOne {
	_u.mutation.AppendSlots(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FocusMode(); ok {
		if err := sessionevent.FocusModeValidator(v); err != nil {
			return &ValidationError{Name: "focus_mode", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.focus_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusMode(); ok {
		_spec.SetField(sessionevent.FieldFocusMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(sessionevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(sessionevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Slots(); ok {
		_spec.SetField(sessionevent.FieldSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldSlots, value)
		})
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
