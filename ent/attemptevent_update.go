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
	"github.com/abhisek/prepdeck/ent/attemptevent"
	"github.com/abhisek/prepdeck/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdate) SetItemID(v string) *AttemptEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableItemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *AttemptEventUpdate) SetDomain(v string) *AttemptEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDomain(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AttemptEventUpdate) SetResult(v string) *AttemptEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableResult(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetTimeMinutes sets the "time_minutes" field.
func (_u *AttemptEventUpdate) SetTimeMinutes(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeMinutes()
	_u.mutation.SetTimeMinutes(v)
	return _u
}

// SetNillableTimeMinutes sets the "time_minutes" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeMinutes(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeMinutes(*v)
	}
	return _u
}

// AddTimeMinutes adds value to the "time_minutes" field.
func (_u *AttemptEventUpdate) AddTimeMinutes(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeMinutes(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AttemptEventUpdate) SetConfidence(v string) *AttemptEventUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableConfidence(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *AttemptEventUpdate) SetPattern(v string) *AttemptEventUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePattern(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetMistakeTags sets the "mistake_tags" field.
func (_u *AttemptEventUpdate) SetMistakeTags(v []string) *AttemptEventUpdate {
	_u.mutation.SetMistakeTags(v)
	return _u
}

// AppendMistakeTags appends value to the "mistake_tags" field.
func (_u *AttemptEventUpdate) AppendMistakeTags(v []string) *AttemptEventUpdate {
	_u.mutation.AppendMistakeTags(v)
	return _u
}

// ClearMistakeTags clears the value of the "mistake_tags" field.
func (_u *AttemptEventUpdate) ClearMistakeTags() *AttemptEventUpdate {
	_u.mutation.ClearMistakeTags()
	return _u
}

// SetExternal sets the "external" field.
func (_u *AttemptEventUpdate) SetExternal(v bool) *AttemptEventUpdate {
	_u.mutation.SetExternal(v)
	return _u
}

// SetNillableExternal sets the "external" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExternal(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetExternal(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := attemptevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := attemptevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := attemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(attemptevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(attemptevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMinutes(); ok {
		_spec.SetField(attemptevent.FieldTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMinutes(); ok {
		_spec.AddField(attemptevent.FieldTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(attemptevent.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(attemptevent.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.MistakeTags(); ok {
		_spec.SetField(attemptevent.FieldMistakeTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMistakeTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldMistakeTags, value)
		})
	}
	if _u.mutation.MistakeTagsCleared() {
		_spec.ClearField(attemptevent.FieldMistakeTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.External(); ok {
		_spec.SetField(attemptevent.FieldExternal, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdateOne) SetItemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableItemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *AttemptEventUpdateOne) SetDomain(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDomain(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AttemptEventUpdateOne) SetResult(v string) *AttemptEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableResult(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetTimeMinutes sets the "time_minutes" field.
func (_u *AttemptEventUpdateOne) SetTimeMinutes(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeMinutes()
	_u.mutation.SetTimeMinutes(v)
	return _u
}

// SetNillableTimeMinutes sets the "time_minutes" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeMinutes(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMinutes(*v)
	}
	return _u
}

// AddTimeMinutes adds value to the "time_minutes" field.
func (_u *AttemptEventUpdateOne) AddTimeMinutes(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeMinutes(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AttemptEventUpdateOne) SetConfidence(v string) *AttemptEventUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableConfidence(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *AttemptEventUpdateOne) SetPattern(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePattern(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// SetMistakeTags sets the "mistake_tags" field.
func (_u *AttemptEventUpdateOne) SetMistakeTags(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetMistakeTags(v)
	return _u
}

// AppendMistakeTags appends value to the "mistake_tags" field.
func (_u *AttemptEventUpdateOne) AppendMistakeTags(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendMistakeTags(v)
	return _u
}

// ClearMistakeTags clears the value of the "mistake_tags" field.
func (_u *AttemptEventUpdateOne) ClearMistakeTags() *AttemptEventUpdateOne {
	_u.mutation.ClearMistakeTags()
	return _u
}

// SetExternal sets the "external" field.
func (_u *AttemptEventUpdateOne) SetExternal(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetExternal(v)
	return _u
}

// SetNillableExternal sets the "external" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExternal(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExternal(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := attemptevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := attemptevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.result": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := attemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(attemptevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(attemptevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMinutes(); ok {
		_spec.SetField(attemptevent.FieldTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMinutes(); ok {
		_spec.AddField(attemptevent.FieldTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(attemptevent.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(attemptevent.FieldPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.MistakeTags(); ok {
		_spec.SetField(attemptevent.FieldMistakeTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMistakeTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldMistakeTags, value)
		})
	}
	if _u.mutation.MistakeTagsCleared() {
		_spec.ClearField(attemptevent.FieldMistakeTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.External(); ok {
		_spec.SetField(attemptevent.FieldExternal, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
