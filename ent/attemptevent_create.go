// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *AttemptEventCreate) SetItemID(v string) *AttemptEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *AttemptEventCreate) SetDomain(v string) *AttemptEventCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AttemptEventCreate) SetResult(v string) *AttemptEventCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetTimeMinutes sets the "time_minutes" field.
func (_c *AttemptEventCreate) SetTimeMinutes(v int) *AttemptEventCreate {
	_c.mutation.SetTimeMinutes(v)
	return _c
}

// SetNillableTimeMinutes sets the "time_minutes" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimeMinutes(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetTimeMinutes(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AttemptEventCreate) SetConfidence(v string) *AttemptEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *AttemptEventCreate) SetPattern(v string) *AttemptEventCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillablePattern(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetPattern(*v)
	}
	return _c
}

// SetMistakeTags sets the "mistake_tags" field.
func (_c *AttemptEventCreate) SetMistakeTags(v []string) *AttemptEventCreate {
	_c.mutation.SetMistakeTags(v)
	return _c
}

// SetExternal sets the "external" field.
func (_c *AttemptEventCreate) SetExternal(v bool) *AttemptEventCreate {
	_c.mutation.SetExternal(v)
	return _c
}

// SetNillableExternal sets the "external" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableExternal(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetExternal(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TimeMinutes(); !ok {
		v := attemptevent.DefaultTimeMinutes
		_c.mutation.SetTimeMinutes(v)
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		v := attemptevent.DefaultPattern
		_c.mutation.SetPattern(v)
	}
	if _, ok := _c.mutation.External(); !ok {
		v := attemptevent.DefaultExternal
		_c.mutation.SetExternal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AttemptEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "AttemptEvent.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := attemptevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "AttemptEvent.result"`)}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := attemptevent.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.result": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeMinutes(); !ok {
		return &ValidationError{Name: "time_minutes", err: errors.New(`ent: missing required field "AttemptEvent.time_minutes"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AttemptEvent.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := attemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "AttemptEvent.pattern"`)}
	}
	if _, ok := _c.mutation.External(); !ok {
		return &ValidationError{Name: "external", err: errors.New(`ent: missing required field "AttemptEvent.external"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(attemptevent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(attemptevent.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.TimeMinutes(); ok {
		_spec.SetField(attemptevent.FieldTimeMinutes, field.TypeInt, value)
		_node.TimeMinutes = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(attemptevent.FieldConfidence, field.TypeString, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(attemptevent.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.MistakeTags(); ok {
		_spec.SetField(attemptevent.FieldMistakeTags, field.TypeJSON, value)
		_node.MistakeTags = value
	}
	if value, ok := _c.mutation.External(); ok {
		_spec.SetField(attemptevent.FieldExternal, field.TypeBool, value)
		_node.External = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
