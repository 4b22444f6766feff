// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/mapping"
)

// MappingCreate is the builder for creating a Mapping entity.
type MappingCreate struct {
	config
	mutation *MappingMutation
	hooks    []Hook
}

// SetCollectionID sets the "collection_id" field.
func (_c *MappingCreate) SetCollectionID(v string) *MappingCreate {
	_c.mutation.SetCollectionID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *MappingCreate) SetDomain(v string) *MappingCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MappingCreate) SetTitle(v string) *MappingCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *MappingCreate) SetFingerprint(v string) *MappingCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetAttemptsStore sets the "attempts_store" field.
func (_c *MappingCreate) SetAttemptsStore(v bool) *MappingCreate {
	_c.mutation.SetAttemptsStore(v)
	return _c
}

// SetNillableAttemptsStore sets the "attempts_store" field if the given value is not nil.
func (_c *MappingCreate) SetNillableAttemptsStore(v *bool) *MappingCreate {
	if v != nil {
		_c.SetAttemptsStore(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *MappingCreate) SetConfirmedAt(v time.Time) *MappingCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// Mutation returns the MappingMutation object of the builder.
func (_c *MappingCreate) Mutation() *MappingMutation {
	return _c.mutation
}

// Save creates the Mapping in the database.
func (_c *MappingCreate) Save(ctx context.Context) (*Mapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MappingCreate) SaveX(ctx context.Context) *Mapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MappingCreate) defaults() {
	if _, ok := _c.mutation.AttemptsStore(); !ok {
		v := mapping.DefaultAttemptsStore
		_c.mutation.SetAttemptsStore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MappingCreate) check() error {
	if _, ok := _c.mutation.CollectionID(); !ok {
		return &ValidationError{Name: "collection_id", err: errors.New(`ent: missing required field "Mapping.collection_id"`)}
	}
	if v, ok := _c.mutation.CollectionID(); ok {
		if err := mapping.CollectionIDValidator(v); err != nil {
			return &ValidationError{Name: "collection_id", err: fmt.Errorf(`ent: validator failed for field "Mapping.collection_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Mapping.domain"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Mapping.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := mapping.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Mapping.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Mapping.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := mapping.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Mapping.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptsStore(); !ok {
		return &ValidationError{Name: "attempts_store", err: errors.New(`ent: missing required field "Mapping.attempts_store"`)}
	}
	if _, ok := _c.mutation.ConfirmedAt(); !ok {
		return &ValidationError{Name: "confirmed_at", err: errors.New(`ent: missing required field "Mapping.confirmed_at"`)}
	}
	return nil
}

func (_c *MappingCreate) sqlSave(ctx context.Context) (*Mapping, error) {
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

func (_c *MappingCreate) createSpec() (*Mapping, *sqlgraph.CreateSpec) {
	var (
		_node = &Mapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mapping.Table, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CollectionID(); ok {
		_spec.SetField(mapping.FieldCollectionID, field.TypeString, value)
		_node.CollectionID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(mapping.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(mapping.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(mapping.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.AttemptsStore(); ok {
		_spec.SetField(mapping.FieldAttemptsStore, field.TypeBool, value)
		_node.AttemptsStore = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(mapping.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = value
	}
	return _node, _spec
}

// MappingCreateBulk is the builder for creating many Mapping entities in bulk.
type MappingCreateBulk struct {
	config
	err      error
	builders []*MappingCreate
}

// Save creates the Mapping entities in the database.
func (_c *MappingCreateBulk) Save(ctx context.Context) ([]*Mapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MappingMutation)
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
func (_c *MappingCreateBulk) SaveX(ctx context.Context) []*Mapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
