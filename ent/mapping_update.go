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
	"github.com/abhisek/prepdeck/ent/mapping"
	"github.com/abhisek/prepdeck/ent/predicate"
)

// MappingUpdate is the builder for updating Mapping entities.
type MappingUpdate struct {
	config
	hooks    []Hook
	mutation *MappingMutation
}

// Where appends a list predicates to the MappingUpdate builder.
func (_u *MappingUpdate) Where(ps ...predicate.Mapping) *MappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCollectionID sets the "collection_id" field.
func (_u *MappingUpdate) SetCollectionID(v string) *MappingUpdate {
	_u.mutation.SetCollectionID(v)
	return _u
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableCollectionID(v *string) *MappingUpdate {
	if v != nil {
		_u.SetCollectionID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *MappingUpdate) SetDomain(v string) *MappingUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableDomain(v *string) *MappingUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MappingUpdate) SetTitle(v string) *MappingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableTitle(v *string) *MappingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *MappingUpdate) SetFingerprint(v string) *MappingUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableFingerprint(v *string) *MappingUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetAttemptsStore sets the "attempts_store" field.
func (_u *MappingUpdate) SetAttemptsStore(v bool) *MappingUpdate {
	_u.mutation.SetAttemptsStore(v)
	return _u
}

// SetNillableAttemptsStore sets the "attempts_store" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableAttemptsStore(v *bool) *MappingUpdate {
	if v != nil {
		_u.SetAttemptsStore(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *MappingUpdate) SetConfirmedAt(v time.Time) *MappingUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *MappingUpdate) SetNillableConfirmedAt(v *time.Time) *MappingUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// Mutation returns the MappingMutation object of the builder.
func (_u *MappingUpdate) Mutation() *MappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingUpdate) check() error {
	if v, ok := _u.mutation.CollectionID(); ok {
		if err := mapping.CollectionIDValidator(v); err != nil {
			return &ValidationError{Name: "collection_id", err: fmt.Errorf(`ent: validator failed for field "Mapping.collection_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := mapping.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Mapping.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := mapping.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Mapping.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *MappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mapping.Table, mapping.Columns, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CollectionID(); ok {
		_spec.SetField(mapping.FieldCollectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(mapping.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mapping.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(mapping.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptsStore(); ok {
		_spec.SetField(mapping.FieldAttemptsStore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(mapping.FieldConfirmedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MappingUpdateOne is the builder for updating a single Mapping entity.
type MappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MappingMutation
}

// SetCollectionID sets the "collection_id" field.
func (_u *MappingUpdateOne) SetCollectionID(v string) *MappingUpdateOne {
	_u.mutation.SetCollectionID(v)
	return _u
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableCollectionID(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetCollectionID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *MappingUpdateOne) SetDomain(v string) *MappingUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableDomain(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MappingUpdateOne) SetTitle(v string) *MappingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableTitle(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *MappingUpdateOne) SetFingerprint(v string) *MappingUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableFingerprint(v *string) *MappingUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetAttemptsStore sets the "attempts_store" field.
func (_u *MappingUpdateOne) SetAttemptsStore(v bool) *MappingUpdateOne {
	_u.mutation.SetAttemptsStore(v)
	return _u
}

// SetNillableAttemptsStore sets the "attempts_store" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableAttemptsStore(v *bool) *MappingUpdateOne {
	if v != nil {
		_u.SetAttemptsStore(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *MappingUpdateOne) SetConfirmedAt(v time.Time) *MappingUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *MappingUpdateOne) SetNillableConfirmedAt(v *time.Time) *MappingUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// Mutation returns the MappingMutation object of the builder.
func (_u *MappingUpdateOne) Mutation() *MappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the MappingUpdate builder.
func (_u *MappingUpdateOne) Where(ps ...predicate.Mapping) *MappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MappingUpdateOne) Select(field string, fields ...string) *MappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mapping entity.
func (_u *MappingUpdateOne) Save(ctx context.Context) (*Mapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingUpdateOne) SaveX(ctx context.Context) *Mapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingUpdateOne) check() error {
	if v, ok := _u.mutation.CollectionID(); ok {
		if err := mapping.CollectionIDValidator(v); err != nil {
			return &ValidationError{Name: "collection_id", err: fmt.Errorf(`ent: validator failed for field "Mapping.collection_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := mapping.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Mapping.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := mapping.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Mapping.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *MappingUpdateOne) sqlSave(ctx context.Context) (_node *Mapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mapping.Table, mapping.Columns, sqlgraph.NewFieldSpec(mapping.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mapping.FieldID)
		for _, f := range fields {
			if !mapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mapping.FieldID {
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
	if value, ok := _u.mutation.CollectionID(); ok {
		_spec.SetField(mapping.FieldCollectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(mapping.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mapping.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(mapping.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptsStore(); ok {
		_spec.SetField(mapping.FieldAttemptsStore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(mapping.FieldConfirmedAt, field.TypeTime, value)
	}
	_node = &Mapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
