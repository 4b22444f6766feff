// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/mapping"
)

// Mapping is the model entity for the Mapping schema.
type Mapping struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Directory collection identifier
	CollectionID string `json:"collection_id,omitempty"`
	// Canonical domain the collection maps to; empty for the attempts store
	Domain string `json:"domain,omitempty"`
	// Collection title at confirmation time
	Title string `json:"title,omitempty"`
	// Schema fingerprint at confirmation time
	Fingerprint string `json:"fingerprint,omitempty"`
	// Whether this collection is the attempts store
	AttemptsStore bool `json:"attempts_store,omitempty"`
	// When the user confirmed the mapping
	ConfirmedAt  time.Time `json:"confirmed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mapping.FieldAttemptsStore:
			values[i] = new(sql.NullBool)
		case mapping.FieldID:
			values[i] = new(sql.NullInt64)
		case mapping.FieldCollectionID, mapping.FieldDomain, mapping.FieldTitle, mapping.FieldFingerprint:
			values[i] = new(sql.NullString)
		case mapping.FieldConfirmedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mapping fields.
func (_m *Mapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mapping.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mapping.FieldCollectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field collection_id", values[i])
			} else if value.Valid {
				_m.CollectionID = value.String
			}
		case mapping.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case mapping.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case mapping.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case mapping.FieldAttemptsStore:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_store", values[i])
			} else if value.Valid {
				_m.AttemptsStore = value.Bool
			}
		case mapping.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mapping.
// This includes values selected through modifiers, order, etc.
func (_m *Mapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Mapping.
// Note that you need to call Mapping.Unwrap() before calling this method if this Mapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mapping) Update() *MappingUpdateOne {
	return NewMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mapping) Unwrap() *Mapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mapping) String() string {
	var builder strings.Builder
	builder.WriteString("Mapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("collection_id=")
	builder.WriteString(_m.CollectionID)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("attempts_store=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsStore))
	builder.WriteString(", ")
	builder.WriteString("confirmed_at=")
	builder.WriteString(_m.ConfirmedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Mappings is a parsable slice of Mapping.
type Mappings []*Mapping
