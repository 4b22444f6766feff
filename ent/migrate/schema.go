// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "result", Type: field.TypeString},
		{Name: "time_minutes", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeString},
		{Name: "pattern", Type: field.TypeString, Default: ""},
		{Name: "mistake_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "external", Type: field.TypeBool, Default: false},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_domain",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_result",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
		},
	}
	// MappingsColumns holds the columns for the "mappings" table.
	MappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "collection_id", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "attempts_store", Type: field.TypeBool, Default: false},
		{Name: "confirmed_at", Type: field.TypeTime},
	}
	// MappingsTable holds the schema information for the "mappings" table.
	MappingsTable = &schema.Table{
		Name:       "mappings",
		Columns:    MappingsColumns,
		PrimaryKey: []*schema.Column{MappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mapping_domain",
				Unique:  false,
				Columns: []*schema.Column{MappingsColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "focus_mode", Type: field.TypeString},
		{Name: "total_minutes", Type: field.TypeInt},
		{Name: "slots", Type: field.TypeJSON},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_focus_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		MappingsTable,
		SessionEventsTable,
	}
)

func init() {
}
