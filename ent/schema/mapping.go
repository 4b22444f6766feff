package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mapping stores a confirmed collection-to-domain binding together with
// the schema fingerprint observed at confirmation time. Unlike the event
// tables this is a regular row that gets updated on re-confirmation.
type Mapping struct {
	ent.Schema
}

func (Mapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("collection_id").
			NotEmpty().
			Unique().
			Comment("Directory collection identifier"),
		field.String("domain").
			Comment("Canonical domain the collection maps to; empty for the attempts store"),
		field.String("title").
			NotEmpty().
			Comment("Collection title at confirmation time"),
		field.String("fingerprint").
			NotEmpty().
			Comment("Schema fingerprint at confirmation time"),
		field.Bool("attempts_store").
			Default(false).
			Comment("Whether this collection is the attempts store"),
		field.Time("confirmed_at").
			Comment("When the user confirmed the mapping"),
	}
}

func (Mapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain"),
	}
}
