package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single logged practice attempt on an item.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Comment("Catalog item this attempt was on"),
		field.String("domain").
			NotEmpty().
			Comment("Canonical domain name of the item's collection"),
		field.String("result").
			NotEmpty().
			Comment("Solved, Partial, Stuck, or Skipped"),
		field.Int("time_minutes").
			Default(0).
			Comment("Minutes spent on the attempt"),
		field.String("confidence").
			NotEmpty().
			Comment("Low, Medium, or High"),
		field.String("pattern").
			Default("").
			Comment("Technique family of the item, if known"),
		field.JSON("mistake_tags", []string{}).
			Optional().
			Comment("Free-form mistake labels for recurrence tracking"),
		field.Bool("external").
			Default(false).
			Comment("Whether the minutes came from an outside source"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("domain"),
		index.Fields("result"),
	}
}
