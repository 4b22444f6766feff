package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a composed session plan at the moment it was issued.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// SlotSummary is the serialized form of a session slot for persistence.
type SlotSummary struct {
	Slot        string `json:"slot"`
	UnitType    string `json:"unit_type"`
	TimeMinutes int    `json:"time_minutes"`
	ItemID      string `json:"item_id,omitempty"`
	ItemTitle   string `json:"item_title,omitempty"`
	Rationale   string `json:"rationale,omitempty"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the composed session"),
		field.String("focus_mode").
			NotEmpty().
			Comment("balanced, dsa-heavy, or interview-heavy"),
		field.Int("total_minutes").
			Comment("Requested session duration"),
		field.JSON("slots", []SlotSummary{}).
			Comment("Serialized review, core, and breadth slots"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("focus_mode"),
	}
}
