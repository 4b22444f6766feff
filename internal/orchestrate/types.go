package orchestrate

import (
	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/compose"
	"github.com/abhisek/prepdeck/internal/domain"
)

// SlotType identifies one of the three session slots.
type SlotType string

const (
	SlotReview  SlotType = "review"
	SlotCore    SlotType = "core"
	SlotBreadth SlotType = "breadth"
)

// GenericUnitType is used when no unit type is configured for a domain.
const GenericUnitType = "exercise"

// SessionUnit is one filled slot. Item is nil when no candidate
// existed; that is a valid steady state, not an error, and Rationale
// explains it either way.
type SessionUnit struct {
	Slot        SlotType
	UnitType    string
	TimeMinutes int
	Item        *catalog.Item
	Rationale   string
}

// Session is one composed learning session. Created fresh per
// orchestration call and handed to the caller; nothing is persisted
// by the engine.
type Session struct {
	ID           string
	FocusMode    compose.FocusMode
	TotalMinutes int
	ReviewUnit   SessionUnit
	CoreUnit     SessionUnit
	BreadthUnit  SessionUnit
}

// Request is the full input of one orchestration call. Orchestration is
// a pure function of this value plus the fetched items.
type Request struct {
	// Mappings is the confirmed domain → collection-id mapping.
	Mappings map[string][]string

	TotalMinutes int
	FocusMode    compose.FocusMode

	// Modes overrides the per-domain learning phase; absent domains
	// default to learning.
	Modes map[string]domain.Mode

	// Snapshot is the aggregated attempt history (see attempts.Aggregate).
	Snapshot *attempts.Snapshot
}
