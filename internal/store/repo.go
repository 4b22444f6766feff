package store

import (
	"context"
	"time"
)

// AttemptEventData captures the fields of a single logged attempt.
type AttemptEventData struct {
	ItemID      string
	Domain      string
	Result      string
	TimeMinutes int
	Confidence  string
	Pattern     string
	MistakeTags []string
	External    bool
}

// AttemptRecord is a stored attempt together with its log position.
type AttemptRecord struct {
	AttemptEventData
	Sequence  int64
	Timestamp time.Time
}

// SlotData is one slot of a recorded session plan.
type SlotData struct {
	Slot        string
	UnitType    string
	TimeMinutes int
	ItemID      string
	ItemTitle   string
	Rationale   string
}

// SessionEventData captures a composed session plan for the log.
type SessionEventData struct {
	SessionID    string
	FocusMode    string
	TotalMinutes int
	Slots        []SlotData
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAttempt records a logged practice attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// ListAttempts returns all attempts in sequence order (oldest first).
	ListAttempts(ctx context.Context) ([]AttemptRecord, error)

	// AppendSession records a composed session plan.
	AppendSession(ctx context.Context, data SessionEventData) error
}

// MappingData is a confirmed collection-to-domain binding.
type MappingData struct {
	CollectionID  string
	Domain        string
	Title         string
	Fingerprint   string
	AttemptsStore bool
	ConfirmedAt   time.Time
}

// MappingRepo manages confirmed collection mappings. Save upserts on
// collection ID so re-confirmation after schema drift replaces the old row.
type MappingRepo interface {
	Save(ctx context.Context, m MappingData) error
	List(ctx context.Context) ([]MappingData, error)
	DeleteAll(ctx context.Context) error
}
