package store

import (
	"context"
	"fmt"

	entschema "github.com/abhisek/prepdeck/ent/schema"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	slots := make([]entschema.SlotSummary, 0, len(data.Slots))
	for _, s := range data.Slots {
		slots = append(slots, entschema.SlotSummary{
			Slot:        s.Slot,
			UnitType:    s.UnitType,
			TimeMinutes: s.TimeMinutes,
			ItemID:      s.ItemID,
			ItemTitle:   s.ItemTitle,
			Rationale:   s.Rationale,
		})
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetFocusMode(data.FocusMode).
		SetTotalMinutes(data.TotalMinutes).
		SetSlots(slots).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
