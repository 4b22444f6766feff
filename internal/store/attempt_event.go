package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetDomain(data.Domain).
		SetResult(data.Result).
		SetTimeMinutes(data.TimeMinutes).
		SetConfidence(data.Confidence).
		SetPattern(data.Pattern).
		SetExternal(data.External)

	if len(data.MistakeTags) > 0 {
		builder = builder.SetMistakeTags(data.MistakeTags)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttempts(ctx context.Context) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			AttemptEventData: AttemptEventData{
				ItemID:      e.ItemID,
				Domain:      e.Domain,
				Result:      e.Result,
				TimeMinutes: e.TimeMinutes,
				Confidence:  e.Confidence,
				Pattern:     e.Pattern,
				MistakeTags: e.MistakeTags,
				External:    e.External,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}
