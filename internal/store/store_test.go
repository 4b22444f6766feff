package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndListAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{ItemID: "item-1", Domain: "DSA", Result: "Solved", TimeMinutes: 25, Confidence: "High"},
		{ItemID: "item-2", Domain: "DSA", Result: "Stuck", TimeMinutes: 40, Confidence: "Low", Pattern: "two-pointers", MistakeTags: []string{"off-by-one"}},
		{ItemID: "item-1", Domain: "DSA", Result: "Partial", TimeMinutes: 30, Confidence: "Medium", External: true},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	records, err := repo.ListAttempts(ctx)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Sequence order, oldest first.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence <= records[i-1].Sequence {
			t.Errorf("sequence not increasing at %d: %d then %d", i, records[i-1].Sequence, records[i].Sequence)
		}
	}

	if records[0].ItemID != "item-1" || records[0].Result != "Solved" {
		t.Errorf("first record = %+v, want item-1 Solved", records[0].AttemptEventData)
	}
	if got := records[1].MistakeTags; len(got) != 1 || got[0] != "off-by-one" {
		t.Errorf("mistake tags = %v, want [off-by-one]", got)
	}
	if records[1].Pattern != "two-pointers" {
		t.Errorf("pattern = %q, want two-pointers", records[1].Pattern)
	}
	if !records[2].External {
		t.Error("expected third record to be external")
	}
	if records[0].Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestAppendSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID:    "sess-1",
		FocusMode:    "balanced",
		TotalMinutes: 45,
		Slots: []SlotData{
			{Slot: "review", UnitType: "problem", TimeMinutes: 7, ItemID: "item-1"},
			{Slot: "core", UnitType: "concept", TimeMinutes: 26, ItemID: "item-2"},
			{Slot: "breadth", UnitType: "story", TimeMinutes: 12, ItemID: "item-3"},
		},
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}

	ev, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	if ev.FocusMode != "balanced" || ev.TotalMinutes != 45 {
		t.Errorf("session event = %s/%d, want balanced/45", ev.FocusMode, ev.TotalMinutes)
	}
	if len(ev.Slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(ev.Slots))
	}
	if ev.Slots[1].Slot != "core" || ev.Slots[1].TimeMinutes != 26 {
		t.Errorf("core slot = %+v", ev.Slots[1])
	}
}

func TestMappingUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.MappingRepo()
	ctx := context.Background()

	first := MappingData{
		CollectionID: "db-1",
		Domain:       "DSA",
		Title:        "LeetCode Grind",
		Fingerprint:  "fp-1",
		ConfirmedAt:  time.Now().UTC(),
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Re-confirm after schema drift: same collection, new fingerprint.
	second := first
	second.Fingerprint = "fp-2"
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d mappings, want 1", len(list))
	}
	if list[0].Fingerprint != "fp-2" {
		t.Errorf("fingerprint = %q, want fp-2", list[0].Fingerprint)
	}
}

func TestMappingDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.MappingRepo()
	ctx := context.Background()

	for _, id := range []string{"db-1", "db-2"} {
		err := repo.Save(ctx, MappingData{
			CollectionID: id,
			Domain:       "DSA",
			Title:        "t",
			Fingerprint:  "fp",
			ConfirmedAt:  time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d mappings after delete, want 0", len(list))
	}
}
