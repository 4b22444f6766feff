package cmd

import (
	"context"
	"testing"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/compose"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/store"
)

func TestEngineConfig_InjectsSessionHeuristics(t *testing.T) {
	cfg := &config.Config{
		Session: config.SessionConfig{
			AllowedDurations:  []int{60},
			DefaultDuration:   60,
			ReviewWindow:      10,
			OverdueRank:       15,
			BackoffPerFailure: 0.25,
			BackoffCap:        1.0,
		},
	}

	oc := engineConfig(cfg)

	if got := oc.Compose.AllowedDurations; len(got) != 1 || got[0] != 60 {
		t.Errorf("AllowedDurations = %v, want [60]", got)
	}
	if oc.Compose.DefaultDuration != 60 {
		t.Errorf("DefaultDuration = %d, want 60", oc.Compose.DefaultDuration)
	}
	if oc.Prioritize.BackoffPerFailure != 0.25 {
		t.Errorf("BackoffPerFailure = %f, want 0.25", oc.Prioritize.BackoffPerFailure)
	}
	if oc.Prioritize.BackoffCap != 1.0 {
		t.Errorf("BackoffCap = %f, want 1.0", oc.Prioritize.BackoffCap)
	}

	// A configured duration must be honored, not silently replaced by
	// the package default.
	budget := compose.Compose(60, compose.FocusBalanced, oc.Compose)
	if budget.TotalMinutes != 60 {
		t.Errorf("TotalMinutes = %d, want 60", budget.TotalMinutes)
	}

	// The injected backoff changes fundamentals ordering inputs.
	if got := oc.Prioritize.EffectiveDifficulty(4, 5); got != 3.0 {
		t.Errorf("EffectiveDifficulty(4, streak 5) = %f, want 3.0 with cap 1.0", got)
	}
}

func TestEngineConfig_ZeroFieldsKeepDefaults(t *testing.T) {
	oc := engineConfig(&config.Config{})
	def := compose.DefaultConfig()

	if len(oc.Compose.AllowedDurations) != len(def.AllowedDurations) {
		t.Errorf("AllowedDurations = %v, want defaults %v", oc.Compose.AllowedDurations, def.AllowedDurations)
	}
	if oc.Compose.DefaultDuration != def.DefaultDuration {
		t.Errorf("DefaultDuration = %d, want %d", oc.Compose.DefaultDuration, def.DefaultDuration)
	}
}

func TestLoadSnapshot_ThreadsPatternAndSequence(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()

	// Two attempts land in the same wall-clock instant often enough in
	// practice; the log sequence decides which is newer.
	appends := []store.AttemptEventData{
		{ItemID: "two-sum", Domain: "DSA", Result: "Partial", TimeMinutes: 30, Confidence: "Low"},
		{ItemID: "two-sum", Domain: "DSA", Result: "Solved", TimeMinutes: 20, Confidence: "High", Pattern: "two-pointers"},
	}
	for i, a := range appends {
		if err := st.EventRepo().AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	snap, records, err := loadSnapshot(ctx, st, &config.Config{})
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	item := snap.Item("two-sum")
	if item == nil {
		t.Fatal("no stats for two-sum")
	}
	if item.LastResult != attempts.ResultSolved {
		t.Errorf("LastResult = %q, want Solved (later log position wins)", item.LastResult)
	}

	// Pattern metadata from any attempt reaches the snapshot.
	if got := snap.PatternReadiness("two-pointers"); got != item.Readiness {
		t.Errorf("PatternReadiness = %f, want item readiness %f", got, item.Readiness)
	}
}
