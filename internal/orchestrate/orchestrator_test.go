package orchestrate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/compose"
	"github.com/abhisek/prepdeck/internal/domain"
)

type fakeFetcher struct {
	items map[string][]catalog.Item
	err   error
}

func (f *fakeFetcher) FetchItems(ctx context.Context, collectionID string) ([]catalog.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	items, ok := f.items[collectionID]
	if !ok {
		return nil, errors.New("unknown collection " + collectionID)
	}
	out := make([]catalog.Item, len(items))
	copy(out, items)
	return out, nil
}

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func att(item string, res attempts.Result, minutes int, conf attempts.Confidence, hoursAgo int) attempts.Attempt {
	return attempts.Attempt{
		ItemID:           item,
		Result:           res,
		TimeSpentMinutes: minutes,
		Confidence:       conf,
		CreatedAt:        base.Add(-time.Duration(hoursAgo) * time.Hour),
	}
}

func newOrchestrator(f *fakeFetcher) *Orchestrator {
	return New(domain.DefaultRegistry(), f, DefaultConfig())
}

func emptySnapshot() *attempts.Snapshot {
	return attempts.Aggregate(nil, nil, attempts.DefaultConfig())
}

func TestOrchestrate_MergeDeterminismUnderCollectionOrder(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-a": {{ID: "dsa-001", Name: "Two Sum", Difficulty: 3, SourceCollectionID: "db-a"}},
		"db-b": {{ID: "dsa-002", Name: "Three Sum", Difficulty: 3, SourceCollectionID: "db-b"}},
	}}
	o := newOrchestrator(fetcher)

	run := func(collections []string) *Session {
		s, err := o.Orchestrate(context.Background(), Request{
			Mappings:     map[string][]string{"DSA": collections},
			TotalMinutes: 45,
			FocusMode:    compose.FocusDSAHeavy,
			Snapshot:     emptySnapshot(),
		})
		if err != nil {
			t.Fatalf("Orchestrate: %v", err)
		}
		return s
	}

	s1 := run([]string{"db-b", "db-a"})
	s2 := run([]string{"db-a", "db-b"})

	if s1.CoreUnit.Item == nil || s2.CoreUnit.Item == nil {
		t.Fatal("core unit should be filled")
	}
	if s1.CoreUnit.Item.SourceCollectionID != "db-a" {
		t.Errorf("core item from %s, want db-a (itemCount/id tie-break)",
			s1.CoreUnit.Item.SourceCollectionID)
	}
	if *s1.CoreUnit.Item != *s2.CoreUnit.Item {
		t.Errorf("core items differ under swapped collection order: %+v vs %+v",
			s1.CoreUnit.Item, s2.CoreUnit.Item)
	}
	if s1.CoreUnit.Rationale != s2.CoreUnit.Rationale ||
		s1.BreadthUnit.Rationale != s2.BreadthUnit.Rationale ||
		s1.ReviewUnit.Rationale != s2.ReviewUnit.Rationale {
		t.Error("unit rationales differ under swapped collection order")
	}
}

func TestOrchestrate_TimeBudgetConservation(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {{ID: "dsa-001", Name: "Two Sum", Difficulty: 3}},
		"db-os":  {{ID: "os-001", Name: "Paging", Difficulty: 2}},
	}}
	o := newOrchestrator(fetcher)

	modes := []compose.FocusMode{compose.FocusBalanced, compose.FocusDSAHeavy, compose.FocusInterviewHeavy}
	for _, mode := range modes {
		for _, total := range []int{30, 45, 90} {
			s, err := o.Orchestrate(context.Background(), Request{
				Mappings:     map[string][]string{"DSA": {"db-dsa"}, "OS": {"db-os"}},
				TotalMinutes: total,
				FocusMode:    mode,
				Snapshot:     emptySnapshot(),
			})
			if err != nil {
				t.Fatalf("Orchestrate(%s/%d): %v", mode, total, err)
			}
			sum := s.ReviewUnit.TimeMinutes + s.CoreUnit.TimeMinutes + s.BreadthUnit.TimeMinutes
			if sum != total {
				t.Errorf("%s/%d: slot minutes sum to %d", mode, total, sum)
			}
		}
	}
}

func TestOrchestrate_ReviewPicksRecentSolve(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {
			{ID: "dsa-001", Name: "Two Sum", Difficulty: 3},
			{ID: "dsa-002", Name: "Three Sum", Difficulty: 3},
		},
	}}
	o := newOrchestrator(fetcher)

	snap := attempts.Aggregate([]attempts.Attempt{
		att("dsa-001", attempts.ResultSolved, 20, attempts.ConfidenceMedium, 1),
		att("dsa-002", attempts.ResultStuck, 30, attempts.ConfidenceLow, 2),
	}, map[string]attempts.ItemMeta{
		"dsa-001": {Domain: "DSA"},
		"dsa-002": {Domain: "DSA"},
	}, attempts.DefaultConfig())

	s, err := o.Orchestrate(context.Background(), Request{
		Mappings:     map[string][]string{"DSA": {"db-dsa"}},
		TotalMinutes: 45,
		FocusMode:    compose.FocusDSAHeavy,
		Snapshot:     snap,
	})
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	if s.ReviewUnit.Item == nil || s.ReviewUnit.Item.ID != "dsa-001" {
		t.Errorf("ReviewUnit.Item = %+v, want solved dsa-001", s.ReviewUnit.Item)
	}
	if s.ReviewUnit.UnitType != "problem" {
		t.Errorf("UnitType = %q, want configured \"problem\"", s.ReviewUnit.UnitType)
	}
}

func TestOrchestrate_EmptyReviewIsNotAnError(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {{ID: "dsa-001", Name: "Two Sum", Difficulty: 3}},
	}}
	o := newOrchestrator(fetcher)

	s, err := o.Orchestrate(context.Background(), Request{
		Mappings:     map[string][]string{"DSA": {"db-dsa"}},
		TotalMinutes: 45,
		FocusMode:    compose.FocusDSAHeavy,
		Snapshot:     emptySnapshot(),
	})
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	if s.ReviewUnit.Item != nil {
		t.Error("no attempts: review item should be nil")
	}
	if s.ReviewUnit.Rationale == "" {
		t.Error("empty review slot needs a rationale")
	}
}

func TestOrchestrate_CoreRestrictedByFocusMode(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {{ID: "dsa-001", Name: "Two Sum", Difficulty: 3}},
		"db-os":  {{ID: "os-001", Name: "Paging", Difficulty: 2}},
		"db-sd":  {{ID: "sd-001", Name: "URL Shortener", Difficulty: 3}},
	}}
	o := newOrchestrator(fetcher)
	mappings := map[string][]string{
		"DSA": {"db-dsa"}, "OS": {"db-os"}, "System Design": {"db-sd"},
	}

	cases := []struct {
		mode compose.FocusMode
		want string
	}{
		{compose.FocusDSAHeavy, "dsa-001"},
		{compose.FocusInterviewHeavy, "sd-001"},
		{compose.FocusBalanced, "os-001"},
	}
	for _, c := range cases {
		s, err := o.Orchestrate(context.Background(), Request{
			Mappings:     mappings,
			TotalMinutes: 45,
			FocusMode:    c.mode,
			Snapshot:     emptySnapshot(),
		})
		if err != nil {
			t.Fatalf("Orchestrate(%s): %v", c.mode, err)
		}
		if s.CoreUnit.Item == nil || s.CoreUnit.Item.ID != c.want {
			t.Errorf("%s: CoreUnit.Item = %+v, want %s", c.mode, s.CoreUnit.Item, c.want)
		}
	}
}

func TestOrchestrate_CoreRationaleReportsPatternReadiness(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {{ID: "dsa-001", Name: "Two Sum", Difficulty: 3, Pattern: "two-pointers"}},
	}}
	o := newOrchestrator(fetcher)

	low := att("dsa-001", attempts.ResultStuck, 40, attempts.ConfidenceLow, 1)
	snap := attempts.Aggregate([]attempts.Attempt{low}, map[string]attempts.ItemMeta{
		"dsa-001": {Domain: "DSA", Pattern: "two-pointers"},
	}, attempts.DefaultConfig())

	s, err := o.Orchestrate(context.Background(), Request{
		Mappings:     map[string][]string{"DSA": {"db-dsa"}},
		TotalMinutes: 45,
		FocusMode:    compose.FocusDSAHeavy,
		Snapshot:     snap,
	})
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	if s.CoreUnit.Item == nil || s.CoreUnit.Item.ID != "dsa-001" {
		t.Fatalf("CoreUnit.Item = %+v, want dsa-001", s.CoreUnit.Item)
	}
	if !strings.Contains(s.CoreUnit.Rationale, "two-pointers pattern readiness") {
		t.Errorf("Rationale = %q, want pattern readiness mention", s.CoreUnit.Rationale)
	}
}

func TestOrchestrate_BreadthExcludesCoreDomainAndCompleted(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {
			{ID: "dsa-001", Name: "Two Sum", Difficulty: 3},
			{ID: "dsa-002", Name: "Three Sum", Difficulty: 3},
		},
		"db-os": {{ID: "os-001", Name: "Paging", Difficulty: 2}},
	}}
	o := newOrchestrator(fetcher)

	// os-001 is completed (solved, high confidence), so breadth cannot
	// use it and cannot use the core domain (DSA) either.
	snap := attempts.Aggregate([]attempts.Attempt{
		att("os-001", attempts.ResultSolved, 10, attempts.ConfidenceHigh, 1),
	}, map[string]attempts.ItemMeta{"os-001": {Domain: "OS"}}, attempts.DefaultConfig())

	s, err := o.Orchestrate(context.Background(), Request{
		Mappings:     map[string][]string{"DSA": {"db-dsa"}, "OS": {"db-os"}},
		TotalMinutes: 45,
		FocusMode:    compose.FocusDSAHeavy,
		Snapshot:     snap,
	})
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	if s.CoreUnit.Item == nil || s.CoreUnit.Item.Domain != "DSA" {
		t.Fatalf("CoreUnit = %+v, want DSA item", s.CoreUnit.Item)
	}
	if s.BreadthUnit.Item != nil {
		t.Errorf("BreadthUnit.Item = %+v, want nil (only completed items outside DSA)",
			s.BreadthUnit.Item)
	}
	if s.BreadthUnit.Rationale == "" {
		t.Error("empty breadth slot needs a rationale")
	}
}

func TestOrchestrate_FetchErrorPropagates(t *testing.T) {
	sentinel := errors.New("network down")
	o := newOrchestrator(&fakeFetcher{err: sentinel})

	_, err := o.Orchestrate(context.Background(), Request{
		Mappings:     map[string][]string{"DSA": {"db-dsa"}},
		TotalMinutes: 45,
		FocusMode:    compose.FocusDSAHeavy,
		Snapshot:     emptySnapshot(),
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want wrapped fetch error", err)
	}
}

func TestOrchestrate_ReviewPrefersHighestDebtDomain(t *testing.T) {
	fetcher := &fakeFetcher{items: map[string][]catalog.Item{
		"db-dsa": {{ID: "dsa-001", Name: "Two Sum", Difficulty: 3}},
		"db-os":  {{ID: "os-001", Name: "Paging", Difficulty: 2}},
	}}
	o := newOrchestrator(fetcher)

	// Both items solved recently; DSA has a much higher weekly floor and
	// no recorded minutes, so its debt dominates.
	snap := attempts.Aggregate([]attempts.Attempt{
		att("dsa-001", attempts.ResultSolved, 5, attempts.ConfidenceMedium, 2),
		att("os-001", attempts.ResultSolved, 90, attempts.ConfidenceMedium, 1),
	}, map[string]attempts.ItemMeta{
		"dsa-001": {Domain: "DSA"},
		"os-001":  {Domain: "OS"},
	}, attempts.DefaultConfig())

	s, err := o.Orchestrate(context.Background(), Request{
		Mappings:     map[string][]string{"DSA": {"db-dsa"}, "OS": {"db-os"}},
		TotalMinutes: 45,
		FocusMode:    compose.FocusBalanced,
		Snapshot:     snap,
	})
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	if s.ReviewUnit.Item == nil || s.ReviewUnit.Item.ID != "dsa-001" {
		t.Errorf("ReviewUnit.Item = %+v, want dsa-001 from higher-debt domain", s.ReviewUnit.Item)
	}
}
