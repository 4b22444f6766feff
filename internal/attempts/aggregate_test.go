package attempts

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// att builds an attempt n hours before t0.
func att(item string, res Result, minutes int, conf Confidence, hoursAgo int) Attempt {
	return Attempt{
		ItemID:           item,
		Result:           res,
		TimeSpentMinutes: minutes,
		Confidence:       conf,
		CreatedAt:        t0.Add(-time.Duration(hoursAgo) * time.Hour),
	}
}

func TestAggregate_ItemMetrics(t *testing.T) {
	atts := []Attempt{
		att("two-sum", ResultSolved, 20, ConfidenceHigh, 1),
		att("two-sum", ResultStuck, 40, ConfidenceLow, 2),
		att("two-sum", ResultSolved, 30, ConfidenceMedium, 3),
		att("two-sum", ResultPartial, 30, ConfidenceMedium, 4),
	}
	atts[1].MistakeTags = []string{"off-by-one"}

	snap := Aggregate(atts, nil, DefaultConfig())

	st := snap.Item("two-sum")
	if st == nil {
		t.Fatal("no stats for two-sum")
	}
	if !almostEqual(st.SuccessRate, 0.5) {
		t.Errorf("SuccessRate = %f, want 0.5", st.SuccessRate)
	}
	// (1.0 + 0.0 + 0.5 + 0.5) / 4
	if !almostEqual(st.AvgConfidence, 0.5) {
		t.Errorf("AvgConfidence = %f, want 0.5", st.AvgConfidence)
	}
	if !almostEqual(st.AvgTimeToSolve, 30) {
		t.Errorf("AvgTimeToSolve = %f, want 30", st.AvgTimeToSolve)
	}
	if !almostEqual(st.MistakeRecurrence, 0.25) {
		t.Errorf("MistakeRecurrence = %f, want 0.25", st.MistakeRecurrence)
	}
	if st.LastResult != ResultSolved {
		t.Errorf("LastResult = %q, want Solved", st.LastResult)
	}
}

func TestAggregate_RecentWindowCapsAtTen(t *testing.T) {
	var atts []Attempt
	// 12 attempts; the 10 most recent are all Solved, the 2 oldest Stuck.
	for i := 0; i < 10; i++ {
		atts = append(atts, att("x", ResultSolved, 10, ConfidenceHigh, i+1))
	}
	atts = append(atts, att("x", ResultStuck, 10, ConfidenceLow, 20))
	atts = append(atts, att("x", ResultStuck, 10, ConfidenceLow, 21))

	snap := Aggregate(atts, nil, DefaultConfig())
	st := snap.Item("x")
	if st.Total != 10 {
		t.Errorf("Total = %d, want 10", st.Total)
	}
	if !almostEqual(st.SuccessRate, 1.0) {
		t.Errorf("SuccessRate = %f, want 1.0 (old failures outside window)", st.SuccessRate)
	}
}

func TestFailureStreak_ResetOnFirstSuccess(t *testing.T) {
	// Most-recent-first: Stuck, Stuck, Solved, Stuck.
	atts := []Attempt{
		att("x", ResultStuck, 10, ConfidenceLow, 1),
		att("x", ResultStuck, 10, ConfidenceLow, 2),
		att("x", ResultSolved, 10, ConfidenceHigh, 3),
		att("x", ResultStuck, 10, ConfidenceLow, 4),
	}
	snap := Aggregate(atts, nil, DefaultConfig())
	if got := snap.Item("x").FailureStreak; got != 0 {
		t.Errorf("FailureStreak = %d, want 0 (first Solved resets)", got)
	}
}

func TestFailureStreak_AllFailures(t *testing.T) {
	atts := []Attempt{
		att("x", ResultStuck, 10, ConfidenceLow, 1),
		att("x", ResultSkipped, 10, ConfidenceLow, 2),
		att("x", ResultStuck, 10, ConfidenceLow, 3),
	}
	snap := Aggregate(atts, nil, DefaultConfig())
	if got := snap.Item("x").FailureStreak; got != 3 {
		t.Errorf("FailureStreak = %d, want 3", got)
	}
}

func TestAggregate_Overdue(t *testing.T) {
	var atts []Attempt
	// "old" practiced once, then 15 newer attempts on other items push
	// its recency rank to 15.
	atts = append(atts, att("old", ResultSolved, 10, ConfidenceMedium, 100))
	for i := 0; i < 15; i++ {
		atts = append(atts, att("fresh", ResultSolved, 5, ConfidenceMedium, i+1))
	}

	snap := Aggregate(atts, nil, DefaultConfig())
	if !snap.Item("old").IsOverdue {
		t.Error("old item at rank 15 should be overdue")
	}
	if snap.Item("fresh").IsOverdue {
		t.Error("fresh item at rank 0 should not be overdue")
	}
}

func TestAggregate_NeedsRefinement(t *testing.T) {
	atts := []Attempt{
		att("a", ResultStuck, 10, ConfidenceHigh, 1),  // last result failure
		att("b", ResultSolved, 10, ConfidenceLow, 2),  // low confidence
		att("c", ResultSolved, 10, ConfidenceHigh, 3), // fine
	}
	snap := Aggregate(atts, nil, DefaultConfig())
	if !snap.Item("a").NeedsRefinement {
		t.Error("item with last result Stuck should need refinement")
	}
	if !snap.Item("b").NeedsRefinement {
		t.Error("item with avg confidence < 0.5 should need refinement")
	}
	if snap.Item("c").NeedsRefinement {
		t.Error("solved high-confidence item should not need refinement")
	}
}

func TestAggregate_DomainMinutesUseDatasetNow(t *testing.T) {
	meta := map[string]ItemMeta{
		"a": {Domain: "DSA"},
		"b": {Domain: "DSA"},
	}
	atts := []Attempt{
		att("a", ResultSolved, 30, ConfidenceMedium, 24),      // 1 day before newest
		att("b", ResultSolved, 25, ConfidenceMedium, 24*6),    // 6 days before newest
		att("b", ResultStuck, 40, ConfidenceLow, 24*8),        // outside 7d window
	}
	snap := Aggregate(atts, meta, DefaultConfig())
	ds := snap.Domain("DSA")
	if ds == nil {
		t.Fatal("no DSA domain stats")
	}
	if ds.MinutesLast7d != 55 {
		t.Errorf("MinutesLast7d = %d, want 55", ds.MinutesLast7d)
	}
}

func TestAggregate_ExternalMinutesSeparate(t *testing.T) {
	meta := map[string]ItemMeta{"a": {Domain: "DSA"}}
	ext := att("a", ResultSolved, 45, ConfidenceMedium, 2)
	ext.External = true
	atts := []Attempt{
		att("a", ResultSolved, 30, ConfidenceMedium, 1),
		ext,
	}
	snap := Aggregate(atts, meta, DefaultConfig())
	ds := snap.Domain("DSA")
	if ds.MinutesLast7d != 30 {
		t.Errorf("MinutesLast7d = %d, want 30", ds.MinutesLast7d)
	}
	if ds.ExternalMinutesLast7d != 45 {
		t.Errorf("ExternalMinutesLast7d = %d, want 45", ds.ExternalMinutesLast7d)
	}
}

func TestAggregate_Completed(t *testing.T) {
	atts := []Attempt{
		att("done", ResultSolved, 10, ConfidenceHigh, 1),
		att("shaky", ResultSolved, 10, ConfidenceLow, 2),
		att("failed", ResultStuck, 10, ConfidenceHigh, 3),
	}
	snap := Aggregate(atts, nil, DefaultConfig())
	if !snap.IsCompleted("done") {
		t.Error("high-confidence solve should mark item completed")
	}
	if snap.IsCompleted("shaky") {
		t.Error("low-confidence solve should not mark item completed")
	}
	if snap.IsCompleted("failed") {
		t.Error("failed item should not be completed")
	}
}

func TestAggregate_DeterministicUnderInputOrder(t *testing.T) {
	atts := []Attempt{
		att("a", ResultSolved, 10, ConfidenceMedium, 1),
		att("b", ResultStuck, 20, ConfidenceLow, 1), // same timestamp as a
		att("a", ResultPartial, 15, ConfidenceMedium, 2),
	}
	rev := []Attempt{atts[2], atts[1], atts[0]}

	s1 := Aggregate(atts, nil, DefaultConfig())
	s2 := Aggregate(rev, nil, DefaultConfig())

	for _, id := range []string{"a", "b"} {
		if s1.Item(id).RecencyRank != s2.Item(id).RecencyRank {
			t.Errorf("item %s: rank %d vs %d under reordered input",
				id, s1.Item(id).RecencyRank, s2.Item(id).RecencyRank)
		}
	}
}

func TestAggregate_SequenceBreaksTimestampTies(t *testing.T) {
	// Two attempts on the same item carry the same timestamp; the log
	// sequence says the Solved one came later.
	partial := att("two-sum", ResultPartial, 30, ConfidenceLow, 1)
	partial.Sequence = 1
	solved := att("two-sum", ResultSolved, 20, ConfidenceHigh, 1)
	solved.Sequence = 2

	snap := Aggregate([]Attempt{partial, solved}, nil, DefaultConfig())

	st := snap.Item("two-sum")
	if st.LastResult != ResultSolved {
		t.Errorf("LastResult = %q, want Solved (higher sequence is more recent)", st.LastResult)
	}
	if !snap.IsCompleted("two-sum") {
		t.Error("expected item completed: latest attempt is Solved with high confidence")
	}

	// Input order must not matter either way.
	again := Aggregate([]Attempt{solved, partial}, nil, DefaultConfig())
	if again.Item("two-sum").LastResult != ResultSolved {
		t.Error("sequence tie-break changed under input order")
	}
}

func TestPatternReadiness(t *testing.T) {
	meta := map[string]ItemMeta{
		"a": {Domain: "DSA", Pattern: "two-pointers"},
		"b": {Domain: "DSA", Pattern: "two-pointers"},
	}
	atts := []Attempt{
		att("a", ResultSolved, 10, ConfidenceHigh, 1),
		att("b", ResultStuck, 50, ConfidenceLow, 2),
	}
	snap := Aggregate(atts, meta, DefaultConfig())

	got := snap.PatternReadiness("two-pointers")
	want := (snap.Item("a").Readiness + snap.Item("b").Readiness) / 2
	if !almostEqual(got, want) {
		t.Errorf("PatternReadiness = %f, want %f", got, want)
	}
	if !almostEqual(snap.PatternReadiness("unknown"), 0.5) {
		t.Errorf("unknown pattern should return neutral 0.5")
	}
}
