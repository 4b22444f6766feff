package prioritize

import (
	"testing"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/domain"
)

func item(id string, difficulty int) catalog.Item {
	return catalog.Item{ID: id, Name: id, Difficulty: difficulty}
}

func snapWith(stats ...*attempts.ItemStats) *attempts.Snapshot {
	snap := &attempts.Snapshot{
		Items:     make(map[string]*attempts.ItemStats),
		Domains:   make(map[string]*attempts.DomainStats),
		Completed: make(map[string]bool),
	}
	for _, st := range stats {
		snap.Items[st.ItemID] = st
	}
	return snap
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func assertOrder(t *testing.T, got []catalog.Item, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestLearningFundamentals_HardestFirst(t *testing.T) {
	items := []catalog.Item{item("a", 2), item("b", 5), item("c", 3)}
	got := Prioritize(items, domain.TypeFundamentals, 0.5, domain.ModeLearning, snapWith(), DefaultConfig())
	assertOrder(t, got, "b", "c", "a")
}

func TestLearningFundamentals_FailureStreakBacksOff(t *testing.T) {
	// b is nominally hardest but 3 recent failures back it off by the
	// 1.5 cap: 5-1.5=3.5, still above c's 3 but below a fresh 4.
	snap := snapWith(&attempts.ItemStats{ItemID: "b", FailureStreak: 3})
	items := []catalog.Item{item("a", 4), item("b", 5), item("c", 3)}
	got := Prioritize(items, domain.TypeFundamentals, 0.5, domain.ModeLearning, snap, DefaultConfig())
	assertOrder(t, got, "a", "b", "c")
}

func TestLearningCoding_TargetsReadiness(t *testing.T) {
	items := []catalog.Item{item("hard", 5), item("easy", 1), item("med", 3)}

	// Low readiness targets Easy(2): distances are easy=1, med=1, hard=3;
	// the easy/med tie resolves by id.
	got := Prioritize(items, domain.TypeCoding, 0.1, domain.ModeLearning, snapWith(), DefaultConfig())
	assertOrder(t, got, "easy", "med", "hard")

	// High readiness targets Hard(4): hard=1, med=1, easy=3.
	got = Prioritize(items, domain.TypeCoding, 0.9, domain.ModeLearning, snapWith(), DefaultConfig())
	assertOrder(t, got, "hard", "med", "easy")
}

func TestTargetDifficultyBuckets(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		readiness float64
		want      int
	}{
		{0.0, 2}, {0.29, 2}, {0.3, 3}, {0.69, 3}, {0.7, 4}, {1.0, 4},
	}
	for _, c := range cases {
		if got := cfg.TargetDifficulty(c.readiness); got != c.want {
			t.Errorf("TargetDifficulty(%f) = %d, want %d", c.readiness, got, c.want)
		}
	}
}

func TestLearningInterview_OverdueThenRefinement(t *testing.T) {
	snap := snapWith(
		&attempts.ItemStats{ItemID: "overdue", IsOverdue: true},
		&attempts.ItemStats{ItemID: "weak", NeedsRefinement: true},
	)
	items := []catalog.Item{item("fresh", 5), item("weak", 1), item("overdue", 1)}
	got := Prioritize(items, domain.TypeInterview, 0.5, domain.ModeLearning, snap, DefaultConfig())
	assertOrder(t, got, "overdue", "weak", "fresh")
}

func TestRevisionCoding_WeakestFirstAfterOverdueAndFailed(t *testing.T) {
	snap := snapWith(
		&attempts.ItemStats{ItemID: "overdue", IsOverdue: true, Readiness: 0.9},
		&attempts.ItemStats{ItemID: "failed", FailureStreak: 2, Readiness: 0.8},
		&attempts.ItemStats{ItemID: "weak", Readiness: 0.2},
		&attempts.ItemStats{ItemID: "strong", Readiness: 0.9},
	)
	items := []catalog.Item{item("strong", 3), item("weak", 3), item("failed", 3), item("overdue", 3)}
	got := Prioritize(items, domain.TypeCoding, 0.5, domain.ModeRevision, snap, DefaultConfig())
	assertOrder(t, got, "overdue", "failed", "weak", "strong")
}

func TestRevisionFundamentals_DifficultySecondary(t *testing.T) {
	snap := snapWith(&attempts.ItemStats{ItemID: "overdue", IsOverdue: true})
	items := []catalog.Item{item("easy", 1), item("hard", 5), item("overdue", 2)}
	got := Prioritize(items, domain.TypeFundamentals, 0.5, domain.ModeRevision, snap, DefaultConfig())
	assertOrder(t, got, "overdue", "hard", "easy")
}

func TestPolish_LeastConfidentFirst(t *testing.T) {
	snap := snapWith(
		&attempts.ItemStats{ItemID: "shaky", NeedsRefinement: true, AvgConfidence: 0.2},
		&attempts.ItemStats{ItemID: "wobbly", NeedsRefinement: true, AvgConfidence: 0.4},
		&attempts.ItemStats{ItemID: "solid", AvgConfidence: 0.9},
	)
	items := []catalog.Item{item("solid", 3), item("wobbly", 3), item("shaky", 3)}
	got := Prioritize(items, domain.TypeCoding, 0.5, domain.ModePolish, snap, DefaultConfig())
	assertOrder(t, got, "shaky", "wobbly", "solid")
}

func TestSpice_DifficultyDescending(t *testing.T) {
	items := []catalog.Item{item("a", 1), item("b", 4), item("c", 2)}
	got := Prioritize(items, domain.TypeSpice, 0.5, domain.ModeLearning, snapWith(), DefaultConfig())
	assertOrder(t, got, "b", "c", "a")
}

func TestPrioritize_TotalOrderUnderInputOrder(t *testing.T) {
	items := []catalog.Item{item("c", 3), item("a", 3), item("b", 3)}
	rev := []catalog.Item{items[2], items[1], items[0]}

	g1 := Prioritize(items, domain.TypeFundamentals, 0.5, domain.ModeLearning, snapWith(), DefaultConfig())
	g2 := Prioritize(rev, domain.TypeFundamentals, 0.5, domain.ModeLearning, snapWith(), DefaultConfig())

	for i := range g1 {
		if g1[i].ID != g2[i].ID {
			t.Fatalf("order differs under input reordering: %v vs %v", ids(g1), ids(g2))
		}
	}
	// Equal difficulties resolve purely by id.
	assertOrder(t, g1, "a", "b", "c")
}

func TestPrioritize_DoesNotMutateInput(t *testing.T) {
	items := []catalog.Item{item("b", 1), item("a", 5)}
	_ = Prioritize(items, domain.TypeSpice, 0.5, domain.ModeLearning, snapWith(), DefaultConfig())
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Error("input slice was reordered")
	}
}
