// Package prioritize orders candidate items within a domain. The sort
// policy branches on domain mode first, then domain type, and every
// branch falls through to an item-id/name tie-break so the order is
// total: no two distinct items ever compare equal.
package prioritize

import (
	"sort"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/domain"
)

// Config holds the heuristic constants. They are tuned, not derived;
// callers override them per test rather than editing package state.
type Config struct {
	// BackoffPerFailure and BackoffCap soften an item's difficulty for
	// fundamentals sorting after recent failures.
	BackoffPerFailure float64
	BackoffCap        float64

	// Readiness→target-difficulty buckets for coding domains.
	EasyBelow     float64
	HardAtOrAbove float64
	EasyTarget    int
	MediumTarget  int
	HardTarget    int

	// InterviewDifficultyWeight is the weak difficulty weighting used as
	// the last interview-mode criterion.
	InterviewDifficultyWeight float64
}

// DefaultConfig returns the standard heuristic constants.
func DefaultConfig() Config {
	return Config{
		BackoffPerFailure:         0.5,
		BackoffCap:                1.5,
		EasyBelow:                 0.3,
		HardAtOrAbove:             0.7,
		EasyTarget:                2,
		MediumTarget:              3,
		HardTarget:                4,
		InterviewDifficultyWeight: 0.1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BackoffPerFailure <= 0 {
		c.BackoffPerFailure = d.BackoffPerFailure
	}
	if c.BackoffCap <= 0 {
		c.BackoffCap = d.BackoffCap
	}
	if c.EasyBelow <= 0 {
		c.EasyBelow = d.EasyBelow
	}
	if c.HardAtOrAbove <= 0 {
		c.HardAtOrAbove = d.HardAtOrAbove
	}
	if c.EasyTarget <= 0 {
		c.EasyTarget = d.EasyTarget
	}
	if c.MediumTarget <= 0 {
		c.MediumTarget = d.MediumTarget
	}
	if c.HardTarget <= 0 {
		c.HardTarget = d.HardTarget
	}
	if c.InterviewDifficultyWeight <= 0 {
		c.InterviewDifficultyWeight = d.InterviewDifficultyWeight
	}
	return c
}

// TargetDifficulty maps a 0–1 readiness to the difficulty the learner
// should be working at.
func (c Config) TargetDifficulty(readiness float64) int {
	switch {
	case readiness < c.EasyBelow:
		return c.EasyTarget
	case readiness < c.HardAtOrAbove:
		return c.MediumTarget
	default:
		return c.HardTarget
	}
}

// EffectiveDifficulty softens an item's base difficulty by its recent
// failure streak, floored at 1.
func (c Config) EffectiveDifficulty(base int, failureStreak int) float64 {
	backoff := c.BackoffPerFailure * float64(failureStreak)
	if backoff > c.BackoffCap {
		backoff = c.BackoffCap
	}
	eff := float64(base) - backoff
	if eff < 1 {
		eff = 1
	}
	return eff
}

// Prioritize returns items in selection order for one domain. readiness
// is the domain-level readiness score; snap supplies per-item metrics.
// The input slice is not modified.
func Prioritize(items []catalog.Item, dt domain.Type, readiness float64, mode domain.Mode, snap *attempts.Snapshot, cfg Config) []catalog.Item {
	cfg = cfg.withDefaults()

	out := make([]catalog.Item, len(items))
	copy(out, items)

	less := lessFor(dt, readiness, mode, snap, cfg)
	sort.SliceStable(out, func(i, j int) bool {
		if c := less(out[i], out[j]); c != 0 {
			return c < 0
		}
		return tieBreak(out[i], out[j]) < 0
	})
	return out
}

// compare functions return <0 when a sorts before b, 0 when the
// criterion doesn't separate them.
type compareFunc func(a, b catalog.Item) int

func lessFor(dt domain.Type, readiness float64, mode domain.Mode, snap *attempts.Snapshot, cfg Config) compareFunc {
	switch mode {
	case domain.ModeRevision:
		return revisionCompare(dt, snap, cfg)
	case domain.ModePolish:
		return polishCompare(snap)
	case domain.ModeLearning:
		switch dt {
		case domain.TypeFundamentals:
			return fundamentalsCompare(snap, cfg)
		case domain.TypeCoding:
			return codingCompare(readiness, snap, cfg)
		case domain.TypeInterview:
			return interviewCompare(snap, cfg)
		}
	}
	// Spice and unrecognized combinations: hardest first.
	return difficultyDesc
}

// fundamentalsCompare sorts hardest-adjusted-for-recent-failure first.
func fundamentalsCompare(snap *attempts.Snapshot, cfg Config) compareFunc {
	return func(a, b catalog.Item) int {
		ea := cfg.EffectiveDifficulty(a.Difficulty, failureStreak(snap, a.ID))
		eb := cfg.EffectiveDifficulty(b.Difficulty, failureStreak(snap, b.ID))
		return cmpFloatDesc(ea, eb)
	}
}

// codingCompare sorts by distance to the readiness-derived target
// difficulty, closest first.
func codingCompare(readiness float64, snap *attempts.Snapshot, cfg Config) compareFunc {
	target := cfg.TargetDifficulty(readiness)
	return func(a, b catalog.Item) int {
		da := absInt(a.Difficulty - target)
		db := absInt(b.Difficulty - target)
		return da - db
	}
}

// interviewCompare brings overdue items first, then items needing
// refinement, then applies a weak difficulty weighting.
func interviewCompare(snap *attempts.Snapshot, cfg Config) compareFunc {
	return func(a, b catalog.Item) int {
		if c := cmpBool(isOverdue(snap, a.ID), isOverdue(snap, b.ID)); c != 0 {
			return c
		}
		if c := cmpBool(needsRefinement(snap, a.ID), needsRefinement(snap, b.ID)); c != 0 {
			return c
		}
		wa := cfg.InterviewDifficultyWeight * float64(a.Difficulty)
		wb := cfg.InterviewDifficultyWeight * float64(b.Difficulty)
		return cmpFloatDesc(wa, wb)
	}
}

// revisionCompare brings overdue first, then recently-failed, then the
// domain-specific secondary criterion.
func revisionCompare(dt domain.Type, snap *attempts.Snapshot, cfg Config) compareFunc {
	return func(a, b catalog.Item) int {
		if c := cmpBool(isOverdue(snap, a.ID), isOverdue(snap, b.ID)); c != 0 {
			return c
		}
		if c := cmpBool(recentlyFailed(snap, a.ID), recentlyFailed(snap, b.ID)); c != 0 {
			return c
		}
		if dt == domain.TypeCoding {
			// Weakest first.
			return cmpFloatAsc(itemReadiness(snap, a.ID), itemReadiness(snap, b.ID))
		}
		return difficultyDesc(a, b)
	}
}

// polishCompare brings needs-refinement first, then least confident.
func polishCompare(snap *attempts.Snapshot) compareFunc {
	return func(a, b catalog.Item) int {
		if c := cmpBool(needsRefinement(snap, a.ID), needsRefinement(snap, b.ID)); c != 0 {
			return c
		}
		return cmpFloatAsc(avgConfidence(snap, a.ID), avgConfidence(snap, b.ID))
	}
}

func difficultyDesc(a, b catalog.Item) int {
	return b.Difficulty - a.Difficulty
}

func tieBreak(a, b catalog.Item) int {
	if a.ID != b.ID {
		if a.ID < b.ID {
			return -1
		}
		return 1
	}
	if a.Name < b.Name {
		return -1
	}
	if a.Name > b.Name {
		return 1
	}
	return 0
}

// Stat lookups with neutral defaults for unattempted items.

func failureStreak(snap *attempts.Snapshot, id string) int {
	if st := snap.Item(id); st != nil {
		return st.FailureStreak
	}
	return 0
}

func isOverdue(snap *attempts.Snapshot, id string) bool {
	if st := snap.Item(id); st != nil {
		return st.IsOverdue
	}
	return false
}

func needsRefinement(snap *attempts.Snapshot, id string) bool {
	if st := snap.Item(id); st != nil {
		return st.NeedsRefinement
	}
	return false
}

func recentlyFailed(snap *attempts.Snapshot, id string) bool {
	st := snap.Item(id)
	if st == nil {
		return false
	}
	return st.FailureStreak > 0 || st.LastResult.IsFailure()
}

func itemReadiness(snap *attempts.Snapshot, id string) float64 {
	if st := snap.Item(id); st != nil {
		return st.Readiness
	}
	return 0.5
}

func avgConfidence(snap *attempts.Snapshot, id string) float64 {
	if st := snap.Item(id); st != nil {
		return st.AvgConfidence
	}
	return 0.5
}

func cmpBool(a, b bool) int {
	if a == b {
		return 0
	}
	if a {
		return -1
	}
	return 1
}

func cmpFloatDesc(a, b float64) int {
	if a > b {
		return -1
	}
	if a < b {
		return 1
	}
	return 0
}

func cmpFloatAsc(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
