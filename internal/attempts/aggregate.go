package attempts

import (
	"sort"
	"time"
)

const (
	// DefaultRecentWindow is how many recent attempts feed an item's metrics.
	DefaultRecentWindow = 10

	// DefaultOverdueRank is the global recency rank at which an item's
	// last attempt counts as overdue.
	DefaultOverdueRank = 15

	// DefaultReviewWindow is maximum recency rank for review-slot candidates.
	DefaultReviewWindow = 10

	// DefaultSolveTimeCeiling is the solve time in minutes at which the
	// time component of readiness bottoms out.
	DefaultSolveTimeCeiling = 60

	// DefaultRecentDays is the width of the practice-minutes window.
	DefaultRecentDays = 7
)

// Config holds aggregation tunables. Zero fields fall back to defaults.
type Config struct {
	RecentWindow     int
	OverdueRank      int
	ReviewWindow     int
	SolveTimeCeiling float64
	RecentDays       int
}

// DefaultConfig returns the standard aggregation settings.
func DefaultConfig() Config {
	return Config{
		RecentWindow:     DefaultRecentWindow,
		OverdueRank:      DefaultOverdueRank,
		ReviewWindow:     DefaultReviewWindow,
		SolveTimeCeiling: DefaultSolveTimeCeiling,
		RecentDays:       DefaultRecentDays,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RecentWindow <= 0 {
		c.RecentWindow = d.RecentWindow
	}
	if c.OverdueRank <= 0 {
		c.OverdueRank = d.OverdueRank
	}
	if c.ReviewWindow <= 0 {
		c.ReviewWindow = d.ReviewWindow
	}
	if c.SolveTimeCeiling <= 0 {
		c.SolveTimeCeiling = d.SolveTimeCeiling
	}
	if c.RecentDays <= 0 {
		c.RecentDays = d.RecentDays
	}
	return c
}

// ItemMeta is the per-item context the aggregator needs beyond the
// attempt records themselves.
type ItemMeta struct {
	Domain  string
	Pattern string
}

// ItemStats holds the readiness metrics replayed from one item's
// recent attempt history.
type ItemStats struct {
	ItemID            string
	Total             int
	SuccessRate       float64
	AvgConfidence     float64
	AvgTimeToSolve    float64
	MistakeRecurrence float64
	Readiness         float64
	FailureStreak     int
	LastResult        Result
	RecencyRank       int
	IsOverdue         bool
	NeedsRefinement   bool
}

// DomainStats holds per-domain aggregates.
type DomainStats struct {
	Domain                string
	Attempts              int
	MinutesLast7d         int
	ExternalMinutesLast7d int
	AvgReadiness          float64
}

// Snapshot is the aggregated view of an attempt dataset, consumed by
// the prioritizer and orchestrator. It is immutable once built.
type Snapshot struct {
	Items        map[string]*ItemStats
	Domains      map[string]*DomainStats
	Completed    map[string]bool
	ReviewWindow int

	patternItems map[string][]string
}

// Item returns the stats for an item, or nil if it has no attempts.
func (s *Snapshot) Item(itemID string) *ItemStats {
	return s.Items[itemID]
}

// Domain returns the stats for a domain, or nil if it has no attempts.
func (s *Snapshot) Domain(name string) *DomainStats {
	return s.Domains[name]
}

// IsCompleted reports whether an item is considered done.
func (s *Snapshot) IsCompleted(itemID string) bool {
	return s.Completed[itemID]
}

// PatternReadiness returns the mean readiness across items sharing a
// pattern, or a neutral 0.5 when the pattern has no attempted items.
func (s *Snapshot) PatternReadiness(pattern string) float64 {
	ids := s.patternItems[pattern]
	if len(ids) == 0 {
		return 0.5
	}
	sum := 0.0
	n := 0
	for _, id := range ids {
		if st, ok := s.Items[id]; ok {
			sum += st.Readiness
			n++
		}
	}
	if n == 0 {
		return 0.5
	}
	return sum / float64(n)
}

// Aggregate replays an attempt dataset into a Snapshot. The dataset's
// "now" is the most recent attempt timestamp, not the wall clock, so
// identical inputs always aggregate identically.
//
// meta maps item id → domain/pattern; attempts for items missing from
// meta still contribute item stats but no domain minutes.
func Aggregate(atts []Attempt, meta map[string]ItemMeta, cfg Config) *Snapshot {
	cfg = cfg.withDefaults()

	snap := &Snapshot{
		Items:        make(map[string]*ItemStats),
		Domains:      make(map[string]*DomainStats),
		Completed:    make(map[string]bool),
		ReviewWindow: cfg.ReviewWindow,
		patternItems: make(map[string][]string),
	}
	if len(atts) == 0 {
		return snap
	}

	ordered := sortRecentFirst(atts)

	// Global recency ranks and per-item recent windows.
	perItem := make(map[string][]Attempt)
	itemRank := make(map[string]int)
	for rank, a := range ordered {
		if _, seen := itemRank[a.ItemID]; !seen {
			itemRank[a.ItemID] = rank
		}
		if len(perItem[a.ItemID]) < cfg.RecentWindow {
			perItem[a.ItemID] = append(perItem[a.ItemID], a)
		}
	}

	itemIDs := make([]string, 0, len(perItem))
	for id := range perItem {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	for _, id := range itemIDs {
		st := buildItemStats(id, perItem[id], cfg)
		st.RecencyRank = itemRank[id]
		st.IsOverdue = st.RecencyRank >= cfg.OverdueRank
		snap.Items[id] = st

		if st.LastResult == ResultSolved && perItem[id][0].Confidence == ConfidenceHigh {
			snap.Completed[id] = true
		}
		if m, ok := meta[id]; ok && m.Pattern != "" {
			snap.patternItems[m.Pattern] = append(snap.patternItems[m.Pattern], id)
		}
	}

	aggregateDomains(snap, ordered, meta, cfg)
	return snap
}

// sortRecentFirst orders attempts most-recent-first with deterministic
// tie-breaks, so recency ranks never depend on input order. Log
// sequence, when present, settles exact-timestamp ties before the
// value-based fallbacks.
func sortRecentFirst(atts []Attempt) []Attempt {
	ordered := make([]Attempt, len(atts))
	copy(ordered, atts)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Sequence != b.Sequence {
			return a.Sequence > b.Sequence
		}
		if a.ItemID != b.ItemID {
			return a.ItemID < b.ItemID
		}
		if a.Result != b.Result {
			return a.Result < b.Result
		}
		return a.TimeSpentMinutes < b.TimeSpentMinutes
	})
	return ordered
}

func buildItemStats(id string, recent []Attempt, cfg Config) *ItemStats {
	st := &ItemStats{
		ItemID:     id,
		Total:      len(recent),
		LastResult: recent[0].Result,
	}

	solved := 0
	confSum := 0.0
	timeSum := 0.0
	withMistakes := 0
	for _, a := range recent {
		if a.Result == ResultSolved {
			solved++
		}
		confSum += a.Confidence.Score()
		timeSum += float64(a.TimeSpentMinutes)
		if len(a.MistakeTags) > 0 {
			withMistakes++
		}
	}
	n := float64(len(recent))
	st.SuccessRate = float64(solved) / n
	st.AvgConfidence = confSum / n
	st.AvgTimeToSolve = timeSum / n
	st.MistakeRecurrence = float64(withMistakes) / n

	// Streak counts consecutive recent failures; the first success
	// encountered resets it to zero outright.
	for _, a := range recent {
		if a.Result.IsSuccess() {
			st.FailureStreak = 0
			break
		}
		st.FailureStreak++
	}

	st.NeedsRefinement = st.LastResult.IsFailure() || st.AvgConfidence < 0.5
	st.Readiness = readinessScore(st, cfg)
	return st
}

// readinessScore blends success rate, confidence, solve speed, and
// mistake recurrence into a single 0–1 score.
func readinessScore(st *ItemStats, cfg Config) float64 {
	timeScore := 1.0 - st.AvgTimeToSolve/cfg.SolveTimeCeiling
	if timeScore < 0 {
		timeScore = 0
	}
	mistakeScore := 1.0 - st.MistakeRecurrence
	if mistakeScore < 0 {
		mistakeScore = 0
	}
	return 0.4*st.SuccessRate + 0.3*st.AvgConfidence + 0.2*timeScore + 0.1*mistakeScore
}

func aggregateDomains(snap *Snapshot, ordered []Attempt, meta map[string]ItemMeta, cfg Config) {
	// Dataset-relative "now": the newest attempt anywhere. Keeps the
	// recent-minutes window reproducible against fixed historical data.
	now := ordered[0].CreatedAt
	cutoff := now.Add(-time.Duration(cfg.RecentDays) * 24 * time.Hour)

	domainOf := func(itemID string) (string, bool) {
		m, ok := meta[itemID]
		if !ok || m.Domain == "" {
			return "", false
		}
		return m.Domain, true
	}

	for _, a := range ordered {
		name, ok := domainOf(a.ItemID)
		if !ok {
			continue
		}
		ds := snap.Domains[name]
		if ds == nil {
			ds = &DomainStats{Domain: name}
			snap.Domains[name] = ds
		}
		ds.Attempts++
		if !a.CreatedAt.Before(cutoff) {
			if a.External {
				ds.ExternalMinutesLast7d += a.TimeSpentMinutes
			} else {
				ds.MinutesLast7d += a.TimeSpentMinutes
			}
		}
	}

	// Domain readiness: mean item readiness over attempted items.
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for id, st := range snap.Items {
		name, ok := domainOf(id)
		if !ok {
			continue
		}
		sums[name] += st.Readiness
		counts[name]++
	}
	for name, ds := range snap.Domains {
		if counts[name] > 0 {
			ds.AvgReadiness = sums[name] / float64(counts[name])
		} else {
			ds.AvgReadiness = 0.5
		}
	}
}
