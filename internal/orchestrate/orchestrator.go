// Package orchestrate is the engine root: it fetches items from every
// mapped collection, merges them in a stable order, computes per-domain
// coverage debt, and fills the three session slots. Orchestration is a
// pure function of its inputs; nothing persists between calls, so
// identical inputs always produce identical sessions regardless of
// fetch completion order or map iteration order.
package orchestrate

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/compose"
	"github.com/abhisek/prepdeck/internal/coverage"
	"github.com/abhisek/prepdeck/internal/domain"
	"github.com/abhisek/prepdeck/internal/prioritize"
)

// DefaultFetchConcurrency bounds parallel collection fetches.
const DefaultFetchConcurrency = 4

// Config wires the component configurations and the per-domain unit
// type table into the orchestrator.
type Config struct {
	Compose          compose.Config
	Prioritize       prioritize.Config
	Coverage         coverage.Config
	FetchConcurrency int

	// UnitTypes maps a domain to its configured unit types; the first
	// entry labels that domain's session units.
	UnitTypes map[string][]string
}

// DefaultConfig returns the standard orchestrator settings.
func DefaultConfig() Config {
	return Config{
		Compose:          compose.DefaultConfig(),
		Prioritize:       prioritize.DefaultConfig(),
		Coverage:         coverage.DefaultConfig(),
		FetchConcurrency: DefaultFetchConcurrency,
		UnitTypes: map[string][]string{
			"DSA":           {"problem"},
			"System Design": {"scenario"},
			"Behavioral":    {"story"},
			"OOP":           {"concept"},
			"OS":            {"concept"},
			"DBMS":          {"concept"},
			"Networks":      {"concept"},
			"Puzzles":       {"puzzle"},
			"Aptitude":      {"drill"},
		},
	}
}

// Orchestrator selects one item per session slot.
type Orchestrator struct {
	reg     *domain.Registry
	fetcher catalog.ItemFetcher
	cfg     Config
}

// New creates an Orchestrator.
func New(reg *domain.Registry, fetcher catalog.ItemFetcher, cfg Config) *Orchestrator {
	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = DefaultFetchConcurrency
	}
	return &Orchestrator{reg: reg, fetcher: fetcher, cfg: cfg}
}

// Orchestrate builds one session. Fetch failures propagate as-is;
// empty slots are filled with a nil item and a rationale instead of
// failing.
func (o *Orchestrator) Orchestrate(ctx context.Context, req Request) (*Session, error) {
	snap := req.Snapshot
	if snap == nil {
		snap = attempts.Aggregate(nil, nil, attempts.DefaultConfig())
	}

	// Domains iterate in lexicographic order, never map order.
	domains := make([]string, 0, len(req.Mappings))
	for d := range req.Mappings {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	itemsByDomain, err := o.fetchAll(ctx, domains, req.Mappings)
	if err != nil {
		return nil, err
	}

	debts := o.computeDebts(domains, itemsByDomain, snap)
	budget := compose.Compose(req.TotalMinutes, req.FocusMode, o.cfg.Compose)

	session := &Session{
		ID:           uuid.NewString(),
		FocusMode:    budget.FocusMode,
		TotalMinutes: budget.TotalMinutes,
	}
	session.ReviewUnit = o.pickReview(domains, itemsByDomain, snap, debts, budget.ReviewMinutes)
	session.CoreUnit = o.pickCore(domains, itemsByDomain, snap, debts, req, budget.CoreMinutes)
	session.BreadthUnit = o.pickBreadth(domains, itemsByDomain, snap, debts, session.CoreUnit, budget.BreadthMinutes)
	return session, nil
}

// fetchAll fetches every mapped collection, in parallel, then merges
// each domain's collections deterministically: items sorted by id
// within a collection, collections ordered by (item count descending,
// collection id ascending) before flattening. The merge, not fetch
// completion order, decides the final order.
func (o *Orchestrator) fetchAll(ctx context.Context, domains []string, mappings map[string][]string) (map[string][]catalog.Item, error) {
	type fetchJob struct {
		domain       string
		collectionID string
	}
	var jobs []fetchJob
	for _, d := range domains {
		for _, id := range mappings[d] {
			jobs = append(jobs, fetchJob{domain: d, collectionID: id})
		}
	}

	results := make([][]catalog.Item, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.FetchConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			items, err := o.fetcher.FetchItems(gctx, job.collectionID)
			if err != nil {
				return fmt.Errorf("fetch items for %s: %w", job.collectionID, err)
			}
			for k := range items {
				items[k].Domain = job.domain
				if items[k].SourceCollectionID == "" {
					items[k].SourceCollectionID = job.collectionID
				}
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	type fetched struct {
		collectionID string
		items        []catalog.Item
	}
	byDomain := make(map[string][]fetched)
	for i, job := range jobs {
		items := results[i]
		sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
		byDomain[job.domain] = append(byDomain[job.domain], fetched{collectionID: job.collectionID, items: items})
	}

	merged := make(map[string][]catalog.Item, len(byDomain))
	for d, cols := range byDomain {
		sort.Slice(cols, func(a, b int) bool {
			if len(cols[a].items) != len(cols[b].items) {
				return len(cols[a].items) > len(cols[b].items)
			}
			return cols[a].collectionID < cols[b].collectionID
		})
		var flat []catalog.Item
		for _, c := range cols {
			flat = append(flat, c.items...)
		}
		merged[d] = flat
	}
	return merged, nil
}

func (o *Orchestrator) computeDebts(domains []string, itemsByDomain map[string][]catalog.Item, snap *attempts.Snapshot) map[string]float64 {
	debts := make(map[string]float64, len(domains))
	for _, d := range domains {
		remaining, completed := 0, 0
		for _, it := range itemsByDomain[d] {
			if snap.IsCompleted(it.ID) {
				completed++
			} else {
				remaining++
			}
		}
		in := coverage.Input{
			WeeklyFloorMinutes: o.reg.WeeklyFloor(o.reg.Classify(d)),
			RemainingUnits:     remaining,
			CompletedUnits:     completed,
		}
		if ds := snap.Domain(d); ds != nil {
			in.MinutesLast7d = ds.MinutesLast7d
			in.ExternalMinutesLast7d = ds.ExternalMinutesLast7d
		}
		debts[d] = coverage.Debt(in, o.cfg.Coverage)
	}
	return debts
}

// pickReview selects a recently-solved item to revisit, highest-debt
// domain first. With no recent solves it widens past the review window;
// with no solves at all the slot stays empty with a rationale.
func (o *Orchestrator) pickReview(domains []string, itemsByDomain map[string][]catalog.Item, snap *attempts.Snapshot, debts map[string]float64, minutes int) SessionUnit {
	window := snap.ReviewWindow
	if window <= 0 {
		window = attempts.DefaultReviewWindow
	}

	type candidate struct {
		item catalog.Item
		rank int
	}
	collect := func(ignoreWindow bool) []candidate {
		var cands []candidate
		for _, d := range domains {
			for _, it := range itemsByDomain[d] {
				st := snap.Item(it.ID)
				if st == nil || !st.LastResult.IsSuccess() {
					continue
				}
				if !ignoreWindow && st.RecencyRank >= window {
					continue
				}
				cands = append(cands, candidate{item: it, rank: st.RecencyRank})
			}
		}
		sort.Slice(cands, func(i, j int) bool {
			a, b := cands[i], cands[j]
			if debts[a.item.Domain] != debts[b.item.Domain] {
				return debts[a.item.Domain] > debts[b.item.Domain]
			}
			if a.rank != b.rank {
				return a.rank < b.rank
			}
			if a.item.ID != b.item.ID {
				return a.item.ID < b.item.ID
			}
			return a.item.Name < b.item.Name
		})
		return cands
	}

	cands := collect(false)
	widened := false
	if len(cands) == 0 {
		cands = collect(true)
		widened = true
	}
	if len(cands) == 0 {
		return SessionUnit{
			Slot:        SlotReview,
			UnitType:    GenericUnitType,
			TimeMinutes: minutes,
			Rationale:   "nothing to review yet: no solved or partially solved items",
		}
	}

	best := cands[0]
	item := best.item
	rationale := fmt.Sprintf("revisit %q (%s): solved %d attempts ago, domain debt %.2f",
		item.Name, item.Domain, best.rank, debts[item.Domain])
	if widened {
		rationale += " (no solves inside the review window)"
	}
	return SessionUnit{
		Slot:        SlotReview,
		UnitType:    o.unitTypeFor(item.Domain),
		TimeMinutes: minutes,
		Item:        &item,
		Rationale:   rationale,
	}
}

// coreTypeFor maps the focus mode to the domain type the core slot
// draws from.
func coreTypeFor(mode compose.FocusMode) domain.Type {
	switch mode {
	case compose.FocusDSAHeavy:
		return domain.TypeCoding
	case compose.FocusInterviewHeavy:
		return domain.TypeInterview
	default:
		return domain.TypeFundamentals
	}
}

// pickCore restricts to the focus mode's domain type, picks the
// highest-debt matching domain with open items, and takes the
// prioritizer's top rank.
func (o *Orchestrator) pickCore(domains []string, itemsByDomain map[string][]catalog.Item, snap *attempts.Snapshot, debts map[string]float64, req Request, minutes int) SessionUnit {
	target := coreTypeFor(req.FocusMode)

	var matching []string
	for _, d := range domains {
		if o.reg.Classify(d) == target {
			matching = append(matching, d)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		if debts[matching[i]] != debts[matching[j]] {
			return debts[matching[i]] > debts[matching[j]]
		}
		return matching[i] < matching[j]
	})

	for _, d := range matching {
		var open []catalog.Item
		for _, it := range itemsByDomain[d] {
			if !snap.IsCompleted(it.ID) {
				open = append(open, it)
			}
		}
		if len(open) == 0 {
			continue
		}

		readiness := 0.5
		if ds := snap.Domain(d); ds != nil {
			readiness = ds.AvgReadiness
		}
		mode := req.Modes[d]
		if mode == "" {
			mode = domain.ModeLearning
		}

		ranked := prioritize.Prioritize(open, target, readiness, mode, snap, o.cfg.Prioritize)
		item := ranked[0]
		rationale := fmt.Sprintf("%s %s work: debt %.2f, readiness %.2f, difficulty %d",
			d, mode, debts[d], readiness, item.Difficulty)
		if item.Pattern != "" {
			rationale += fmt.Sprintf("; %s pattern readiness %.2f",
				item.Pattern, snap.PatternReadiness(item.Pattern))
		}
		return SessionUnit{
			Slot:        SlotCore,
			UnitType:    o.unitTypeFor(d),
			TimeMinutes: minutes,
			Item:        &item,
			Rationale:   rationale,
		}
	}

	return SessionUnit{
		Slot:        SlotCore,
		UnitType:    GenericUnitType,
		TimeMinutes: minutes,
		Rationale:   fmt.Sprintf("no open %s items for focus mode %s", target, req.FocusMode),
	}
}

// pickBreadth takes the top open item outside the core domain, ranked
// by domain debt.
func (o *Orchestrator) pickBreadth(domains []string, itemsByDomain map[string][]catalog.Item, snap *attempts.Snapshot, debts map[string]float64, core SessionUnit, minutes int) SessionUnit {
	excluded := ""
	if core.Item != nil {
		excluded = core.Item.Domain
	}

	var cands []catalog.Item
	for _, d := range domains {
		if d == excluded {
			continue
		}
		for _, it := range itemsByDomain[d] {
			if !snap.IsCompleted(it.ID) {
				cands = append(cands, it)
			}
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if debts[a.Domain] != debts[b.Domain] {
			return debts[a.Domain] > debts[b.Domain]
		}
		if a.Domain != b.Domain {
			return a.Domain < b.Domain
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Name < b.Name
	})

	if len(cands) == 0 {
		return SessionUnit{
			Slot:        SlotBreadth,
			UnitType:    GenericUnitType,
			TimeMinutes: minutes,
			Rationale:   "no open items outside the core domain",
		}
	}

	item := cands[0]
	return SessionUnit{
		Slot:        SlotBreadth,
		UnitType:    o.unitTypeFor(item.Domain),
		TimeMinutes: minutes,
		Item:        &item,
		Rationale:   fmt.Sprintf("broaden into %s: highest remaining debt %.2f", item.Domain, debts[item.Domain]),
	}
}

func (o *Orchestrator) unitTypeFor(domainName string) string {
	if types := o.cfg.UnitTypes[domainName]; len(types) > 0 {
		return types[0]
	}
	return GenericUnitType
}
