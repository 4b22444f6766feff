package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/coverage"
	"github.com/abhisek/prepdeck/internal/domain"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-domain practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		snap, records, err := loadSnapshot(ctx, st, cfg)
		if err != nil {
			return err
		}

		mappings, err := st.MappingRepo().List(ctx)
		if err != nil {
			return err
		}
		domainCollections := collectionsByDomain(mappings)

		names := statDomains(snap, domainCollections)
		if len(names) == 0 {
			fmt.Println("No attempts logged and no mappings confirmed yet.")
			return nil
		}

		// Debt needs the live item backlog; skip it when nothing is mapped.
		var debts map[string]float64
		if len(domainCollections) > 0 {
			debts, err = fetchDebts(ctx, cfg, domainCollections, snap)
			if err != nil {
				return err
			}
		}

		successes := make(map[string]int)
		totals := make(map[string]int)
		for _, r := range records {
			totals[r.Domain]++
			if attempts.Result(r.Result).IsSuccess() {
				successes[r.Domain]++
			}
		}

		fmt.Printf("%-16s %8s %8s %8s %8s %10s %6s\n",
			"domain", "attempts", "success", "min/7d", "ext/7d", "readiness", "debt")
		for _, d := range names {
			attemptsN := totals[d]
			successRate := 0.0
			if attemptsN > 0 {
				successRate = float64(successes[d]) / float64(attemptsN)
			}
			min7, ext7, readiness := 0, 0, 0.0
			if ds := snap.Domain(d); ds != nil {
				min7, ext7, readiness = ds.MinutesLast7d, ds.ExternalMinutesLast7d, ds.AvgReadiness
			}
			debtCell := "-"
			if debt, ok := debts[d]; ok {
				debtCell = fmt.Sprintf("%.2f", debt)
			}
			fmt.Printf("%-16s %8d %7.0f%% %8d %8d %10.2f %6s\n",
				d, attemptsN, successRate*100, min7, ext7, readiness, debtCell)
		}
		fmt.Printf("\nCompleted items: %d\n", len(snap.Completed))
		return nil
	},
}

// statDomains is the union of domains with logged attempts and mapped
// collections, sorted.
func statDomains(snap *attempts.Snapshot, mapped map[string][]string) []string {
	seen := make(map[string]bool)
	for d := range snap.Domains {
		if d != "" {
			seen[d] = true
		}
	}
	for d := range mapped {
		seen[d] = true
	}
	names := make([]string, 0, len(seen))
	for d := range seen {
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}

// fetchDebts pulls the mapped collections' items and scores each
// domain's coverage debt the same way planning does.
func fetchDebts(ctx context.Context, cfg *config.Config, mapped map[string][]string, snap *attempts.Snapshot) (map[string]float64, error) {
	client := directoryClient(cfg)
	reg := domain.DefaultRegistry()

	debts := make(map[string]float64, len(mapped))
	for d, ids := range mapped {
		var items []catalog.Item
		for _, id := range ids {
			fetched, err := client.FetchItems(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("fetch items for %s: %w", id, err)
			}
			items = append(items, fetched...)
		}

		remaining, completed := 0, 0
		for _, it := range items {
			if snap.IsCompleted(it.ID) {
				completed++
			} else {
				remaining++
			}
		}
		in := coverage.Input{
			WeeklyFloorMinutes: reg.WeeklyFloor(reg.Classify(d)),
			RemainingUnits:     remaining,
			CompletedUnits:     completed,
		}
		if ds := snap.Domain(d); ds != nil {
			in.MinutesLast7d = ds.MinutesLast7d
			in.ExternalMinutesLast7d = ds.ExternalMinutesLast7d
		}
		debts[d] = coverage.Debt(in, coverage.DefaultConfig())
	}
	return debts, nil
}
