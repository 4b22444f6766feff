package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/compose"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/domain"
	"github.com/abhisek/prepdeck/internal/orchestrate"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose today's learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")
		focus, _ := cmd.Flags().GetString("focus")
		modeFlags, _ := cmd.Flags().GetStringArray("mode")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if minutes == 0 {
			minutes = cfg.Session.DefaultDuration
		}
		modes, err := parseModeOverrides(modeFlags)
		if err != nil {
			return err
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		mappings, err := st.MappingRepo().List(ctx)
		if err != nil {
			return err
		}
		domainCollections := collectionsByDomain(mappings)
		if len(domainCollections) == 0 {
			return fmt.Errorf("%w; run 'prepdeck discover' then 'prepdeck confirm' first", catalog.ErrUnconfirmedMapping)
		}

		client := directoryClient(cfg)
		if err := checkFingerprints(ctx, client, mappings); err != nil {
			return err
		}

		snap, _, err := loadSnapshot(ctx, st, cfg)
		if err != nil {
			return err
		}

		orch := orchestrate.New(domain.DefaultRegistry(), client, engineConfig(cfg))
		session, err := orch.Orchestrate(ctx, orchestrate.Request{
			Mappings:     domainCollections,
			TotalMinutes: minutes,
			FocusMode:    compose.FocusMode(focus),
			Modes:        modes,
			Snapshot:     snap,
		})
		if err != nil {
			return err
		}

		printSession(session)
		return recordSession(ctx, st, session)
	},
}

func init() {
	planCmd.Flags().Int("minutes", 0, "Session length in minutes (30, 45 or 90)")
	planCmd.Flags().String("focus", string(compose.FocusBalanced), "Focus mode: balanced, dsa-heavy or interview-heavy")
	planCmd.Flags().StringArray("mode", nil, "Per-domain phase as <domain>=<learning|revision|polish> (repeatable)")
}

// engineConfig injects the loaded session heuristics into the engine
// component configs, so config.yaml values actually steer composition
// and ordering instead of the package defaults.
func engineConfig(cfg *config.Config) orchestrate.Config {
	oc := orchestrate.DefaultConfig()
	if len(cfg.Session.AllowedDurations) > 0 {
		oc.Compose.AllowedDurations = cfg.Session.AllowedDurations
	}
	if cfg.Session.DefaultDuration > 0 {
		oc.Compose.DefaultDuration = cfg.Session.DefaultDuration
	}
	oc.Prioritize.BackoffPerFailure = cfg.Session.BackoffPerFailure
	oc.Prioritize.BackoffCap = cfg.Session.BackoffCap
	return oc
}

// collectionsByDomain turns saved mappings into the domain to collection
// IDs index the orchestrator consumes. The attempts store never maps to
// a domain.
func collectionsByDomain(mappings []store.MappingData) map[string][]string {
	out := make(map[string][]string)
	for _, m := range mappings {
		if m.AttemptsStore || m.Domain == "" {
			continue
		}
		out[m.Domain] = append(out[m.Domain], m.CollectionID)
	}
	return out
}

// checkFingerprints refuses to plan when any confirmed collection's
// schema drifted since confirmation. Stale mappings misclassify items,
// so the user has to re-run discovery and confirm again.
func checkFingerprints(ctx context.Context, dir catalog.Directory, mappings []store.MappingData) error {
	cols, err := dir.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	current := make(map[string]string, len(cols))
	for _, c := range cols {
		current[c.ID] = c.Fingerprint
	}

	var drifted []string
	for _, m := range mappings {
		fp, ok := current[m.CollectionID]
		if ok && fp != m.Fingerprint {
			drifted = append(drifted, fmt.Sprintf("%s (%s)", m.Title, m.CollectionID))
		}
	}
	if len(drifted) > 0 {
		return fmt.Errorf("schema changed since confirmation for %s; run 'prepdeck discover' and 'prepdeck confirm' again",
			strings.Join(drifted, ", "))
	}
	return nil
}

func parseModeOverrides(flags []string) (map[string]domain.Mode, error) {
	out := make(map[string]domain.Mode, len(flags))
	for _, f := range flags {
		name, mode, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --mode value %q, want <domain>=<mode>", f)
		}
		switch domain.Mode(mode) {
		case domain.ModeLearning, domain.ModeRevision, domain.ModePolish:
			out[name] = domain.Mode(mode)
		default:
			return nil, fmt.Errorf("invalid mode %q, want learning, revision or polish", mode)
		}
	}
	return out, nil
}

// loadSnapshot replays the attempt log into an aggregated snapshot. The
// raw records come back too for callers that need per-attempt detail.
func loadSnapshot(ctx context.Context, st *store.Store, cfg *config.Config) (*attempts.Snapshot, []store.AttemptRecord, error) {
	records, err := st.EventRepo().ListAttempts(ctx)
	if err != nil {
		return nil, nil, err
	}

	atts := make([]attempts.Attempt, 0, len(records))
	meta := make(map[string]attempts.ItemMeta)
	for _, r := range records {
		atts = append(atts, attempts.Attempt{
			ItemID:           r.ItemID,
			Result:           attempts.Result(r.Result),
			TimeSpentMinutes: r.TimeMinutes,
			Confidence:       attempts.Confidence(r.Confidence),
			MistakeTags:      r.MistakeTags,
			External:         r.External,
			CreatedAt:        r.Timestamp,
			Sequence:         r.Sequence,
		})
		m, ok := meta[r.ItemID]
		if !ok {
			m = attempts.ItemMeta{Domain: r.Domain}
		}
		if m.Pattern == "" && r.Pattern != "" {
			m.Pattern = r.Pattern
		}
		meta[r.ItemID] = m
	}

	snap := attempts.Aggregate(atts, meta, attempts.Config{
		ReviewWindow: cfg.Session.ReviewWindow,
		OverdueRank:  cfg.Session.OverdueRank,
	})
	return snap, records, nil
}

func printSession(s *orchestrate.Session) {
	fmt.Printf("Session %s (%s, %d minutes)\n\n", s.ID, s.FocusMode, s.TotalMinutes)
	for _, u := range []orchestrate.SessionUnit{s.ReviewUnit, s.CoreUnit, s.BreadthUnit} {
		fmt.Printf("%-8s %3d min  ", u.Slot, u.TimeMinutes)
		if u.Item != nil {
			fmt.Printf("%s [%s, difficulty %d]\n", u.Item.Name, u.UnitType, u.Item.Difficulty)
		} else {
			fmt.Println("(nothing scheduled)")
		}
		fmt.Printf("         %s\n", u.Rationale)
	}
}

// recordSession appends the composed plan to the event log.
func recordSession(ctx context.Context, st *store.Store, s *orchestrate.Session) error {
	slots := make([]store.SlotData, 0, 3)
	for _, u := range []orchestrate.SessionUnit{s.ReviewUnit, s.CoreUnit, s.BreadthUnit} {
		slot := store.SlotData{
			Slot:        string(u.Slot),
			UnitType:    u.UnitType,
			TimeMinutes: u.TimeMinutes,
			Rationale:   u.Rationale,
		}
		if u.Item != nil {
			slot.ItemID = u.Item.ID
			slot.ItemTitle = u.Item.Name
		}
		slots = append(slots, slot)
	}
	return st.EventRepo().AppendSession(ctx, store.SessionEventData{
		SessionID:    s.ID,
		FocusMode:    string(s.FocusMode),
		TotalMinutes: s.TotalMinutes,
		Slots:        slots,
	})
}
