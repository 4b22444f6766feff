package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Apply a discovery proposal as the confirmed mapping",
	Long: "Confirm re-runs discovery and persists the auto-accepted mappings plus any " +
		"--map overrides. Warned collections are only mapped when named explicitly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		proposal, err := runDiscovery(ctx, cmd, cfg)
		if err != nil {
			return err
		}

		overrides, err := parseMapOverrides(mapFlags)
		if err != nil {
			return err
		}

		// Overrides must name collections the proposal actually offered,
		// checked before anything is persisted.
		for d, id := range overrides {
			found := false
			for _, cand := range append(proposal.AutoAccept[d], proposal.Warnings[d]...) {
				if cand.Collection.ID == id {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("--map %s=%s does not match any proposed collection", d, id)
			}
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.MappingRepo()
		now := time.Now().UTC()
		applied := 0

		save := func(c catalog.Collection, domainName string, isStore bool) error {
			err := repo.Save(ctx, store.MappingData{
				CollectionID:  c.ID,
				Domain:        domainName,
				Title:         c.Title,
				Fingerprint:   c.Fingerprint,
				AttemptsStore: isStore,
				ConfirmedAt:   now,
			})
			if err != nil {
				return err
			}
			applied++
			return nil
		}

		if err := save(proposal.AttemptsStore, "", true); err != nil {
			return err
		}

		for _, d := range proposal.Domains() {
			for _, cand := range proposal.AutoAccept[d] {
				if err := save(cand.Collection, d, false); err != nil {
					return err
				}
			}
			for _, cand := range proposal.Warnings[d] {
				if overrides[d] == cand.Collection.ID {
					if err := save(cand.Collection, d, false); err != nil {
						return err
					}
				}
			}
		}

		fmt.Printf("Confirmed %d mappings.\n", applied)
		return nil
	},
}

var mapFlags []string

func init() {
	confirmCmd.Flags().StringArrayVar(&mapFlags, "map", nil, "Explicit mapping as <domain>=<collection-id> (repeatable)")
}

func parseMapOverrides(flags []string) (map[string]string, error) {
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		domainName, id, ok := strings.Cut(f, "=")
		if !ok || domainName == "" || id == "" {
			return nil, fmt.Errorf("invalid --map value %q, want <domain>=<collection-id>", f)
		}
		out[domainName] = id
	}
	return out, nil
}
