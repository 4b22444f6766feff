package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/domain"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan the directory and propose collection-to-domain mappings",
	Long: "Discover lists the reachable collections, identifies the attempts store, " +
		"classifies every other collection into a prep domain, and prints a mapping " +
		"proposal. Nothing is applied until you run 'prepdeck confirm'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		proposal, err := runDiscovery(cmd.Context(), cmd, cfg)
		if err != nil {
			return err
		}

		printProposal(proposal)
		return nil
	},
}

// runDiscovery prepares a mapping proposal against the saved fingerprints.
func runDiscovery(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*catalog.Proposal, error) {
	st, err := openStore(cmd, cfg)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	saved, err := st.MappingRepo().List(ctx)
	if err != nil {
		return nil, err
	}
	previous := make(map[string]string, len(saved))
	for _, m := range saved {
		previous[m.CollectionID] = m.Fingerprint
	}

	mapper := catalog.NewMapper(directoryClient(cfg), domain.DefaultRegistry())
	return mapper.PrepareMapping(ctx, previous)
}

func printProposal(p *catalog.Proposal) {
	fmt.Printf("Proposal %s\n\n", p.ID)
	fmt.Printf("Attempts store: %s (%s)\n\n", p.AttemptsStore.Title, p.AttemptsStore.ID)

	if p.FingerprintChanged {
		fmt.Println("Schema drift detected on previously confirmed collections:")
		for _, ch := range p.FingerprintChanges {
			fmt.Printf("  %s (%s): schema changed since confirmation\n", ch.Title, ch.CollectionID)
		}
		fmt.Println()
	}

	for _, d := range p.Domains() {
		fmt.Printf("%s:\n", d)
		for _, c := range p.AutoAccept[d] {
			fmt.Printf("  [auto]  %-40s %.2f\n", c.Collection.Title, c.Confidence)
		}
		for _, c := range p.Warnings[d] {
			fmt.Printf("  [check] %-40s %.2f\n", c.Collection.Title, c.Confidence)
		}
	}

	if len(p.Blocks) > 0 {
		fmt.Println("\nExcluded:")
		for _, b := range p.Blocks {
			fmt.Printf("  %-40s %s\n", b.Collection.Title, b.Reason)
		}
	}

	fmt.Println("\nRun 'prepdeck confirm' to apply the auto-accepted mappings,")
	fmt.Println("adding --map <domain>=<collection-id> for any [check] entries you want.")
}
