package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Interview prep session scheduler",
	Long:  "Prepdeck composes daily learning sessions from your prep collections, balancing review, weak areas and breadth.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then config, then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the event store. Callers must Close.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// directoryClient builds the collections API client from config.
func directoryClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(catalog.ClientConfig{
		BaseURL: cfg.Directory.BaseURL,
		Token:   cfg.Directory.Token,
		Timeout: time.Duration(cfg.Directory.TimeoutSeconds) * time.Second,
	})
}
