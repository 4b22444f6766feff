package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/prepdeck/internal/config"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data",
	Long:  "Reset deletes confirmed mappings, or with --all the entire local database including the attempt log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		all, _ := cmd.Flags().GetBool("all")
		if !force {
			return fmt.Errorf("refusing to delete data without --force")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if all {
			dbPath, err := resolveDBPath(cmd, cfg)
			if err != nil {
				return err
			}
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove database: %w", err)
			}
			fmt.Println("Deleted local database.")
			return nil
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.MappingRepo().DeleteAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Deleted confirmed mappings. The attempt log is untouched.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete data")
	resetCmd.Flags().Bool("all", false, "Delete the whole database, not just mappings")
}
