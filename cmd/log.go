package cmd

import (
	"fmt"

	"github.com/abhisek/prepdeck/internal/attempts"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/store"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a practice attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, _ := cmd.Flags().GetString("item")
		domainName, _ := cmd.Flags().GetString("domain")
		result, _ := cmd.Flags().GetString("result")
		minutes, _ := cmd.Flags().GetInt("minutes")
		confidence, _ := cmd.Flags().GetString("confidence")
		pattern, _ := cmd.Flags().GetString("pattern")
		mistakes, _ := cmd.Flags().GetStringSlice("mistakes")
		external, _ := cmd.Flags().GetBool("external")

		if !validResult(result) {
			return fmt.Errorf("invalid --result %q, want Solved, Partial, Stuck or Skipped", result)
		}
		if !validConfidence(confidence) {
			return fmt.Errorf("invalid --confidence %q, want Low, Medium or High", confidence)
		}
		if minutes < 0 {
			return fmt.Errorf("--minutes must not be negative")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.EventRepo().AppendAttempt(cmd.Context(), store.AttemptEventData{
			ItemID:      itemID,
			Domain:      domainName,
			Result:      result,
			TimeMinutes: minutes,
			Confidence:  confidence,
			Pattern:     pattern,
			MistakeTags: mistakes,
			External:    external,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged %s on %s (%d min, %s confidence)\n", result, itemID, minutes, confidence)
		return nil
	},
}

func init() {
	logCmd.Flags().String("item", "", "Item ID the attempt was on")
	logCmd.Flags().String("domain", "", "Domain of the item")
	logCmd.Flags().String("result", string(attempts.ResultSolved), "Attempt result: Solved, Partial, Stuck or Skipped")
	logCmd.Flags().Int("minutes", 0, "Minutes spent")
	logCmd.Flags().String("confidence", string(attempts.ConfidenceMedium), "Self-reported confidence: Low, Medium or High")
	logCmd.Flags().String("pattern", "", "Technique family of the item (e.g. two-pointers)")
	logCmd.Flags().StringSlice("mistakes", nil, "Mistake tags, comma separated")
	logCmd.Flags().Bool("external", false, "Practice done outside the tracker")
	_ = logCmd.MarkFlagRequired("item")
	_ = logCmd.MarkFlagRequired("domain")
}

func validResult(s string) bool {
	switch attempts.Result(s) {
	case attempts.ResultSolved, attempts.ResultPartial, attempts.ResultStuck, attempts.ResultSkipped:
		return true
	}
	return false
}

func validConfidence(s string) bool {
	switch attempts.Confidence(s) {
	case attempts.ConfidenceLow, attempts.ConfidenceMedium, attempts.ConfidenceHigh:
		return true
	}
	return false
}
