package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the difficulty level for the next session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newService(cmd, st)
		if err != nil {
			return err
		}
		rec, err := svc.Recommend(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s\n", theme.LevelBadge(rec.SuggestedLevel),
			theme.Hint.Render(fmt.Sprintf("confidence %.0f%%, fallback %s", rec.Confidence*100, rec.FallbackLevel)))
		for _, r := range rec.Reasoning {
			fmt.Fprintf(out, "  • %s\n", r)
		}
		return nil
	},
}
