package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/ui/theme"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Pick the next word to practice",
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
		sel, err := svc.Next(cmd.Context(), nil)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", theme.Title.Render(sel.Word), theme.Hint.Render(string(sel.Stage)))
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Pick a set of words for a practice round",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = env.cfg.Selection.Words
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newService(cmd, st)
		if err != nil {
			return err
		}
		picks, cfg, err := svc.Plan(cmd.Context(), nil, count)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %s\n", "Word", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 40))
		for _, p := range picks {
			fmt.Fprintf(out, "%-24s  %s\n", p.Word, p.Stage)
		}

		mode := "off"
		if cfg.NPlusOneMode {
			mode = "on"
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf(
			"new %.0f%%  review %.0f%%  struggling x%.1f  mastered x%.1f  n+1 %s",
			cfg.NewWordRatio*100, cfg.ReviewWordRatio*100,
			cfg.StrugglingWordBoost, cfg.MasteredWordPenalty, mode)))
		return nil
	},
}

func init() {
	planCmd.Flags().IntP("count", "n", 0, "Number of words (default from config)")
}
