package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Delete all word records, sessions and recently used words for the learner and language.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete data for %s (%s) without --yes",
				env.cfg.Learner.UserID, env.cfg.Learner.Language)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), env.cfg.Learner.UserID, env.cfg.Learner.Language); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset data for %s (%s).\n", env.cfg.Learner.UserID, env.cfg.Learner.Language)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
