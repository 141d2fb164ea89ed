package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/spacedrep"
	"github.com/abhisek/lexis/internal/store"
	"github.com/abhisek/lexis/internal/ui/theme"
)

var recordCmd = &cobra.Command{
	Use:   "record <word>",
	Short: "Record an answer for a word outside a practice session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wrong, _ := cmd.Flags().GetBool("wrong")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		rec, err := st.Words().RecordObservation(cmd.Context(), store.Observation{
			UserID:   env.cfg.Learner.UserID,
			Language: env.cfg.Learner.Language,
			Word:     args[0],
			Correct:  !wrong,
			At:       now,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.KeyValue("Word", rec.Word, 8))
		fmt.Fprintln(out, theme.KeyValue("Mastery", fmt.Sprintf("%d/10", rec.MasteryLevel), 8))
		fmt.Fprintln(out, theme.KeyValue("Correct", fmt.Sprintf("%d of %d", rec.CorrectCount, rec.ReviewCount), 8))
		fmt.Fprintln(out, theme.KeyValue("Review", string(spacedrep.Status(rec.NextReviewDueAt, rec.MasteryLevel, now)), 8))
		if rec.NextReviewDueAt != nil {
			fmt.Fprintln(out, theme.KeyValue("Due", rec.NextReviewDueAt.Local().Format("2006-01-02 15:04"), 8))
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Bool("wrong", false, "Record an incorrect answer")
}
