package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/mastery"
	"github.com/abhisek/lexis/internal/ui/theme"
	"github.com/abhisek/lexis/internal/vocab"
)

// statsListLimit caps the struggling and due word lists.
const statsListLimit = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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
		ctx := cmd.Context()
		stats, err := svc.Stats(ctx)
		if err != nil {
			return err
		}
		v, err := svc.Vocabulary(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		c := stats.Classification
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s · %s", env.cfg.Learner.UserID, env.cfg.Learner.Language)))
		fmt.Fprintln(out, theme.KeyValue("Words", fmt.Sprint(c.TotalWords), 12))
		fmt.Fprintln(out, theme.KeyValue("Passive", fmt.Sprint(c.PassiveVocabulary), 12))
		fmt.Fprintln(out, theme.KeyValue("Active", fmt.Sprint(c.ActiveVocabulary), 12))
		fmt.Fprintln(out, theme.KeyValue("Struggling", fmt.Sprint(c.StrugglingWords), 12))
		fmt.Fprintln(out, theme.KeyValue("Mastered", fmt.Sprint(c.MasteredWords), 12))
		fmt.Fprintln(out, theme.KeyValue("Sessions", fmt.Sprint(stats.Sessions), 12))

		if c.TotalWords == 0 {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Mastery"))
		for _, b := range mastery.AllBuckets() {
			share := float64(c.Distribution.Count(b)) / float64(c.TotalWords)
			fmt.Fprintf(out, "%-14s%s\n", b, theme.ProgressBar(share, 30))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Categories"))
		for _, cat := range []vocab.Category{
			vocab.CategoryNew, vocab.CategoryLearning, vocab.CategoryReviewDue,
			vocab.CategoryStruggling, vocab.CategoryMastered,
		} {
			fmt.Fprintln(out, theme.KeyValue(string(cat), fmt.Sprint(stats.Categories[cat]), 12))
		}

		if words := v.StrugglingWords(statsListLimit); len(words) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.KeyValue("Struggling", strings.Join(words, ", "), 12))
		}
		if words := v.DueForReview(time.Now(), statsListLimit); len(words) > 0 {
			fmt.Fprintln(out, theme.KeyValue("Due", strings.Join(words, ", "), 12))
		}
		return nil
	},
}
