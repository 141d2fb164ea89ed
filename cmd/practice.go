package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/evaluate"
	"github.com/abhisek/lexis/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a spelling recall session in the terminal",
	Long: `Run an adaptive practice session. Each exercise shows a word with its inner
letters hidden; type the whole word. The session level adapts as you answer
and progress is saved when the session ends or input is closed.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().IntP("count", "n", 0, "Number of exercises (default from config)")
}

func runPractice(cmd *cobra.Command, args []string) error {
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

	ctx := cmd.Context()
	sess, err := svc.Start(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprintf(out, "Starting at %s\n\n", theme.LevelBadge(sess.Level()))

	for i := 1; i <= count; i++ {
		sel, err := svc.Next(ctx, sess)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "── Exercise %d/%d ──\n", i, count)
		fmt.Fprintf(out, "%s  %s\n", theme.Title.Render(maskWord(sel.Word)), theme.Hint.Render(string(sel.Stage)))
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			continue
		}

		outcome, err := svc.Submit(ctx, sess, sel.Word, answer, nil, evaluate.ModeWord)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, theme.Verdict(outcome.Result))
		if !outcome.Result.IsCorrect {
			fmt.Fprintln(out, theme.KeyValue("Answer", sel.Word, 6))
		}
		if adj := outcome.Adjustment; adj != nil {
			fmt.Fprintf(out, "Level changed to %s  %s\n", theme.LevelBadge(adj.SuggestedLevel),
				theme.Hint.Render(strings.Join(adj.Reasons, "; ")))
		}
		fmt.Fprintln(out)
	}

	summary, err := svc.Finish(ctx, sess)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", summary.TotalCorrect, summary.TotalQuestions)
	fmt.Fprintln(out, theme.ProgressBar(summary.Accuracy, 30))
	if summary.EndLevel != summary.StartLevel {
		fmt.Fprintf(out, "Level %s → %s\n", summary.StartLevel, summary.EndLevel)
	}
	return nil
}

// maskWord hides the inner letters of each word in s, keeping the first
// and last letter. Words of up to three letters keep only the first.
func maskWord(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(f)
		n := len(runes)
		var b strings.Builder
		for j, r := range runes {
			switch {
			case j == 0, j == n-1 && n > 3:
				b.WriteRune(r)
			default:
				b.WriteRune('_')
			}
		}
		fields[i] = b.String()
	}
	return strings.Join(fields, " ")
}
