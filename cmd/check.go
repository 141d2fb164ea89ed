package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/evaluate"
	"github.com/abhisek/lexis/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check <answer>",
	Short: "Score an answer against the accepted answers (no database)",
	Long: `Score a free-text answer against one or more accepted answers.

With --choices the answer is treated as a multiple-choice pick, either the
choice text or its 1-based number, and the first --expect is the correct choice.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expect, _ := cmd.Flags().GetStringArray("expect")
		modeVal, _ := cmd.Flags().GetString("mode")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		choices, _ := cmd.Flags().GetStringSlice("choices")

		if len(expect) == 0 {
			return fmt.Errorf("at least one --expect answer is required")
		}
		if threshold == 0 {
			threshold = env.cfg.Evaluation.Threshold
		}
		if modeVal == "" {
			modeVal = env.cfg.Evaluation.Mode
		}
		mode := evaluate.ParseMode(modeVal)
		answer := args[0]

		out := cmd.OutOrStdout()
		if len(choices) > 0 {
			fmt.Fprintln(out, theme.Verdict(evaluate.EvaluateMultipleChoice(answer, expect[0], choices)))
			return nil
		}

		result := evaluate.Evaluate(answer, expect, mode, threshold)
		fmt.Fprintln(out, theme.Verdict(result))
		if mode != evaluate.ModeWord {
			fmt.Fprintln(out, theme.Tokens(evaluate.AlignTokens(expect[0], answer)))
		}
		if !result.IsCorrect {
			fmt.Fprintln(out, theme.KeyValue("Answer", expect[0], 6))
		}
		return nil
	},
}

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Score a selection of words to learn against the target words",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetStringSlice("target")
		selected, _ := cmd.Flags().GetStringSlice("selected")
		partial, _ := cmd.Flags().GetBool("partial")

		fmt.Fprintln(cmd.OutOrStdout(), theme.Verdict(evaluate.EvaluateMarking(selected, target, partial)))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringArrayP("expect", "e", nil, "Accepted answer (repeatable)")
	checkCmd.Flags().StringP("mode", "m", "", "Scoring mode: word, sentence or dictation (default from config)")
	checkCmd.Flags().Float64("threshold", 0, "Accuracy fraction needed to pass (default from config)")
	checkCmd.Flags().StringSlice("choices", nil, "Multiple-choice options, comma separated")

	markCmd.Flags().StringSlice("target", nil, "Target words, comma separated")
	markCmd.Flags().StringSlice("selected", nil, "Selected words, comma separated")
	markCmd.Flags().Bool("partial", false, "Pass at 60% instead of requiring an exact match")
	_ = markCmd.MarkFlagRequired("target")
}
