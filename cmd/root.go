package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/config"
	"github.com/abhisek/lexis/internal/difficulty"
	"github.com/abhisek/lexis/internal/evaluate"
	"github.com/abhisek/lexis/internal/logging"
	"github.com/abhisek/lexis/internal/practice"
	"github.com/abhisek/lexis/internal/selector"
	"github.com/abhisek/lexis/internal/store"
	"github.com/abhisek/lexis/internal/wordlist"
)

var rootCmd = &cobra.Command{
	Use:   "lexis",
	Short: "Adaptive vocabulary practice",
	Long: `Lexis picks the words a learner should practice next, scores their answers
and adapts the difficulty to how they are doing.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// env holds what setup resolved for the running command.
var env struct {
	cfg *config.Config
	log *logrus.Logger
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides LEXIS_DB env var)")
	flags.String("config", "", "Path to config file (default ./lexis.yaml or ~/.config/lexis/lexis.yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("user", "", "Learner ID")
	flags.String("lang", "", "Target language code, e.g. es or fr")
	flags.String("advisor", "enhanced", "Difficulty advisor: enhanced or basic")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("user"); v != "" {
		cfg.Learner.UserID = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Learner.Language = v
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())

	if !wordlist.Builtin().Supports(cfg.Learner.Language) {
		log.WithField("language", cfg.Learner.Language).
			Warnf("no word lists for language, falling back to %q lists", wordlist.DefaultLanguage)
	}

	env.cfg = cfg
	env.log = log
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then LEXIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := env.cfg.DB.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the learner database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, env.log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newAdvisor builds the difficulty advisor selected by --advisor.
func newAdvisor(cmd *cobra.Command) (difficulty.Advisor, error) {
	name, _ := cmd.Flags().GetString("advisor")
	switch name {
	case "", "enhanced":
		return difficulty.NewEnhancedAdvisor(env.cfg.Difficulty, env.log), nil
	case "basic":
		return difficulty.NewBasicAdvisor(env.cfg.Difficulty, env.log), nil
	default:
		return nil, fmt.Errorf("invalid advisor %q: must be enhanced or basic", name)
	}
}

// newService wires a practice service over st from the loaded config.
func newService(cmd *cobra.Command, st *store.Store) (*practice.Service, error) {
	advisor, err := newAdvisor(cmd)
	if err != nil {
		return nil, err
	}
	cfg := env.cfg
	sel := selector.New(wordlist.Builtin(),
		selector.WithProbabilities(cfg.Selection.Probabilities),
		selector.WithLogger(env.log),
	)
	return practice.NewService(st.Repos(),
		practice.Settings{
			UserID:       cfg.Learner.UserID,
			Language:     cfg.Learner.Language,
			RecentWindow: cfg.Selection.RecentWindow,
			Multi:        cfg.Selection.Multi,
			Adaptive:     cfg.Selection.Adaptive,
		},
		practice.WithSelector(sel),
		practice.WithAdvisor(advisor),
		practice.WithEvaluator(evaluate.NewEvaluator(cfg.Evaluation.Threshold)),
		practice.WithLogger(env.log),
	), nil
}
