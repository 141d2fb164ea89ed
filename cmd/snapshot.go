package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexis/internal/snapshot"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a learner snapshot",
	Long: `Import word records, session history and recently used words from a JSON
snapshot. Stored records for the same words are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		snap, err := snapshot.Decode(raw, env.log)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := snapshot.Import(cmd.Context(), st.Repos(), snap, time.Now()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words and %d sessions for %s (%s).\n",
			len(snap.Words), len(snap.Sessions), snap.UserID, snap.Language)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the learner's data as a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := snapshot.Export(cmd.Context(), st.Repos(), env.cfg.Learner.UserID, env.cfg.Learner.Language)
		if err != nil {
			return err
		}
		raw, err := snapshot.Encode(snap)
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		}
		return os.WriteFile(output, raw, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
