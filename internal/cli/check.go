package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"genre-generator/internal/pipeline"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that generated artifacts are up to date",
		Long: `Generate in memory and compare with the artifacts on disk.

Stale or missing files are printed as unified diffs and the command exits
non-zero. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pipeline.Check(a.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if result.UpToDate() {
				fmt.Fprintf(out, "✓ %d entries up to date\n", result.Entries)

				return nil
			}

			for _, stale := range result.Stale {
				switch {
				case stale.Missing:
					fmt.Fprintf(out, "✗ %s is missing\n", stale.Path)
				case stale.Obsolete:
					fmt.Fprintf(out, "✗ %s is obsolete, the enum is disabled\n", stale.Path)
				default:
					fmt.Fprintf(out, "✗ %s is out of date\n", stale.Path)
				}

				fmt.Fprint(out, stale.Diff)
			}

			return result.Err()
		},
	}
}
