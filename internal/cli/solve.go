package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bimatch/matching"
)

// errNoPerfectMatching is returned by solve --perfect when the maximum
// matching does not saturate both partitions.
var errNoPerfectMatching = errors.New("no perfect matching exists")

// newSolveCmd builds the solve subcommand.
func newSolveCmd() *cobra.Command {
	var (
		perfect bool
		cover   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <scenario.toml>",
		Short: "Compute a maximum matching for a TOML scenario",
		Long: `Solve reads a TOML scenario file (left, right, edges = [[u, v], ...])
and prints the maximum matching's size and both match mappings.
With --perfect the command fails unless the matching is perfect;
with --cover it also prints a König minimum vertex cover.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			logger.Debug("scenario loaded", "left", g.LeftSize, "right", g.RightSize)

			m := matching.NewMatcher(g)
			var mm matching.Matching
			if perfect {
				var ok bool
				if mm, ok = m.PerfectMatching(); !ok {
					return errNoPerfectMatching
				}
			} else {
				mm = m.MaximumMatching()
			}
			logger.Info("matching computed", "size", mm.Size)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "size:", mm.Size)
			fmt.Fprintln(out, "matchLeft: ", mm.Left)
			fmt.Fprintln(out, "matchRight:", mm.Right)
			if cover {
				coverL, coverR := matching.MinVertexCover(g)
				fmt.Fprintln(out, "cover left: ", coverL)
				fmt.Fprintln(out, "cover right:", coverR)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&perfect, "perfect", false, "require a perfect matching")
	cmd.Flags().BoolVar(&cover, "cover", false, "also print a minimum vertex cover")

	return cmd
}
