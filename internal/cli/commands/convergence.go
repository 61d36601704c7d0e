package commands

import (
	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
	"github.com/spf13/cobra"
)

// NewConvergenceCommand creates the convergence command.
func NewConvergenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convergence",
		Short: "Show how the estimate improves with more samples",
		Long: `Run repeated simulations at increasing sample counts and report the
mean estimate, mean absolute error and spread for each count.

With --seed, trial i uses seed+i so the whole report is reproducible.`,
		Example: `  mcpi convergence
  mcpi convergence --sizes 100,10000,1000000 --trials 50 --seed 7
  mcpi convergence -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvergence(cmd)
		},
	}

	cmd.Flags().IntSlice("sizes", nil, "Sample counts to compare (default 100,1000,10000,100000)")
	cmd.Flags().Int("trials", 0, "Runs per sample count (default 20)")

	return cmd
}

func runConvergence(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	cfg := cc.Cfg

	var sources func(trial int) estimator.Source
	if cfg.Seed != 0 {
		sources = func(trial int) estimator.Source {
			return estimator.NewSource(cfg.Seed + uint64(trial))
		}
	}

	cc.Logger.Debug("running convergence study", "sizes", cfg.Convergence.Sizes, "trials", cfg.Convergence.Trials)
	rows, err := estimator.Convergence(cfg.Convergence.Sizes, cfg.Convergence.Trials, sources)
	if err != nil {
		return err
	}

	return cc.Renderer.Convergence(output.ConvergenceReport{
		Trials: cfg.Convergence.Trials,
		Seed:   cfg.Seed,
		Rows:   rows,
	})
}
