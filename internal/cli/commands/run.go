package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/leapstack-labs/mcpi/internal/render"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	PNG    string
	Events bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [points]",
		Short: "Estimate Pi from random samples",
		Long: `Sample points uniformly in the square [-1,1]x[-1,1] and estimate Pi
from the fraction that lands inside the unit circle.

The number of points comes from the argument, --points, or the config file.`,
		Example: `  # Estimate with the configured number of points
  mcpi run

  # Reproducible run with a canvas image
  mcpi run 50000 --seed 42 --png pi.png

  # Stream every sample as JSON lines
  mcpi run 1000 --events`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.PNG, "png", "", "Write the canvas to a PNG file")
	cmd.Flags().BoolVar(&opts.Events, "events", false, "Stream run events as JSON lines")

	return cmd
}

func runRun(cmd *cobra.Command, args []string, opts *RunOptions) error {
	cc := NewCommandContext(cmd)
	cfg := cc.Cfg

	text := strconv.Itoa(cfg.Points)
	if len(args) == 1 {
		text = args[0]
	}
	n, err := estimator.ParseNumPoints(text)
	if err != nil {
		return err
	}

	run, err := estimator.NewRun(n, newSource(cfg.Seed))
	if err != nil {
		return err
	}
	cc.Logger.Debug("starting run", "run_id", run.ID(), "points", n, "seed", cfg.Seed)

	var canvas *render.Renderer
	if opts.PNG != "" {
		canvas, err = render.New(renderOptions(cfg.Canvas))
		if err != nil {
			return fmt.Errorf("failed to create canvas: %w", err)
		}
		defer func() { _ = canvas.Close() }()
	}

	var events *output.EventWriter
	if opts.Events {
		events = output.NewEventWriter(cmd.OutOrStdout(), run.ID())
		if err := events.Start(n); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}

	for p := range run.Points() {
		if canvas != nil {
			if err := canvas.DrawPoint(p); err != nil {
				return fmt.Errorf("failed to draw point: %w", err)
			}
		}
		if events != nil {
			if err := events.Point(p); err != nil {
				return fmt.Errorf("failed to write event: %w", err)
			}
		}
	}

	res, err := run.Result()
	if err != nil {
		return err
	}
	cc.Logger.Info("run complete", "run_id", run.ID(), "estimate", res.PiEstimate, "inside", res.InsideCount)

	if canvas != nil {
		if err := canvas.SavePNG(opts.PNG); err != nil {
			return fmt.Errorf("failed to save canvas: %w", err)
		}
		cc.Logger.Debug("canvas saved", "path", opts.PNG, "points", canvas.Drawn())
	}

	if events != nil {
		if err := events.Complete(res); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		return nil
	}

	rep := output.NewRunReport(run.ID(), res)
	rep.Seed = cfg.Seed
	rep.PNG = opts.PNG
	return cc.Renderer.RunResult(rep)
}
