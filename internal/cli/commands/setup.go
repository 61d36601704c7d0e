package commands

import (
	"log/slog"

	"github.com/leapstack-labs/mcpi/internal/cli/config"
	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/leapstack-labs/mcpi/internal/render"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd from the config,
// logger and renderer the root command stored in its context. Commands run
// on their own fall back to the loaded config and a renderer for it.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	r, ok := output.FromContext(ctx)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: r,
	}
}

// newSource returns a seeded source, or a random one for seed 0.
func newSource(seed uint64) estimator.Source {
	if seed == 0 {
		return estimator.NewRandomSource()
	}
	return estimator.NewSource(seed)
}

// renderOptions maps canvas settings onto PNG renderer options.
func renderOptions(c config.CanvasConfig) render.Options {
	opts := render.DefaultOptions()
	opts.Width = c.Width
	opts.Height = c.Height
	opts.PointRadius = c.PointRadius
	opts.InsideColor = c.InsideColor
	opts.OutsideColor = c.OutsideColor
	opts.CircleColor = c.CircleColor
	return opts
}
