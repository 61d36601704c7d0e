package commands

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/mcpi/internal/tui"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive estimator",
		Long: `Open a terminal screen with a points field, the estimate and a canvas
showing every sample: green inside the circle, red outside.

Press enter to run a simulation and esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			tcfg := tuiConfig(cmd, cc)
			cc.Logger.Debug("starting tui", "columns", tcfg.Columns, "rows", tcfg.Rows)

			return tui.Run(tcfg,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}

// tuiConfig builds the terminal UI settings. An explicit --points replaces
// the configured default input.
func tuiConfig(cmd *cobra.Command, cc *CommandContext) tui.Config {
	cfg := cc.Cfg
	input := cfg.TUI.DefaultInput
	if f := cmd.Flags().Lookup("points"); f != nil && f.Changed {
		input = strconv.Itoa(cfg.Points)
	}

	return tui.Config{
		Columns:        cfg.TUI.Columns,
		Rows:           cfg.TUI.Rows,
		DefaultInput:   input,
		FrameInterval:  cfg.TUI.FrameInterval,
		PointsPerFrame: cfg.TUI.PointsPerFrame,
		InsideColor:    cfg.Canvas.InsideColor,
		OutsideColor:   cfg.Canvas.OutsideColor,
		CircleColor:    cfg.Canvas.CircleColor,
		Source:         newSource(cfg.Seed),
		Logger:         cc.Logger,
	}
}
