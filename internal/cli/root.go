// Package cli provides the command-line interface for mcpi.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/mcpi/internal/cli/commands"
	"github.com/leapstack-labs/mcpi/internal/cli/config"
	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version is the release version (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mcpi",
		Short: "mcpi - Monte Carlo estimation of Pi",
		Long: `mcpi estimates Pi by sampling random points in the square [-1,1]x[-1,1]
and counting how many land inside the unit circle: Pi ≈ 4 × inside / total.

Run a single estimate, watch the samples land in the terminal UI, or compare
accuracy across sample counts.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Verbose)
			ctx := config.WithLogger(cmd.Context(), logger)
			ctx = config.WithConfig(ctx, cfg)

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			ctx = output.WithRenderer(ctx, renderer)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			if cfg.Profile != "" {
				logger.Debug("using profile", "name", cfg.Profile)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Monte Carlo estimation of Pi
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./mcpi.yaml, searched upward)")
	rootCmd.PersistentFlags().Int("points", 0, "Number of points to sample (default 1000)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the sampler (0 for a random seed)")
	rootCmd.PersistentFlags().String("profile", "", "Named profile from the config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json|yaml)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewTUICommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewConvergenceCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mcpi.

To load completions:

Bash:
  $ source <(mcpi completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mcpi completion bash > /etc/bash_completion.d/mcpi
  # macOS:
  $ mcpi completion bash > $(brew --prefix)/etc/bash_completion.d/mcpi

Zsh:
  $ mcpi completion zsh > "${fpath[1]}/_mcpi"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mcpi completion fish | source

  # To load completions for each session, execute once:
  $ mcpi completion fish > ~/.config/fish/completions/mcpi.fish

PowerShell:
  PS> mcpi completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
	return cmd
}
