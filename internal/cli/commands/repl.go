package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
	"github.com/spf13/cobra"
)

const replPrompt = "points> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run simulations interactively",
		Long: `Start a prompt that runs one simulation per line.

Enter a number of points to estimate Pi. Lines starting with a dot are
commands; type .help to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)
	session := newREPLSession(cc)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     replHistoryFile(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	// Print welcome message
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Monte Carlo Pi REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Enter a number of points, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if session.eval(line) {
			break
		}
	}

	return nil
}

// replSession evaluates REPL lines against one source.
type replSession struct {
	cc   *CommandContext
	src  estimator.Source
	seed uint64
	runs int
}

func newREPLSession(cc *CommandContext) *replSession {
	return &replSession{
		cc:   cc,
		src:  newSource(cc.Cfg.Seed),
		seed: cc.Cfg.Seed,
	}
}

// eval handles one line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	r := s.cc.Renderer
	id, res, err := s.estimate(line)
	if errors.Is(err, estimator.ErrInvalidInput) {
		s.cc.Logger.Debug("invalid input", "error", err)
		r.Println(output.InvalidInputMessage)
		return false
	}
	if err != nil {
		r.Error(err.Error())
		return false
	}
	s.runs++

	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		rep := output.NewRunReport(id, res)
		rep.Seed = s.seed
		if err := r.RunResult(rep); err != nil {
			r.Error(err.Error())
		}
	default:
		r.Println(output.FormatEstimate(res.PiEstimate))
		r.Muted(fmt.Sprintf("  %s of %s points inside", r.Count(res.InsideCount), r.Count(res.NumPoints)))
	}
	return false
}

// estimate runs one simulation for line. Points are counted as they are
// drawn and never kept, so memory does not grow with the count.
func (s *replSession) estimate(line string) (string, estimator.Result, error) {
	n, err := estimator.ParseNumPoints(line)
	if err != nil {
		return "", estimator.Result{}, err
	}
	run, err := estimator.NewRun(n, s.src)
	if err != nil {
		return "", estimator.Result{}, err
	}
	for range run.Points() {
	}
	res, err := run.Result()
	if err != nil {
		return "", estimator.Result{}, err
	}
	return run.ID(), res, nil
}

func (s *replSession) dotCommand(line string) bool {
	r := s.cc.Renderer
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(r.Writer())

	case ".seed":
		if len(parts) < 2 {
			s.seed = 0
			s.src = estimator.NewRandomSource()
			r.Muted("Using a random seed")
			return false
		}
		seed, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			r.Error(fmt.Sprintf("invalid seed %q", parts[1]))
			return false
		}
		s.seed = seed
		s.src = newSource(seed)
		r.Success(fmt.Sprintf("Seed set to %d", seed))

	case ".clear":
		r.Printf("\033[H\033[2J")

	default:
		r.Error(fmt.Sprintf("Unknown command: %s (type .help for commands)", command))
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .seed [n]       Reseed the sampler (no argument for a random seed)
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - Enter a positive integer to run a simulation with that many points
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// replHistoryFile returns the history path in the user cache directory,
// or "" when there is none.
func replHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	dir = filepath.Join(dir, "mcpi")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".seed"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
