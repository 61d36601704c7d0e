// Package tui is the interactive terminal front end: a points field, a
// run action, the estimate label and a character canvas.
//
// The model never samples on the event loop. A run executes inside a
// tea.Cmd that folds its points into a canvas-sized grid, keeping only the
// first RevealLimit points for the frame-by-frame reveal. Memory therefore
// depends on the canvas and not on the number of points.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/mcpi/internal/cli/output"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
)

// Config configures the terminal UI.
type Config struct {
	Columns        int
	Rows           int
	DefaultInput   string
	FrameInterval  time.Duration // 0 draws a run in one frame
	PointsPerFrame int
	RevealLimit    int // points replayed by the reveal before the final canvas is shown
	InsideColor    string
	OutsideColor   string
	CircleColor    string

	// Source feeds every run. Nil means a randomly seeded source.
	Source estimator.Source
	Logger *slog.Logger
}

// DefaultConfig returns the settings used when no configuration is loaded.
func DefaultConfig() Config {
	return Config{
		Columns:        48,
		Rows:           24,
		DefaultInput:   "1000",
		FrameInterval:  16 * time.Millisecond,
		PointsPerFrame: 250,
		RevealLimit:    20000,
		InsideColor:    string(output.ColorInside),
		OutsideColor:   string(output.ColorOutside),
		CircleColor:    string(output.ColorCircle),
	}
}

// MaxInputDigits caps the points field, so a run is at most 999,999,999 points.
const MaxInputDigits = 9

// outcome is a finished run reduced to what the screen draws.
type outcome struct {
	runID  string
	result estimator.Result
	sample []estimator.Point // first points drawn, in order
	final  *grid             // every point folded onto the canvas
}

// outcomeMsg carries a finished simulation back to the model.
type outcomeMsg struct {
	seq     int
	outcome *outcome
	err     error
}

// frameMsg asks the model to reveal the next batch of points.
type frameMsg struct {
	seq int
}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	invalid lipgloss.Style
	help    lipgloss.Style
	border  lipgloss.Style
	inside  lipgloss.Style
	outside lipgloss.Style
	circle  lipgloss.Style
}

func newStyles(cfg Config) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Bold(true),
		invalid: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.OutsideColor)),
		help:    lipgloss.NewStyle().Faint(true),
		border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		inside:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.InsideColor)),
		outside: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.OutsideColor)),
		circle:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.CircleColor)),
	}
}

// Model is the bubbletea model for the estimator screen.
type Model struct {
	cfg    Config
	logger *slog.Logger
	src    estimator.Source
	styles styles

	input textinput.Model
	grid  *grid
	label string
	err   bool

	// seq identifies the current run; messages from older runs are dropped.
	seq      int
	state    estimator.State
	outcome  *outcome
	pending  []estimator.Point
	quitting bool
}

// New creates the model.
func New(cfg Config) Model {
	def := DefaultConfig()
	if cfg.Columns <= 0 {
		cfg.Columns = def.Columns
	}
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.PointsPerFrame <= 0 {
		cfg.PointsPerFrame = def.PointsPerFrame
	}
	if cfg.RevealLimit <= 0 {
		cfg.RevealLimit = def.RevealLimit
	}
	if cfg.InsideColor == "" {
		cfg.InsideColor = def.InsideColor
	}
	if cfg.OutsideColor == "" {
		cfg.OutsideColor = def.OutsideColor
	}
	if cfg.CircleColor == "" {
		cfg.CircleColor = def.CircleColor
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	src := cfg.Source
	if src == nil {
		src = estimator.NewRandomSource()
	}

	ti := textinput.New()
	ti.Prompt = "Number of Points: "
	ti.Placeholder = "1000"
	ti.CharLimit = MaxInputDigits
	ti.SetValue(cfg.DefaultInput)
	ti.Focus()

	return Model{
		cfg:    cfg,
		logger: logger,
		src:    src,
		styles: newStyles(cfg),
		input:  ti,
		grid:   newGrid(cfg.Columns, cfg.Rows),
		label:  "Estimated Pi: ",
		state:  estimator.StateIdle,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.startRun()
		}

	case outcomeMsg:
		return m.handleOutcome(msg)

	case frameMsg:
		if msg.seq != m.seq || !m.Running() {
			return m, nil
		}
		return m.revealFrame()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startRun launches a simulation for the current input. Enter is ignored
// while a run is in progress so the source is never shared.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	if m.Running() {
		return m, nil
	}
	m.seq++
	m.state = estimator.StateSampling
	m.logger.Debug("starting run", "input", m.input.Value(), "seq", m.seq)
	return m, m.simulate(m.seq, m.input.Value())
}

func (m Model) simulate(seq int, text string) tea.Cmd {
	src, cols, rows, limit := m.src, m.cfg.Columns, m.cfg.Rows, m.cfg.RevealLimit
	return func() tea.Msg {
		out, err := sample(text, src, cols, rows, limit)
		return outcomeMsg{seq: seq, outcome: out, err: err}
	}
}

// sample runs the simulation for text and folds its points onto a
// cols x rows grid, keeping at most limit of them for the reveal.
func sample(text string, src estimator.Source, cols, rows, limit int) (*outcome, error) {
	n, err := estimator.ParseNumPoints(text)
	if err != nil {
		return nil, err
	}
	run, err := estimator.NewRun(n, src)
	if err != nil {
		return nil, err
	}

	final := newGrid(cols, rows)
	points := make([]estimator.Point, 0, min(n, limit))
	for p := range run.Points() {
		final.plot(p)
		if len(points) < limit {
			points = append(points, p)
		}
	}

	res, err := run.Result()
	if err != nil {
		return nil, err
	}
	return &outcome{runID: run.ID(), result: res, sample: points, final: final}, nil
}

func (m Model) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	if msg.err != nil {
		m.state = estimator.StateFailed
		m.err = true
		m.label = output.InvalidInputMessage
		m.logger.Debug("run rejected", "error", msg.err)
		return m, nil
	}

	m.err = false
	m.outcome = msg.outcome
	m.grid.reset()
	m.pending = msg.outcome.sample
	m.label = "Sampling..."
	m.logger.Debug("run complete", "run_id", msg.outcome.runID, "estimate", msg.outcome.result.PiEstimate)

	if m.cfg.FrameInterval <= 0 {
		m.pending = nil
		return m.finishReveal(), nil
	}
	return m.revealFrame()
}

func (m Model) revealFrame() (tea.Model, tea.Cmd) {
	n := min(m.cfg.PointsPerFrame, len(m.pending))
	for _, p := range m.pending[:n] {
		m.grid.plot(p)
	}
	m.pending = m.pending[n:]
	if len(m.pending) == 0 {
		return m.finishReveal(), nil
	}
	seq := m.seq
	return m, tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// finishReveal replaces the replayed sample with the full folded canvas.
func (m Model) finishReveal() Model {
	m.grid.copyFrom(m.outcome.final)
	m.state = estimator.StateDone
	m.label = output.FormatEstimate(m.outcome.result.PiEstimate)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	label := m.styles.label.Render(m.label)
	if m.err {
		label = m.styles.invalid.Render(m.label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Monte Carlo Pi Estimation"),
		"",
		m.input.View(),
		label,
		m.styles.border.Render(m.grid.render(m.styles)),
		m.styles.help.Render("enter: run simulation (up to 999,999,999 points) • esc: quit"),
	)
}

// Label returns the current result label text.
func (m Model) Label() string { return m.label }

// Result returns the estimate of the last successful run.
func (m Model) Result() (estimator.Result, bool) {
	if m.outcome == nil {
		return estimator.Result{}, false
	}
	return m.outcome.result, true
}

// RunID returns the identifier of the last successful run, or "".
func (m Model) RunID() string {
	if m.outcome == nil {
		return ""
	}
	return m.outcome.runID
}

// State returns the screen's run state: idle before the first run, sampling
// while a run is computed or revealed, then done or failed.
func (m Model) State() estimator.State { return m.state }

// Running reports whether a run is being sampled or revealed.
func (m Model) Running() bool { return m.state == estimator.StateSampling }

// Plotted returns the number of points currently on the canvas.
func (m Model) Plotted() int { return m.grid.plotted }

// Run starts the program on the terminal and blocks until the user quits.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(cfg), opts...).Run()
	return err
}
