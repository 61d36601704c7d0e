package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
)

// RunReport is the rendered summary of a single simulation.
type RunReport struct {
	RunID       string  `json:"run_id" yaml:"run_id"`
	NumPoints   int     `json:"num_points" yaml:"num_points"`
	InsideCount int     `json:"inside_count" yaml:"inside_count"`
	PiEstimate  float64 `json:"pi_estimate" yaml:"pi_estimate"`
	AbsError    float64 `json:"abs_error" yaml:"abs_error"`
	Seed        uint64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	PNG         string  `json:"png,omitempty" yaml:"png,omitempty"`
}

// NewRunReport builds a report from a finished run.
func NewRunReport(runID string, res estimator.Result) RunReport {
	return RunReport{
		RunID:       runID,
		NumPoints:   res.NumPoints,
		InsideCount: res.InsideCount,
		PiEstimate:  res.PiEstimate,
		AbsError:    res.AbsError(),
	}
}

// RunResult renders a run report in the effective mode.
func (r *Renderer) RunResult(rep RunReport) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(rep)
	case ModeYAML:
		return r.YAML(rep)
	case ModeMarkdown:
		r.Println(FormatHeader(1, FormatEstimate(rep.PiEstimate)))
		r.Println()
		for _, kv := range r.runFields(rep) {
			r.Println(FormatKeyValue(kv[0], kv[1]))
		}
		return nil
	default:
		r.Println(r.styles.Title.Render(FormatEstimate(rep.PiEstimate)))
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		for _, kv := range r.runFields(rep) {
			t.AppendRow(table.Row{kv[0], kv[1]})
		}
		t.Render()
		return nil
	}
}

func (r *Renderer) runFields(rep RunReport) [][2]string {
	fields := [][2]string{
		{"Run", rep.RunID},
		{"Points", r.Count(rep.NumPoints)},
		{"Inside", r.Count(rep.InsideCount)},
		{"Error", fmt.Sprintf("%.6f", rep.AbsError)},
	}
	if rep.Seed != 0 {
		fields = append(fields, [2]string{"Seed", fmt.Sprintf("%d", rep.Seed)})
	}
	if rep.PNG != "" {
		fields = append(fields, [2]string{"Canvas", rep.PNG})
	}
	return fields
}

// ConvergenceReport is the rendered accuracy study.
type ConvergenceReport struct {
	Trials int                          `json:"trials" yaml:"trials"`
	Seed   uint64                       `json:"seed,omitempty" yaml:"seed,omitempty"`
	Rows   []estimator.ConvergencePoint `json:"rows" yaml:"rows"`
}

// Convergence renders a convergence report in the effective mode.
func (r *Renderer) Convergence(rep ConvergenceReport) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(rep)
	case ModeYAML:
		return r.YAML(rep)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Points", "Trials", "Mean estimate", "Mean |error|", "Std dev"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	for _, row := range rep.Rows {
		t.AppendRow(table.Row{
			r.Count(row.NumPoints),
			row.Trials,
			fmt.Sprintf("%.6f", row.MeanEstimate),
			fmt.Sprintf("%.6f", row.MeanAbsError),
			fmt.Sprintf("%.6f", row.StdDev),
		})
	}

	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(1, "Convergence"))
		r.Println()
		t.RenderMarkdown()
		return nil
	}
	r.Header(1, fmt.Sprintf("Convergence (%d trials per size)", rep.Trials))
	t.Render()
	return nil
}
