package estimator

import (
	"errors"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// State is the lifecycle state of a run.
type State string

// Run states.
const (
	StateIdle     State = "idle"
	StateSampling State = "sampling"
	StateDone     State = "done"
	StateFailed   State = "failed"
)

// Result is the outcome of a complete run.
type Result struct {
	NumPoints   int     `json:"num_points" yaml:"num_points"`
	InsideCount int     `json:"inside_count" yaml:"inside_count"`
	PiEstimate  float64 `json:"pi_estimate" yaml:"pi_estimate"`
}

// AbsError returns |PiEstimate - π|.
func (r Result) AbsError() float64 {
	return math.Abs(r.PiEstimate - math.Pi)
}

// InsideRatio returns the fraction of points that landed inside the circle.
func (r Result) InsideRatio() float64 {
	if r.NumPoints == 0 {
		return 0
	}
	return float64(r.InsideCount) / float64(r.NumPoints)
}

// Run is a single simulation over a fixed number of points.
//
// A Run owns its counters. Its points are produced lazily by Points, and the
// estimate becomes available from Result once a pass has drawn every point.
type Run struct {
	id        string
	numPoints int
	src       Source

	state  State
	drawn  int
	inside int
}

// NewRun creates a run of numPoints samples drawn from src.
// numPoints must be at least 1.
func NewRun(numPoints int, src Source) (*Run, error) {
	if numPoints < 1 {
		return nil, invalidInput(strconv.Itoa(numPoints), "number of points must be a positive integer")
	}
	if src == nil {
		src = NewRandomSource()
	}
	return &Run{
		id:        uuid.NewString(),
		numPoints: numPoints,
		src:       src,
		state:     StateIdle,
	}, nil
}

// ID returns the run's unique identifier.
func (r *Run) ID() string { return r.id }

// NumPoints returns the number of samples the run draws per pass.
func (r *Run) NumPoints() int { return r.numPoints }

// State returns the run's lifecycle state.
func (r *Run) State() State { return r.state }

// Points returns the run's classified samples.
//
// Every iteration is a fresh pass that resets the run's counters, so the
// sequence can be ranged over again; a new pass draws new samples from the
// source. Breaking out of the loop early leaves the run incomplete.
func (r *Run) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		r.state = StateSampling
		r.drawn = 0
		r.inside = 0

		for r.drawn < r.numPoints {
			x := r.src.Uniform(-1, 1)
			y := r.src.Uniform(-1, 1)
			p := NewPoint(x, y)

			r.drawn++
			if p.Inside {
				r.inside++
			}

			if !yield(p) {
				return
			}
		}
		r.state = StateDone
	}
}

// Result returns the estimate of the last complete pass.
func (r *Run) Result() (Result, error) {
	if r.state != StateDone {
		return Result{}, ErrRunIncomplete
	}
	return Result{
		NumPoints:   r.numPoints,
		InsideCount: r.inside,
		PiEstimate:  4 * float64(r.inside) / float64(r.numPoints),
	}, nil
}

// Estimate draws numPoints samples from src and returns the estimate
// without keeping the points.
func Estimate(numPoints int, src Source) (Result, error) {
	run, err := NewRun(numPoints, src)
	if err != nil {
		return Result{}, err
	}
	for range run.Points() {
	}
	return run.Result()
}

// maxPrealloc bounds the initial capacity of an outcome's point slice.
const maxPrealloc = 1 << 20

// Outcome is a finished simulation together with every point it drew.
type Outcome struct {
	RunID  string  `json:"run_id" yaml:"run_id"`
	Result Result  `json:"result" yaml:"result"`
	Points []Point `json:"points,omitempty" yaml:"points,omitempty"`
}

// ParseNumPoints parses a sample count typed by a user.
// Surrounding whitespace and a leading plus sign are accepted. Digit
// separators such as "1_000" are not; anything other than a positive
// base-10 integer is an *InvalidInputError.
func ParseNumPoints(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, invalidInput(text, "number of points is required")
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalidInput(text, "number of points is too large")
		}
		return 0, invalidInput(text, "number of points must be an integer")
	}
	if n < 1 {
		return 0, invalidInput(text, "number of points must be a positive integer")
	}
	return n, nil
}

// Simulate parses text as a sample count, runs the simulation and collects
// its points. Invalid text yields an *InvalidInputError and no points.
func Simulate(text string, src Source) (*Outcome, error) {
	n, err := ParseNumPoints(text)
	if err != nil {
		return nil, err
	}

	run, err := NewRun(n, src)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, min(n, maxPrealloc))
	for p := range run.Points() {
		points = append(points, p)
	}

	res, err := run.Result()
	if err != nil {
		return nil, err
	}
	return &Outcome{RunID: run.ID(), Result: res, Points: points}, nil
}
