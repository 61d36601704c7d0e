package estimator

import (
	"math"
	"strconv"
)

// ConvergencePoint summarises repeated runs at one sample count.
type ConvergencePoint struct {
	NumPoints    int     `json:"num_points" yaml:"num_points"`
	Trials       int     `json:"trials" yaml:"trials"`
	MeanEstimate float64 `json:"mean_estimate" yaml:"mean_estimate"`
	MeanAbsError float64 `json:"mean_abs_error" yaml:"mean_abs_error"`
	StdDev       float64 `json:"std_dev" yaml:"std_dev"`
}

// DefaultConvergenceSizes are the sample counts reported when none are given.
var DefaultConvergenceSizes = []int{100, 1_000, 10_000, 100_000}

// Convergence runs trials independent runs for every size in sizes and
// reports how the estimate's error behaves as the sample count grows.
//
// newSource is called once per run with a trial number that is unique across
// the whole report, so seeded sources give reproducible reports. A nil
// newSource uses randomly seeded sources. Runs execute one after another.
func Convergence(sizes []int, trials int, newSource func(trial int) Source) ([]ConvergencePoint, error) {
	if len(sizes) == 0 {
		return nil, invalidInput("", "at least one sample count is required")
	}
	if trials < 1 {
		return nil, invalidInput(strconv.Itoa(trials), "number of trials must be a positive integer")
	}
	for _, n := range sizes {
		if n < 1 {
			return nil, invalidInput(strconv.Itoa(n), "number of points must be a positive integer")
		}
	}
	if newSource == nil {
		newSource = func(int) Source { return NewRandomSource() }
	}

	report := make([]ConvergencePoint, 0, len(sizes))
	trial := 0
	for _, n := range sizes {
		estimates := make([]float64, 0, trials)
		var sumAbsErr float64
		for range trials {
			res, err := Estimate(n, newSource(trial))
			if err != nil {
				return nil, err
			}
			trial++
			estimates = append(estimates, res.PiEstimate)
			sumAbsErr += res.AbsError()
		}

		mean := meanOf(estimates)
		report = append(report, ConvergencePoint{
			NumPoints:    n,
			Trials:       trials,
			MeanEstimate: mean,
			MeanAbsError: sumAbsErr / float64(trials),
			StdDev:       stdDevOf(estimates, mean),
		})
	}
	return report, nil
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDevOf is the population standard deviation around mean.
func stdDevOf(values []float64, mean float64) float64 {
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}
