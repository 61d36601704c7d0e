package estimator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairSource returns x then y, forever.
func pairSource(x, y float64) Source {
	next := 0
	return SourceFunc(func(_, _ float64) float64 {
		next++
		if next%2 == 1 {
			return x
		}
		return y
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "origin", x: 0, y: 0, want: true},
		{name: "on circle x axis", x: 1, y: 0, want: true},
		{name: "on circle y axis", x: 0, y: -1, want: true},
		{name: "corner", x: 1, y: 1, want: false},
		{name: "negative corner", x: -1, y: -1, want: false},
		{name: "just inside", x: 0.7, y: 0.7, want: true},
		{name: "just outside", x: 0.71, y: 0.71, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.x, tt.y))
		})
	}
}

func TestParseNumPoints(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "1000", want: 1000},
		{name: "surrounding whitespace", input: "  42\n", want: 42},
		{name: "leading plus", input: "+7", want: 7},
		{name: "one", input: "1", want: 1},
		{name: "letters", input: "abc", wantErr: true},
		{name: "decimal", input: "12.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "overflow", input: "99999999999999999999999", wantErr: true},
		{name: "trailing junk", input: "10x", wantErr: true},
		{name: "underscore separators rejected", input: "1_000", wantErr: true},
		{name: "comma separators rejected", input: "1,000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumPoints(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)

				var inputErr *InvalidInputError
				require.ErrorAs(t, err, &inputErr)
				assert.Equal(t, tt.input, inputErr.Input)
				assert.NotEmpty(t, inputErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimulate_InvalidInputProducesNoPoints(t *testing.T) {
	for _, input := range []string{"abc", "12.5", "", "0", "-3"} {
		t.Run(input, func(t *testing.T) {
			calls := 0
			src := SourceFunc(func(lo, _ float64) float64 {
				calls++
				return lo
			})

			outcome, err := Simulate(input, src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Nil(t, outcome)
			assert.Zero(t, calls, "no randomness should be consumed")
		})
	}
}

func TestSimulate_ConstantSources(t *testing.T) {
	tests := []struct {
		name       string
		src        Source
		wantInside int
		wantPi     float64
	}{
		{name: "always origin", src: ConstantSource(0), wantInside: 1000, wantPi: 4.0},
		{name: "always corner", src: ConstantSource(1), wantInside: 0, wantPi: 0.0},
		{name: "pair on circle", src: pairSource(0, 1), wantInside: 1000, wantPi: 4.0},
		{name: "pair outside", src: pairSource(1, 1), wantInside: 0, wantPi: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Simulate("1000", tt.src)
			require.NoError(t, err)

			assert.Equal(t, 1000, outcome.Result.NumPoints)
			assert.Equal(t, tt.wantInside, outcome.Result.InsideCount)
			assert.Equal(t, tt.wantPi, outcome.Result.PiEstimate)
			assert.Len(t, outcome.Points, 1000)
			assert.NotEmpty(t, outcome.RunID)
		})
	}
}

func TestSimulate_SinglePoint(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		outcome, err := Simulate("1", NewSource(seed))
		require.NoError(t, err)
		require.Len(t, outcome.Points, 1)
		assert.Contains(t, []float64{0, 4}, outcome.Result.PiEstimate)
	}
}

func TestSimulate_Properties(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 1000, 25_000} {
		for seed := uint64(1); seed <= 5; seed++ {
			run, err := NewRun(n, NewSource(seed))
			require.NoError(t, err)

			inside, drawn := 0, 0
			for p := range run.Points() {
				drawn++
				require.GreaterOrEqual(t, p.X, -1.0)
				require.LessOrEqual(t, p.X, 1.0)
				require.GreaterOrEqual(t, p.Y, -1.0)
				require.LessOrEqual(t, p.Y, 1.0)
				require.Equal(t, p.X*p.X+p.Y*p.Y <= 1, p.Inside)
				if p.Inside {
					inside++
				}
			}

			res, err := run.Result()
			require.NoError(t, err)
			assert.Equal(t, n, drawn)
			assert.Equal(t, inside, res.InsideCount)
			assert.GreaterOrEqual(t, res.PiEstimate, 0.0)
			assert.LessOrEqual(t, res.PiEstimate, 4.0)
			assert.Equal(t, float64(res.InsideCount), math.Round(res.PiEstimate*float64(n)/4))
		}
	}
}

func TestNewRun_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		run, err := NewRun(n, ConstantSource(0))
		assert.Nil(t, run)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestNewRun_NilSourceIsRandom(t *testing.T) {
	res, err := Estimate(500, nil)
	require.NoError(t, err)
	assert.Equal(t, 500, res.NumPoints)
}

func TestRun_StateMachine(t *testing.T) {
	run, err := NewRun(3, ConstantSource(0))
	require.NoError(t, err)
	assert.Equal(t, StateIdle, run.State())

	_, err = run.Result()
	assert.ErrorIs(t, err, ErrRunIncomplete)

	for range run.Points() {
		assert.Equal(t, StateSampling, run.State())
	}
	assert.Equal(t, StateDone, run.State())

	res, err := run.Result()
	require.NoError(t, err)
	assert.Equal(t, 3, res.InsideCount)
}

func TestRun_EarlyBreakLeavesRunIncomplete(t *testing.T) {
	run, err := NewRun(10, ConstantSource(0))
	require.NoError(t, err)

	seen := 0
	for range run.Points() {
		seen++
		if seen == 4 {
			break
		}
	}

	assert.Equal(t, 4, seen)
	assert.Equal(t, StateSampling, run.State())
	_, err = run.Result()
	assert.ErrorIs(t, err, ErrRunIncomplete)
}

func TestRun_PointsIsRestartable(t *testing.T) {
	run, err := NewRun(100, NewSource(7))
	require.NoError(t, err)

	first := 0
	for range run.Points() {
		first++
	}
	firstRes, err := run.Result()
	require.NoError(t, err)

	second := 0
	for range run.Points() {
		second++
	}
	secondRes, err := run.Result()
	require.NoError(t, err)

	assert.Equal(t, 100, first)
	assert.Equal(t, 100, second)
	assert.Equal(t, 100, firstRes.NumPoints)
	assert.Equal(t, 100, secondRes.NumPoints)
	assert.LessOrEqual(t, secondRes.InsideCount, 100)
}

func TestRun_IDsAreUnique(t *testing.T) {
	a, err := NewRun(1, nil)
	require.NoError(t, err)
	b, err := NewRun(1, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewSource_Deterministic(t *testing.T) {
	a, err := Estimate(10_000, NewSource(42))
	require.NoError(t, err)
	b, err := Estimate(10_000, NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResult_Accessors(t *testing.T) {
	res := Result{NumPoints: 4, InsideCount: 3, PiEstimate: 3}
	assert.InDelta(t, math.Pi-3, res.AbsError(), 1e-12)
	assert.InDelta(t, 0.75, res.InsideRatio(), 1e-12)
	assert.Zero(t, Result{}.InsideRatio())
}

func TestConstantSource_Clamps(t *testing.T) {
	assert.Equal(t, 1.0, ConstantSource(5).Uniform(-1, 1))
	assert.Equal(t, -1.0, ConstantSource(-5).Uniform(-1, 1))
	assert.Equal(t, 0.25, ConstantSource(0.25).Uniform(-1, 1))
}
