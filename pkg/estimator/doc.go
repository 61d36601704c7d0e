// Package estimator implements the Monte Carlo estimate of π.
//
// Points are drawn uniformly from the square [-1,1]×[-1,1] and classified
// against the inscribed unit circle. The fraction of points inside, scaled
// by 4, converges in probability to π.
//
// This package contains:
//   - Source, the injectable randomness used to draw coordinates
//   - Run, a single simulation exposing its points as a lazy sequence
//   - Estimate, a run drained in constant memory
//   - Simulate, the text-in entry point that also collects every point
//   - Convergence, a repeated-trial report of estimate error by sample count
//
// The Golden Rule: pkg/estimator imports only stdlib and google/uuid.
// It never logs, draws or writes files; presentation lives in internal/.
package estimator
