/*
irr.go - Internal rate of return solver

PURPOSE:
  Finds the periodic rate r with NPV(r) = sum(CF_i / (1+r)^i) = 0 for a
  signed cash-flow series. Newton's method does the fast path; when the
  derivative flattens out or Newton wanders, a bracketing bisection takes
  over so the solve still terminates.

NON-CONVERGENCE:
  A series whose flows never change sign has no real root; the solver
  reports Converged=false and callers must treat the rate as unknown, never
  as zero. The iteration cap bounds every solve.
*/
package returns

import "math"

const (
	irrEpsilon       = 1e-7
	irrMaxIterations = 100
)

// IRRResult reports the solved rate and how the solve went. Periodic and
// Annualized are meaningful only when Converged is true; they are NaN
// otherwise.
type IRRResult struct {
	Periodic   float64
	Annualized float64
	Converged  bool
	Iterations int
}

func npv(flows []float64, rate float64) float64 {
	total := 0.0
	for i, cf := range flows {
		total += cf / math.Pow(1+rate, float64(i))
	}
	return total
}

func npvDerivative(flows []float64, rate float64) float64 {
	total := 0.0
	for i, cf := range flows {
		if i == 0 {
			continue
		}
		total -= float64(i) * cf / math.Pow(1+rate, float64(i+1))
	}
	return total
}

// hasSignChange reports whether the series contains both inflows and
// outflows; without both there is no real root.
func hasSignChange(flows []float64) bool {
	hasNeg, hasPos := false, false
	for _, cf := range flows {
		if cf < 0 {
			hasNeg = true
		}
		if cf > 0 {
			hasPos = true
		}
	}
	return hasNeg && hasPos
}

// SolveIRR solves for the periodic rate and annualizes it at periodsPerYear.
func SolveIRR(flows []float64, periodsPerYear int) IRRResult {
	result := IRRResult{Periodic: math.NaN(), Annualized: math.NaN()}
	if len(flows) < 2 || !hasSignChange(flows) {
		return result
	}

	rate, iterations, ok := newtonIRR(flows)
	if !ok {
		rate, iterationsBisect, okBisect := bisectIRR(flows)
		iterations += iterationsBisect
		if !okBisect {
			result.Iterations = iterations
			return result
		}
		result.Iterations = iterations
		return annualize(result, rate, periodsPerYear)
	}

	result.Iterations = iterations
	return annualize(result, rate, periodsPerYear)
}

func annualize(result IRRResult, periodic float64, periodsPerYear int) IRRResult {
	result.Periodic = periodic
	result.Annualized = math.Pow(1+periodic, float64(periodsPerYear)) - 1
	result.Converged = true
	return result
}

// newtonIRR iterates from a conventional 10% seed. Returns ok=false when the
// derivative flattens, the iterate leaves the defined domain (rate <= -1),
// or the cap is hit without the step shrinking below epsilon.
func newtonIRR(flows []float64) (rate float64, iterations int, ok bool) {
	rate = 0.1
	for iterations = 1; iterations <= irrMaxIterations; iterations++ {
		value := npv(flows, rate)
		derivative := npvDerivative(flows, rate)
		if math.Abs(derivative) < 1e-12 {
			return rate, iterations, false
		}
		next := rate - value/derivative
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			return rate, iterations, false
		}
		if math.Abs(next-rate) < irrEpsilon {
			return next, iterations, true
		}
		rate = next
	}
	return rate, irrMaxIterations, false
}

// bisectIRR brackets a sign change of NPV on a coarse rate grid and bisects.
func bisectIRR(flows []float64) (rate float64, iterations int, ok bool) {
	lo, hi, found := bracket(flows)
	if !found {
		return 0, 0, false
	}

	fLo := npv(flows, lo)
	for iterations = 1; iterations <= irrMaxIterations; iterations++ {
		mid := (lo + hi) / 2
		fMid := npv(flows, mid)
		if hi-lo < irrEpsilon || fMid == 0 {
			return mid, iterations, true
		}
		if (fLo < 0) == (fMid < 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, irrMaxIterations, false
}

func bracket(flows []float64) (lo, hi float64, found bool) {
	grid := []float64{-0.9999, -0.99, -0.9, -0.5, -0.2, 0, 0.2, 0.5, 1, 2, 5, 10, 100}
	prev := grid[0]
	fPrev := npv(flows, prev)
	for _, r := range grid[1:] {
		f := npv(flows, r)
		if (fPrev < 0) != (f < 0) {
			return prev, r, true
		}
		prev, fPrev = r, f
	}
	return 0, 0, false
}
