package solver

import "math"

// LikelyUnbounded probes whether the objective can be decreased without
// limit from the solution's optimum: it walks ProbeSteps fixed steps of
// ProbeStep along the steepest-descent unit direction normalize(-C1,-C2)
// and returns true only if every step stays feasible (tolerance
// ProbeEps, looser than the solver's Eps on purpose) and non-negative.
//
// This is a bounded-horizon numerical heuristic, not a proof. It can
// report false negatives — a region unbounded along some direction other
// than straight-line steepest descent — and is advisory only: a true
// result accompanies a valid (if misleading) Best, never replaces it.
// An exact recession-cone test could be swapped in here without touching
// Solve's contract.
//
// Only meaningful when sol.Feasible; infeasible solutions and a zero
// objective gradient (a constant objective is never unbounded) both
// return false.
//
// Complexity: O(ProbeSteps · n) for n constraints.
func LikelyUnbounded(sol Solution, opts ...Option) bool {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !sol.Feasible || sol.Best == nil {
		return false
	}
	if sol.C1 == 0 && sol.C2 == 0 {
		return false
	}

	norm := math.Hypot(sol.C1, sol.C2)
	dx, dy := -sol.C1/norm, -sol.C2/norm

	x, y := sol.Best.X, sol.Best.Y
	for step := 0; step < o.ProbeSteps; step++ {
		x += o.ProbeStep * dx
		y += o.ProbeStep * dy

		if x < -o.ProbeEps || y < -o.ProbeEps {
			return false
		}
		for _, c := range sol.Constraints {
			if !c.Holds(x, y, o.ProbeEps) {
				return false
			}
		}
	}

	return true
}
