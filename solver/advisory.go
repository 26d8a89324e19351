package solver

import "github.com/katalvlaran/lpgraph/geom"

// TrivialMinimum reports whether the solve landed on the obvious answer:
// both objective coefficients non-negative and the optimum at the origin
// with z = 0 (within DefaultEps). With c1, c2 >= 0 the origin minimizes
// the objective whenever it is feasible, so the constraint set did not
// actually shape the optimum — worth surfacing to the user as a hint
// that a >= constraint may be missing or a sign flipped.
func TrivialMinimum(sol Solution) bool {
	if !sol.Feasible || sol.Best == nil {
		return false
	}
	if sol.C1 < 0 || sol.C2 < 0 {
		return false
	}

	return geom.NearlyEqual(sol.Best.X, 0, DefaultEps) &&
		geom.NearlyEqual(sol.Best.Y, 0, DefaultEps) &&
		geom.NearlyEqual(sol.Best.Z, 0, DefaultEps)
}
