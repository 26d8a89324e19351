package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpgraph/solver"
)

// TestLikelyUnbounded_OpenQuadrant is the canonical positive case:
// minimizing -x-y (maximization in disguise) over the bare non-negative
// quadrant decreases forever along the diagonal.
func TestLikelyUnbounded_OpenQuadrant(t *testing.T) {
	sol := solver.Solve(-1, -1, nil)
	require.True(t, sol.Feasible)

	assert.True(t, solver.LikelyUnbounded(sol))
}

// TestLikelyUnbounded_BoundedBox stays false when the descent direction
// runs into a boundary.
func TestLikelyUnbounded_BoundedBox(t *testing.T) {
	sol := solver.Solve(-1, -1, []string{"x<=6", "y<=7"})
	require.True(t, sol.Feasible)
	require.NotNil(t, sol.Best)

	// Best sits at the (6,7) corner; the very first probe step leaves
	// the box.
	assert.InDelta(t, 6, sol.Best.X, 1e-9)
	assert.InDelta(t, 7, sol.Best.Y, 1e-9)
	assert.False(t, solver.LikelyUnbounded(sol))
}

// TestLikelyUnbounded_ZeroGradient: a constant objective is never
// unbounded, whatever the region looks like.
func TestLikelyUnbounded_ZeroGradient(t *testing.T) {
	sol := solver.Solve(0, 0, nil)
	require.True(t, sol.Feasible)

	assert.False(t, solver.LikelyUnbounded(sol))
}

// TestLikelyUnbounded_Infeasible is false when there is no optimum to
// probe from.
func TestLikelyUnbounded_Infeasible(t *testing.T) {
	sol := solver.Solve(-1, -1, []string{"x+y<=-5"})
	require.False(t, sol.Feasible)

	assert.False(t, solver.LikelyUnbounded(sol))
}

// TestLikelyUnbounded_SingleOpenDirection probes a half-open strip:
// descent along -y with only y unbounded... the strip 0<=x<=1 is
// unbounded upward, and the objective c=(0,-1) decreases along +y.
func TestLikelyUnbounded_SingleOpenDirection(t *testing.T) {
	sol := solver.Solve(0, -1, []string{"x<=1"})
	require.True(t, sol.Feasible)

	assert.True(t, solver.LikelyUnbounded(sol))
}

// TestLikelyUnbounded_FalseNegativeByDesign documents the heuristic's
// known blind spot: the region is unbounded, but not along the
// straight-line steepest-descent direction, so the probe reports false.
func TestLikelyUnbounded_FalseNegativeByDesign(t *testing.T) {
	// minimize -x-y over {y <= 2}: the region is unbounded along +x,
	// but the diagonal descent ray exits through y=2 after a few steps.
	sol := solver.Solve(-1, -1, []string{"y<=2"})
	require.True(t, sol.Feasible)

	assert.False(t, solver.LikelyUnbounded(sol), "advisory probe misses off-axis recession by design")
}

// TestTrivialMinimum_Advisory covers both directions of the advisory.
func TestTrivialMinimum_Advisory(t *testing.T) {
	assert.True(t, solver.TrivialMinimum(solver.Solve(3, 5, []string{"x<=6", "y<=7"})))

	// Negative coefficient: the origin is no longer the trivial answer.
	assert.False(t, solver.TrivialMinimum(solver.Solve(-3, 5, []string{"x<=6", "y<=7"})))

	// Optimum away from the origin.
	assert.False(t, solver.TrivialMinimum(solver.Solve(1, 1, []string{"x+y>=4"})))

	// Infeasible model has no minimum at all.
	assert.False(t, solver.TrivialMinimum(solver.Solve(1, 1, []string{"x+y<=-5"})))
}
