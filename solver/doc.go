// Package solver minimizes a two-variable linear objective over a
// polygonal feasible region by the graphical method: enumerate every
// boundary-pair intersection, keep the feasible ones, evaluate the
// objective at each corner, report the minimum.
//
// Overview:
//
//   - Solve(c1, c2, lines) parses the raw constraint lines (dropping
//     malformed ones), appends the implicit non-negativity constraints,
//     and returns a Solution: feasibility flag, all vertices sorted
//     ascending by objective value, the minimizing vertex, and the
//     normalized constraint set the solve actually ran against.
//   - LikelyUnbounded(sol) is an advisory fixed-step probe along the
//     steepest-descent direction; true means the objective very likely
//     has no finite minimum over the region.
//   - TrivialMinimum(sol) flags the degenerate "optimum at the origin
//     with z=0" outcome that usually signals an under-constrained model.
//   - Solution.Hull() orders the vertices counterclockwise for region
//     rendering.
//
// Error handling:
//
//	Solve never fails. Malformed constraint lines are dropped (a typo in
//	one line must not block solving the rest), an empty feasible region
//	is a structured {Feasible: false} result, and non-finite objective
//	coefficients propagate as NaN objective values that callers must
//	treat as "invalid optimum, do not trust" — branch on Feasible before
//	reading Best, and check NaN before displaying z.
//
// Tolerances:
//
//	Vertex acceptance uses Eps=1e-9; vertex deduplication uses a 1e-7
//	Euclidean radius; the unboundedness probe checks feasibility at the
//	looser 1e-7. The asymmetry between solver and probe tolerances is
//	intentional: the probe is advisory, and the looser bound avoids
//	false "unbounded" flags when the descent ray grazes a boundary.
//	All of these are overridable through functional options.
//
// Concurrency and state:
//
//	The engine is purely functional: each Solve builds a fresh Solution
//	from its arguments, holds no cross-invocation state and performs no
//	I/O beyond optional debug logging. A Solution is an immutable
//	snapshot; embedders refreshing on rapid user input should replace
//	the previous Solution atomically and run solves sequentially — a
//	single solve completes in microseconds for realistic input sizes.
//
// Complexity:
//
//	O(n²) boundary pairs × O(n) feasibility checks = O(n³) for n total
//	constraints (user lines, ×2 for equalities, +2 implicit). n is
//	small by construction: the lines are typed by a human.
package solver
