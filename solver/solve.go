package solver

import (
	"sort"

	"github.com/katalvlaran/lpgraph/constraint"
	"github.com/katalvlaran/lpgraph/geom"
	"github.com/katalvlaran/lpgraph/logger"
)

// Solve minimizes z = c1·x + c2·y over the region described by the raw
// constraint lines plus the implicit non-negativity constraints, by the
// graphical method.
//
// Algorithm outline:
//  1. Parse every raw line (malformed lines are dropped silently),
//     expand equalities, append -x<=0 and -y<=0.
//  2. Treat each constraint's (A, B, RHS) as a boundary line and
//     intersect every unordered pair i < j; parallel, coincident and
//     degenerate pairs are skipped.
//  3. Keep an intersection only if it satisfies every constraint within
//     Eps, plus the explicit x >= -Eps, y >= -Eps guard (redundant with
//     the non-negativity constraints, kept anyway); coordinates within
//     [-Eps, 0) are clamped to exactly 0.
//  4. Drop a candidate lying within DedupEps of an already accepted
//     vertex, so nearly-identical boundary pairs yield one corner.
//  5. With zero surviving vertices the model is infeasible: Feasible is
//     false, Best is nil.
//  6. Otherwise evaluate z at each vertex, sort ascending by z (stable:
//     ties keep discovery order) and point Best at the minimum.
//
// Non-finite objective coefficients are tolerated: vertex enumeration
// does not depend on c1, c2, so the Solution still carries the region's
// corners, with NaN objective values that callers must treat as
// "invalid optimum". See LikelyUnbounded for the advisory probe and
// TrivialMinimum for the origin-optimum advisory.
//
// Complexity: O(n²) boundary pairs, each feasibility-tested in O(n),
// so O(n³) overall — fine for the small, human-entered n this engine
// targets.
func Solve(c1, c2 float64, lines []string, opts ...Option) Solution {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	set := constraint.BuildSet(lines)
	sol := Solution{Constraints: set, C1: c1, C2: c2}

	var vertices []Vertex
	candidates := 0
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			p, ok := geom.LineIntersection(
				set[i].A, set[i].B, set[i].RHS,
				set[j].A, set[j].B, set[j].RHS,
			)
			if !ok {
				continue
			}
			candidates++

			if !feasible(set, p, o.Eps) {
				continue
			}
			if p.X < -o.Eps || p.Y < -o.Eps {
				continue
			}
			p = clampOrigin(p, o.Eps)
			if nearKnownVertex(vertices, p, o.DedupEps) {
				continue
			}
			vertices = append(vertices, Vertex{X: p.X, Y: p.Y})
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("constraints", len(set)).
		Int("candidates", candidates).
		Int("vertices", len(vertices)).
		Msg("solver: vertex enumeration complete")

	if len(vertices) == 0 {
		return sol
	}

	for k := range vertices {
		vertices[k].Z = c1*vertices[k].X + c2*vertices[k].Y
	}
	sort.SliceStable(vertices, func(i, j int) bool {
		return vertices[i].Z < vertices[j].Z
	})

	sol.Feasible = true
	sol.Vertices = vertices
	sol.Best = &vertices[0]

	return sol
}

// feasible reports whether p satisfies every constraint within eps.
func feasible(set []constraint.Constraint, p geom.Point, eps float64) bool {
	for _, c := range set {
		if !c.Holds(p.X, p.Y, eps) {
			return false
		}
	}

	return true
}

// clampOrigin snaps coordinates that are negative but within eps of
// zero to exactly 0, so reported vertices honor x >= 0, y >= 0.
func clampOrigin(p geom.Point, eps float64) geom.Point {
	if p.X < 0 && p.X >= -eps {
		p.X = 0
	}
	if p.Y < 0 && p.Y >= -eps {
		p.Y = 0
	}

	return p
}

// nearKnownVertex reports whether p lies within the Euclidean radius
// eps of an already accepted vertex. First accepted wins; later
// near-duplicates from nearly-identical boundary pairs are dropped.
func nearKnownVertex(vertices []Vertex, p geom.Point, eps float64) bool {
	for _, v := range vertices {
		dx, dy := v.X-p.X, v.Y-p.Y
		if dx*dx+dy*dy <= eps*eps {
			return true
		}
	}

	return false
}
