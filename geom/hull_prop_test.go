package geom_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lpgraph/geom"
)

// pointGen yields points on a coarse grid; duplicates and collinear
// runs are frequent on purpose, since those are the hull's edge cases.
func pointGen() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(-10, 10),
		gen.IntRange(-10, 10),
	).Map(func(vals []interface{}) geom.Point {
		return geom.Point{X: float64(vals[0].(int)), Y: float64(vals[1].(int))}
	})
}

// TestConvexHull_Properties checks, over random point clouds:
//
//   - the hull is a subsequence of the input (no invented points),
//   - the hull is never longer than the input,
//   - every input point lies inside or on the returned polygon.
func TestConvexHull_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("hull points come from the input and never outnumber it", prop.ForAll(
		func(pts []geom.Point) bool {
			hull := geom.ConvexHull(pts)
			if len(hull) > len(pts) {
				return false
			}
			for _, h := range hull {
				if !containsPoint(pts, h) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(pointGen()),
	))

	properties.Property("every input point lies inside or on the hull polygon", prop.ForAll(
		func(pts []geom.Point) bool {
			hull := geom.ConvexHull(pts)
			if len(hull) < 3 {
				return true // no polygon to test against
			}
			for _, p := range pts {
				if !insideOrOnHull(hull, p) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(pointGen()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// containsPoint reports whether p occurs in pts (exact comparison is
// sound here: hull points are copied, never recomputed).
func containsPoint(pts []geom.Point, p geom.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}

	return false
}

// insideOrOnHull tests containment in a CCW convex polygon: p is inside
// or on the boundary iff it is on the left of (or on) every edge.
func insideOrOnHull(hull []geom.Point, p geom.Point) bool {
	n := len(hull)
	for i := 0; i < n; i++ {
		if geom.Cross(hull[i], hull[(i+1)%n], p) < -1e-9 {
			return false
		}
	}

	return true
}
