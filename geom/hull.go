package geom

import "sort"

// Cross returns the z-component of (b-a) × (c-a): positive for a
// counterclockwise turn a→b→c, negative for clockwise, zero for
// collinear points.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// ConvexHull orders pts into the convex hull boundary, counterclockwise,
// using the monotone-chain (Andrew) scan.
//
// Algorithm outline:
//  1. Sort a copy of the input by X, ties by Y.
//  2. Build the lower chain left to right, popping the last accepted
//     point whenever the new point would make a non-positive turn
//     (Cross <= 0). Collinear points are therefore excluded from the
//     boundary — filling a region does not need them.
//  3. Build the upper chain right to left the same way.
//  4. Concatenate both chains, each minus its final point, so the two
//     extreme points are not duplicated.
//
// Fewer than 2 input points are returned unchanged (as a copy). Callers
// rendering a filled region should treat fewer than 3 hull points as
// "no region to fill".
//
// Complexity: O(n log n) for the sort, O(n) for the chains.
func ConvexHull(pts []Point) []Point {
	if len(pts) < 2 {
		return append([]Point(nil), pts...)
	}

	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}

		return sorted[i].Y < sorted[j].Y
	})

	// Lower chain: left to right.
	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper chain: right to left.
	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop each chain's last point: it is the other chain's first.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	return hull
}
