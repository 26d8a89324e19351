package geom

import "math"

// NearlyEqual reports whether a and b differ by at most eps in absolute
// value. It is the tolerance comparison used throughout the engine to
// keep floating error from flipping feasibility and equality decisions.
// NaN inputs are never nearly equal to anything, including themselves.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// LineIntersection solves the 2×2 system
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// by Cramer's rule and returns the intersection point of the two
// boundary lines.
//
// ok is false when the determinant a1·b2 - a2·b1 is within DetEps of
// zero — parallel or coincident lines, including the degenerate case of
// a line declared with a=b=0, which must yield no point rather than a
// division by zero — or when either resulting coordinate is non-finite.
//
// Complexity: O(1).
func LineIntersection(a1, b1, c1, a2, b2, c2 float64) (p Point, ok bool) {
	det := a1*b2 - a2*b1
	if NearlyEqual(det, 0, DetEps) {
		return Point{}, false
	}

	p.X = (c1*b2 - c2*b1) / det
	p.Y = (a1*c2 - a2*c1) / det
	if !IsFinite(p.X) || !IsFinite(p.Y) {
		return Point{}, false
	}

	return p, true
}
