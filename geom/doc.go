// Package geom provides the small set of plane-geometry primitives the
// graphical-method LP engine is built on: tolerance-aware comparisons,
// 2×2 line intersection by Cramer's rule, and convex hull ordering for
// region rendering.
//
// Overview:
//
//   - NearlyEqual / IsFinite — the floating-point predicates every other
//     component relies on. All comparisons in the engine carry an
//     explicit absolute epsilon; nothing compares floats with ==.
//   - LineIntersection — solves the boundary-pair system and reports
//     "no point" for near-singular determinants (|det| ≤ DetEps), which
//     covers parallel pairs, coincident pairs and degenerate a=b=0
//     lines without ever dividing by zero.
//   - ConvexHull — monotone-chain ordering of a point set into a
//     counterclockwise boundary; collinear points are excluded
//     (Cross <= 0 pops), a deliberate simplification since a filled
//     region needs no collinear boundary points.
//
// Performance and complexity:
//
//   - NearlyEqual, IsFinite, LineIntersection: O(1), allocation-free.
//   - ConvexHull: O(n log n); allocates only the sorted copy and chains.
//
// The package has no dependencies beyond the standard library and holds
// no state: every function is a pure function of its arguments.
package geom
