// Package geom defines the plane-geometry types shared by the
// graphical-method solver and its rendering consumers.
package geom

// Point is a location in the constraint plane.
type Point struct {
	X, Y float64
}

// DetEps is the determinant threshold below which a 2×2 linear system is
// treated as singular: parallel lines, coincident lines, and degenerate
// boundary lines declared with zero coefficients all fall under it.
const DetEps = 1e-9
