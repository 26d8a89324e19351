// Package solver defines the solution types, tunable options and
// sentinel errors for the graphical-method LP engine.
package solver

import (
	"errors"

	"github.com/katalvlaran/lpgraph/constraint"
	"github.com/katalvlaran/lpgraph/geom"
)

// Sentinel errors raised (via panic) by functional options that receive
// values no solve could meaningfully run with.
var (
	// ErrBadEps indicates a non-positive feasibility tolerance.
	ErrBadEps = errors.New("solver: Eps must be positive")

	// ErrBadDedupEps indicates a non-positive deduplication radius.
	ErrBadDedupEps = errors.New("solver: DedupEps must be positive")

	// ErrBadProbeStep indicates a non-positive unboundedness probe step.
	ErrBadProbeStep = errors.New("solver: ProbeStep must be positive")

	// ErrBadProbeSteps indicates a non-positive probe iteration count.
	ErrBadProbeSteps = errors.New("solver: ProbeSteps must be positive")
)

// Default tolerances. The solver's feasibility epsilon is deliberately
// tighter than the unboundedness probe's: the probe is advisory, and the
// looser tolerance reduces false "unbounded" flags near boundaries.
const (
	// DefaultEps is the feasibility tolerance for vertex acceptance.
	DefaultEps = 1e-9

	// DefaultDedupEps is the Euclidean radius inside which two candidate
	// vertices are considered the same corner.
	DefaultDedupEps = 1e-7

	// DefaultProbeEps is the feasibility tolerance of the unboundedness
	// probe.
	DefaultProbeEps = 1e-7

	// DefaultProbeStep is the walk distance per probe iteration.
	DefaultProbeStep = 0.05

	// DefaultProbeSteps is the number of probe iterations.
	DefaultProbeSteps = 50
)

// Vertex is a corner of the feasible region, annotated with the
// objective value Z = C1·X + C2·Y once evaluated.
type Vertex struct {
	X, Y float64
	Z    float64
}

// Solution is the immutable outcome of one Solve invocation.
//
// Lifecycle: constructed fresh on every solve from the current objective
// coefficients and constraint text; never mutated after construction;
// superseded, not updated, by the next solve. Callers must branch on
// Feasible before reading Best.
type Solution struct {
	// Feasible is false when no vertex survived enumeration.
	Feasible bool

	// Vertices holds every accepted corner, sorted ascending by Z with
	// ties broken by discovery order. Empty when infeasible.
	Vertices []Vertex

	// Best points at the minimizing vertex (Vertices[0]) when feasible,
	// nil otherwise.
	Best *Vertex

	// Constraints is the fully expanded, normalized constraint set the
	// solve ran against: user constraints in input order, equalities
	// expanded, then the two implicit non-negativity constraints.
	Constraints []constraint.Constraint

	// C1, C2 are the objective coefficients of z = C1·x + C2·y.
	C1, C2 float64
}

// Hull orders the solution's vertices into a counterclockwise convex
// hull boundary for region rendering. Fewer than 3 returned points mean
// there is no region to fill.
func (s Solution) Hull() []geom.Point {
	pts := make([]geom.Point, len(s.Vertices))
	for i, v := range s.Vertices {
		pts[i] = geom.Point{X: v.X, Y: v.Y}
	}

	return geom.ConvexHull(pts)
}

// Options configures a solve and the unboundedness probe.
//
// Eps        – feasibility tolerance for vertex acceptance (default 1e-9).
// DedupEps   – Euclidean dedup radius for near-identical corners (default 1e-7).
// ProbeEps   – feasibility tolerance of the unboundedness probe (default 1e-7;
//              intentionally looser than Eps, see the constants above).
// ProbeStep  – walk distance per probe iteration (default 0.05).
// ProbeSteps – probe iterations (default 50).
type Options struct {
	Eps        float64
	DedupEps   float64
	ProbeEps   float64
	ProbeStep  float64
	ProbeSteps int
}

// Option is a functional option for configuring Solve and LikelyUnbounded.
type Option func(*Options)

// WithEps overrides the feasibility tolerance.
// Must be positive; other values panic with ErrBadEps.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) {
			panic(ErrBadEps.Error())
		}
		o.Eps = eps
	}
}

// WithDedupEps overrides the vertex deduplication radius.
// Must be positive; other values panic with ErrBadDedupEps.
func WithDedupEps(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) {
			panic(ErrBadDedupEps.Error())
		}
		o.DedupEps = eps
	}
}

// WithProbeStep overrides the unboundedness probe's step length.
// Must be positive; other values panic with ErrBadProbeStep.
func WithProbeStep(step float64) Option {
	return func(o *Options) {
		if !(step > 0) {
			panic(ErrBadProbeStep.Error())
		}
		o.ProbeStep = step
	}
}

// WithProbeSteps overrides the unboundedness probe's iteration count.
// Must be positive; other values panic with ErrBadProbeSteps.
func WithProbeSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadProbeSteps.Error())
		}
		o.ProbeSteps = n
	}
}

// DefaultOptions returns the standard tolerances: Eps=1e-9, DedupEps=1e-7,
// ProbeEps=1e-7, ProbeStep=0.05, ProbeSteps=50.
func DefaultOptions() Options {
	return Options{
		Eps:        DefaultEps,
		DedupEps:   DefaultDedupEps,
		ProbeEps:   DefaultProbeEps,
		ProbeStep:  DefaultProbeStep,
		ProbeSteps: DefaultProbeSteps,
	}
}
