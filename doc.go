// Package lpgraph solves two-variable linear programs by the graphical
// method — from constraint-text parsing to feasible-region vertices and
// the minimizing corner.
//
// 🚀 What is lpgraph?
//
//	A small, focused library that brings together:
//		• Constraint parsing: free text like "2x + 3y <= 18" into normalized inequalities
//		• Geometry primitives: tolerant comparisons, Cramer 2×2 intersection, convex hulls
//		• A vertex-enumeration solver: boundary intersections → feasibility → optimum
//		• An unboundedness probe: advisory detection of objectives without a finite minimum
//
// ✨ Why choose lpgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every Solve is a pure function of its inputs
//   - Tolerance-aware – all floating comparisons carry explicit epsilons
//   - Renderer-agnostic – vertices and hulls are plain values; draw them anywhere
//
// Under the hood, everything is organized under four subpackages:
//
//	constraint/ — text → normalized linear inequality, equality expansion, set assembly
//	geom/       — Point, near-equality, line intersection, convex hull ordering
//	solver/     — vertex enumeration, optimum selection, unboundedness heuristic
//	logger/     — shared zerolog-backed logging for the engine
//
// Quick ASCII example:
//
//	    y
//	    │╲
//	    │ ╲   2x+3y ≤ 18
//	    │   ╲
//	    └────╲──── x
//
//	the feasible region is the polygon cut from the first quadrant;
//	its corners are the only candidates for the minimum of c1·x + c2·y.
//
// Dive into README.md and examples/ for full walkthroughs, including an
// infeasible diet model and an unbounded objective demo.
//
//	go get github.com/katalvlaran/lpgraph
package lpgraph
