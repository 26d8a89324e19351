// Package constraint parses human-entered linear constraint lines into
// normalized two-variable inequalities and assembles full constraint
// sets for the graphical-method solver.
//
// Overview:
//
//   - A constraint line follows the informal grammar
//     [term][term]... (<=|>=|=|<|>) number, where a term is
//     [sign][coefficient]variable and variable ∈ {x, y}.
//   - Parse produces a Constraint {A, B, Op, RHS}; strict < and > are
//     relaxed to <= and >= (the enumerated feasible region is identical,
//     only boundary rendering would differ).
//   - ExpandEquality splits "=" into the <= / >= pair sharing A, B, RHS.
//   - BuildSet runs the whole pipeline over a slice of raw lines and
//     appends the implicit non-negativity constraints -x <= 0, -y <= 0.
//
// Accepted input niceties:
//
//   - unicode ≤ and ≥
//   - explicit multiplication: "2*x", "2×x", "2·x"
//   - decimal commas: "2,5x <= 5"
//   - upper-case variables and arbitrary whitespace
//
// Why a lexer instead of regular expressions:
//
//	Coefficient extraction via pattern matching is fragile for compound
//	expressions (repeated variables, implicit multiplication variants).
//	The explicit signed-term lexer in parse.go folds terms per variable,
//	so "x + 2x <= 9" correctly yields A=3, and a variable name never
//	matches inside a longer identifier ("xy" is rejected, not read as x).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyLine  — blank input; "no constraint", not a failure.
//   - ErrNoOperator — no comparison operator present.
//   - ErrBadSplit   — more than one comparison operator.
//   - ErrBadNumber  — right-hand side not a finite real.
//   - ErrBadTerm    — left-hand side token outside the grammar.
//
// Parse failures are explicit errors rather than sentinel values, so the
// "drop malformed lines vs. propagate" policy is a visible, testable
// choice at the call site; BuildSet implements the dropping policy used
// by the solver.
package constraint
