// Package constraint defines core types and sentinel errors for parsing
// linear two-variable constraints of the form "[term][term]... (<=|>=|=|<|>) number".
package constraint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse. Callers that implement a
// "drop malformed lines" policy should treat every one of these as a
// skip signal; callers that want diagnostics can branch on them.
var (
	// ErrEmptyLine indicates the input line is empty after trimming.
	// An empty line is "no constraint", not a malformed one.
	ErrEmptyLine = errors.New("constraint: empty line")

	// ErrNoOperator indicates no comparison operator was found in the line.
	ErrNoOperator = errors.New("constraint: no comparison operator")

	// ErrBadSplit indicates the line does not split into exactly one
	// left-hand side and one right-hand side around the operator.
	ErrBadSplit = errors.New("constraint: more than one comparison operator")

	// ErrBadNumber indicates the right-hand side is not a finite real number.
	ErrBadNumber = errors.New("constraint: right-hand side is not a finite number")

	// ErrBadTerm indicates the left-hand side contains a token outside the
	// grammar [sign][coefficient]{x|y}, e.g. an unknown identifier or a
	// dangling coefficient.
	ErrBadTerm = errors.New("constraint: malformed left-hand side term")
)

// Op is a normalized comparison operator. Strict operators are rewritten
// to their non-strict forms at parse time, so only LE, GE and EQ occur in
// parsed constraints, and EQ only before equality expansion.
type Op string

const (
	// LE is the "less than or equal" operator.
	LE Op = "<="
	// GE is the "greater than or equal" operator.
	GE Op = ">="
	// EQ is the equality operator; ExpandEquality splits it into LE + GE.
	EQ Op = "="
)

// Constraint is a normalized linear inequality A·x + B·y Op RHS.
//
// A and B may both be zero: degenerate lines are valid input and are
// handled downstream (they never intersect anything, and their
// feasibility test degenerates to "0 Op RHS").
type Constraint struct {
	A   float64 // coefficient of x
	B   float64 // coefficient of y
	Op  Op      // LE, GE, or EQ (EQ only before expansion)
	RHS float64 // right-hand side
}

// Holds reports whether the point (x, y) satisfies c within the absolute
// tolerance eps. For LE the test is A·x+B·y <= RHS+eps, for GE it is
// A·x+B·y >= RHS-eps. An EQ constraint holds when both directions hold.
// Any NaN coordinate fails every comparison, so NaN points never satisfy
// a constraint.
func (c Constraint) Holds(x, y, eps float64) bool {
	v := c.A*x + c.B*y
	switch c.Op {
	case LE:
		return v <= c.RHS+eps
	case GE:
		return v >= c.RHS-eps
	case EQ:
		return v <= c.RHS+eps && v >= c.RHS-eps
	default:
		return false
	}
}

// String renders the constraint in the same textual form Parse accepts.
func (c Constraint) String() string {
	return fmt.Sprintf("%gx + %gy %s %g", c.A, c.B, c.Op, c.RHS)
}

// NonNegX and NonNegY are the implicit non-negativity constraints
// appended by BuildSet after all user constraints: -x <= 0 and -y <= 0.
var (
	NonNegX = Constraint{A: -1, B: 0, Op: LE, RHS: 0}
	NonNegY = Constraint{A: 0, B: -1, Op: LE, RHS: 0}
)
