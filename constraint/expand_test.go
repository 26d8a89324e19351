package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lpgraph/constraint"
)

// TestExpandEquality_SplitsEquality verifies that "=" becomes the
// <= / >= pair sharing A, B and RHS.
func TestExpandEquality_SplitsEquality(t *testing.T) {
	c, err := constraint.Parse("x + y = 10")
	require.NoError(t, err)
	require.Equal(t, constraint.EQ, c.Op)

	pair := constraint.ExpandEquality(c)
	require.Len(t, pair, 2)
	assert.Equal(t, constraint.Constraint{A: 1, B: 1, Op: constraint.LE, RHS: 10}, pair[0])
	assert.Equal(t, constraint.Constraint{A: 1, B: 1, Op: constraint.GE, RHS: 10}, pair[1])
}

// TestExpandEquality_PassThrough leaves inequalities untouched.
func TestExpandEquality_PassThrough(t *testing.T) {
	c := constraint.Constraint{A: 2, B: 3, Op: constraint.LE, RHS: 18}
	out := constraint.ExpandEquality(c)
	require.Len(t, out, 1)
	assert.Equal(t, c, out[0])
}

// TestBuildSet_AppendsNonNegativityLast checks the assembled set layout:
// user constraints in input order, then -x<=0, then -y<=0.
func TestBuildSet_AppendsNonNegativityLast(t *testing.T) {
	set := constraint.BuildSet([]string{"2x+3y<=18", "x<=6"})
	require.Len(t, set, 4)
	assert.Equal(t, constraint.Constraint{A: 2, B: 3, Op: constraint.LE, RHS: 18}, set[0])
	assert.Equal(t, constraint.Constraint{A: 1, B: 0, Op: constraint.LE, RHS: 6}, set[1])
	assert.Equal(t, constraint.NonNegX, set[2])
	assert.Equal(t, constraint.NonNegY, set[3])
}

// TestBuildSet_DropsMalformedSilently ensures a typo in one line does
// not block assembling the remaining valid lines.
func TestBuildSet_DropsMalformedSilently(t *testing.T) {
	set := constraint.BuildSet([]string{"x <= 6", "not a constraint", "", "y <= 7"})
	require.Len(t, set, 4)
	assert.Equal(t, constraint.Constraint{A: 1, B: 0, Op: constraint.LE, RHS: 6}, set[0])
	assert.Equal(t, constraint.Constraint{A: 0, B: 1, Op: constraint.LE, RHS: 7}, set[1])
}

// TestBuildSet_ExpandsEqualities checks that equalities contribute two
// constraints to the assembled set.
func TestBuildSet_ExpandsEqualities(t *testing.T) {
	set := constraint.BuildSet([]string{"x + y = 10"})
	require.Len(t, set, 4)
	assert.Equal(t, constraint.LE, set[0].Op)
	assert.Equal(t, constraint.GE, set[1].Op)
	assert.Equal(t, set[0].RHS, set[1].RHS)
}

// TestBuildSet_AlwaysCarriesNonNegativity appends the implicit pair even
// when the user supplied equivalent bounds.
func TestBuildSet_AlwaysCarriesNonNegativity(t *testing.T) {
	set := constraint.BuildSet([]string{"x >= 0", "y >= 0"})
	require.Len(t, set, 4)
	assert.Equal(t, constraint.NonNegX, set[2])
	assert.Equal(t, constraint.NonNegY, set[3])
}
