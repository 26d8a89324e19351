package constraint

// ExpandEquality rewrites an equality constraint into the pair of
// inequalities that pins the same boundary line from both sides:
// A·x+B·y = RHS becomes {A,B,<=,RHS} and {A,B,>=,RHS}. Any non-equality
// constraint passes through unchanged as a single-element slice.
func ExpandEquality(c Constraint) []Constraint {
	if c.Op != EQ {
		return []Constraint{c}
	}
	le, ge := c, c
	le.Op = LE
	ge.Op = GE

	return []Constraint{le, ge}
}

// BuildSet assembles the full constraint set for a solve:
//
//  1. Every raw line goes through Parse; lines that fail to parse are
//     dropped silently — a typo in one line must not block solving with
//     the remaining valid lines.
//  2. Equalities are expanded into their <= / >= pairs.
//  3. The two implicit non-negativity constraints -x <= 0 and -y <= 0
//     are appended last, always, regardless of whether the user supplied
//     equivalent ones.
//
// The slice order is deterministic: user constraints in input order,
// then NonNegX, then NonNegY. Order only affects the reproducibility of
// vertex enumeration, never correctness.
func BuildSet(lines []string) []Constraint {
	set := make([]Constraint, 0, len(lines)+2)
	for _, line := range lines {
		c, err := Parse(line)
		if err != nil {
			continue
		}
		set = append(set, ExpandEquality(c)...)
	}

	return append(set, NonNegX, NonNegY)
}
