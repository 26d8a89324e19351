package constraint

import (
	"math"
	"strconv"
	"strings"
)

// normalizer rewrites the glyph variants a human-entered constraint line
// may carry into the canonical ASCII form the lexer understands:
// unicode comparison operators, explicit multiplication signs between a
// coefficient and its variable, and decimal commas.
var normalizer = strings.NewReplacer(
	"≤", "<=",
	"≥", ">=",
	"×", "",
	"·", "",
	"*", "",
	",", ".",
)

// normalize lowercases the line, applies glyph rewrites and strips every
// whitespace run, so the lexer can operate on a compact byte string.
func normalize(line string) string {
	return strings.Join(strings.Fields(normalizer.Replace(strings.ToLower(line))), "")
}

// term is one signed addend of the left-hand side, e.g. "-2.5x".
type term struct {
	variable byte    // 'x' or 'y'
	coef     float64 // signed coefficient, 1 or -1 for bare variables
}

// lexTerms scans a whitespace-free left-hand side into its signed terms.
//
// Grammar per term: [+|-][number]{x|y}. The variable byte must not be
// followed by another letter or digit, so "x" never matches inside a
// longer identifier such as "xy". An empty left-hand side yields zero
// terms, which folds to the degenerate constraint 0·x + 0·y Op RHS.
func lexTerms(lhs string) ([]term, error) {
	var terms []term
	i, n := 0, len(lhs)
	for i < n {
		sign := 1.0
		switch lhs[i] {
		case '+':
			i++
		case '-':
			sign = -1.0
			i++
		}

		start := i
		for i < n && (lhs[i] >= '0' && lhs[i] <= '9' || lhs[i] == '.') {
			i++
		}
		num := lhs[start:i]

		if i == n || lhs[i] != 'x' && lhs[i] != 'y' {
			return nil, ErrBadTerm
		}
		v := lhs[i]
		if i+1 < n && isWordByte(lhs[i+1]) {
			return nil, ErrBadTerm
		}
		i++

		coef := 1.0
		if num != "" {
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, ErrBadTerm
			}
			coef = f
		}
		terms = append(terms, term{variable: v, coef: sign * coef})
	}

	return terms, nil
}

// isWordByte reports whether b could extend an identifier or number.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// findOperator locates the first comparison operator in the normalized
// line, longest match first, and returns its index and token.
func findOperator(s string) (idx int, tok string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '>':
			if i+1 < len(s) && s[i+1] == '=' {
				return i, s[i : i+2]
			}
			return i, s[i : i+1]
		case '=':
			return i, "="
		}
	}

	return -1, ""
}

// Parse turns one free-text line into a normalized Constraint.
//
// Pipeline:
//  1. Normalize glyphs (≤ ≥, ×/·/* multiplication, decimal comma) and
//     strip whitespace; an empty result is ErrEmptyLine.
//  2. Locate exactly one comparison operator among <=, >=, =, <, >
//     (first match wins). No operator is ErrNoOperator; a second
//     operator anywhere after the split is ErrBadSplit.
//  3. The right-hand side must parse as a finite real (ErrBadNumber).
//  4. The left-hand side is lexed into signed terms and folded per
//     variable, so "x + 2x <= 9" yields A=3 (ErrBadTerm on anything
//     outside the grammar).
//  5. Strict < and > are rewritten to <= and >= — only the boundary
//     rendering differs, never the enumerated feasible region.
//
// The returned Constraint carries Op LE, GE or EQ; use ExpandEquality to
// eliminate EQ before vertex enumeration.
func Parse(line string) (Constraint, error) {
	s := normalize(line)
	if s == "" {
		return Constraint{}, ErrEmptyLine
	}

	idx, tok := findOperator(s)
	if idx < 0 {
		return Constraint{}, ErrNoOperator
	}
	lhs, rhs := s[:idx], s[idx+len(tok):]
	if i, _ := findOperator(rhs); i >= 0 {
		return Constraint{}, ErrBadSplit
	}

	r, err := strconv.ParseFloat(rhs, 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return Constraint{}, ErrBadNumber
	}

	terms, err := lexTerms(lhs)
	if err != nil {
		return Constraint{}, err
	}
	c := Constraint{RHS: r}
	for _, t := range terms {
		if t.variable == 'x' {
			c.A += t.coef
		} else {
			c.B += t.coef
		}
	}

	switch tok {
	case "<", "<=":
		c.Op = LE
	case ">", ">=":
		c.Op = GE
	case "=":
		c.Op = EQ
	}

	return c, nil
}
