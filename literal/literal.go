// Package literal extracts literal alternations from parsed patterns.
//
// A pattern like `foo|bar|baz` is just a set of strings; the meta engine
// can hand such patterns to a multi-pattern string searcher instead of the
// NFA simulation. Extraction is conservative: anything beyond plain
// characters joined by concatenation and alternation disqualifies the
// pattern.
package literal

import (
	"strings"

	"github.com/njhlai/goregex/syntax"
)

// Seq is an ordered sequence of literal branch strings.
type Seq struct {
	lits []string
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...string) *Seq {
	return &Seq{lits: lits}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) string {
	return s.lits[i]
}

// Strings returns a copy of the literals.
func (s *Seq) Strings() []string {
	out := make([]string, len(s.lits))
	copy(out, s.lits)
	return out
}

// PrefixFree reports whether no literal is a proper prefix of another.
// Prefix-free sets have a unique match length at any starting position,
// which lets per-start longest-match semantics survive the switch to a
// multi-pattern searcher.
func (s *Seq) PrefixFree() bool {
	for i, a := range s.lits {
		for j, b := range s.lits {
			if i == j {
				continue
			}
			if len(a) < len(b) && strings.HasPrefix(b, a) {
				return false
			}
		}
	}
	return true
}

// Extract returns the branch literals of expr when every branch is a plain
// concatenation of unquantified characters. The boolean reports success;
// anchors, quantifiers, classes, groups, dots and backreferences all fail
// extraction.
func Extract(expr syntax.Expression) (*Seq, bool) {
	lits := make([]string, 0, len(expr))

	for _, sub := range expr {
		var b strings.Builder
		for _, basic := range sub {
			q, ok := basic.(syntax.Quantified)
			if !ok || q.Quant != nil {
				return nil, false
			}
			c, ok := q.Item.(syntax.MatchChar)
			if !ok {
				return nil, false
			}
			b.WriteRune(c.R)
		}
		lits = append(lits, b.String())
	}

	return &Seq{lits: lits}, true
}
