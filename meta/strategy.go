package meta

import (
	"github.com/njhlai/goregex/literal"
	"github.com/njhlai/goregex/syntax"
)

// Strategy identifies the search engine selected for a pattern.
type Strategy uint8

const (
	// UseNFA runs the multi-start NFA simulation. Always available; the
	// semantic reference for every other strategy.
	UseNFA Strategy = iota

	// UseAhoCorasick dispatches pure literal alternations to an
	// Aho-Corasick automaton. Selected only when every branch is a plain
	// literal and the branch set is prefix-free, so per-start longest-match
	// agrees with the NFA simulation.
	UseAhoCorasick
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UseAhoCorasick:
		return "UseAhoCorasick"
	default:
		return "Unknown"
	}
}

// chooseStrategy inspects the parsed pattern and picks a strategy.
// It returns the extracted literals when the literal engine applies.
func chooseStrategy(expr syntax.Expression, config Config) (Strategy, *literal.Seq) {
	if config.DisableLiteralEngine {
		return UseNFA, nil
	}

	seq, ok := literal.Extract(expr)
	if !ok || seq.Len() < 2 || !seq.PrefixFree() {
		return UseNFA, nil
	}
	for i := 0; i < seq.Len(); i++ {
		if seq.Get(i) == "" {
			// Empty branches admit empty matches at every boundary, which a
			// string searcher cannot enumerate.
			return UseNFA, nil
		}
	}

	return UseAhoCorasick, seq
}
