// Package syntax parses regular-expression source into a typed syntax tree.
//
// The grammar is expressed as one parser per rule, each built from the
// combinators in internal/combinator. The top-level rule requires the whole
// pattern to be consumed, so trailing garbage is a parse error. The tree the
// parser emits is the input to the nfa package's compiler.
//
// Supported syntax:
//
//	a|b         alternation
//	ab          concatenation
//	a* a+ a?    quantifiers
//	a{2} a{2,} a{2,5}
//	(ab)        grouping
//	.           any character
//	\w \W \d \D \s \S
//	[a-z0-9_]   character groups with ranges
//	\t \n \r \v \f \0 and escaped metacharacters
//	^ $ \b \B   anchors
//	\1 .. \9    backreferences (syntax only)
//
// Character-group negation `[^...]` and non-capturing groups `(?:...)` are
// reserved and currently rejected.
package syntax

import (
	"github.com/njhlai/goregex/internal/combinator"
)

// Parse parses pattern into an Expression.
// The returned error wraps ErrSyntax when the pattern is not in the grammar.
func Parse(pattern string) (Expression, error) {
	expr, _, ok := regex().Parse(pattern)
	if !ok {
		return nil, &ParseError{Pattern: pattern}
	}
	return expr, nil
}

// regex is the top grammar rule: `Regex ::= Expression EOF`.
func regex() combinator.Parser[Expression] {
	return combinator.Terminated(expression(), combinator.End())
}
