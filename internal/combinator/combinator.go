// Package combinator implements a minimal parser-combinator library.
//
// A Parser[T] is a pure function from an input string to an optional pair of
// a value and the remaining input. Failure is reported through the boolean
// result; parsers never mutate their input and never consume on failure
// unless documented otherwise. Combinators compose small parsers into larger
// ones, which is how the syntax package expresses its grammar rules.
package combinator

import "unicode/utf8"

// Parser consumes a prefix of input and produces a value of type T.
// It returns the value, the unconsumed remainder, and whether it succeeded.
type Parser[T any] func(input string) (T, string, bool)

// Parse runs the parser against input.
func (p Parser[T]) Parse(input string) (T, string, bool) {
	return p(input)
}

// AnyRune consumes a single rune. It fails only on empty input.
func AnyRune() Parser[rune] {
	return func(input string) (rune, string, bool) {
		if input == "" {
			return 0, input, false
		}
		r, size := utf8.DecodeRuneInString(input)
		return r, input[size:], true
	}
}

// Rune consumes the specific rune ch.
func Rune(ch rune) Parser[rune] {
	return AnyRune().Filter(func(r rune) bool { return r == ch })
}

// End succeeds without consuming anything iff the input is empty.
// It is used to reject trailing garbage after a top-level rule.
func End() Parser[struct{}] {
	return func(input string) (struct{}, string, bool) {
		return struct{}{}, input, input == ""
	}
}

// Map transforms the result of p with f. If f reports false, the combined
// parser fails even though p succeeded.
func Map[T, U any](p Parser[T], f func(T) (U, bool)) Parser[U] {
	return func(input string) (U, string, bool) {
		t, rest, ok := p(input)
		if !ok {
			var zero U
			return zero, input, false
		}
		u, ok := f(t)
		if !ok {
			var zero U
			return zero, input, false
		}
		return u, rest, true
	}
}

// Chain runs p, then q on p's remainder, and pairs the results.
func Chain[T, U any](p Parser[T], q Parser[U]) Parser[Pair[T, U]] {
	return func(input string) (Pair[T, U], string, bool) {
		t, rest, ok := p(input)
		if !ok {
			return Pair[T, U]{}, input, false
		}
		u, rest, ok := q(rest)
		if !ok {
			return Pair[T, U]{}, input, false
		}
		return Pair[T, U]{t, u}, rest, true
	}
}

// Pair holds the two results of a Chain.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Terminated runs p then q, keeping p's result. The `p << q` form.
func Terminated[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return Map(Chain(p, q), func(pr Pair[T, U]) (T, bool) { return pr.First, true })
}

// Preceded runs p then q, keeping q's result. The `p >> q` form.
func Preceded[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return Map(Chain(p, q), func(pr Pair[T, U]) (U, bool) { return pr.Second, true })
}

// Filter keeps p's result only when pred holds.
func (p Parser[T]) Filter(pred func(T) bool) Parser[T] {
	return Map(p, func(t T) (T, bool) { return t, pred(t) })
}

// Exclude keeps p's result only when pred does not hold.
func (p Parser[T]) Exclude(pred func(T) bool) Parser[T] {
	return p.Filter(func(t T) bool { return !pred(t) })
}

// Repeat applies p greedily zero or more times. It always succeeds; the
// result may be an empty slice.
func (p Parser[T]) Repeat() Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		var out []T
		rest := input
		for {
			t, next, ok := p(rest)
			if !ok {
				return out, rest, true
			}
			out = append(out, t)
			rest = next
		}
	}
}

// OneOrMore is Repeat with a non-empty post-condition.
func (p Parser[T]) OneOrMore() Parser[[]T] {
	return p.Repeat().Filter(func(ts []T) bool { return len(ts) > 0 })
}

// Optional always succeeds, yielding nil without consuming when p fails.
func (p Parser[T]) Optional() Parser[*T] {
	return func(input string) (*T, string, bool) {
		t, rest, ok := p(input)
		if !ok {
			return nil, input, true
		}
		return &t, rest, true
	}
}

// Lazy defers construction of p until the parser runs. Grammar rules that
// recurse (groups containing expressions) need this to avoid building an
// infinite parser up front.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		return build()(input)
	}
}

// Union tries each parser in declaration order and returns the first
// success. This is ordered alternation, not longest-match.
func Union[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		for _, p := range parsers {
			if t, rest, ok := p(input); ok {
				return t, rest, true
			}
		}
		var zero T
		return zero, input, false
	}
}
