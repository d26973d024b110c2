package syntax

import (
	"github.com/njhlai/goregex/internal/combinator"
)

// Alphabet-level parsers the grammar rules build on.

// anyChar consumes one character.
func anyChar() combinator.Parser[rune] {
	return combinator.AnyRune()
}

// character consumes the specific character ch.
func character(ch rune) combinator.Parser[rune] {
	return combinator.Rune(ch)
}

// escaped consumes a backslash followed by any character, yielding the
// escaped character. Callers filter the result for their context.
func escaped() combinator.Parser[rune] {
	return combinator.Preceded(character('\\'), anyChar())
}

// digit consumes one ASCII digit, yielding its value.
func digit() combinator.Parser[int] {
	return combinator.Map(anyChar(), func(r rune) (int, bool) {
		if r < '0' || r > '9' {
			return 0, false
		}
		return int(r - '0'), true
	})
}

// number consumes one or more ASCII digits, folding them left-to-right into
// a non-negative integer.
func number() combinator.Parser[int] {
	return combinator.Map(digit().OneOrMore(), func(ds []int) (int, bool) {
		n := 0
		for _, d := range ds {
			n = n*10 + d
		}
		return n, true
	})
}
