package nfa

import (
	"github.com/njhlai/goregex/syntax"
)

// classBitmap is a 32-byte bitmap over byte values, giving O(1) membership
// for the ASCII character classes. Each bit represents one byte value.
type classBitmap [4]uint64

// set adds byte c to the bitmap.
func (b *classBitmap) set(c byte) {
	b[c>>6] |= 1 << (c & 63)
}

// setRange adds all bytes from lo to hi inclusive.
func (b *classBitmap) setRange(lo, hi byte) {
	for c := lo; ; c++ {
		b.set(c)
		if c == hi {
			break
		}
	}
}

// contains reports whether byte c is in the bitmap.
func (b *classBitmap) contains(c byte) bool {
	return b[c>>6]&(1<<(c&63)) != 0
}

// Class membership tables. Word characters are ASCII letters and digits;
// whitespace is ASCII whitespace.
var (
	wordBitmap  = makeBitmap(func(b *classBitmap) { b.setRange('0', '9'); b.setRange('A', 'Z'); b.setRange('a', 'z') })
	digitBitmap = makeBitmap(func(b *classBitmap) { b.setRange('0', '9') })
	spaceBitmap = makeBitmap(func(b *classBitmap) {
		for _, c := range []byte{'\t', '\n', '\v', '\f', '\r', ' '} {
			b.set(c)
		}
	})
)

func makeBitmap(fill func(*classBitmap)) classBitmap {
	var b classBitmap
	fill(&b)
	return b
}

// isWordChar reports whether r counts as a word character for word-boundary
// tagging. Kept in lockstep with the \w class.
func isWordChar(r rune) bool {
	return r < 128 && wordBitmap.contains(byte(r))
}

// classPredicate returns the consuming predicate for a character class.
// Positive classes are ASCII-only; non-ASCII characters satisfy exactly the
// negated classes.
func classPredicate(c syntax.CharClass) Predicate {
	switch c {
	case syntax.ClassWord:
		return func(r rune) bool { return r < 128 && wordBitmap.contains(byte(r)) }
	case syntax.ClassNotWord:
		return func(r rune) bool { return !(r < 128 && wordBitmap.contains(byte(r))) }
	case syntax.ClassDigit:
		return func(r rune) bool { return r < 128 && digitBitmap.contains(byte(r)) }
	case syntax.ClassNotDigit:
		return func(r rune) bool { return !(r < 128 && digitBitmap.contains(byte(r))) }
	case syntax.ClassSpace:
		return func(r rune) bool { return r < 128 && spaceBitmap.contains(byte(r)) }
	case syntax.ClassNotSpace:
		return func(r rune) bool { return !(r < 128 && spaceBitmap.contains(byte(r))) }
	default:
		return func(rune) bool { return false }
	}
}
