package syntax

import "fmt"

// Expression is an ordered alternation of subexpressions. It is never empty:
// the parser only produces expressions with at least one branch.
type Expression []SubExpression

// SubExpression is an ordered concatenation of basic expressions.
// It is never empty.
type SubExpression []BasicExpression

// BasicExpression is one element of a concatenation: either an anchor
// assertion or a quantified atom.
type BasicExpression interface {
	basicExpr()
}

// AnchorExpr is an anchor assertion appearing in a concatenation.
type AnchorExpr struct {
	Anchor Anchor
}

// Quantified is an atom with an optional quantifier.
// A nil Quant means the atom appears exactly once.
type Quantified struct {
	Item  Quantifiable
	Quant *Quantifier
}

func (AnchorExpr) basicExpr() {}
func (Quantified) basicExpr() {}

// Quantifiable is an atom a quantifier may apply to: a group, a match, or a
// backreference.
type Quantifiable interface {
	quantifiable()
}

// Group is a parenthesised subexpression.
type Group struct {
	Expr Expression
}

// Backreference is a numeric backreference \1..\9. The parser accepts it;
// the compiler rejects it as unsupported.
type Backreference struct {
	Index int
}

func (Group) quantifiable()         {}
func (Backreference) quantifiable() {}

// Match is a single-character matcher.
type Match interface {
	Quantifiable
	matchNode()
}

// MatchAny is the `.` metacharacter.
type MatchAny struct{}

// MatchChar matches one specific character.
type MatchChar struct {
	R rune
}

// MatchClass matches one character of a predefined class.
type MatchClass struct {
	Class CharClass
}

// MatchSet is a bracketed character group `[...]`. Items is never empty.
type MatchSet struct {
	Items []SetItem
}

func (MatchAny) quantifiable()   {}
func (MatchChar) quantifiable()  {}
func (MatchClass) quantifiable() {}
func (MatchSet) quantifiable()   {}

func (MatchAny) matchNode()   {}
func (MatchChar) matchNode()  {}
func (MatchClass) matchNode() {}
func (MatchSet) matchNode()   {}

// SetItem is one member of a character group.
type SetItem interface {
	setItem()
}

// SetClass is a predefined class inside a character group.
type SetClass struct {
	Class CharClass
}

// SetRange is an inclusive character range `X-Y`. Lo <= Hi always holds for
// parser-produced ranges.
type SetRange struct {
	Lo, Hi rune
}

// SetChar is a single character inside a character group.
type SetChar struct {
	R rune
}

func (SetClass) setItem() {}
func (SetRange) setItem() {}
func (SetChar) setItem()  {}

// Anchor identifies a zero-width assertion.
type Anchor uint8

const (
	// AnchorStart asserts the start of input (`^`).
	AnchorStart Anchor = iota

	// AnchorEnd asserts the end of input (`$`).
	AnchorEnd

	// AnchorWordBoundary asserts a word/non-word transition (`\b`).
	AnchorWordBoundary

	// AnchorNotWordBoundary is the negated boundary (`\B`). Parsed but not
	// executable; the compiler rejects it.
	AnchorNotWordBoundary
)

// String returns the source form of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "^"
	case AnchorEnd:
		return "$"
	case AnchorWordBoundary:
		return `\b`
	case AnchorNotWordBoundary:
		return `\B`
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// CharClass identifies a predefined character class. Membership is defined
// over ASCII; non-ASCII characters satisfy only the negated classes.
type CharClass uint8

const (
	// ClassWord is `\w`: ASCII letters and digits.
	ClassWord CharClass = iota

	// ClassNotWord is `\W`.
	ClassNotWord

	// ClassDigit is `\d`: ASCII digits.
	ClassDigit

	// ClassNotDigit is `\D`.
	ClassNotDigit

	// ClassSpace is `\s`: ASCII whitespace.
	ClassSpace

	// ClassNotSpace is `\S`.
	ClassNotSpace
)

// String returns the source form of the class.
func (c CharClass) String() string {
	switch c {
	case ClassWord:
		return `\w`
	case ClassNotWord:
		return `\W`
	case ClassDigit:
		return `\d`
	case ClassNotDigit:
		return `\D`
	case ClassSpace:
		return `\s`
	case ClassNotSpace:
		return `\S`
	default:
		return fmt.Sprintf("CharClass(%d)", uint8(c))
	}
}

// QuantKind identifies a quantifier form.
type QuantKind uint8

const (
	// QuantZeroOrMore is `*`.
	QuantZeroOrMore QuantKind = iota

	// QuantOneOrMore is `+`.
	QuantOneOrMore

	// QuantZeroOrOne is `?`.
	QuantZeroOrOne

	// QuantRange is `{l}`, `{l,}` or `{l,u}`.
	QuantRange
)

// Quantifier is a repetition operator attached to a Quantifiable.
// Min and Max are meaningful only for QuantRange; Max is valid only when
// Bounded is true, and Min <= Max always holds for parser-produced ranges.
type Quantifier struct {
	Kind    QuantKind
	Min     int
	Max     int
	Bounded bool
}
