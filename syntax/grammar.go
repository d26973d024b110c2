package syntax

import (
	"github.com/njhlai/goregex/internal/combinator"
)

// One function per grammar rule. Rule ordering inside unions is load-bearing:
// anchors and classes are tried before bare characters so that escapes like
// `\b` and `\d` are not consumed as literals, and inside an atom the order is
// group, then match, then backreference.

// isMeta reports whether r is a metacharacter outside character groups.
func isMeta(r rune) bool {
	switch r {
	case '^', '$', '|', '*', '?', '+', '.', '\\', '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}

// isGroupMeta reports whether r needs escaping inside a character group.
func isGroupMeta(r rune) bool {
	switch r {
	case '^', '\\', '-', ']':
		return true
	}
	return false
}

// expression parses `Expression ::= SubExpression ('|' SubExpression)*`.
func expression() combinator.Parser[Expression] {
	rest := combinator.Preceded(character('|'), subexpression()).Repeat()

	return combinator.Map(combinator.Chain(subexpression(), rest),
		func(pr combinator.Pair[SubExpression, []SubExpression]) (Expression, bool) {
			expr := make(Expression, 0, 1+len(pr.Second))
			expr = append(expr, pr.First)
			expr = append(expr, pr.Second...)
			return expr, true
		})
}

// subexpression parses `SubExpression ::= BasicExpression+`.
func subexpression() combinator.Parser[SubExpression] {
	return combinator.Map(basicExpression().OneOrMore(),
		func(bs []BasicExpression) (SubExpression, bool) {
			return SubExpression(bs), true
		})
}

// basicExpression parses `BasicExpression ::= Anchor | Quantified`.
func basicExpression() combinator.Parser[BasicExpression] {
	return combinator.Union(
		combinator.Map(anchor(), func(a Anchor) (BasicExpression, bool) {
			return AnchorExpr{Anchor: a}, true
		}),
		combinator.Map(quantified(), func(q Quantified) (BasicExpression, bool) {
			return q, true
		}),
	)
}

// anchor parses `Anchor ::= '^' | '$' | '\b' | '\B'`.
func anchor() combinator.Parser[Anchor] {
	return combinator.Union(
		combinator.Map(character('^'), func(rune) (Anchor, bool) {
			return AnchorStart, true
		}),
		combinator.Map(escaped(), func(r rune) (Anchor, bool) {
			switch r {
			case 'b':
				return AnchorWordBoundary, true
			case 'B':
				return AnchorNotWordBoundary, true
			}
			return 0, false
		}),
		combinator.Map(character('$'), func(rune) (Anchor, bool) {
			return AnchorEnd, true
		}),
	)
}

// quantified parses `Quantified ::= Quantifiable Quantifier?`.
func quantified() combinator.Parser[Quantified] {
	return combinator.Map(combinator.Chain(quantifiable(), quantifier().Optional()),
		func(pr combinator.Pair[Quantifiable, *Quantifier]) (Quantified, bool) {
			return Quantified{Item: pr.First, Quant: pr.Second}, true
		})
}

// quantifiable parses `Quantifiable ::= Group | Match | Backreference`.
func quantifiable() combinator.Parser[Quantifiable] {
	return combinator.Union(
		combinator.Map(group(), func(g Group) (Quantifiable, bool) { return g, true }),
		combinator.Map(match(), func(m Match) (Quantifiable, bool) { return m, true }),
		combinator.Map(backreference(), func(b Backreference) (Quantifiable, bool) { return b, true }),
	)
}

// group parses `Group ::= '(' Expression ')'`. The inner expression is built
// lazily to break the grammar's recursion.
func group() combinator.Parser[Group] {
	inner := combinator.Terminated(combinator.Lazy(expression), character(')'))

	return combinator.Map(combinator.Preceded(character('('), inner),
		func(expr Expression) (Group, bool) {
			return Group{Expr: expr}, true
		})
}

// match parses `Match ::= '.' | CharacterClass | CharacterGroup | Char`.
func match() combinator.Parser[Match] {
	return combinator.Union(
		combinator.Map(character('.'), func(rune) (Match, bool) {
			return MatchAny{}, true
		}),
		combinator.Map(characterClass(), func(c CharClass) (Match, bool) {
			return MatchClass{Class: c}, true
		}),
		combinator.Map(characterGroup(), func(items []SetItem) (Match, bool) {
			return MatchSet{Items: items}, true
		}),
		combinator.Map(char(), func(r rune) (Match, bool) {
			return MatchChar{R: r}, true
		}),
	)
}

// characterClass parses `CharacterClass ::= '\w'|'\W'|'\d'|'\D'|'\s'|'\S'`.
func characterClass() combinator.Parser[CharClass] {
	return combinator.Map(escaped(), func(r rune) (CharClass, bool) {
		switch r {
		case 'w':
			return ClassWord, true
		case 'W':
			return ClassNotWord, true
		case 'd':
			return ClassDigit, true
		case 'D':
			return ClassNotDigit, true
		case 's':
			return ClassSpace, true
		case 'S':
			return ClassNotSpace, true
		}
		return 0, false
	})
}

// characterGroup parses `CharacterGroup ::= '[' CharacterGroupItem+ ']'`.
// A leading '^' is reserved for negation and fails the parse.
func characterGroup() combinator.Parser[[]SetItem] {
	items := combinator.Terminated(characterGroupItem().OneOrMore(), character(']'))
	return combinator.Preceded(character('['), items)
}

// characterGroupItem parses `CharacterGroupItem ::= CharacterClass | CharacterRange | Char`.
func characterGroupItem() combinator.Parser[SetItem] {
	return combinator.Union(
		combinator.Map(characterClass(), func(c CharClass) (SetItem, bool) {
			return SetClass{Class: c}, true
		}),
		combinator.Map(characterRange(), func(r SetRange) (SetItem, bool) {
			return r, true
		}),
		combinator.Map(groupChar(), func(r rune) (SetItem, bool) {
			return SetChar{R: r}, true
		}),
	)
}

// characterRange parses `CharacterRange ::= Char '-' Char` with Lo <= Hi.
func characterRange() combinator.Parser[SetRange] {
	bounds := combinator.Chain(combinator.Terminated(groupChar(), character('-')), groupChar())

	return combinator.Map(bounds, func(pr combinator.Pair[rune, rune]) (SetRange, bool) {
		if pr.First > pr.Second {
			return SetRange{}, false
		}
		return SetRange{Lo: pr.First, Hi: pr.Second}, true
	})
}

// groupChar parses a character inside a character group: anything except
// `^ \ - ]`, an escape of those, or a control escape.
func groupChar() combinator.Parser[rune] {
	return combinator.Union(
		anyChar().Exclude(isGroupMeta),
		escaped().Filter(isGroupMeta),
		controlChar(),
	)
}

// char parses a literal character outside groups: anything except a
// metacharacter, an escaped metacharacter (or escaped '-'), or a control
// escape.
func char() combinator.Parser[rune] {
	return combinator.Union(
		anyChar().Exclude(isMeta),
		escaped().Filter(func(r rune) bool { return isMeta(r) || r == '-' }),
		controlChar(),
	)
}

// controlChar parses the control escapes `\t \n \r \v \f \0`.
func controlChar() combinator.Parser[rune] {
	return combinator.Map(escaped(), func(r rune) (rune, bool) {
		switch r {
		case 't':
			return '\t', true
		case 'n':
			return '\n', true
		case 'r':
			return '\r', true
		case 'v':
			return '\v', true
		case 'f':
			return '\f', true
		case '0':
			return 0, true
		}
		return 0, false
	})
}

// backreference parses `Backreference ::= '\' [1-9]`.
func backreference() combinator.Parser[Backreference] {
	return combinator.Map(escaped(), func(r rune) (Backreference, bool) {
		if r < '1' || r > '9' {
			return Backreference{}, false
		}
		return Backreference{Index: int(r - '0')}, true
	})
}

// quantifier parses `Quantifier ::= '*' | '+' | '?' | RangeQuantifier`.
func quantifier() combinator.Parser[Quantifier] {
	return combinator.Union(
		combinator.Map(character('*'), func(rune) (Quantifier, bool) {
			return Quantifier{Kind: QuantZeroOrMore}, true
		}),
		combinator.Map(character('+'), func(rune) (Quantifier, bool) {
			return Quantifier{Kind: QuantOneOrMore}, true
		}),
		combinator.Map(character('?'), func(rune) (Quantifier, bool) {
			return Quantifier{Kind: QuantZeroOrOne}, true
		}),
		rangeQuantifier(),
	)
}

// rangeQuantifier parses `'{' Int (',' Int?)? '}'`.
// `{l}` means exactly l, `{l,}` means at least l, and `{l,u}` requires
// l <= u or the parse fails.
func rangeQuantifier() combinator.Parser[Quantifier] {
	upper := combinator.Preceded(character(','), number().Optional()).Optional()
	bounds := combinator.Chain(
		combinator.Preceded(character('{'), number()),
		combinator.Terminated(upper, character('}')),
	)

	return combinator.Map(bounds, func(pr combinator.Pair[int, **int]) (Quantifier, bool) {
		lo := pr.First
		switch {
		case pr.Second == nil:
			// {l} is shorthand for {l,l}.
			return Quantifier{Kind: QuantRange, Min: lo, Max: lo, Bounded: true}, true
		case *pr.Second == nil:
			return Quantifier{Kind: QuantRange, Min: lo}, true
		default:
			hi := **pr.Second
			if lo > hi {
				return Quantifier{}, false
			}
			return Quantifier{Kind: QuantRange, Min: lo, Max: hi, Bounded: true}, true
		}
	})
}
