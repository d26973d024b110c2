package combinator

import "testing"

func TestRune_Match(t *testing.T) {
	p := Rune('a')

	r, rest, ok := p.Parse("abc")
	if !ok || r != 'a' || rest != "bc" {
		t.Errorf("Parse(%q) = (%q, %q, %v), want ('a', \"bc\", true)", "abc", r, rest, ok)
	}

	if _, rest, ok := p.Parse("xyz"); ok || rest != "xyz" {
		t.Errorf("expected failure without consuming, got ok=%v rest=%q", ok, rest)
	}

	if _, _, ok := p.Parse(""); ok {
		t.Error("expected failure on empty input")
	}
}

func TestChain_BothSides(t *testing.T) {
	p := Chain(Rune('a'), Rune('b'))

	pr, rest, ok := p.Parse("abc")
	if !ok || pr.First != 'a' || pr.Second != 'b' || rest != "c" {
		t.Errorf("Parse(%q) = (%v, %q, %v)", "abc", pr, rest, ok)
	}

	// Failure of the second parser must not consume the first's input.
	if _, rest, ok := p.Parse("ax"); ok || rest != "ax" {
		t.Errorf("expected failure without consuming, got ok=%v rest=%q", ok, rest)
	}
}

func TestTerminatedPreceded(t *testing.T) {
	left := Terminated(Rune('a'), Rune('b'))
	if r, rest, ok := left.Parse("abc"); !ok || r != 'a' || rest != "c" {
		t.Errorf("Terminated = (%q, %q, %v)", r, rest, ok)
	}

	right := Preceded(Rune('a'), Rune('b'))
	if r, rest, ok := right.Parse("abc"); !ok || r != 'b' || rest != "c" {
		t.Errorf("Preceded = (%q, %q, %v)", r, rest, ok)
	}
}

func TestMap_FailurePropagates(t *testing.T) {
	p := Map(AnyRune(), func(r rune) (int, bool) {
		if r < '0' || r > '9' {
			return 0, false
		}
		return int(r - '0'), true
	})

	if n, _, ok := p.Parse("7x"); !ok || n != 7 {
		t.Errorf("Parse(\"7x\") = (%d, %v)", n, ok)
	}
	if _, _, ok := p.Parse("x7"); ok {
		t.Error("mapping to failure should fail the parser")
	}
}

func TestRepeat_AlwaysSucceeds(t *testing.T) {
	p := Rune('a').Repeat()

	rs, rest, ok := p.Parse("aaab")
	if !ok || len(rs) != 3 || rest != "b" {
		t.Errorf("Parse(%q) = (%v, %q, %v)", "aaab", rs, rest, ok)
	}

	rs, rest, ok = p.Parse("bbb")
	if !ok || len(rs) != 0 || rest != "bbb" {
		t.Errorf("Parse(%q) = (%v, %q, %v)", "bbb", rs, rest, ok)
	}
}

func TestOneOrMore_RejectsEmpty(t *testing.T) {
	p := Rune('a').OneOrMore()

	if _, _, ok := p.Parse("bbb"); ok {
		t.Error("OneOrMore must fail when nothing matches")
	}
	if rs, _, ok := p.Parse("aab"); !ok || len(rs) != 2 {
		t.Errorf("Parse(\"aab\") = (%v, %v)", rs, ok)
	}
}

func TestOptional_NeverFails(t *testing.T) {
	p := Rune('a').Optional()

	v, rest, ok := p.Parse("ab")
	if !ok || v == nil || *v != 'a' || rest != "b" {
		t.Errorf("Parse(%q) = (%v, %q, %v)", "ab", v, rest, ok)
	}

	v, rest, ok = p.Parse("b")
	if !ok || v != nil || rest != "b" {
		t.Errorf("Parse(%q) = (%v, %q, %v)", "b", v, rest, ok)
	}
}

func TestUnion_OrderedFirstWins(t *testing.T) {
	p := Union(Rune('a'), Rune('b'))

	if r, _, ok := p.Parse("b"); !ok || r != 'b' {
		t.Errorf("Parse(\"b\") = (%q, %v)", r, ok)
	}
	if _, _, ok := p.Parse("c"); ok {
		t.Error("expected failure when no alternative matches")
	}
}

func TestLazy_BreaksRecursion(t *testing.T) {
	// parens ::= '(' parens? ')' counts nesting depth.
	var parens func() Parser[int]
	parens = func() Parser[int] {
		inner := Lazy(parens).Optional()
		return Map(Chain(Rune('('), Terminated(inner, Rune(')'))),
			func(pr Pair[rune, *int]) (int, bool) {
				if pr.Second == nil {
					return 1, true
				}
				return *pr.Second + 1, true
			})
	}

	if n, _, ok := parens().Parse("((()))"); !ok || n != 3 {
		t.Errorf("Parse(\"((()))\") = (%d, %v), want 3", n, ok)
	}
}

func TestEnd(t *testing.T) {
	p := Terminated(Rune('a'), End())

	if _, _, ok := p.Parse("a"); !ok {
		t.Error("expected success on fully consumed input")
	}
	if _, _, ok := p.Parse("ab"); ok {
		t.Error("expected failure on trailing input")
	}
}
