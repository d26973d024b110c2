package nfa

import (
	"fmt"

	"github.com/njhlai/goregex/syntax"
)

// CompilerConfig configures NFA compilation behavior.
type CompilerConfig struct {
	// MaxRecursionDepth limits expression nesting during compilation to
	// prevent stack overflow. The top-level expression counts as one level,
	// so a limit of N admits at most N-1 nested groups. Default: 100.
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxRecursionDepth: 100,
	}
}

// Compiler lowers syntax trees into Thompson NFAs.
//
// Every repetition copy compiles its subtree into a fresh fragment: states
// are identity-distinguished, and sharing one fragment across copies would
// introduce spurious back-edges.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int
}

// NewCompiler creates a new NFA compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth == 0 {
		config.MaxRecursionDepth = 100
	}
	return &Compiler{
		config:  config,
		builder: NewBuilder(),
	}
}

// NewDefaultCompiler creates a new NFA compiler with default configuration.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile parses pattern and compiles it into an automaton.
func (c *Compiler) Compile(pattern string) (*Automaton, error) {
	expr, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	auto, err := c.CompileExpression(expr)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return auto, nil
}

// CompileExpression compiles a parsed expression into an automaton.
func (c *Compiler) CompileExpression(expr syntax.Expression) (*Automaton, error) {
	c.builder = NewBuilder()
	c.depth = 0

	frag, err := c.expression(expr)
	if err != nil {
		return nil, err
	}
	return c.builder.Build(frag), nil
}

// expression lowers an alternation by left-folding its branches with Or.
func (c *Compiler) expression(expr syntax.Expression) (Fragment, error) {
	c.depth++
	if c.depth > c.config.MaxRecursionDepth {
		return Fragment{}, fmt.Errorf("%w: expression nesting exceeds %d", ErrTooComplex, c.config.MaxRecursionDepth)
	}
	defer func() { c.depth-- }()

	frags := make([]Fragment, 0, len(expr))
	for _, sub := range expr {
		f, err := c.subexpression(sub)
		if err != nil {
			return Fragment{}, err
		}
		frags = append(frags, f)
	}
	return c.fold(frags, c.builder.Or)
}

// subexpression lowers a concatenation by left-folding with Concat.
func (c *Compiler) subexpression(sub syntax.SubExpression) (Fragment, error) {
	frags := make([]Fragment, 0, len(sub))
	for _, basic := range sub {
		f, err := c.basicExpression(basic)
		if err != nil {
			return Fragment{}, err
		}
		frags = append(frags, f)
	}
	return c.fold(frags, c.builder.Concat)
}

// basicExpression lowers a single concatenation element.
func (c *Compiler) basicExpression(basic syntax.BasicExpression) (Fragment, error) {
	switch node := basic.(type) {
	case syntax.AnchorExpr:
		if node.Anchor == syntax.AnchorNotWordBoundary {
			return Fragment{}, &UnsupportedError{Feature: `negated word boundary \B`}
		}
		return c.builder.Anchor(node.Anchor), nil
	case syntax.Quantified:
		return c.quantified(node)
	default:
		return Fragment{}, fmt.Errorf("%w: unknown basic expression %T", ErrInternal, basic)
	}
}

// quantified lowers an atom with its optional quantifier.
func (c *Compiler) quantified(q syntax.Quantified) (Fragment, error) {
	if q.Quant == nil {
		return c.quantifiable(q.Item)
	}

	switch q.Quant.Kind {
	case syntax.QuantZeroOrMore:
		f, err := c.quantifiable(q.Item)
		if err != nil {
			return Fragment{}, err
		}
		return c.builder.Closure(f), nil

	case syntax.QuantOneOrMore:
		f, err := c.quantifiable(q.Item)
		if err != nil {
			return Fragment{}, err
		}
		return c.builder.Plus(f), nil

	case syntax.QuantZeroOrOne:
		f, err := c.quantifiable(q.Item)
		if err != nil {
			return Fragment{}, err
		}
		return c.builder.Optional(f), nil

	case syntax.QuantRange:
		return c.rangeQuantified(q.Item, *q.Quant)

	default:
		return Fragment{}, fmt.Errorf("%w: unknown quantifier kind %d", ErrInternal, q.Quant.Kind)
	}
}

// rangeQuantified expands `{l}`, `{l,}` and `{l,u}` into concatenated
// copies: l mandatory copies, then a closure for an open upper bound or
// u-l optionals for a closed one.
func (c *Compiler) rangeQuantified(item syntax.Quantifiable, q syntax.Quantifier) (Fragment, error) {
	var frags []Fragment

	for i := 0; i < q.Min; i++ {
		f, err := c.quantifiable(item)
		if err != nil {
			return Fragment{}, err
		}
		frags = append(frags, f)
	}

	if !q.Bounded {
		f, err := c.quantifiable(item)
		if err != nil {
			return Fragment{}, err
		}
		frags = append(frags, c.builder.Closure(f))
	} else {
		for i := q.Min; i < q.Max; i++ {
			f, err := c.quantifiable(item)
			if err != nil {
				return Fragment{}, err
			}
			frags = append(frags, c.builder.Optional(f))
		}
	}

	return c.fold(frags, c.builder.Concat)
}

// quantifiable lowers a group, match or backreference atom.
func (c *Compiler) quantifiable(item syntax.Quantifiable) (Fragment, error) {
	switch node := item.(type) {
	case syntax.Group:
		return c.expression(node.Expr)
	case syntax.Backreference:
		return Fragment{}, &UnsupportedError{Feature: fmt.Sprintf(`backreference \%d`, node.Index)}
	case syntax.Match:
		return c.match(node), nil
	default:
		return Fragment{}, fmt.Errorf("%w: unknown quantifiable %T", ErrInternal, item)
	}
}

// match lowers a single-character matcher.
func (c *Compiler) match(m syntax.Match) Fragment {
	switch node := m.(type) {
	case syntax.MatchAny:
		return c.builder.Pred(func(rune) bool { return true })
	case syntax.MatchChar:
		return c.builder.Token(node.R)
	case syntax.MatchClass:
		return c.builder.Pred(classPredicate(node.Class))
	case syntax.MatchSet:
		frags := make([]Fragment, 0, len(node.Items))
		for _, item := range node.Items {
			frags = append(frags, c.setItem(item))
		}
		// Items is non-empty by construction, so the fold cannot fail.
		frag, _ := c.fold(frags, c.builder.Or)
		return frag
	default:
		return c.builder.Pred(func(rune) bool { return false })
	}
}

// setItem lowers one member of a character group.
func (c *Compiler) setItem(item syntax.SetItem) Fragment {
	switch node := item.(type) {
	case syntax.SetClass:
		return c.builder.Pred(classPredicate(node.Class))
	case syntax.SetRange:
		lo, hi := node.Lo, node.Hi
		return c.builder.Pred(func(r rune) bool { return lo <= r && r <= hi })
	case syntax.SetChar:
		return c.builder.Token(node.R)
	default:
		return c.builder.Pred(func(rune) bool { return false })
	}
}

// fold combines a non-empty fragment list left-to-right with op.
func (c *Compiler) fold(frags []Fragment, op func(Fragment, Fragment) Fragment) (Fragment, error) {
	if len(frags) == 0 {
		return Fragment{}, fmt.Errorf("%w: fold of an empty fragment list", ErrInternal)
	}
	acc := frags[0]
	for _, f := range frags[1:] {
		acc = op(acc, f)
	}
	return acc, nil
}
