package meta

import (
	"github.com/coregx/ahocorasick"

	"github.com/njhlai/goregex/nfa"
	"github.com/njhlai/goregex/syntax"
)

// Compile compiles pattern into an Engine with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern into an Engine.
//
// The pipeline is parse → NFA compilation → strategy selection. The NFA is
// always compiled, even when a literal strategy is selected: it defines the
// match semantics and serves as the fallback when the literal automaton
// cannot be built.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	expr, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	auto, err := nfa.NewCompiler(config.Compiler).CompileExpression(expr)
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	engine := newEngine(pattern, auto)

	if strategy, seq := chooseStrategy(expr, config); strategy == UseAhoCorasick {
		builder := ahocorasick.NewBuilder()
		for i := 0; i < seq.Len(); i++ {
			builder.AddPattern([]byte(seq.Get(i)))
		}
		if ac, err := builder.Build(); err == nil {
			engine.strategy = UseAhoCorasick
			engine.ac = ac
		}
	}

	return engine, nil
}
