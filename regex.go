// Package goregex is a regular-expression engine built on a Thompson NFA
// simulation.
//
// A pattern is parsed by a combinator grammar into a typed syntax tree,
// lowered into an NFA, and executed by a multi-start simulation that
// produces all three search modes in a single traversal of the input:
//
//	re, err := goregex.Compile(`ba*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.FullMatch("baaa")          // true
//	re.GreedySearch("baababaaa")  // "baaa", true
//	re.GlobalSearch("baababaaa")  // ["baa", "ba", "baaa"]
//
// GlobalSearch enumerates non-overlapping matches left to right; among
// those, GreedySearch picks the first longest; FullMatch reports whether
// one of them covers the whole input.
//
// Supported syntax: alternation, concatenation, `* + ?` and `{l}`/`{l,}`/
// `{l,u}` quantifiers, groups, `.`, the ASCII classes `\w \W \d \D \s \S`,
// character groups with ranges, control escapes, and the anchors `^ $ \b`.
// Backreferences and `\B` parse but are rejected at compile time.
//
// Limitations:
//   - No capture groups (groups only shape the match)
//   - No replace functions
//   - Classes are ASCII; non-ASCII characters satisfy only negated classes
package goregex

import (
	"github.com/njhlai/goregex/meta"
)

// Regex is a compiled regular expression.
//
// A Regex is immutable after compilation and safe for concurrent use by
// multiple goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a regular expression pattern.
//
// The returned error wraps syntax.ErrSyntax for patterns outside the
// grammar and nfa.ErrUnsupported for patterns using backreferences or \B.
func Compile(pattern string) (*Regex, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time:
//
//	var identRegex = goregex.MustCompile(`\w+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("goregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
//	config := goregex.DefaultConfig()
//	config.DisableLiteralEngine = true
//	re, err := goregex.CompileWithConfig("foo|bar", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// FullMatch reports whether the pattern matches the entire input.
func (r *Regex) FullMatch(input string) bool {
	return r.engine.FullMatch(input)
}

// GreedySearch returns the first longest match among the non-overlapping
// matches in input. The boolean is false when input contains no match.
//
//	re := goregex.MustCompile(`\d+`)
//	m, ok := re.GreedySearch("a 12 b 3456 c")
//	// m == "3456", ok == true
func (r *Regex) GreedySearch(input string) (string, bool) {
	return r.engine.GreedySearch(input)
}

// GlobalSearch returns all non-overlapping matches in input, ordered by
// start position. The result may be empty, and may contain empty strings
// when the pattern permits empty matches.
//
//	re := goregex.MustCompile(`a*`)
//	re.GlobalSearch("ab") // ["a", ""]
func (r *Regex) GlobalSearch(input string) []string {
	return r.engine.GlobalSearch(input)
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}
