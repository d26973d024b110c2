package meta

import (
	"github.com/njhlai/goregex/nfa"
)

// Config controls engine compilation.
type Config struct {
	// DisableLiteralEngine forces the NFA simulation even for patterns the
	// literal engine could serve. Mostly useful for testing and for
	// comparing the two paths.
	DisableLiteralEngine bool

	// Compiler configures the NFA compiler.
	Compiler nfa.CompilerConfig
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Compiler: nfa.DefaultCompilerConfig(),
	}
}
