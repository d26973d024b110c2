// Package meta selects and drives the search engine for a compiled pattern.
//
// Most patterns run on the NFA simulation. Pure literal alternations are
// detected at compile time and dispatched to an Aho-Corasick automaton,
// which enumerates the same admitted match set far faster. Whatever the
// strategy, an Engine is safe for concurrent use: simulators carry mutable
// buffers, so the engine hands them out through a pool.
package meta

import (
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/njhlai/goregex/nfa"
)

// Engine executes searches for one compiled pattern.
type Engine struct {
	pattern  string
	auto     *nfa.Automaton
	strategy Strategy

	// ac is set only for UseAhoCorasick.
	ac *ahocorasick.Automaton

	// sims pools simulators so concurrent searches do not share buffers.
	sims sync.Pool
}

func newEngine(pattern string, auto *nfa.Automaton) *Engine {
	e := &Engine{
		pattern:  pattern,
		auto:     auto,
		strategy: UseNFA,
	}
	e.sims.New = func() any {
		return nfa.NewSimulator(auto)
	}
	return e
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the selected search strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// FullMatch reports whether the pattern matches the entire input.
func (e *Engine) FullMatch(input string) bool {
	if e.strategy == UseAhoCorasick {
		for _, sp := range e.literalSpans(input) {
			if sp.start == 0 && sp.end == len(input) {
				return true
			}
		}
		return false
	}

	sim := e.acquire()
	defer e.release(sim)
	return sim.FullMatch(input)
}

// GreedySearch returns the first longest admitted match, or ok == false
// when there is none.
func (e *Engine) GreedySearch(input string) (string, bool) {
	if e.strategy == UseAhoCorasick {
		spans := e.literalSpans(input)
		if len(spans) == 0 {
			return "", false
		}
		best := spans[0]
		for _, sp := range spans[1:] {
			if sp.end-sp.start > best.end-best.start {
				best = sp
			}
		}
		return input[best.start:best.end], true
	}

	sim := e.acquire()
	defer e.release(sim)
	return sim.GreedySearch(input)
}

// GlobalSearch returns all admitted non-overlapping matches in start order.
func (e *Engine) GlobalSearch(input string) []string {
	if e.strategy == UseAhoCorasick {
		spans := e.literalSpans(input)
		out := make([]string, len(spans))
		for i, sp := range spans {
			out[i] = input[sp.start:sp.end]
		}
		return out
	}

	sim := e.acquire()
	defer e.release(sim)
	return sim.GlobalSearch(input)
}

// span is a byte-offset match interval from the literal engine.
type span struct {
	start, end int
}

// literalSpans enumerates non-overlapping literal matches left to right.
// Stepping to each match's end reproduces the NFA admission rule because
// literal branches are non-empty and prefix-free.
func (e *Engine) literalSpans(input string) []span {
	haystack := []byte(input)

	var out []span
	pos := 0
	for pos <= len(haystack) {
		m := e.ac.Find(haystack, pos)
		if m == nil {
			break
		}
		out = append(out, span{start: m.Start, end: m.End})
		pos = m.End
	}
	return out
}

func (e *Engine) acquire() *nfa.Simulator {
	return e.sims.Get().(*nfa.Simulator)
}

func (e *Engine) release(sim *nfa.Simulator) {
	e.sims.Put(sim)
}
