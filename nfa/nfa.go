package nfa

import (
	"fmt"

	"github.com/njhlai/goregex/syntax"
)

// StateID uniquely identifies an NFA state within its automaton.
// States live in the automaton's arena; a StateID is an index into it, which
// makes identity comparisons trivially cheap and keeps traversal
// cache-friendly.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of NFA state and determines which
// transitions are valid.
type StateKind uint8

const (
	// StateTrivial carries zero or more epsilon edges and matches no
	// character. Fragment accept nodes are always trivial; they are the only
	// states whose fan-out grows during construction.
	StateTrivial StateKind = iota

	// StateToken consumes exactly one input character equal to its token.
	StateToken

	// StatePred consumes exactly one input character satisfying its
	// predicate. Used for '.', character classes, groups and ranges.
	StatePred

	// StateAnchor carries a single epsilon edge enabled only when the
	// current position boundary carries the matching anchor tag.
	StateAnchor
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case StateTrivial:
		return "Trivial"
	case StateToken:
		return "Token"
	case StatePred:
		return "Pred"
	case StateAnchor:
		return "Anchor"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Predicate decides whether a single character satisfies a consuming edge.
type Predicate func(r rune) bool

// State is a single NFA state. The kind determines which fields are valid.
type State struct {
	id   StateID
	kind StateKind

	// For Token: the character to consume.
	token rune

	// For Pred: index into the automaton's predicate table.
	pred uint32

	// For Anchor: the anchor tag gating the epsilon edge.
	anchor syntax.Anchor

	// For Token/Pred/Anchor: the single successor state.
	next StateID

	// For Trivial: epsilon fan-out. Grows only during construction.
	out []StateID
}

// ID returns the state's unique identifier.
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's type.
func (s *State) Kind() StateKind {
	return s.kind
}

// Token returns the consumed character and successor for Token states.
// Returns (0, InvalidState) for other kinds.
func (s *State) Token() (rune, StateID) {
	if s.kind == StateToken {
		return s.token, s.next
	}
	return 0, InvalidState
}

// Anchor returns the gating tag and successor for Anchor states.
// Returns (0, InvalidState) for other kinds.
func (s *State) Anchor() (syntax.Anchor, StateID) {
	if s.kind == StateAnchor {
		return s.anchor, s.next
	}
	return 0, InvalidState
}

// Epsilons returns the epsilon fan-out of a Trivial state.
// Returns nil for other kinds.
func (s *State) Epsilons() []StateID {
	if s.kind == StateTrivial {
		return s.out
	}
	return nil
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch s.kind {
	case StateTrivial:
		return fmt.Sprintf("State(%d, Trivial -> %v)", s.id, s.out)
	case StateToken:
		return fmt.Sprintf("State(%d, Token %q -> %d)", s.id, s.token, s.next)
	case StatePred:
		return fmt.Sprintf("State(%d, Pred #%d -> %d)", s.id, s.pred, s.next)
	case StateAnchor:
		return fmt.Sprintf("State(%d, Anchor %v -> %d)", s.id, s.anchor, s.next)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// Automaton is a compiled Thompson NFA. It exclusively owns its states and
// predicate table and is immutable after Build, so it is safe to share
// across goroutines that only read.
type Automaton struct {
	states []State
	preds  []Predicate
	start  StateID
	accept StateID
}

// Start returns the entry state of the automaton.
func (a *Automaton) Start() StateID {
	return a.start
}

// Accept returns the single accepting state of the automaton.
func (a *Automaton) Accept() StateID {
	return a.accept
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (a *Automaton) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(a.states) {
		return nil
	}
	return &a.states[id]
}

// States returns the total number of states in the automaton.
func (a *Automaton) States() int {
	return len(a.states)
}

// predicate returns the predicate with the given table index.
func (a *Automaton) predicate(idx uint32) Predicate {
	return a.preds[idx]
}

// String returns a human-readable representation of the automaton.
func (a *Automaton) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %d}", len(a.states), a.start, a.accept)
}
