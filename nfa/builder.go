package nfa

import (
	"github.com/njhlai/goregex/syntax"
)

// Builder constructs automata from fragments. States are appended to an
// arena; fragments reference them by ID. Consuming states are created once
// and never rewritten; only trivial accept states have their fan-out amended
// while fragments are combined.
type Builder struct {
	states []State
	preds  []Predicate
}

// Fragment is a partial automaton with a single entry and a single accept
// state. Every fragment the builder returns has a trivial accept, so it can
// always be extended by patching.
type Fragment struct {
	Start  StateID
	Accept StateID
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		states: make([]State, 0, 16),
	}
}

// trivial appends a trivial state with no epsilon edges yet.
func (b *Builder) trivial() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateTrivial})
	return id
}

// patch appends an epsilon edge from a trivial state to target.
func (b *Builder) patch(from, to StateID) {
	s := &b.states[from]
	if s.kind != StateTrivial {
		// Builder misuse; fragments always expose trivial accepts.
		panic("nfa: patch on non-trivial state")
	}
	s.out = append(s.out, to)
}

// Token returns a fragment consuming exactly the character r.
func (b *Builder) Token(r rune) Fragment {
	accept := b.trivial()
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateToken, token: r, next: accept})
	return Fragment{Start: id, Accept: accept}
}

// Pred returns a fragment consuming one character satisfying p.
func (b *Builder) Pred(p Predicate) Fragment {
	idx := uint32(len(b.preds))
	b.preds = append(b.preds, p)

	accept := b.trivial()
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StatePred, pred: idx, next: accept})
	return Fragment{Start: id, Accept: accept}
}

// Anchor returns a fragment whose single epsilon edge is enabled only at
// boundaries tagged with a.
func (b *Builder) Anchor(a syntax.Anchor) Fragment {
	accept := b.trivial()
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, kind: StateAnchor, anchor: a, next: accept})
	return Fragment{Start: id, Accept: accept}
}

// Concat joins f and g in sequence: an epsilon from f's accept into g's
// start. The result accepts where g accepts.
func (b *Builder) Concat(f, g Fragment) Fragment {
	b.patch(f.Accept, g.Start)
	return Fragment{Start: f.Start, Accept: g.Accept}
}

// Or builds the alternation of f and g: a fresh start with epsilons into
// both fragments and a fresh accept both feed into.
func (b *Builder) Or(f, g Fragment) Fragment {
	start := b.trivial()
	accept := b.trivial()

	b.patch(start, f.Start)
	b.patch(start, g.Start)
	b.patch(f.Accept, accept)
	b.patch(g.Accept, accept)

	return Fragment{Start: start, Accept: accept}
}

// Closure builds the Kleene closure of f: zero or more traversals.
// The back-edge from f's accept to f's start is what makes the graph cyclic.
func (b *Builder) Closure(f Fragment) Fragment {
	start := b.trivial()
	accept := b.trivial()

	b.patch(start, f.Start)
	b.patch(start, accept)
	b.patch(f.Accept, f.Start)
	b.patch(f.Accept, accept)

	return Fragment{Start: start, Accept: accept}
}

// Plus builds one-or-more traversals of f. Unlike Closure there is no
// epsilon from the new start to the new accept.
func (b *Builder) Plus(f Fragment) Fragment {
	start := b.trivial()
	accept := b.trivial()

	b.patch(start, f.Start)
	b.patch(f.Accept, f.Start)
	b.patch(f.Accept, accept)

	return Fragment{Start: start, Accept: accept}
}

// Optional builds zero-or-one traversal of f.
func (b *Builder) Optional(f Fragment) Fragment {
	start := b.trivial()
	accept := b.trivial()

	b.patch(start, f.Start)
	b.patch(start, accept)
	b.patch(f.Accept, accept)

	return Fragment{Start: start, Accept: accept}
}

// Build freezes the builder's arena into an automaton rooted at f.
// The builder must not be used afterwards.
func (b *Builder) Build(f Fragment) *Automaton {
	return &Automaton{
		states: b.states,
		preds:  b.preds,
		start:  f.Start,
		accept: f.Accept,
	}
}
