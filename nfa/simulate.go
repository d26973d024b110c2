package nfa

import (
	"github.com/njhlai/goregex/internal/sparse"
	"github.com/njhlai/goregex/syntax"
)

// The simulator views input as an interleaved event stream:
//
//	boundary(0) char(0) boundary(1) char(1) ... char(n-1) boundary(n)
//
// Every boundary carries a set of anchor tags and spawns a fresh frontier,
// one per candidate match origin. All frontiers advance in lockstep: at a
// boundary each frontier is replaced by its anchor-aware epsilon closure and
// checked for the accept state; at a character each frontier fires its
// consuming transitions. Matches are assembled after the loop by walking
// frontiers in start order and admitting non-overlapping intervals.

// Match is a single admitted match. Offsets are rune indices into the input.
type Match struct {
	Start int
	End   int
}

// anchorSet is the set of anchor tags in force at one boundary.
type anchorSet uint8

func (s *anchorSet) add(a syntax.Anchor) {
	*s |= 1 << a
}

func (s anchorSet) has(a syntax.Anchor) bool {
	return s&(1<<a) != 0
}

// boundaryTags computes the tags for the boundary before runes[i].
// Position 0 and the final position always carry a word-boundary tag; an
// interior boundary carries one iff exactly one neighbour is a word
// character. The empty input's single boundary carries all three tags.
func boundaryTags(runes []rune, i int) anchorSet {
	var tags anchorSet

	if i == 0 {
		tags.add(syntax.AnchorStart)
	}
	if i == len(runes) {
		tags.add(syntax.AnchorEnd)
	}
	if i == 0 || i == len(runes) {
		tags.add(syntax.AnchorWordBoundary)
	} else if isWordChar(runes[i-1]) != isWordChar(runes[i]) {
		tags.add(syntax.AnchorWordBoundary)
	}

	return tags
}

// frontier is the per-origin simulation state: the best accepting right
// boundary seen so far (-1 if none) and the active state set.
type frontier struct {
	start  int
	end    int
	states []StateID
}

// Simulator runs an automaton against input text. It reuses internal
// buffers across calls and is therefore not safe for concurrent use; wrap
// it in a pool to share a compiled automaton between goroutines.
type Simulator struct {
	auto    *Automaton
	visited *sparse.Set
	stack   []StateID
}

// NewSimulator creates a simulator for the given automaton.
func NewSimulator(auto *Automaton) *Simulator {
	return &Simulator{
		auto:    auto,
		visited: sparse.NewSet(uint32(auto.States())),
	}
}

// FullMatch reports whether the automaton matches the entire input.
func (s *Simulator) FullMatch(input string) bool {
	runes := []rune(input)
	for _, m := range s.matches(runes) {
		if m.Start == 0 && m.End == len(runes) {
			return true
		}
	}
	return false
}

// GreedySearch returns the first longest admitted match, or ok == false
// when the input contains no match at all.
func (s *Simulator) GreedySearch(input string) (string, bool) {
	runes := []rune(input)
	matches := s.matches(runes)
	if len(matches) == 0 {
		return "", false
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.End-m.Start > best.End-best.Start {
			best = m
		}
	}
	return string(runes[best.Start:best.End]), true
}

// GlobalSearch returns all admitted non-overlapping matches in order of
// their start position. The result may contain empty strings when the
// automaton permits empty matches.
func (s *Simulator) GlobalSearch(input string) []string {
	runes := []rune(input)
	matches := s.matches(runes)

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(runes[m.Start:m.End])
	}
	return out
}

// Matches returns the admitted non-overlapping matches as rune-offset
// intervals in start order.
func (s *Simulator) Matches(input string) []Match {
	return s.matches([]rune(input))
}

// matches runs the simulation and applies the non-overlap admission rule:
// a frontier's best match [left, right) is admitted iff left is at or past
// the previous admitted end and right makes strict forward progress.
func (s *Simulator) matches(runes []rune) []Match {
	frontiers := s.run(runes)

	var out []Match
	prevEnd := -1
	for _, f := range frontiers {
		if f.end < 0 {
			continue
		}
		if prevEnd < 0 || (prevEnd <= f.start && prevEnd < f.end) {
			out = append(out, Match{Start: f.start, End: f.end})
			prevEnd = f.end
		}
	}
	return out
}

// run drives all frontiers over the event stream and returns them in start
// order.
func (s *Simulator) run(runes []rune) []frontier {
	frontiers := make([]frontier, 0, len(runes)+1)

	for i := 0; i <= len(runes); i++ {
		tags := boundaryTags(runes, i)

		// A new candidate match may begin at every boundary.
		frontiers = append(frontiers, frontier{
			start:  i,
			end:    -1,
			states: []StateID{s.auto.Start()},
		})

		for fi := range frontiers {
			f := &frontiers[fi]
			f.states = s.exhaustEpsilons(f.states, tags)
			if s.containsAccept(f.states) {
				// Monotone upgrade: i only grows.
				f.end = i
			}
		}

		if i == len(runes) {
			break
		}

		c := runes[i]
		for fi := range frontiers {
			f := &frontiers[fi]
			f.states = s.step(f.states, c)
		}
	}

	return frontiers
}

// exhaustEpsilons computes the anchor-aware epsilon closure of states: a
// worklist DFS expanding through trivial epsilons unconditionally and
// through anchor epsilons only when the boundary carries the matching tag.
// The result holds the states with no enabled epsilon edges left: consuming
// states, blocked anchors, and the accept state.
func (s *Simulator) exhaustEpsilons(states []StateID, tags anchorSet) []StateID {
	s.visited.Clear()
	s.stack = append(s.stack[:0], states...)

	var dest []StateID
	for len(s.stack) > 0 {
		id := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if s.visited.Contains(uint32(id)) {
			continue
		}
		s.visited.Insert(uint32(id))

		st := s.auto.State(id)
		switch st.kind {
		case StateTrivial:
			if len(st.out) == 0 {
				dest = append(dest, id)
				break
			}
			s.stack = append(s.stack, st.out...)
		case StateToken, StatePred:
			dest = append(dest, id)
		case StateAnchor:
			if tags.has(st.anchor) {
				s.stack = append(s.stack, st.next)
			} else {
				// Blocked assertion: the state stays but cannot consume, so
				// the path dies at the next character.
				dest = append(dest, id)
			}
		}
	}

	return dest
}

// step fires the consuming transition of every state on character c.
// States that do not consume c are dropped.
func (s *Simulator) step(states []StateID, c rune) []StateID {
	var next []StateID
	for _, id := range states {
		st := s.auto.State(id)
		switch st.kind {
		case StateToken:
			if st.token == c {
				next = append(next, st.next)
			}
		case StatePred:
			if s.auto.predicate(st.pred)(c) {
				next = append(next, st.next)
			}
		}
	}
	return next
}

// containsAccept reports whether the closed state set reached the accept
// state. Identity comparison on state IDs is all that is needed.
func (s *Simulator) containsAccept(states []StateID) bool {
	accept := s.auto.Accept()
	for _, id := range states {
		if id == accept {
			return true
		}
	}
	return false
}
