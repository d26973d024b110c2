package nfa

import (
	"testing"
)

// simFor builds a simulator over the fragment returned by build.
func simFor(build func(b *Builder) Fragment) *Simulator {
	b := NewBuilder()
	return NewSimulator(b.Build(build(b)))
}

// checkSearches asserts the three search modes against expected vectors.
// wantGreedy == nil means greedy search must report no match.
func checkSearches(t *testing.T, sim *Simulator, input string, wantFull bool, wantGreedy *string, wantGlobal []string) {
	t.Helper()

	if got := sim.FullMatch(input); got != wantFull {
		t.Errorf("FullMatch(%q) = %v, want %v", input, got, wantFull)
	}

	got, ok := sim.GreedySearch(input)
	if wantGreedy == nil {
		if ok {
			t.Errorf("GreedySearch(%q) = (%q, true), want no match", input, got)
		}
	} else if !ok || got != *wantGreedy {
		t.Errorf("GreedySearch(%q) = (%q, %v), want (%q, true)", input, got, ok, *wantGreedy)
	}

	global := sim.GlobalSearch(input)
	if len(global) != len(wantGlobal) {
		t.Errorf("GlobalSearch(%q) = %q, want %q", input, global, wantGlobal)
		return
	}
	for i := range global {
		if global[i] != wantGlobal[i] {
			t.Errorf("GlobalSearch(%q)[%d] = %q, want %q", input, i, global[i], wantGlobal[i])
		}
	}
}

func str(s string) *string { return &s }

func TestBuilder_Concat(t *testing.T) {
	// cd
	sim := simFor(func(b *Builder) Fragment {
		return b.Concat(b.Token('c'), b.Token('d'))
	})

	tests := []struct {
		input  string
		full   bool
		greedy *string
		global []string
	}{
		{"", false, nil, nil},
		{"c", false, nil, nil},
		{"d", false, nil, nil},
		{"cd", true, str("cd"), []string{"cd"}},
		{"dc", false, nil, nil},
		{"abcde", false, str("cd"), []string{"cd"}},
		{"monty python", false, nil, nil},
	}
	for _, tt := range tests {
		checkSearches(t, sim, tt.input, tt.full, tt.greedy, tt.global)
	}
}

func TestBuilder_Or(t *testing.T) {
	// c|d
	sim := simFor(func(b *Builder) Fragment {
		return b.Or(b.Token('c'), b.Token('d'))
	})

	tests := []struct {
		input  string
		full   bool
		greedy *string
		global []string
	}{
		{"", false, nil, nil},
		{"c", true, str("c"), []string{"c"}},
		{"d", true, str("d"), []string{"d"}},
		{"cd", false, str("c"), []string{"c", "d"}},
		{"dc", false, str("d"), []string{"d", "c"}},
		{"abcde", false, str("c"), []string{"c", "d"}},
		{"monty python", false, nil, nil},
	}
	for _, tt := range tests {
		checkSearches(t, sim, tt.input, tt.full, tt.greedy, tt.global)
	}
}

func TestBuilder_Closure(t *testing.T) {
	// a*
	sim := simFor(func(b *Builder) Fragment {
		return b.Closure(b.Token('a'))
	})

	tests := []struct {
		input  string
		full   bool
		greedy *string
		global []string
	}{
		{"", true, str(""), []string{""}},
		{"a", true, str("a"), []string{"a"}},
		{"aaa", true, str("aaa"), []string{"aaa"}},
		{"b", false, str(""), []string{"", ""}},
		{"ab", false, str("a"), []string{"a", ""}},
		{"ba", false, str("a"), []string{"", "a"}},
		{"basic", false, str("a"), []string{"", "a", "", "", ""}},
		{"this is a string", false, str("a"), []string{"", "", "", "", "", "", "", "", "a", "", "", "", "", "", "", ""}},
	}
	for _, tt := range tests {
		checkSearches(t, sim, tt.input, tt.full, tt.greedy, tt.global)
	}
}

func TestBuilder_Plus(t *testing.T) {
	// a+
	sim := simFor(func(b *Builder) Fragment {
		return b.Plus(b.Token('a'))
	})

	tests := []struct {
		input  string
		full   bool
		greedy *string
		global []string
	}{
		{"", false, nil, nil},
		{"a", true, str("a"), []string{"a"}},
		{"aaa", true, str("aaa"), []string{"aaa"}},
		{"b", false, nil, nil},
		{"ab", false, str("a"), []string{"a"}},
		{"ba", false, str("a"), []string{"a"}},
		{"basic", false, str("a"), []string{"a"}},
		{"this is a string", false, str("a"), []string{"a"}},
	}
	for _, tt := range tests {
		checkSearches(t, sim, tt.input, tt.full, tt.greedy, tt.global)
	}
}

func TestBuilder_Optional(t *testing.T) {
	// a?
	sim := simFor(func(b *Builder) Fragment {
		return b.Optional(b.Token('a'))
	})

	tests := []struct {
		input  string
		full   bool
		greedy *string
		global []string
	}{
		{"", true, str(""), []string{""}},
		{"a", true, str("a"), []string{"a"}},
		{"aaa", false, str("a"), []string{"a", "a", "a"}},
		{"b", false, str(""), []string{"", ""}},
		{"ab", false, str("a"), []string{"a", ""}},
		{"ba", false, str("a"), []string{"", "a"}},
		{"basic", false, str("a"), []string{"", "a", "", "", ""}},
	}
	for _, tt := range tests {
		checkSearches(t, sim, tt.input, tt.full, tt.greedy, tt.global)
	}
}

func TestBuilder_Composed(t *testing.T) {
	// (ab?)*|c
	sim := simFor(func(b *Builder) Fragment {
		inner := b.Concat(b.Token('a'), b.Optional(b.Token('b')))
		return b.Or(b.Closure(inner), b.Token('c'))
	})

	tests := []struct {
		input  string
		full   bool
		greedy *string
		global []string
	}{
		{"abaaaaaa", true, str("abaaaaaa"), []string{"abaaaaaa"}},
		{"abab", true, str("abab"), []string{"abab"}},
		{"abad", false, str("aba"), []string{"aba", ""}},
		{"c", true, str("c"), []string{"c"}},
		{"", true, str(""), []string{""}},
		{"bb", false, str(""), []string{"", "", ""}},
		{"aaaaaaac", false, str("aaaaaaa"), []string{"aaaaaaa", "c"}},
		{"cc", false, str("c"), []string{"c", "c"}},
	}
	for _, tt := range tests {
		checkSearches(t, sim, tt.input, tt.full, tt.greedy, tt.global)
	}
}

func TestBuilder_FragmentInvariants(t *testing.T) {
	b := NewBuilder()
	frags := []Fragment{
		b.Token('x'),
		b.Pred(func(r rune) bool { return r == 'y' }),
		b.Or(b.Token('a'), b.Token('b')),
		b.Closure(b.Token('c')),
		b.Plus(b.Token('d')),
		b.Optional(b.Token('e')),
		b.Concat(b.Token('f'), b.Token('g')),
	}

	auto := b.Build(frags[0])
	for i, f := range frags {
		accept := auto.State(f.Accept)
		if accept == nil {
			t.Fatalf("fragment %d has invalid accept state", i)
		}
		if accept.Kind() != StateTrivial {
			t.Errorf("fragment %d accept kind = %v, want Trivial", i, accept.Kind())
		}
	}
}

func TestAutomaton_Accessors(t *testing.T) {
	b := NewBuilder()
	auto := b.Build(b.Token('a'))

	if auto.States() != 2 {
		t.Errorf("States() = %d, want 2", auto.States())
	}
	if auto.State(InvalidState) != nil {
		t.Error("State(InvalidState) should be nil")
	}
	if auto.State(StateID(auto.States())) != nil {
		t.Error("out-of-range State should be nil")
	}

	start := auto.State(auto.Start())
	if start.Kind() != StateToken {
		t.Errorf("start kind = %v, want Token", start.Kind())
	}
	if r, next := start.Token(); r != 'a' || next != auto.Accept() {
		t.Errorf("Token() = (%q, %d), want ('a', %d)", r, next, auto.Accept())
	}
}
