package dfa

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"automatalab/internal/symbol"
)

// State names a state of an automaton.
type State string

// Symbol is an element of an automaton's alphabet.
type Symbol string

// StateSpec declares a state. Final marks it as accepting.
type StateSpec struct {
	Name  State
	Final bool
}

// Transition is one entry of the transition relation.
type Transition struct {
	From State
	On   Symbol
	To   State
}

// Description is the raw, unvalidated form of an automaton. The accepting
// set is the union of Accepting and all states flagged Final.
type Description struct {
	States      []StateSpec
	Alphabet    []Symbol
	Transitions []Transition
	Start       State
	Accepting   []State
}

type edge struct {
	from State
	on   Symbol
}

// DFA is a validated deterministic finite automaton.
type DFA struct {
	states   []State // declaration order
	final    map[State]bool
	symbols  []Symbol
	alphabet map[Symbol]struct{}
	delta    map[edge]State
	start    State
}

// New validates desc and creates an automaton from it.
func New(desc Description) (*DFA, error) {
	d := &DFA{
		final:    make(map[State]bool, len(desc.States)),
		alphabet: make(map[Symbol]struct{}, len(desc.Alphabet)),
		delta:    make(map[edge]State, len(desc.Transitions)),
	}
	if len(desc.States) == 0 {
		return nil, configError("states", "", ErrEmpty)
	}
	for _, s := range desc.States {
		if s.Name == "" {
			return nil, configError("state", "", ErrEmpty)
		}
		if _, dup := d.final[s.Name]; dup {
			return nil, configError("state", string(s.Name), ErrDuplicate)
		}
		d.final[s.Name] = s.Final
		d.states = append(d.states, s.Name)
	}
	for _, a := range desc.Alphabet {
		if !validSymbol(a) {
			return nil, configError("symbol", string(a), ErrInvalidSymbol)
		}
		if _, dup := d.alphabet[a]; dup {
			return nil, configError("symbol", string(a), ErrDuplicate)
		}
		d.alphabet[a] = struct{}{}
		d.symbols = append(d.symbols, a)
	}
	if !d.hasState(desc.Start) {
		return nil, configError("start state", string(desc.Start), ErrUnknownState)
	}
	d.start = desc.Start
	for _, q := range desc.Accepting {
		if !d.hasState(q) {
			return nil, configError("accepting state", string(q), ErrUnknownState)
		}
		d.final[q] = true
	}
	for _, t := range desc.Transitions {
		name := fmt.Sprintf("%s %s -> %s", t.From, t.On, t.To)
		if !d.hasState(t.From) {
			return nil, configError("transition", name, fmt.Errorf("%w %q", ErrUnknownState, t.From))
		}
		if !d.hasState(t.To) {
			return nil, configError("transition", name, fmt.Errorf("%w %q", ErrUnknownState, t.To))
		}
		if !d.hasSymbol(t.On) {
			return nil, configError("transition", name, fmt.Errorf("%w %q", ErrUnknownSymbol, t.On))
		}
		k := edge{t.From, t.On}
		if _, dup := d.delta[k]; dup {
			return nil, configError("transition", name, ErrDuplicate)
		}
		d.delta[k] = t.To
	}
	T().Debugf("dfa: %d states, %d symbols, %d transitions, start %s",
		len(d.states), len(d.symbols), len(d.delta), d.start)
	return d, nil
}

// MustNew is like New but panics on a malformed description.
func MustNew(desc Description) *DFA {
	d, err := New(desc)
	if err != nil {
		panic(err)
	}
	return d
}

// Accepts builds an automaton from desc and runs w on it.
func Accepts(desc Description, w []Symbol) (bool, error) {
	d, err := New(desc)
	if err != nil {
		return false, err
	}
	return d.Accepts(w), nil
}

// Symbols are separated by whitespace on input, so they may not contain any.
func validSymbol(a Symbol) bool {
	return a != "" && strings.IndexFunc(string(a), unicode.IsSpace) < 0
}

func (d *DFA) hasState(q State) bool {
	_, ok := d.final[q]
	return ok
}

func (d *DFA) hasSymbol(a Symbol) bool {
	_, ok := d.alphabet[a]
	return ok
}

// Step returns the successor of q on a. It returns false if q or a are
// unknown or no transition is defined for the pair.
func (d *DFA) Step(q State, a Symbol) (State, bool) {
	if !d.hasState(q) || !d.hasSymbol(a) {
		return "", false
	}
	next, ok := d.delta[edge{q, a}]
	return next, ok
}

// ExtendedStep applies Step for each symbol of w, left to right, and stops
// as soon as a step has no successor. For an empty w it returns q itself.
func (d *DFA) ExtendedStep(q State, w []Symbol) (State, bool) {
	if !d.hasState(q) {
		return "", false
	}
	for _, a := range w {
		next, ok := d.Step(q, a)
		if !ok {
			return "", false
		}
		q = next
	}
	return q, true
}

// Accepts reports whether w leads from the start state to an accepting state.
func (d *DFA) Accepts(w []Symbol) bool {
	q, ok := d.ExtendedStep(d.start, w)
	return ok && d.final[q]
}

// Run returns the states visited while reading w, starting with the start
// state. If the automaton gets stuck, the path ends at the last state reached
// and ok is false.
func (d *DFA) Run(w []Symbol) (path []State, ok bool) {
	q := d.start
	path = append(make([]State, 0, len(w)+1), q)
	for _, a := range w {
		if q, ok = d.Step(q, a); !ok {
			return path, false
		}
		path = append(path, q)
	}
	return path, true
}

// Start returns the start state.
func (d *DFA) Start() State { return d.start }

// States returns all states in declaration order.
func (d *DFA) States() []State { return append([]State(nil), d.states...) }

// Alphabet returns the alphabet in declaration order.
func (d *DFA) Alphabet() []Symbol { return append([]Symbol(nil), d.symbols...) }

// IsAccepting reports whether q is an accepting state.
func (d *DFA) IsAccepting(q State) bool { return d.final[q] }

// Accepting returns the accepting states in declaration order.
func (d *DFA) Accepting() []State {
	var acc []State
	for _, q := range d.states {
		if d.final[q] {
			acc = append(acc, q)
		}
	}
	return acc
}

// AtomicAlphabet reports whether every symbol of the alphabet is a single
// letter or digit, i.e. could appear in a regular expression.
func (d *DFA) AtomicAlphabet() bool {
	for _, a := range d.symbols {
		if !symbol.IsString(string(a)) {
			return false
		}
	}
	return true
}

// Total reports whether a transition is defined for every state and symbol.
func (d *DFA) Total() bool {
	return len(d.delta) == len(d.states)*len(d.symbols)
}

// Transitions returns the transition relation, sorted by state declaration
// order and then by symbol declaration order.
func (d *DFA) Transitions() []Transition {
	rank := make(map[State]int, len(d.states))
	for i, q := range d.states {
		rank[q] = i
	}
	srank := make(map[Symbol]int, len(d.symbols))
	for i, a := range d.symbols {
		srank[a] = i
	}
	ts := make([]Transition, 0, len(d.delta))
	for k, to := range d.delta {
		ts = append(ts, Transition{From: k.from, On: k.on, To: to})
	}
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].From != ts[j].From {
			return rank[ts[i].From] < rank[ts[j].From]
		}
		return srank[ts[i].On] < srank[ts[j].On]
	})
	return ts
}

// Description returns a description which New turns into an equal automaton.
func (d *DFA) Description() Description {
	desc := Description{
		Alphabet:    d.Alphabet(),
		Transitions: d.Transitions(),
		Start:       d.start,
	}
	for _, q := range d.states {
		desc.States = append(desc.States, StateSpec{Name: q, Final: d.final[q]})
	}
	return desc
}
