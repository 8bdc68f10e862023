package dfa

import "fmt"

// Complete returns an automaton with a total transition relation accepting
// the same language. Missing transitions are routed to a new, non-accepting
// sink state. A total automaton is returned unchanged.
func (d *DFA) Complete() *DFA {
	if d.Total() {
		return d
	}
	sink := State("sink")
	for i := 1; d.hasState(sink); i++ {
		sink = State(fmt.Sprintf("sink%d", i))
	}
	desc := d.Description()
	desc.States = append(desc.States, StateSpec{Name: sink})
	for _, q := range append(d.States(), sink) {
		for _, a := range d.symbols {
			if _, ok := d.delta[edge{q, a}]; !ok {
				desc.Transitions = append(desc.Transitions, Transition{From: q, On: a, To: sink})
			}
		}
	}
	return MustNew(desc)
}

// Complement returns an automaton accepting exactly the words over the same
// alphabet which d rejects.
func (d *DFA) Complement() *DFA {
	desc := d.Complete().Description()
	for i := range desc.States {
		desc.States[i].Final = !desc.States[i].Final
	}
	return MustNew(desc)
}

// Intersect returns an automaton accepting the words accepted by both a and b.
func Intersect(a, b *DFA) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union returns an automaton accepting the words accepted by a or b.
func Union(a, b *DFA) (*DFA, error) {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// Product runs a and b in lockstep. A pair state accepts if op says so for
// the two component states. Only pairs reachable from the start pair are
// created. Both automata must share the same alphabet.
func Product(a, b *DFA, op func(bool, bool) bool) (*DFA, error) {
	if !sameAlphabet(a, b) {
		return nil, configError("alphabet", "", ErrAlphabet)
	}
	a, b = a.Complete(), b.Complete()
	type pair struct{ p, q State }
	name := func(x pair) State { return State(fmt.Sprintf("<%s,%s>", x.p, x.q)) }
	start := pair{a.start, b.start}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	desc := Description{Alphabet: a.Alphabet(), Start: name(start)}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		desc.States = append(desc.States, StateSpec{
			Name:  name(cur),
			Final: op(a.final[cur.p], b.final[cur.q]),
		})
		for _, c := range a.symbols {
			next := pair{a.delta[edge{cur.p, c}], b.delta[edge{cur.q, c}]}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
			desc.Transitions = append(desc.Transitions, Transition{From: name(cur), On: c, To: name(next)})
		}
	}
	return New(desc)
}

func sameAlphabet(a, b *DFA) bool {
	if len(a.alphabet) != len(b.alphabet) {
		return false
	}
	for c := range a.alphabet {
		if !b.hasSymbol(c) {
			return false
		}
	}
	return true
}
