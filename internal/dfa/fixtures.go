package dfa

// ZerosModThree accepts words over {0,1} in which the number of 0s leaves a
// remainder of 2 when divided by 3. 1s are ignored.
func ZerosModThree() *DFA {
	return MustNew(Description{
		States:   []StateSpec{{Name: "q0"}, {Name: "q1"}, {Name: "q2"}},
		Alphabet: []Symbol{"0", "1"},
		Transitions: []Transition{
			{"q0", "0", "q1"}, {"q0", "1", "q0"},
			{"q1", "0", "q2"}, {"q1", "1", "q1"},
			{"q2", "0", "q0"}, {"q2", "1", "q2"},
		},
		Start:     "q0",
		Accepting: []State{"q2"},
	})
}

// EndsWithTwoZeros accepts words over {0,1} ending in at least two 0s.
// Its accepting state is given by a final flag.
func EndsWithTwoZeros() *DFA {
	return MustNew(Description{
		States:   []StateSpec{{Name: "q0"}, {Name: "q1"}, {Name: "q2", Final: true}},
		Alphabet: []Symbol{"0", "1"},
		Transitions: []Transition{
			{"q0", "0", "q1"}, {"q0", "1", "q0"},
			{"q1", "0", "q2"}, {"q1", "1", "q0"},
			{"q2", "0", "q2"}, {"q2", "1", "q0"},
		},
		Start: "q0",
	})
}
