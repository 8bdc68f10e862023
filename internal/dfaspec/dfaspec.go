// Package dfaspec reads automaton descriptions from text.
//
// A file holds one or more named automata:
//
//	# count the 0s modulo 3
//	dfa zeros_mod3 {
//	    alphabet 0, 1;
//	    states q0, q1, final q2;
//	    start q0;
//	    q0 0 -> q1;  q0 1 -> q0;
//	    q1 0 -> q2;  q1 1 -> q1;
//	    q2 0 -> q0;  q2 1 -> q2;
//	}
//
// Accepting states are given by a 'final' marker in the states clause, by an
// 'accept' clause, or both. The words dfa, alphabet, states, final, start
// and accept are reserved.
package dfaspec

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"automatalab/internal/dfa"
)

type File struct {
	Automata []*Automaton `parser:"@@*"`
}

type Automaton struct {
	Pos     lexer.Position
	Name    string    `parser:"'dfa' @Ident '{'"`
	Clauses []*Clause `parser:"@@* '}'"`
}

type Clause struct {
	Alphabet []string     `parser:"  'alphabet' @(Ident|Int) (',' @(Ident|Int))* ';'"`
	States   []*StateItem `parser:"| 'states' @@ (',' @@)* ';'"`
	Start    *string      `parser:"| 'start' @Ident ';'"`
	Accept   []string     `parser:"| 'accept' @Ident (',' @Ident)* ';'"`
	Edge     *Edge        `parser:"| @@ ';'"`
}

type StateItem struct {
	Final bool   `parser:"@'final'?"`
	Name  string `parser:"@Ident"`
}

type Edge struct {
	From string `parser:"@Ident"`
	On   string `parser:"@(Ident|Int)"`
	To   string `parser:"'->' @Ident"`
}

var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[{},;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(specLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads all automata from r. name is used in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	return parser.Parse(name, r)
}

// ParseString reads all automata from src.
func ParseString(name, src string) (*File, error) {
	return parser.ParseString(name, src)
}

// Lookup returns the automaton called name. An empty name selects the
// first automaton of the file.
func (f *File) Lookup(name string) (*Automaton, error) {
	if len(f.Automata) == 0 {
		return nil, fmt.Errorf("dfaspec: no automaton defined")
	}
	if name == "" {
		return f.Automata[0], nil
	}
	for _, a := range f.Automata {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("dfaspec: no automaton named %q", name)
}

// Build validates all automata of the file, keyed by name.
func (f *File) Build() (map[string]*dfa.DFA, error) {
	out := make(map[string]*dfa.DFA, len(f.Automata))
	for _, a := range f.Automata {
		if _, dup := out[a.Name]; dup {
			return nil, fmt.Errorf("%s: dfaspec: automaton %q defined twice", a.Pos, a.Name)
		}
		d, err := a.Build()
		if err != nil {
			return nil, err
		}
		out[a.Name] = d
	}
	return out, nil
}

// Description converts the parsed clauses, in order, to a dfa.Description.
// Clauses may repeat; their entries accumulate. A repeated start clause
// overrides the earlier one.
func (a *Automaton) Description() dfa.Description {
	var desc dfa.Description
	for _, c := range a.Clauses {
		switch {
		case c.Alphabet != nil:
			for _, s := range c.Alphabet {
				desc.Alphabet = append(desc.Alphabet, dfa.Symbol(s))
			}
		case c.States != nil:
			for _, s := range c.States {
				desc.States = append(desc.States, dfa.StateSpec{Name: dfa.State(s.Name), Final: s.Final})
			}
		case c.Start != nil:
			desc.Start = dfa.State(*c.Start)
		case c.Accept != nil:
			for _, s := range c.Accept {
				desc.Accepting = append(desc.Accepting, dfa.State(s))
			}
		case c.Edge != nil:
			desc.Transitions = append(desc.Transitions, dfa.Transition{
				From: dfa.State(c.Edge.From),
				On:   dfa.Symbol(c.Edge.On),
				To:   dfa.State(c.Edge.To),
			})
		}
	}
	return desc
}

// Build validates the automaton. Errors carry the position of the
// automaton's declaration.
func (a *Automaton) Build() (*dfa.DFA, error) {
	d, err := dfa.New(a.Description())
	if err != nil {
		return nil, fmt.Errorf("%s: dfa %s: %w", a.Pos, a.Name, err)
	}
	return d, nil
}

// Load parses r and builds the automaton called name (or the first one if
// name is empty).
func Load(filename string, r io.Reader, name string) (*dfa.DFA, error) {
	f, err := Parse(filename, r)
	if err != nil {
		return nil, err
	}
	a, err := f.Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.Build()
}
