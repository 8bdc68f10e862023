// Package dot prints Graphviz representations of syntax trees and automata.
package dot

import (
	"fmt"
	"io"

	"automatalab/internal/dfa"
	"automatalab/internal/regex"
)

// Export writes a Graphviz digraph for g, which is either a *regex.Node
// or a *dfa.DFA.
func Export(w io.Writer, g interface{}) error {
	p := &printer{w: w}
	p.printf("digraph G {\n")

	switch t := g.(type) {

	//------------------------------------------------------------------ tree
	case *regex.Node:
		p.printf("    node [shape=plaintext];\n")
		id := 0
		var walk func(*regex.Node) int
		walk = func(n *regex.Node) int {
			me := id
			id++
			label := string(n.Sym)
			if n.Type != regex.NLeaf {
				label = n.Operator().String()
			}
			p.printf("    t%d [label=%q];\n", me, label)
			for _, c := range []*regex.Node{n.Left, n.Right} {
				if c != nil {
					p.printf("    t%d -> t%d;\n", me, walk(c))
				}
			}
			return me
		}
		walk(t)

	//------------------------------------------------------------------ DFA
	case *dfa.DFA:
		p.printf("    rankdir=LR;\n")
		for _, q := range t.States() {
			shape := "circle"
			if t.IsAccepting(q) {
				shape = "doublecircle"
			}
			p.printf("    %q [shape=%s];\n", q, shape)
		}
		for _, tr := range t.Transitions() {
			p.printf("    %q -> %q [label=%q];\n", tr.From, tr.To, tr.On)
		}
		p.printf("    _start [shape=point]; _start -> %q;\n", t.Start())

	default:
		return fmt.Errorf("dot: cannot export %T", g)
	}

	p.printf("}\n")
	return p.err
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
