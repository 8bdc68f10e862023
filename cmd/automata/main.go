// Command automata parses regular expressions into syntax trees and runs
// symbol sequences through deterministic finite automata.
//
//	automata regex [-tokens] [-infix] [-dot file] PATTERN
//	automata dfa -f file [-name NAME] [-trace] [-dot file] SYMBOL...
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"automatalab/internal/dfa"
	"automatalab/internal/dfaspec"
	"automatalab/internal/dot"
	"automatalab/internal/regex"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: automata regex [-tokens] [-infix] [-dot file] PATTERN")
	fmt.Fprintln(os.Stderr, "       automata dfa -f file [-name NAME] [-trace] [-dot file] SYMBOL...")
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("automata: ")
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "regex":
		err = runRegex(os.Args[2:], os.Stdout)
	case "dfa":
		var accepted bool
		accepted, err = runDFA(os.Args[2:], os.Stdout)
		if err == nil && !accepted {
			os.Exit(1)
		}
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runRegex(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("regex", flag.ContinueOnError)
	tokens := fs.Bool("tokens", false, "print the normalized token stream")
	infix := fs.Bool("infix", false, "print the in-order form of the tree")
	dotFile := fs.String("dot", "", "write the syntax tree as Graphviz DOT to file ('-' for stdout)")
	debug := fs.Bool("debug", false, "trace parser decisions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("regex: missing pattern")
	}
	setTracing(*debug)
	pattern := strings.Join(fs.Args(), " ")

	stream := regex.Normalize(pattern)
	if *tokens {
		fmt.Fprintln(out, regex.Render(stream))
	}
	tree, err := regex.ParseTokens(stream)
	if err != nil {
		return err
	}
	if *infix {
		fmt.Fprintln(out, tree.Infix())
	} else {
		fmt.Fprintln(out, tree)
	}
	if *dotFile != "" {
		return writeDOT(*dotFile, tree, out)
	}
	return nil
}

func runDFA(args []string, out io.Writer) (bool, error) {
	fs := flag.NewFlagSet("dfa", flag.ContinueOnError)
	file := fs.String("f", "", "automaton description file (required)")
	name := fs.String("name", "", "automaton to use when the file defines several")
	trace := fs.Bool("trace", false, "print the visited states")
	dotFile := fs.String("dot", "", "write the automaton as Graphviz DOT to file ('-' for stdout)")
	debug := fs.Bool("debug", false, "trace automaton construction")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if *file == "" {
		return false, fmt.Errorf("dfa: -f is required")
	}
	setTracing(*debug)

	f, err := os.Open(*file)
	if err != nil {
		return false, err
	}
	defer f.Close()
	d, err := dfaspec.Load(*file, f, *name)
	if err != nil {
		return false, err
	}
	if *dotFile != "" {
		if err := writeDOT(*dotFile, d, out); err != nil {
			return false, err
		}
	}

	w := splitSymbols(strings.Join(fs.Args(), " "))
	if *trace {
		path, ok := d.Run(w)
		fmt.Fprintln(out, joinStates(path, ok))
	}
	accepted := d.Accepts(w)
	if accepted {
		fmt.Fprintln(out, "accepted")
	} else {
		fmt.Fprintln(out, "rejected")
	}
	return accepted, nil
}

// splitSymbols splits a whitespace-delimited sequence into symbols.
func splitSymbols(s string) []dfa.Symbol {
	fields := strings.Fields(s)
	w := make([]dfa.Symbol, len(fields))
	for i, f := range fields {
		w[i] = dfa.Symbol(f)
	}
	return w
}

func joinStates(path []dfa.State, ok bool) string {
	parts := make([]string, len(path))
	for i, q := range path {
		parts[i] = string(q)
	}
	s := strings.Join(parts, " -> ")
	if !ok {
		s += " -> (stuck)"
	}
	return s
}

func writeDOT(filename string, g interface{}, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := dot.Export(&buf, g); err != nil {
		return err
	}
	if filename == "-" {
		_, err := io.Copy(stdout, &buf)
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0o644)
}

func setTracing(debug bool) {
	if debug {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}
