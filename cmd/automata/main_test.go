package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"automatalab/internal/regex"
)

func TestRegexCommand(t *testing.T) {
	var out bytes.Buffer
	if err := runRegex([]string{"-tokens", "(00+001)*+1*(0+1+2)"}, &out); err != nil {
		t.Fatal(err)
	}
	want := "(0,0+0,0,1)*+1*,(0+1+2)#\n(+ (* (+ (, 0 0) (, (, 0 0) 1))) (, (* 1) (+ (+ 0 1) 2)))\n"
	if out.String() != want {
		t.Fatalf("want %q, got %q", want, out.String())
	}
}

func TestRegexCommandInfix(t *testing.T) {
	var out bytes.Buffer
	if err := runRegex([]string{"-infix", "a", "b*"}, &out); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "a,b*\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRegexCommandSyntaxError(t *testing.T) {
	err := runRegex([]string{"a("}, &bytes.Buffer{})
	if !errors.Is(err, regex.ErrUnbalancedParen) {
		t.Fatalf("want unbalanced parenthesis, got %v", err)
	}
	if err := runRegex(nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for a missing pattern")
	}
}

func TestRegexCommandDOT(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tree.dot")
	if err := runRegex([]string{"-dot", file, "a+b"}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph G {") {
		t.Fatalf("unexpected DOT output %q", data)
	}
}

func TestDFACommand(t *testing.T) {
	tests := []struct {
		args     []string
		accepted bool
		out      string
	}{
		{[]string{"-f", "testdata/zeros.dfa", "0", "0"}, true, "accepted\n"},
		{[]string{"-f", "testdata/zeros.dfa", "0 1 0 1 0 1 0"}, false, "rejected\n"},
		{[]string{"-f", "testdata/zeros.dfa", "-name", "ends_00", "1 0 0"}, true, "accepted\n"},
		{[]string{"-f", "testdata/zeros.dfa", "-trace", "0", "1", "0"}, true, "q0 -> q1 -> q1 -> q2\naccepted\n"},
		{[]string{"-f", "testdata/zeros.dfa", "-trace", "0", "2"}, false, "q0 -> q1 -> (stuck)\nrejected\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		accepted, err := runDFA(tt.args, &out)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if accepted != tt.accepted || out.String() != tt.out {
			t.Errorf("%v: got %v %q, want %v %q", tt.args, accepted, out.String(), tt.accepted, tt.out)
		}
	}
}

func TestDFACommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"0", "1"},
		{"-f", "testdata/missing.dfa", "0"},
		{"-f", "testdata/zeros.dfa", "-name", "nope", "0"},
	} {
		if _, err := runDFA(args, &bytes.Buffer{}); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestSplitSymbols(t *testing.T) {
	w := splitSymbols("  0 1\t10\n")
	if len(w) != 3 || w[0] != "0" || w[1] != "1" || w[2] != "10" {
		t.Fatalf("unexpected split %v", w)
	}
	if len(splitSymbols("")) != 0 {
		t.Fatal("empty input must give an empty sequence")
	}
}
