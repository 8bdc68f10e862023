/*
Package dfa implements deterministic finite automata over named states and
string symbols.

An automaton is built from a Description, which is validated eagerly: a
malformed description yields a *ConfigError instead of an automaton that
silently rejects everything. The transition relation may be partial; walking
off a defined transition makes the input rejected, it is never an error.

A *DFA is immutable and may be shared between goroutines without locking.
*/
package dfa

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
