/*
Package regex turns an infix regular expression into an unambiguous
prefix-form syntax tree.

Supported syntax is deliberately small:

	a, B, 7   atomic symbols (ASCII letters and digits)
	x+y       alternation
	xy, x,y   concatenation (implicit or with an explicit ',')
	x*        Kleene star
	(x)       grouping

Whitespace is ignored. Parsing happens in two steps. Normalize rewrites the
raw text into a token stream, inserting explicit concatenation operators and
a terminating end marker. ParseTokens then runs an operator-precedence parser
over that stream, driven by a fixed 6×6 precedence table and two stacks
(operators and operands).

	tree, err := regex.Parse("(00+001)*+1*(0+1+2)")
	fmt.Println(tree) // (+ (* (+ (, 0 0) (, (, 0 0) 1))) (, (* 1) (+ (+ 0 1) 2)))

All functions of this package are pure; concurrent calls do not interfere.
*/
package regex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
