package regex

// directive is the outcome of comparing the operator on top of the stack
// with the incoming operator.
type directive int

const (
	syntaxError directive = iota // the pair may never meet
	reduce                       // top binds tighter: build a node, then compare again
	shift                        // incoming binds tighter: push it
	discard                      // matching pair: drop both
)

var directiveNames = [...]string{"error", "reduce", "shift", "discard"}

func (d directive) String() string { return directiveNames[d] }

// precedence is indexed by [top of operator stack][incoming operator].
//
// Star binds tighter than Concat, Concat tighter than Union, equal operators
// associate to the left. An operator never reduces past an open parenthesis
// unless the parenthesis is closed right there.
var precedence = [6][6]directive{
	//            +            ,            *            (            )            #
	Union:  {reduce, shift, shift, shift, reduce, reduce},
	Concat: {reduce, reduce, shift, shift, reduce, reduce},
	Star:   {reduce, reduce, reduce, shift, reduce, reduce},
	LParen: {shift, shift, shift, shift, discard, syntaxError},
	RParen: {reduce, reduce, reduce, syntaxError, reduce, reduce},
	End:    {shift, shift, shift, shift, syntaxError, discard},
}

func lookup(top, incoming Operator) directive {
	return precedence[top][incoming]
}
