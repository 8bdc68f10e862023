package regex

import (
	"errors"
	"fmt"
)

// Kinds of syntax errors. A *SyntaxError unwraps to one of these.
var (
	ErrUnexpected           = errors.New("unexpected operator")
	ErrUnbalancedParen      = errors.New("unbalanced parenthesis")
	ErrMissingOperand       = errors.New("missing operand")
	ErrUnbalancedExpression = errors.New("unbalanced expression")
	ErrIllegalCharacter     = errors.New("cannot resolve symbol")
)

// SyntaxError describes why a token stream could not be parsed.
type SyntaxError struct {
	Pos  int   // index of the offending token in the normalized stream
	Top  Token // operator on top of the stack when parsing stopped
	Next Token // token being scanned when parsing stopped
	Kind error
	Msg  string
}

func (e *SyntaxError) Error() string {
	at := "end of input"
	if !e.Next.Is(End) {
		at = fmt.Sprintf("'%v'", e.Next)
		if e.Next.Offset >= 0 {
			at = fmt.Sprintf("%s (offset %d)", at, e.Next.Offset)
		}
	}
	if e.Msg == "" {
		return fmt.Sprintf("regex: syntax error at position %d, %s: %v", e.Pos, at, e.Kind)
	}
	return fmt.Sprintf("regex: syntax error at position %d, %s: %v: %s", e.Pos, at, e.Kind, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Kind }

// tableError explains an error cell of the precedence table.
func tableError(pos int, top, next Token) *SyntaxError {
	e := &SyntaxError{Pos: pos, Top: top, Next: next, Kind: ErrUnexpected}
	switch {
	case top.Is(LParen) && next.Is(End):
		e.Kind = ErrUnbalancedParen
		e.Msg = "'(' is not closed"
	case top.Is(End) && next.Is(RParen):
		e.Kind = ErrUnbalancedParen
		e.Msg = "')' without matching '('"
	case top.Is(RParen) && next.Is(LParen):
		e.Msg = "operands must not follow each other without an operator"
	default:
		e.Msg = fmt.Sprintf("'%v' may not follow '%v'", next, top)
	}
	return e
}
