package regex

import "fmt"

// Operator is one of the six operators known to the precedence table.
type Operator int

const (
	Union  Operator = iota // +
	Concat                 // , (explicit or inserted)
	Star                   // *
	LParen                 // (
	RParen                 // )
	End                    // # end of input
)

var opChars = [...]string{"+", ",", "*", "(", ")", "#"}

func (op Operator) String() string {
	if op < Union || op > End {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return opChars[op]
}

// Kind tells symbols, operators and unresolvable characters apart.
type Kind int

const (
	KindSymbol Kind = iota
	KindOperator
	KindIllegal
)

// Token is an element of a normalized token stream.
type Token struct {
	Kind   Kind
	Op     Operator // valid for KindOperator
	Sym    rune     // the symbol, or the offending character for KindIllegal
	Offset int      // byte offset in the raw text, -1 for inserted operators
}

// SymbolToken creates a symbol token.
func SymbolToken(r rune, offset int) Token {
	return Token{Kind: KindSymbol, Sym: r, Offset: offset}
}

// OperatorToken creates an operator token.
func OperatorToken(op Operator, offset int) Token {
	return Token{Kind: KindOperator, Op: op, Offset: offset}
}

// IsSymbol reports whether t carries a symbol.
func (t Token) IsSymbol() bool { return t.Kind == KindSymbol }

// Is reports whether t is the operator op.
func (t Token) Is(op Operator) bool { return t.Kind == KindOperator && t.Op == op }

func (t Token) String() string {
	switch t.Kind {
	case KindSymbol, KindIllegal:
		return string(t.Sym)
	default:
		return t.Op.String()
	}
}

// Render concatenates the tokens of a stream, e.g. "a,(b+c)*#".
func Render(tokens []Token) string {
	b := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		b = append(b, tok.String()...)
	}
	return string(b)
}
