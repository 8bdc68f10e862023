package regex

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"automatalab/internal/symbol"
)

// Parse normalizes text and parses it into a syntax tree.
func Parse(text string) (*Node, error) {
	return ParseTokens(Normalize(text))
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(text string) *Node {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// parser holds the two stacks of a single parse. It is never shared.
type parser struct {
	tokens   []Token
	pos      int
	ops      *arraystack.Stack // of Token, End at the bottom
	operands *arraystack.Stack // of *Node
}

// ParseTokens runs the operator-precedence parser over a normalized token
// stream (see Normalize) and returns the single resulting tree.
func ParseTokens(tokens []Token) (*Node, error) {
	p := &parser{
		tokens:   tokens,
		ops:      arraystack.New(),
		operands: arraystack.New(),
	}
	p.ops.Push(OperatorToken(End, -1))
	return p.parse()
}

func (p *parser) top() Token {
	v, _ := p.ops.Peek()
	return v.(Token)
}

func (p *parser) parse() (*Node, error) {
	for {
		if p.pos >= len(p.tokens) {
			return nil, &SyntaxError{Pos: p.pos, Top: p.top(), Next: OperatorToken(End, -1),
				Kind: ErrUnbalancedExpression, Msg: "token stream has no end marker"}
		}
		tok := p.tokens[p.pos]
		if tok.Kind == KindSymbol && !symbol.Is(tok.Sym) {
			tok.Kind = KindIllegal
		}
		switch tok.Kind {
		case KindSymbol:
			T().Debugf("regex: operand %v", tok)
			p.operands.Push(Leaf(tok.Sym))
			p.pos++
			continue
		case KindIllegal:
			return nil, &SyntaxError{Pos: p.pos, Top: p.top(), Next: tok, Kind: ErrIllegalCharacter,
				Msg: "'" + string(tok.Sym) + "'"}
		}
		top := p.top()
		d := lookup(top.Op, tok.Op)
		T().Debugf("regex: [%v][%v] -> %v", top, tok, d)
		switch d {
		case syntaxError:
			return nil, tableError(p.pos, top, tok)
		case shift:
			p.ops.Push(tok)
			p.pos++
		case reduce:
			p.ops.Pop()
			n, err := p.reduce(top, tok)
			if err != nil {
				return nil, err
			}
			p.operands.Push(n)
		case discard:
			if top.Is(End) {
				return p.finish(tok)
			}
			p.ops.Pop()
			p.pos++
		}
	}
}

// reduce builds a node for op from the operand stack. The scan position is
// left alone; the caller compares the same token again.
func (p *parser) reduce(op, next Token) (*Node, error) {
	missing := func() error {
		return &SyntaxError{Pos: p.pos, Top: op, Next: next, Kind: ErrMissingOperand,
			Msg: "not enough operands for '" + op.String() + "'"}
	}
	switch op.Op {
	case Star:
		child, ok := p.operands.Pop()
		if !ok {
			return nil, missing()
		}
		return StarOf(child.(*Node)), nil
	case Union, Concat:
		right, ok := p.operands.Pop()
		if !ok {
			return nil, missing()
		}
		left, ok := p.operands.Pop()
		if !ok {
			return nil, missing()
		}
		if op.Op == Union {
			return UnionOf(left.(*Node), right.(*Node)), nil
		}
		return ConcatOf(left.(*Node), right.(*Node)), nil
	}
	return nil, tableError(p.pos, op, next)
}

// finish is called when the end marker meets the stack sentinel.
func (p *parser) finish(end Token) (*Node, error) {
	if p.pos != len(p.tokens)-1 {
		return nil, &SyntaxError{Pos: p.pos + 1, Top: end, Next: p.tokens[p.pos+1],
			Kind: ErrUnexpected, Msg: "tokens after end marker"}
	}
	if p.operands.Size() != 1 {
		msg := "empty expression"
		if p.operands.Size() > 1 {
			msg = "operands left without operator"
		}
		return nil, &SyntaxError{Pos: p.pos, Top: p.top(), Next: end, Kind: ErrUnbalancedExpression, Msg: msg}
	}
	v, _ := p.operands.Pop()
	return v.(*Node), nil
}
