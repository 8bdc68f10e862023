package regex

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The lexmachine lexer is compiled once and only read afterwards, so
// scanners for concurrent parses may share it.
var (
	lexerOnce sync.Once
	lexerDef  *lexmachine.Lexer
	lexerErr  error
)

func regexLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`[ \t\n\r]+`), skip)
		lx.Add([]byte(`[0-9a-zA-Z]`), symbolAction)
		lx.Add([]byte(`[+]`), opAction(Union))
		lx.Add([]byte(`,`), opAction(Concat))
		lx.Add([]byte(`[*]`), opAction(Star))
		lx.Add([]byte(`[(]`), opAction(LParen))
		lx.Add([]byte(`[)]`), opAction(RParen))
		lx.Add([]byte(`[^ \t\n\r0-9a-zA-Z+,*()]`), illegalAction)
		if err := lx.Compile(); err != nil {
			lexerErr = err
			return
		}
		lexerDef = lx
	})
	return lexerDef, lexerErr
}

// scan splits raw regex text into tokens, dropping whitespace. Characters
// which cannot be resolved come out as KindIllegal tokens; rejecting them is
// left to the parser.
func scan(text string) []Token {
	input := []byte(text)
	lx, err := regexLexer()
	if err != nil {
		panic(err) // static patterns, cannot fail
	}
	scanner, err := lx.Scanner(input)
	if err != nil {
		panic(err)
	}
	tokens := make([]Token, 0, len(input))
	skipUntil := 0
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				tokens = append(tokens, illegalAt(input, ui.FailTC))
				break
			}
			panic(err)
		}
		t := tok.(Token)
		if t.Kind == KindIllegal {
			// lexmachine matches bytes; report a multi-byte character once
			if t.Offset < skipUntil {
				continue
			}
			t = illegalAt(input, t.Offset)
			_, size := utf8.DecodeRune(input[t.Offset:])
			skipUntil = t.Offset + size
		}
		tokens = append(tokens, t)
	}
	return tokens
}

func illegalAt(input []byte, offset int) Token {
	r, _ := utf8.DecodeRune(input[offset:])
	return Token{Kind: KindIllegal, Sym: r, Offset: offset}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func symbolAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return SymbolToken(rune(m.Bytes[0]), m.TC), nil
}

func illegalAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return Token{Kind: KindIllegal, Sym: rune(m.Bytes[0]), Offset: m.TC}, nil
}

func opAction(op Operator) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return OperatorToken(op, m.TC), nil
	}
}
