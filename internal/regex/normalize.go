package regex

// Normalize rewrites raw regex text into a token stream: whitespace is
// dropped, an explicit Concat is inserted wherever two operand-like tokens
// touch, and exactly one End token terminates the stream.
//
// Insertion looks at the adjacency of the scanned tokens only, so inserted
// operators never take part in a later decision.
func Normalize(text string) []Token {
	raw := scan(text)
	out := make([]Token, 0, 2*len(raw)+1)
	for i, tok := range raw {
		out = append(out, tok)
		if i+1 < len(raw) && needsConcat(tok, raw[i+1]) {
			out = append(out, OperatorToken(Concat, -1))
		}
	}
	return append(out, OperatorToken(End, len(text)))
}

// Normalized returns the normalized form of text as a string, e.g.
// "(00+001)*+1*(0+1+2)" becomes "(0,0+0,0,1)*+1*,(0+1+2)#".
func Normalized(text string) string {
	return Render(Normalize(text))
}

// a ends an operand and b starts one.
func needsConcat(a, b Token) bool {
	left := a.IsSymbol() || a.Is(RParen) || a.Is(Star)
	right := b.IsSymbol() || b.Is(LParen)
	return left && right
}
