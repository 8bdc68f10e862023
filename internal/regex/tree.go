package regex

import "strings"

// NodeType distinguishes the node variants of a syntax tree.
type NodeType int

const (
	NLeaf   NodeType = iota // a single symbol
	NStar                   // Kleene closure of Left
	NUnion                  // Left + Right
	NConcat                 // Left followed by Right
)

// Node is a node of a syntax tree. Trees are built once by the parser and
// never changed afterwards.
type Node struct {
	Type  NodeType
	Sym   rune  // for NLeaf
	Left  *Node // child of NStar, left operand of NUnion / NConcat
	Right *Node
}

// Leaf creates a leaf for symbol r.
func Leaf(r rune) *Node { return &Node{Type: NLeaf, Sym: r} }

// StarOf creates the closure of n.
func StarOf(n *Node) *Node { return &Node{Type: NStar, Left: n} }

// UnionOf creates the alternation of l and r, keeping their order.
func UnionOf(l, r *Node) *Node { return &Node{Type: NUnion, Left: l, Right: r} }

// ConcatOf creates the concatenation of l and r.
func ConcatOf(l, r *Node) *Node { return &Node{Type: NConcat, Left: l, Right: r} }

// Operator returns the operator a node has been reduced from.
// Leaves have none and return End.
func (n *Node) Operator() Operator {
	switch n.Type {
	case NStar:
		return Star
	case NUnion:
		return Union
	case NConcat:
		return Concat
	}
	return End
}

// Equal compares two trees structurally, including operand order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	if n.Type == NLeaf {
		return n.Sym == o.Sym
	}
	return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

// Size is the number of nodes of the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// String returns the s-expression form of the tree, e.g. "(+ (* a) (, b c))".
func (n *Node) String() string {
	var b strings.Builder
	n.sexpr(&b)
	return b.String()
}

func (n *Node) sexpr(b *strings.Builder) {
	if n.Type == NLeaf {
		b.WriteRune(n.Sym)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Operator().String())
	b.WriteByte(' ')
	n.Left.sexpr(b)
	if n.Right != nil {
		b.WriteByte(' ')
		n.Right.sexpr(b)
	}
	b.WriteByte(')')
}

// Infix returns the in-order traversal of the tree, writing Concat as ','
// and omitting all parentheses. For expressions without parentheses this is
// the normalized input without its end marker.
func (n *Node) Infix() string {
	var b strings.Builder
	n.inorder(&b)
	return b.String()
}

func (n *Node) inorder(b *strings.Builder) {
	switch n.Type {
	case NLeaf:
		b.WriteRune(n.Sym)
	case NStar:
		n.Left.inorder(b)
		b.WriteByte('*')
	default:
		n.Left.inorder(b)
		b.WriteString(n.Operator().String())
		n.Right.inorder(b)
	}
}

// Regex renders the tree as a regular expression with implicit
// concatenation and as few parentheses as possible. Parsing the result
// yields a tree equal to n.
func (n *Node) Regex() string {
	var b strings.Builder
	n.regex(&b)
	return b.String()
}

func (n *Node) bindingStrength() int {
	switch n.Type {
	case NUnion:
		return 1
	case NConcat:
		return 2
	case NStar:
		return 3
	}
	return 4
}

func (n *Node) regex(b *strings.Builder) {
	switch n.Type {
	case NLeaf:
		b.WriteRune(n.Sym)
	case NStar:
		n.Left.group(b, n.Left.bindingStrength() < 3)
		b.WriteByte('*')
	case NConcat:
		n.Left.group(b, n.Left.bindingStrength() < 2)
		n.Right.group(b, n.Right.bindingStrength() <= 2)
	case NUnion:
		n.Left.regex(b)
		b.WriteByte('+')
		n.Right.group(b, n.Right.bindingStrength() <= 1)
	}
}

func (n *Node) group(b *strings.Builder, paren bool) {
	if paren {
		b.WriteByte('(')
	}
	n.regex(b)
	if paren {
		b.WriteByte(')')
	}
}
