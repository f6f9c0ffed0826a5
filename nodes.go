package rpn

import (
	"math/big"
	"strconv"
	"strings"
)

// Node is a node in the syntax tree of an expression. The concrete type of a
// Node is always one of *Constant, *Binary, *Unary, *Int, or *Bool.
//
// Every node is owned by exactly one parent. Building a tree which shares a
// node between two parents is a mistake; Reduce rewrites children in place.
type Node interface {
	// String formats the node as a fully parenthesized infix expression.
	String() string

	fmt(b *strings.Builder)
	postfix(b *strings.Builder)
}

// Constant is a symbolic name. It has no value.
type Constant struct {
	Name string
}

// Binary is a binary operation.
type Binary struct {
	Op    BinOp
	Left  Node
	Right Node
}

// Unary is a unary operation.
type Unary struct {
	Op UnOp
	X  Node
}

// Int is a non-negative integer literal.
type Int struct {
	Value *big.Int
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

// NewInt creates an integer literal node.
func NewInt(v uint64) *Int {
	return &Int{Value: new(big.Int).SetUint64(v)}
}

// BinOp is a binary operator.
type BinOp int8

const (
	// Add is addition. Subtraction is addition of a negation.
	Add BinOp = iota
	Div
	Mul
	Eq
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Div:
		return "/"
	case Mul:
		return "*"
	case Eq:
		return "="
	default:
		return "BinOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// UnOp is a unary operator.
type UnOp int8

const (
	// Neg is arithmetic negation.
	Neg UnOp = iota
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "-"
	default:
		return "UnOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// Type is the type of a value. Nothing in this package assigns or checks
// types.
type Type int8

const (
	TypeBool Type = iota
	TypeInteger
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeInteger:
		return "Integer"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

func (n *Constant) String() string { return format(n) }
func (n *Binary) String() string   { return format(n) }
func (n *Unary) String() string    { return format(n) }
func (n *Int) String() string      { return format(n) }
func (n *Bool) String() string     { return format(n) }

func format(n Node) string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Constant) fmt(b *strings.Builder) {
	b.WriteString(n.Name)
}

func (n *Binary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	fmtnode(b, n.Left)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	fmtnode(b, n.Right)
	b.WriteByte(')')
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteString(n.Op.String())
	b.WriteByte('(')
	fmtnode(b, n.X)
	b.WriteByte(')')
}

func (n *Int) fmt(b *strings.Builder) {
	if n.Value == nil {
		b.WriteByte('0')
		return
	}
	b.WriteString(n.Value.String())
}

func (n *Bool) fmt(b *strings.Builder) {
	b.WriteString(strconv.FormatBool(n.Value))
}

// fmtnode formats a child which may be nil in a hand-built tree.
func fmtnode(b *strings.Builder, n Node) {
	if n == nil {
		// Missing nodes use an invalid character.
		b.WriteByte('$')
		return
	}
	n.fmt(b)
}

// Postfix formats a tree in postfix notation. For any tree produced by Parse
// with default options, parsing the result yields an equal tree.
func Postfix(n Node) string {
	var b strings.Builder
	postfixnode(&b, n)
	return b.String()
}

func postfixnode(b *strings.Builder, n Node) {
	if n == nil {
		b.WriteByte('$')
		return
	}
	n.postfix(b)
}

func (n *Constant) postfix(b *strings.Builder) { n.fmt(b) }
func (n *Int) postfix(b *strings.Builder)      { n.fmt(b) }
func (n *Bool) postfix(b *strings.Builder)     { n.fmt(b) }

func (n *Binary) postfix(b *strings.Builder) {
	postfixnode(b, n.Left)
	b.WriteByte(' ')
	postfixnode(b, n.Right)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
}

func (n *Unary) postfix(b *strings.Builder) {
	postfixnode(b, n.X)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
}

// Equal reports whether two trees have the same structure and values.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Constant:
		b, ok := b.(*Constant)
		return ok && a.Name == b.Name
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && Equal(a.X, b.X)
	case *Int:
		b, ok := b.(*Int)
		return ok && intval(a).Cmp(intval(b)) == 0
	case *Bool:
		b, ok := b.(*Bool)
		return ok && a.Value == b.Value
	default:
		panic("rpn: invalid node type")
	}
}

var zero big.Int

// intval treats a nil Value as zero.
func intval(n *Int) *big.Int {
	if n.Value == nil {
		return &zero
	}
	return n.Value
}

// Walk visits n and its descendants in pre-order. If visit returns false,
// the children of that node are skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	switch n := n.(type) {
	case *Binary:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *Unary:
		Walk(n.X, visit)
	}
}
