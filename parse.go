package rpn

import (
	"io"
	"math/big"
	"slices"
	"strings"
)

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n Node
}

// NewExpr creates an expression from a tree built directly.
func NewExpr(root Node) *Expr {
	return &Expr{n: root}
}

// Root returns the root node of the expression.
func (e *Expr) Root() Node {
	return e.n
}

func (e *Expr) String() string {
	if e.n == nil {
		return "$"
	}
	return e.n.String()
}

// Postfix formats the expression in postfix notation.
func (e *Expr) Postfix() string {
	return Postfix(e.n)
}

// Names returns the sorted list of constant names used in the expression.
// Reducing an expression may remove names from it.
func (e *Expr) Names() []string {
	seen := make(map[string]bool)
	var names []string
	Walk(e.n, func(n Node) bool {
		if c, ok := n.(*Constant); ok && !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
		return true
	})
	slices.Sort(names)
	return names
}

// Parse parses a postfix expression. The given options are applied in order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	scan, err := lex(src)
	if err != nil {
		return nil, err
	}
	n, err := parse(scan, &p)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// ParseReader reads all of src and parses it as a postfix expression.
func ParseReader(src io.Reader, opts ...ParseOption) (*Expr, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, src); err != nil {
		return nil, err
	}
	return Parse(b.String(), opts...)
}

// parse runs the operand stack over the whole input.
func parse(scan *scanner, p *parsectx) (Node, error) {
	var stack []Node
	push := func(n Node) {
		stack = append(stack, n)
		p.debug("push", "node", n, "depth", len(stack))
	}
	// pop removes the top of the stack for the operator tok. which is passed
	// through to the error.
	pop := func(tok lexToken, which int) (Node, error) {
		if len(stack) == 0 {
			return nil, &ArgumentError{Col: tok.pos, Operator: tok.text, Which: which}
		}
		n := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		return n, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			switch len(stack) {
			case 0:
				return nil, &EmptyExpressionError{Col: tok.pos}
			case 1:
				return stack[0], nil
			default:
				return nil, &ExtraOperandsError{Col: tok.pos, Count: len(stack)}
			}
		case tokenOp:
			if tok.text == "-" {
				x, err := pop(tok, 0)
				if err != nil {
					return nil, err
				}
				p.debug("apply", "op", Neg)
				push(&Unary{Op: Neg, X: x})
				continue
			}
			op := p.binop(tok.text)
			r, err := pop(tok, 1)
			if err != nil {
				return nil, err
			}
			l, err := pop(tok, 2)
			if err != nil {
				return nil, err
			}
			p.debug("apply", "op", op)
			push(&Binary{Op: op, Left: l, Right: r})
		case tokenNum:
			v, err := parsenum(tok)
			if err != nil {
				return nil, err
			}
			push(&Int{Value: v})
		case tokenIdent:
			switch tok.text {
			case "true":
				push(&Bool{Value: true})
			case "false":
				push(&Bool{Value: false})
			default:
				push(&Constant{Name: tok.text})
			}
		case tokenOther:
			return nil, &SymbolError{Col: tok.pos, Symbol: tok.text}
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
}

// binop gets the binary operator for an operator token.
func (p *parsectx) binop(op string) BinOp {
	switch op {
	case "+":
		return Add
	case "*":
		return Mul
	case "/":
		if p.strictdiv {
			return Div
		}
		// Division has always been parsed as addition. StrictDivision opts
		// in to Div.
		return Add
	case "=":
		return Eq
	default:
		panic("rpn: unknown binary operator " + op)
	}
}

// parsenum parses a number token. Underscores separate digit groups, and a
// prefix of 0x, 0o, or 0b selects base 16, 8, or 2.
func parsenum(tok lexToken) (*big.Int, error) {
	s := tok.text
	if strings.IndexByte(s, '_') >= 0 {
		s = strings.ReplaceAll(s, "_", "")
	}
	base := 10
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
	}
	if base != 10 {
		s = s[2:]
	}
	// SetString accepts a sign, but number tokens never contain one.
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, &NumberError{Col: tok.pos, Text: tok.text, Base: base}
	}
	return v, nil
}
