package rpn

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"0x10", "16"},
		{"true", "true"},
		{"a -", "-(a)"},
		{"a b +", "(a + b)"},
		{"a b - +", "(a + -(b))"},
		{"a b c * =", "(a = (b * c))"},
	}
	for _, c := range cases {
		e, err := Parse(c.src)
		require.NoError(t, err)
		assert.Equal(t, c.want, e.String())
	}
	assert.Equal(t, "(6 / 2)", (&Binary{Op: Div, Left: NewInt(6), Right: NewInt(2)}).String())
	assert.Equal(t, "($ + 0)", (&Binary{Op: Add, Right: &Int{}}).String())
	assert.Equal(t, "$", NewExpr(nil).String())
}

func TestPostfixRoundTrip(t *testing.T) {
	cases := []string{
		"a",
		"1_000",
		"false",
		"pi - -",
		"a b - +",
		"a b c * + d = e f + *",
		"x y / z +",
		"π _x1 = ж - +",
	}
	for _, src := range cases {
		e, err := Parse(src)
		require.NoError(t, err)
		f, err := Parse(e.Postfix())
		require.NoError(t, err, "reparsing %q from %q", e.Postfix(), src)
		assert.True(t, Equal(e.Root(), f.Root()), "%q round trips to %v via %q", src, f, e.Postfix())
	}
	assert.Equal(t, "a b - +", Postfix(&Binary{Op: Add, Left: name("a"), Right: &Unary{Op: Neg, X: name("b")}}))
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Node
		want bool
	}{
		{"nil", nil, nil, true},
		{"nil-left", nil, name("a"), false},
		{"nil-right", name("a"), nil, false},
		{"const", name("a"), name("a"), true},
		{"const-ne", name("a"), name("b"), false},
		{"int", NewInt(7), &Int{Value: big.NewInt(7)}, true},
		{"int-ne", NewInt(7), NewInt(8), false},
		{"int-zero", &Int{}, NewInt(0), true},
		{"bool", &Bool{Value: true}, &Bool{Value: true}, true},
		{"bool-ne", &Bool{Value: true}, &Bool{}, false},
		{"kinds", name("true"), &Bool{Value: true}, false},
		{"int-const", NewInt(1), name("1"), false},
		{"unary", &Unary{Op: Neg, X: name("a")}, &Unary{Op: Neg, X: name("a")}, true},
		{"unary-ne", &Unary{Op: Neg, X: name("a")}, &Unary{Op: Neg, X: name("b")}, false},
		{
			"binary",
			&Binary{Op: Add, Left: name("a"), Right: NewInt(2)},
			&Binary{Op: Add, Left: name("a"), Right: NewInt(2)},
			true,
		},
		{
			"binary-op",
			&Binary{Op: Add, Left: name("a"), Right: NewInt(2)},
			&Binary{Op: Mul, Left: name("a"), Right: NewInt(2)},
			false,
		},
		{
			"binary-swap",
			&Binary{Op: Add, Left: name("a"), Right: name("b")},
			&Binary{Op: Add, Left: name("b"), Right: name("a")},
			false,
		},
		{
			"binary-unary",
			&Binary{Op: Add, Left: name("a")},
			&Unary{Op: Neg, X: name("a")},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Equal(c.a, c.b))
			assert.Equal(t, c.want, Equal(c.b, c.a))
		})
	}
}

func TestWalk(t *testing.T) {
	e, err := Parse("a b - + c d * =")
	require.NoError(t, err)
	var got []string
	Walk(e.Root(), func(n Node) bool {
		got = append(got, n.String())
		// Don't descend into products.
		b, ok := n.(*Binary)
		return !ok || b.Op != Mul
	})
	want := []string{
		"((a + -(b)) = (c * d))",
		"(a + -(b))",
		"a",
		"-(b)",
		"b",
		"(c * d)",
	}
	assert.Equal(t, want, got)
}

func TestOpStrings(t *testing.T) {
	assert.Equal(t, "+", Add.String())
	assert.Equal(t, "/", Div.String())
	assert.Equal(t, "*", Mul.String())
	assert.Equal(t, "=", Eq.String())
	assert.Equal(t, "BinOp(9)", BinOp(9).String())
	assert.Equal(t, "-", Neg.String())
	assert.Equal(t, "UnOp(3)", UnOp(3).String())
	assert.Equal(t, "Bool", TypeBool.String())
	assert.Equal(t, "Integer", TypeInteger.String())
	assert.Equal(t, "Type(-1)", Type(-1).String())
}
