package rpn_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/rpn"
)

func ExampleParse() {
	e, err := rpn.Parse("a b - + 2 *")
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(e.Postfix())
	// Output:
	// ((a + -(b)) * 2)
	// a b - + 2 *
}

func ExampleExpr_Reduce() {
	for _, src := range []string{"pi - -", "a a +", "a a =", "x y y + *"} {
		e, err := rpn.Parse(src)
		if err != nil {
			panic(err)
		}
		e.Reduce()
		fmt.Printf("%s => %s\n", src, e.Postfix())
	}
	// Output:
	// pi - - => pi
	// a a + => a 2 *
	// a a = => true
	// x y y + * => x y 2 * *
}

func ExampleArgumentError() {
	_, err := rpn.Parse("1 +")
	var aerr *rpn.ArgumentError
	if errors.As(err, &aerr) {
		fmt.Println(aerr.Operator, aerr.Which, aerr.Pos())
	}
	fmt.Println(err)
	// Output:
	// + 2 3
	// 3: missing second argument for '+'
}
