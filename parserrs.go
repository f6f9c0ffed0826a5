package rpn

import "strconv"

// EmptyExpressionError is an error indicating input with no operands at all,
// e.g. an empty or all-whitespace string. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "missing return value, potentially an empty string")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// ExtraOperandsError is an error indicating that more than one value remained
// on the stack at the end of the input. It implements InputError.
type ExtraOperandsError struct {
	// Col is the position of the end of the input.
	Col int
	// Count is the number of values that remained.
	Count int
}

func (err *ExtraOperandsError) Error() string {
	return errpos(err.Col, "too many remaining arguments, expected 1 found "+strconv.Itoa(err.Count))
}

func (err *ExtraOperandsError) Pos() int {
	return err.Col
}

// ArgumentError is an error indicating an operator applied to too few values.
// It implements InputError.
type ArgumentError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Which is 1 if the first operand popped was missing and 2 if the second
	// was. Since the right operand of a binary operator is on top of the
	// stack, the first operand is the right one. Which is 0 for unary
	// operators.
	Which int
}

func (err *ArgumentError) Error() string {
	var s string
	switch err.Which {
	case 1:
		s = "first "
	case 2:
		s = "second "
	}
	return errpos(err.Col, "missing "+s+"argument for '"+err.Operator+"'")
}

func (err *ArgumentError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number token that is not a valid
// integer in its base. It implements InputError.
type NumberError struct {
	// Col is the position of the token.
	Col int
	// Text is the token as written, including any underscores.
	Text string
	// Base is the base implied by the token's prefix.
	Base int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "unable to parse `"+err.Text+"` as an integer")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// SymbolError is an error indicating a rune which does not begin any token.
// It implements InputError.
type SymbolError struct {
	// Col is the position of the symbol.
	Col int
	// Symbol is the offending rune.
	Symbol string
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "unexpected symbol: '"+err.Symbol+"'")
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*ExtraOperandsError)(nil)
	_ InputError = (*ArgumentError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*SymbolError)(nil)
)
