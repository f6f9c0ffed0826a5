// Package rpn parses postfix (reverse Polish) arithmetic and boolean
// expressions into syntax trees and simplifies those trees.
//
// Operands are pushed in the order they appear and operators follow their
// operands, so "a b +" is the sum of a and b and "a -" is the negation of a.
// Identifiers other than true and false are symbolic constants which are
// never bound to values. Integer literals may be written in decimal, or in
// hexadecimal, octal, or binary with a 0x, 0o, or 0b prefix, and may contain
// underscores to separate digit groups.
//
// Reduce applies a small set of local algebraic identities bottom-up:
// double negation is removed, x x + becomes x 2 *, and x x = becomes true.
//
package rpn
