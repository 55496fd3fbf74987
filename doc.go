// Package scicalc implements a scientific calculator over float64.
//
// Expressions are written in ordinary infix notation: numbers, parentheses,
// the binary operators + - * / ^, the functions sin, cos, tan, log, ln, exp,
// and sqrt, and the constants pi and e. "2^3^2" is "2^(3^2)". Function and
// constant names are matched without regard to case.
//
// Evaluation happens in two steps. ToPostfix reorders the tokens of an
// expression into postfix order with the shunting-yard algorithm, and
// EvalPostfix runs the postfix form on a value stack. Evaluate does both.
// The degrees flag passed to evaluation applies only to sin, cos, and tan.
//
// Nothing is retained between calls, so all functions in this package are
// safe for concurrent use.
package scicalc
