package scicalc

import (
	"math"
	"strings"
)

// fn is a function of one real argument. degrees is the evaluation's angle
// mode, which only angle functions use.
type fn func(x float64, degrees bool) (float64, error)

// angle wraps a trigonometric primitive into a fn.
func angle(f func(x float64, degrees bool) float64) fn {
	return func(x float64, degrees bool) (float64, error) {
		return f(x, degrees), nil
	}
}

// partial wraps a primitive with a restricted domain into a fn.
func partial(f func(x float64) (float64, error)) fn {
	return func(x float64, degrees bool) (float64, error) {
		return f(x)
	}
}

// total wraps a primitive defined on all reals into a fn.
func total(f func(x float64) float64) fn {
	return func(x float64, degrees bool) (float64, error) {
		return f(x), nil
	}
}

// globalfuncs maps lower-case function names to their implementations.
var globalfuncs = map[string]fn{
	"sin":  angle(Sin),
	"cos":  angle(Cos),
	"tan":  angle(Tan),
	"log":  partial(Log10),
	"ln":   partial(Ln),
	"exp":  total(Exp),
	"sqrt": partial(Sqrt),
}

// constants maps lower-case constant names to their values. No name is both a
// constant and a function.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// binops maps operator symbols to their primitives.
var binops = map[string]func(a, b float64) (float64, error){
	"+": infallible(Add),
	"-": infallible(Sub),
	"*": infallible(Mul),
	"/": Div,
	"^": infallible(Pow),
}

func infallible(f func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}

// function looks up a function by name without regard to case.
func function(name string) (fn, bool) {
	f, ok := globalfuncs[strings.ToLower(name)]
	return f, ok
}

// constant looks up a constant by name without regard to case.
func constant(name string) (float64, bool) {
	v, ok := constants[strings.ToLower(name)]
	return v, ok
}

// Functions returns the names of the functions recognized in expressions, in
// sorted order.
func Functions() []string {
	return sortedkeys(globalfuncs)
}

// Constants returns the names of the constants recognized in expressions, in
// sorted order.
func Constants() []string {
	return sortedkeys(constants)
}

func sortedkeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
