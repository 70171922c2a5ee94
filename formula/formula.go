// Package formula compiles user-supplied math expressions of one real
// variable into Go functions.
//
// The default compiler, Expr, is built on github.com/expr-lang/expr and
// only exposes numeric operators, math functions and constants. Callers
// with their own evaluator implement Compiler.
//
//	f, err := formula.Expr{}.Compile("sin(x) / x", "x")
//	y, err := f(0.5)
package formula

import "errors"

// Func evaluates a compiled formula at t.
// An error means the formula is undefined at t; it never means the formula
// itself is malformed.
type Func func(t float64) (float64, error)

// Compiler turns source text into a Func of the named variable.
type Compiler interface {
	Compile(src, variable string) (Func, error)
}

// CompilerFunc adapts an ordinary function to the Compiler interface.
type CompilerFunc func(src, variable string) (Func, error)

// Compile implements Compiler.
func (f CompilerFunc) Compile(src, variable string) (Func, error) {
	return f(src, variable)
}

// ErrEmpty is returned when the source is blank.
var ErrEmpty = errors.New("formula: empty expression")

// SyntaxError reports a formula the compiler rejected.
type SyntaxError struct {
	Src string
	Err error
}

func (e *SyntaxError) Error() string {
	return "formula: " + e.Src + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
