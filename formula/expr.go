package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// functions is the namespace visible to formulas. abs, ceil, floor, round,
// min and max are expr builtins and are not repeated here.
var functions = map[string]any{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"atan2": math.Atan2,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log10,
	"log2":  math.Log2,
	"pow":   math.Pow,
	"hypot": math.Hypot,
	"sign": func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	},
}

var constants = map[string]any{
	"pi": math.Pi,
	"PI": math.Pi,
	"e":  math.E,
	"E":  math.E,
}

// Expr compiles formulas with expr-lang/expr.
// `^` and `**` are exponentiation; division always yields a float.
type Expr struct{}

var _ Compiler = Expr{}

// Compile type-checks src with variable bound to a float64 and returns a
// Func. Unknown identifiers and non-numeric results fail here, not at
// evaluation time.
func (Expr) Compile(src, variable string) (Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}
	if _, taken := functions[variable]; taken {
		return nil, fmt.Errorf("formula: variable %q shadows a function", variable)
	}

	env := newEnv(variable)
	program, err := expr.Compile(src, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, &SyntaxError{Src: src, Err: err}
	}

	var machine vm.VM
	return func(t float64) (float64, error) {
		env[variable] = t
		out, err := machine.Run(program, env)
		if err != nil {
			return math.NaN(), err
		}
		v, ok := out.(float64)
		if !ok {
			return math.NaN(), fmt.Errorf("formula: result %T is not a number", out)
		}
		return v, nil
	}, nil
}

// newEnv returns a fresh environment so concurrent Funcs never share state.
func newEnv(variable string) map[string]any {
	env := make(map[string]any, len(functions)+len(constants)+1)
	for k, v := range functions {
		env[k] = v
	}
	for k, v := range constants {
		env[k] = v
	}
	env[variable] = 0.0
	return env
}
