package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	EXPR_MAX_STEPS = 100000 // Starlark execution step budget for one expression.
)

// Evaluate evaluates an integer expression such as `N * 2 + 1`. The names in
// defines are predeclared. The result must be a natural number that fits
// in 64 bits.
func Evaluate(expr string, defines map[string]uint64) (value uint64, err error) {
	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_MAX_STEPS)

	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range defines {
		pred[key] = starlark.MakeUint64(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrNotNatural}
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrNotNatural}
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrNotNatural}
		return
	}
	return
}

// EvaluateAll evaluates a list of expressions in order.
func EvaluateAll(exprs []string, defines map[string]uint64) (values []uint64, err error) {
	values = make([]uint64, 0, len(exprs))
	for _, expr := range exprs {
		var value uint64
		value, err = Evaluate(expr, defines)
		if err != nil {
			values = nil
			return
		}
		values = append(values, value)
	}
	return
}

// EvaluateMap evaluates a map of named expressions.
func EvaluateMap(exprs map[string]string, defines map[string]uint64) (values map[string]uint64, err error) {
	values = make(map[string]uint64, len(exprs))
	for name, expr := range exprs {
		var value uint64
		value, err = Evaluate(expr, defines)
		if err != nil {
			values = nil
			err = &ErrValue{Name: name, Err: err}
			return
		}
		values[name] = value
	}
	return
}
