package config

import (
	"errors"

	"github.com/RGates94/proof-and-computation/translate"
)

var f = translate.From

var (
	ErrNotNatural     = errors.New(f("not a natural number"))
	ErrRunSource      = errors.New(f("exactly one of sample or program required"))
	ErrDefineCycle    = errors.New(f("defines cannot be resolved"))
	ErrStateRegisters = errors.New(f("state and registers are exclusive"))
	ErrKeyUnknown     = errors.New(f("unknown key"))
)

// ErrExpression reports an expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrValue reports the define or variable whose value failed.
type ErrValue struct {
	Name string
	Err  error
}

func (err *ErrValue) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrValue) Unwrap() error {
	return err.Err
}
