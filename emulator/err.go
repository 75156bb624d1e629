package emulator

import (
	"errors"

	"github.com/RGates94/proof-and-computation/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit exceeded"))
)

// ErrRuntime indicates the machine and step of a runtime error.
type ErrRuntime struct {
	Machine string
	Step    int
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("%v step %d %v", err.Machine, err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
