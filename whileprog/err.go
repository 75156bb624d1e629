package whileprog

import (
	"errors"

	"github.com/RGates94/proof-and-computation/translate"
)

var f = translate.From

var (
	ErrStatementInvalid = errors.New(f("statement invalid"))
	ErrAssignInvalid    = errors.New(f("assignment kind invalid"))
)

// ErrUndefinedVariable is returned when a statement reads an unbound variable.
type ErrUndefinedVariable string

func (err ErrUndefinedVariable) Error() string {
	return f("variable %v undefined", string(err))
}

func (err ErrUndefinedVariable) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedVariable)
	return
}
