package regmach

import (
	"errors"

	"github.com/RGates94/proof-and-computation/translate"
)

var f = translate.From

var (
	// Interchange errors
	ErrInstructionVariant = errors.New(f("instruction must have exactly one variant"))
	ErrInstructionOpcode  = errors.New(f("instruction opcode unknown"))
	ErrDocumentEmpty      = errors.New(f("document empty"))
)

// ErrFormatUnknown names an interchange format or file extension that has no codec.
type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("format '%v' unknown", string(err))
}
