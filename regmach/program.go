package regmach

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Program is an ordered instruction list, indexed by PC from zero.
//
// A Program is never modified by execution, and may be shared by any
// number of States.
type Program struct {
	Instructions []Instruction `json:"instructions" yaml:"instructions" cbor:"instructions"`
}

// NewProgram creates a program from instructions, in order.
func NewProgram(instructions ...Instruction) (prog *Program) {
	prog = &Program{
		Instructions: slices.Clone(instructions),
	}

	return
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Fetch returns the instruction addressed by pc.
// ok is false when pc addresses no instruction.
func (prog *Program) Fetch(pc uint) (ins Instruction, ok bool) {
	if pc >= uint(len(prog.Instructions)) {
		return
	}

	return prog.Instructions[pc], true
}

// All iterates over the instructions and their PCs.
func (prog *Program) All() iter.Seq2[uint, Instruction] {
	return func(yield func(pc uint, ins Instruction) bool) {
		for n, ins := range prog.Instructions {
			if !yield(uint(n), ins) {
				return
			}
		}
	}
}

// String returns a listing of the program, one instruction per line.
func (prog *Program) String() string {
	var text strings.Builder
	for pc, ins := range prog.All() {
		fmt.Fprintf(&text, "%3d: %v\n", pc, ins)
	}

	return text.String()
}
