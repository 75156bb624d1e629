package regmach

import (
	"fmt"
)

// Opcode selects the instruction variant.
type Opcode int

const (
	OP_INC = Opcode(0) // inc
	OP_DEC = Opcode(1) // dec
)

func (op Opcode) String() string {
	switch op {
	case OP_INC:
		return "inc"
	case OP_DEC:
		return "dec"
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Instruction is a single register machine instruction.
//
// For OP_INC, NextIfZero is unused and always zero.
type Instruction struct {
	Op         Opcode
	Register   uint // Register operated on.
	Next       uint // PC after an increment, or after a successful decrement.
	NextIfZero uint // PC when a decrement finds the register at zero.
}

// MakeIncrement creates an Increment(register, next) instruction.
func MakeIncrement(register, next uint) Instruction {
	return Instruction{Op: OP_INC, Register: register, Next: next}
}

// MakeDecrement creates a Decrement(register, next, next_if_zero) instruction.
func MakeDecrement(register, next, next_if_zero uint) Instruction {
	return Instruction{Op: OP_DEC, Register: register, Next: next, NextIfZero: next_if_zero}
}

// String returns the listing form of the instruction.
func (ins Instruction) String() (out string) {
	switch ins.Op {
	case OP_INC:
		out = fmt.Sprintf("inc r%d -> %d", ins.Register, ins.Next)
	case OP_DEC:
		out = fmt.Sprintf("dec r%d -> %d | %d", ins.Register, ins.Next, ins.NextIfZero)
	default:
		out = ins.Op.String()
	}

	return
}
