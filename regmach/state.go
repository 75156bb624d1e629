package regmach

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

const (
	CONTEXT_CHECK_TICKS = 1024 // Steps between cancellation checks in ComputeContext.
)

// State is the execution state of a register machine.
type State struct {
	Pc        uint     `json:"current_instruction" yaml:"current_instruction" cbor:"current_instruction"` // Program counter.
	Registers []uint64 `json:"registers" yaml:"registers" cbor:"registers"`                               // Register bank, grown on demand.
	Halted    bool     `json:"halted" yaml:"halted" cbor:"halted"`                                        // Set once the PC leaves the program.

	Ticks int `json:"-" yaml:"-" cbor:"-"` // Steps executed since the last Reset.
}

// NewState creates a state at PC 0 with the given initial registers.
func NewState(registers ...uint64) (state *State) {
	state = &State{}
	state.Reset(registers...)

	return
}

// Reset the state to PC 0, not halted, with the given registers.
func (state *State) Reset(registers ...uint64) {
	state.Pc = 0
	state.Registers = slices.Clone(registers)
	state.Halted = false
	state.Ticks = 0
}

// Clone returns an independent copy of the state.
func (state *State) Clone() *State {
	clone := *state
	clone.Registers = slices.Clone(state.Registers)
	return &clone
}

// extend zero-extends the registers through index r.
func (state *State) extend(r uint) {
	for uint(len(state.Registers)) <= r {
		state.Registers = append(state.Registers, 0)
	}
}

// Register returns the value of register r, zero-extending the bank as needed.
func (state *State) Register(r uint) uint64 {
	state.extend(r)
	return state.Registers[r]
}

// Output returns register 0, or 0 if there are no registers.
func (state *State) Output() (value uint64) {
	if len(state.Registers) > 0 {
		value = state.Registers[0]
	}
	return
}

// Step applies a single instruction. It cannot fail.
func (state *State) Step(ins Instruction) {
	state.extend(ins.Register)

	switch ins.Op {
	case OP_INC:
		state.Registers[ins.Register]++
		state.Pc = ins.Next
	case OP_DEC:
		if state.Registers[ins.Register] > 0 {
			state.Registers[ins.Register]--
			state.Pc = ins.Next
		} else {
			state.Pc = ins.NextIfZero
		}
	default:
		panic("unknown opcode")
	}

	state.Ticks++
}

// Tick fetches and applies the instruction at the PC.
// If the PC addresses no instruction the machine halts and done is true.
func (state *State) Tick(prog *Program) (done bool) {
	ins, ok := prog.Fetch(state.Pc)
	if !ok {
		state.Halted = true
		return true
	}

	state.Step(ins)

	return
}

// Compute runs the program until the PC leaves it, then returns the output
// register. Compute does not return for programs that never halt.
func (state *State) Compute(prog *Program) uint64 {
	for !state.Tick(prog) {
	}

	return state.Output()
}

// ComputeContext is Compute with cooperative cancellation. The context is
// checked every CONTEXT_CHECK_TICKS steps; on cancellation the state is
// left as of the last step and ctx.Err() is returned.
func (state *State) ComputeContext(ctx context.Context, prog *Program) (output uint64, err error) {
	for {
		for range CONTEXT_CHECK_TICKS {
			if state.Tick(prog) {
				output = state.Output()
				return
			}
		}
		err = ctx.Err()
		if err != nil {
			return
		}
	}
}

// String returns the state as a human readable dump.
func (state *State) String() (text string) {
	text += fmt.Sprintf("%9s: %d\n", "pc", state.Pc)
	text += fmt.Sprintf("%9s: %v\n", "halted", state.Halted)
	text += fmt.Sprintf("%9s: %d\n", "ticks", state.Ticks)

	if len(state.Registers) == 0 {
		text += fmt.Sprintf("%9s: -\n", "registers")
		return
	}

	var regs strings.Builder
	for r, value := range state.Registers {
		fmt.Fprintf(&regs, "%9s: %d\n", fmt.Sprintf("r%d", r), value)
	}
	text += regs.String()

	return
}
