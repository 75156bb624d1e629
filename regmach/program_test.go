package regmach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Fetch(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(
		MakeIncrement(2, 1),
		MakeDecrement(2, 2, 3),
		MakeIncrement(0, 1),
	)

	assert.Equal(3, prog.Len())

	ins, ok := prog.Fetch(1)
	assert.True(ok)
	assert.Equal(MakeDecrement(2, 2, 3), ins)

	_, ok = prog.Fetch(3)
	assert.False(ok)

	_, ok = prog.Fetch(^uint(0))
	assert.False(ok)
}

func TestProgram_NewProgramCopies(t *testing.T) {
	assert := assert.New(t)

	list := []Instruction{MakeIncrement(0, 1)}
	prog := NewProgram(list...)
	list[0] = MakeIncrement(5, 5)

	ins, ok := prog.Fetch(0)
	assert.True(ok)
	assert.Equal(MakeIncrement(0, 1), ins)
}

func TestProgram_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram()
	assert.Equal(0, prog.Len())
	_, ok := prog.Fetch(0)
	assert.False(ok)
	assert.Equal("", prog.String())
}

func TestProgram_All(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram(MakeIncrement(0, 1), MakeDecrement(1, 0, 2))

	var pcs []uint
	var ops []Opcode
	for pc, ins := range prog.All() {
		pcs = append(pcs, pc)
		ops = append(ops, ins.Op)
	}

	assert.Equal([]uint{0, 1}, pcs)
	assert.Equal([]Opcode{OP_INC, OP_DEC}, ops)
	assert.Equal("  0: inc r0 -> 1\n  1: dec r1 -> 0 | 2\n", prog.String())
}
