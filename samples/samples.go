// Package samples is a catalog of named example programs for both machines.
package samples

import (
	"github.com/RGates94/proof-and-computation/internal"
	"github.com/RGates94/proof-and-computation/regmach"
	"github.com/RGates94/proof-and-computation/translate"
	"github.com/RGates94/proof-and-computation/whileprog"
)

var f = translate.From

// ErrSampleUnknown names a sample that is not in the catalog.
type ErrSampleUnknown string

func (err ErrSampleUnknown) Error() string {
	return f("sample %v unknown", string(err))
}

// RegisterSample is a register machine program with its default input.
type RegisterSample struct {
	Name        string
	Description string
	Program     *regmach.Program
	Registers   []uint64 // Default initial registers.
}

// WhileSample is a WHILE program with its default input.
type WhileSample struct {
	Name        string
	Description string
	Program     *whileprog.Block
	Variables   map[string]uint64 // Default initial variables.
}

var registerSamples = map[string]func() RegisterSample{
	"successor": func() RegisterSample {
		return RegisterSample{
			Description: "r0 := r0 + 1, using r2 as scratch",
			Program: regmach.NewProgram(
				regmach.MakeIncrement(2, 1),
				regmach.MakeDecrement(2, 2, 3),
				regmach.MakeIncrement(0, 1),
			),
			Registers: []uint64{5, 3},
		}
	},
	"add": func() RegisterSample {
		return RegisterSample{
			Description: "r0 := r0 + r1, consuming r1",
			Program: regmach.NewProgram(
				regmach.MakeDecrement(1, 1, 2),
				regmach.MakeIncrement(0, 0),
			),
			Registers: []uint64{5, 3},
		}
	},
	"clear": func() RegisterSample {
		return RegisterSample{
			Description: "r0 := 0",
			Program: regmach.NewProgram(
				regmach.MakeDecrement(0, 0, 1),
			),
			Registers: []uint64{7},
		}
	},
	"multiply": func() RegisterSample {
		return RegisterSample{
			Description: "r0 := r0 + r1 * r2, consuming r1, using r3 as scratch",
			Program: regmach.NewProgram(
				regmach.MakeDecrement(1, 1, 6), // 0: while r1 > 0
				regmach.MakeDecrement(2, 2, 4), // 1: move r2 to r0 and r3
				regmach.MakeIncrement(0, 3),
				regmach.MakeIncrement(3, 1),
				regmach.MakeDecrement(3, 5, 0), // 4: move r3 back to r2
				regmach.MakeIncrement(2, 4),
			),
			Registers: []uint64{0, 6, 7},
		}
	},
}

var whileSamples = map[string]func() WhileSample{
	"assign-if": func() WhileSample {
		return WhileSample{
			Description: "strict comparison selects the then branch",
			Program: whileprog.NewBlock(
				whileprog.AssignZero("x"),
				whileprog.AssignIncrement("refrigerator", "x"),
				whileprog.NewIf("x", "refrigerator",
					whileprog.NewBlock(whileprog.AssignCopy("x", "refrigerator")),
					whileprog.NewBlock(whileprog.AssignZero("y")),
				),
			),
			Variables: map[string]uint64{},
		}
	},
	"nested-for": func() WhileSample {
		return WhileSample{
			Description: "loop bounds are captured on entry",
			Program: whileprog.NewBlock(
				whileprog.NewRepeatFor("x", whileprog.NewBlock(
					whileprog.NewRepeatFor("x", whileprog.NewBlock(
						whileprog.AssignIncrement("x", "x"),
						whileprog.AssignIncrement("y", "y"),
					)),
				)),
			),
			Variables: map[string]uint64{"x": 3, "y": 0},
		}
	},
	"while-for": func() WhileSample {
		return WhileSample{
			Description: "while conditions are tested every iteration",
			Program: whileprog.NewBlock(
				whileprog.NewWhile("y", "x", whileprog.NewBlock(
					whileprog.AssignIncrement("y", "y"),
					whileprog.NewRepeatFor("x", whileprog.NewBlock(
						whileprog.AssignIncrement("x", "x"),
						whileprog.AssignIncrement("y", "y"),
					)),
				)),
			),
			Variables: map[string]uint64{"x": 4, "y": 0},
		}
	},
	"double": func() WhileSample {
		return WhileSample{
			Description: "y := 2 * x",
			Program: whileprog.NewBlock(
				whileprog.AssignZero("y"),
				whileprog.NewRepeatFor("x", whileprog.NewBlock(
					whileprog.AssignIncrement("y", "y"),
					whileprog.AssignIncrement("y", "y"),
				)),
			),
			Variables: map[string]uint64{"x": 5},
		}
	},
}

// Register returns a fresh copy of the named register machine sample.
func Register(name string) (sample RegisterSample, err error) {
	make_sample, ok := registerSamples[name]
	if !ok {
		err = ErrSampleUnknown(name)
		return
	}

	sample = make_sample()
	sample.Name = name
	return
}

// While returns a fresh copy of the named WHILE sample.
func While(name string) (sample WhileSample, err error) {
	make_sample, ok := whileSamples[name]
	if !ok {
		err = ErrSampleUnknown(name)
		return
	}

	sample = make_sample()
	sample.Name = name
	return
}

// RegisterNames lists the register machine samples in name order.
func RegisterNames() []string {
	return internal.SortedKeys(registerSamples)
}

// WhileNames lists the WHILE samples in name order.
func WhileNames() []string {
	return internal.SortedKeys(whileSamples)
}
