package emulator

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/RGates94/proof-and-computation/samples"
	"github.com/RGates94/proof-and-computation/whileprog"
)

func TestWhileEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	sample, err := samples.While("double")
	assert.NoError(err)

	emu := NewWhileEmulator(sample.Program)
	emu.Reset(sample.Variables)

	err = emu.Run(context.Background())
	assert.NoError(err)

	value, err := emu.Get("y")
	assert.NoError(err)
	assert.Equal(uint64(10), value)

	// Two statements, four loop re-checks, ten body statements.
	assert.Equal(16, emu.Steps)
}

func TestWhileEmulator_Undefined(t *testing.T) {
	assert := assert.New(t)

	emu := NewWhileEmulator(whileprog.NewBlock(
		whileprog.AssignZero("x"),
		whileprog.AssignCopy("y", "z"),
	))
	emu.Reset(nil)

	err := emu.Run(context.Background())
	assert.ErrorIs(err, whileprog.ErrUndefinedVariable("z"))

	var runtime_err *ErrRuntime
	assert.True(errors.As(err, &runtime_err))
	assert.Equal("while", runtime_err.Machine)
	assert.Equal(2, runtime_err.Step)

	value, ok := emu.Lookup("x")
	assert.True(ok)
	assert.Equal(uint64(0), value)
}

func TestWhileEmulator_StepLimit(t *testing.T) {
	assert := assert.New(t)

	// x < y never changes, and the body is empty.
	emu := NewWhileEmulator(whileprog.NewBlock(
		whileprog.NewWhile("x", "y", whileprog.NewBlock()),
	))
	emu.MaxSteps = 50
	emu.Reset(map[string]uint64{"x": 0, "y": 1})

	err := emu.Run(context.Background())
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(50, emu.Steps)
}

func TestWhileEmulator_Deadline(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	emu := NewWhileEmulator(whileprog.NewBlock(
		whileprog.NewWhile("x", "y", whileprog.NewBlock(
			whileprog.AssignIncrement("z", "z"),
		)),
	))
	emu.Reset(map[string]uint64{"x": 0, "y": 1, "z": 0})

	err := emu.Run(ctx)
	assert.ErrorIs(err, context.DeadlineExceeded)
}

func TestWhileEmulator_Verbose(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	emu := NewWhileEmulator(whileprog.NewBlock(
		whileprog.AssignZero("y"),
		whileprog.NewRepeatFor("x", whileprog.NewBlock(
			whileprog.AssignIncrement("y", "y"),
		)),
	))
	emu.Log = logger
	emu.Verbose = true
	emu.Reset(map[string]uint64{"x": 1})

	err := emu.Run(context.Background())
	assert.NoError(err)

	entries := hook.AllEntries()
	assert.Len(entries, 1+3+1)
	assert.Equal("while: reset", entries[0].Message)
	assert.Equal("while: step", entries[1].Message)
	assert.Equal("while: step", entries[2].Message)
	assert.Equal("while: step", entries[3].Message)
	assert.Equal(3, entries[3].Data["step"])
	assert.Equal("while: done", hook.LastEntry().Message)
}

func TestWhileEmulator_NilLog(t *testing.T) {
	assert := assert.New(t)

	emu := &WhileEmulator{
		Verbose: true,
		Program: whileprog.NewBlock(whileprog.AssignIncrement("y", "x")),
		State:   whileprog.NewState(),
	}
	emu.Reset(map[string]uint64{"x": 1})

	err := emu.Run(context.Background())
	assert.NoError(err)

	value, err := emu.Get("y")
	assert.NoError(err)
	assert.Equal(uint64(2), value)
}
