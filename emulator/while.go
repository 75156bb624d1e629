package emulator

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/RGates94/proof-and-computation/whileprog"
)

// WhileEmulator runs a WHILE program under a host's limits.
type WhileEmulator struct {
	Verbose          bool             // If set, logs every statement at debug level.
	MaxSteps         int              // Step budget; 0 is unbounded.
	Program          *whileprog.Block // Program being run.
	*whileprog.State                  // Variable store.

	Steps int // Statements and loop iterations checked by the last Run.

	Log log.FieldLogger // Defaults to the standard logrus logger.
}

// NewWhileEmulator creates an emulator for block with an empty variable store.
func NewWhileEmulator(block *whileprog.Block) (emu *WhileEmulator) {
	emu = &WhileEmulator{
		Program: block,
		State:   whileprog.NewState(),
		Log:     log.StandardLogger(),
	}

	return
}

func (emu *WhileEmulator) logger() log.FieldLogger {
	return loggerOr(emu.Log)
}

// Reset the variable store to vars.
func (emu *WhileEmulator) Reset(vars map[string]uint64) {
	emu.State = whileprog.StateOf(vars)
	emu.Steps = 0

	if emu.Verbose {
		emu.logger().WithField("variables", emu.State.String()).Debug("while: reset")
	}
}

// check is the interpreter hook: cancellation, step budget, and tracing.
func (emu *WhileEmulator) check(ctx context.Context) func(whileprog.Statement, *whileprog.State) error {
	return func(stmt whileprog.Statement, state *whileprog.State) (err error) {
		err = ctx.Err()
		if err != nil {
			return
		}

		if emu.MaxSteps > 0 && emu.Steps >= emu.MaxSteps {
			return ErrStepLimit
		}
		emu.Steps++

		if emu.Verbose {
			line, _, _ := strings.Cut(stmt.String(), "\n")
			emu.logger().WithFields(log.Fields{
				"step":      emu.Steps,
				"statement": strings.TrimSuffix(line, " {"),
			}).Debug("while: step")
		}

		return
	}
}

// Run executes the program against the variable store.
func (emu *WhileEmulator) Run(ctx context.Context) (err error) {
	emu.Steps = 0

	in := &whileprog.Interpreter{Check: emu.check(ctx)}
	err = in.Run(emu.Program, emu.State)
	if err != nil {
		err = &ErrRuntime{Machine: "while", Step: emu.Steps, Err: err}
		return
	}

	if emu.Verbose {
		emu.logger().WithFields(log.Fields{
			"steps":      emu.Steps,
			"statements": in.Steps,
		}).Debug("while: done")
	}

	return
}
