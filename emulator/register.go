package emulator

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/RGates94/proof-and-computation/regmach"
)

// RegisterEmulator runs a register machine program under a host's limits.
type RegisterEmulator struct {
	Verbose        bool             // If set, logs every step at debug level.
	MaxSteps       int              // Step budget; 0 is unbounded.
	Program        *regmach.Program // Program being run.
	*regmach.State                  // Machine state.

	Log log.FieldLogger // Defaults to the standard logrus logger.
}

// NewRegisterEmulator creates an emulator for prog with an empty register bank.
func NewRegisterEmulator(prog *regmach.Program) (emu *RegisterEmulator) {
	emu = &RegisterEmulator{
		Program: prog,
		State:   regmach.NewState(),
		Log:     log.StandardLogger(),
	}

	return
}

func (emu *RegisterEmulator) logger() log.FieldLogger {
	return loggerOr(emu.Log)
}

// Reset the machine to PC 0 with the given registers.
func (emu *RegisterEmulator) Reset(registers ...uint64) {
	emu.State.Reset(registers...)

	if emu.Verbose {
		emu.logger().WithField("registers", registers).Debug("register: reset")
	}
}

// Tick performs a single step of the machine. done is set once the machine
// has halted.
func (emu *RegisterEmulator) Tick() (done bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrRuntime{Machine: "register", Step: emu.State.Ticks, Err: err}
		}
	}()

	pc := emu.State.Pc
	ins, ok := emu.Program.Fetch(pc)
	if !ok {
		emu.State.Halted = true
		done = true
		if emu.Verbose {
			emu.logger().WithFields(log.Fields{
				"pc":     pc,
				"steps":  emu.State.Ticks,
				"output": emu.State.Output(),
			}).Debug("register: halted")
		}
		return
	}

	if emu.MaxSteps > 0 && emu.State.Ticks >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	if emu.Verbose {
		emu.logger().WithFields(log.Fields{
			"pc":          pc,
			"instruction": ins.String(),
			"step":        emu.State.Ticks,
		}).Debug("register: step")
	}

	emu.State.Step(ins)

	return
}

// Run ticks the machine until it halts and returns the output register.
func (emu *RegisterEmulator) Run(ctx context.Context) (output uint64, err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			output = emu.State.Output()
			return
		}
		if emu.State.Ticks%regmach.CONTEXT_CHECK_TICKS == 0 {
			if ctx_err := ctx.Err(); ctx_err != nil {
				err = &ErrRuntime{Machine: "register", Step: emu.State.Ticks, Err: ctx_err}
				return
			}
		}
	}
}
