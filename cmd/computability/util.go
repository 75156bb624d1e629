package main

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/config"
	"github.com/RGates94/proof-and-computation/emulator"
	"github.com/RGates94/proof-and-computation/translate"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// Get an expected int flag, or panic if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// Get an expected name=value flag, or panic if an error arises.
func getStringMap(cmd *cobra.Command, flag string) map[string]string {
	r, err := cmd.Flags().GetStringToString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// applyFlags overlays the persistent flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if getFlag(cmd, "verbose") {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps = max(getInt(cmd, "max-steps"), 0)
	}
	defines := getStringMap(cmd, "define")
	if len(defines) > 0 && cfg.Defines == nil {
		cfg.Defines = map[string]string{}
	}
	for name, expr := range defines {
		cfg.Defines[name] = expr
	}
}

func runRegister(ctx context.Context, out io.Writer, cfg *config.Config, run config.RegisterRun) (err error) {
	name, prog, state, err := cfg.ResolveRegister(run)
	if err != nil {
		return
	}

	emu := emulator.NewRegisterEmulator(prog)
	emu.State = state
	emu.Verbose = cfg.Verbose
	emu.MaxSteps = cfg.MaxSteps

	log.WithField("program", name).Debug("register: run")

	translate.Fprintf(out, "== register %v ==\n", name)
	fmt.Fprint(out, prog.String())
	translate.Fprintf(out, "-- before --\n")
	fmt.Fprint(out, emu.State.String())

	output, err := emu.Run(ctx)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	translate.Fprintf(out, "-- after --\n")
	fmt.Fprint(out, emu.State.String())
	fmt.Fprintf(out, "output: %d\n", output)

	return
}

func runWhile(ctx context.Context, out io.Writer, cfg *config.Config, run config.WhileRun) (err error) {
	name, block, state, err := cfg.ResolveWhile(run)
	if err != nil {
		return
	}

	emu := emulator.NewWhileEmulator(block)
	emu.State = state
	emu.Verbose = cfg.Verbose
	emu.MaxSteps = cfg.MaxSteps

	log.WithField("program", name).Debug("while: run")

	translate.Fprintf(out, "== while %v ==\n", name)
	fmt.Fprint(out, block.String())
	translate.Fprintf(out, "-- before --\n")
	fmt.Fprint(out, emu.State.String())

	err = emu.Run(ctx)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	translate.Fprintf(out, "-- after --\n")
	fmt.Fprint(out, emu.State.String())

	return
}
