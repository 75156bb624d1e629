package main

import (
	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/config"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [flags] [register expressions...]",
		Short: "Run a register machine program.",
		Long: `Run a register machine sample or program file. Positional arguments
are the initial registers r0, r1, ..., each given as an expression over
the --define constants.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			applyFlags(cmd, cfg)

			run := config.RegisterRun{
				Sample:    getString(cmd, "sample"),
				Program:   getString(cmd, "program"),
				State:     getString(cmd, "state"),
				Registers: args,
			}

			return runRegister(cmd.Context(), cmd.OutOrStdout(), cfg, run)
		},
	}

	cmd.Flags().StringP("sample", "s", "", "sample program name")
	cmd.Flags().StringP("program", "p", "", "program file (.json, .yaml, .cbor)")
	cmd.Flags().String("state", "", "initial state file (.json, .yaml, .cbor)")

	return cmd
}
