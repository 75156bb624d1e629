package main

import (
	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/config"
)

func newWhileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "while --sample NAME [--set name=expr...]",
		Short: "Run a WHILE program.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			applyFlags(cmd, cfg)

			run := config.WhileRun{
				Sample:    getString(cmd, "sample"),
				Variables: getStringMap(cmd, "set"),
			}

			return runWhile(cmd.Context(), cmd.OutOrStdout(), cfg, run)
		},
	}

	cmd.Flags().StringP("sample", "s", "", "sample program name")
	cmd.Flags().StringToString("set", nil, "initial variable (name=expr)")

	return cmd
}
