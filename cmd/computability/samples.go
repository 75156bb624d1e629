package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/samples"
)

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample programs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "register:")
			for _, name := range samples.RegisterNames() {
				var sample samples.RegisterSample
				sample, err = samples.Register(name)
				if err != nil {
					return
				}
				fmt.Fprintf(out, "  %-12s %v\n", sample.Name, sample.Description)
			}

			fmt.Fprintln(out, "while:")
			for _, name := range samples.WhileNames() {
				var sample samples.WhileSample
				sample, err = samples.While(name)
				if err != nil {
					return
				}
				fmt.Fprintf(out, "  %-12s %v\n", sample.Name, sample.Description)
			}

			return
		},
	}

	return cmd
}
