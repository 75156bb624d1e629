package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/regmach"
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode --in FILE --out FILE",
		Short: "Convert a register machine program or state file.",
		Long: `Convert a register machine program (or, with --state, a machine
state) between JSON, YAML and CBOR. Formats follow the file extensions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := getString(cmd, "in")
			out := getString(cmd, "out")

			in_format, err := regmach.FormatOf(in)
			if err != nil {
				return
			}
			out_format, err := regmach.FormatOf(out)
			if err != nil {
				return
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return
			}

			var v any
			if getFlag(cmd, "state") {
				var state *regmach.State
				state, err = regmach.DecodeState(in_format, data)
				v = state
			} else {
				var prog *regmach.Program
				prog, err = regmach.DecodeProgram(in_format, data)
				v = prog
			}
			if err != nil {
				return fmt.Errorf("%v: %w", in, err)
			}

			data, err = regmach.Marshal(out_format, v)
			if err != nil {
				return
			}

			log.WithFields(log.Fields{
				"in":  in_format.String(),
				"out": out_format.String(),
			}).Debug("encode")

			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().String("in", "", "input file (.json, .yaml, .cbor)")
	cmd.Flags().String("out", "", "output file (.json, .yaml, .cbor)")
	cmd.Flags().Bool("state", false, "convert a machine state rather than a program")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
