package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/config"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [config.toml]",
		Short: "Run every program listed in a run file.",
		Long: `Run every register and WHILE program listed in a TOML run file.
Without a run file, every sample is run with its default input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := config.Default()
			if len(args) == 1 {
				cfg, err = config.Load(args[0])
				if err != nil {
					return
				}
			}
			applyFlags(cmd, cfg)

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			// Keep going after a failed run; report them all at the end.
			var errs []error
			for _, run := range cfg.Register {
				errs = append(errs, runRegister(ctx, out, cfg, run))
			}
			for _, run := range cfg.While {
				errs = append(errs, runWhile(ctx, out, cfg, run))
			}

			return errors.Join(errs...)
		},
	}

	return cmd
}
