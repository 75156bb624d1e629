package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RGates94/proof-and-computation/translate"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "computability",
		Short: "Register machine and WHILE language interpreters.",
		Long: `Runs register machine programs and WHILE programs, either from the
built-in samples or from program files, and converts program and state
files between JSON, YAML and CBOR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
			log.WithField("language", translate.Language().String()).Debug("computability")
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "log every step")
	root.PersistentFlags().Int("max-steps", 0, "step budget per run (0 is unbounded)")
	root.PersistentFlags().StringToStringP("define", "D", nil, "define a constant for expressions (name=expr)")

	root.AddCommand(
		newRegisterCmd(),
		newWhileCmd(),
		newRunCmd(),
		newEncodeCmd(),
		newSamplesCmd(),
	)

	return root
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
